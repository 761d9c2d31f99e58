package service

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrAmbiguousLookup     = errors.New("lookup matched more than one application")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidStatus       = errors.New("unknown application status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds the size limit")
)
