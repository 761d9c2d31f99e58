package domain

// Settings is the singleton of site-wide contact details shown in the
// footer and on the contact page. Nil pointer fields are left untouched
// on update.
type Settings struct {
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	WhatsApp    *string `json:"whatsapp,omitempty"`
	MapLocation *string `json:"map_location,omitempty"`
}
