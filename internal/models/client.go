package models

// Client is a salon customer. Name and phone are required, the rest optional.
type Client struct {
	Base

	Name      string `gorm:"size:100;not null" json:"name"`
	Phone     string `gorm:"size:20" json:"phone"`
	Email     string `gorm:"size:100" json:"email"`
	BirthDate string `gorm:"size:10" json:"birth_date"`
	Address   string `gorm:"size:255" json:"address"`
	Notes     string `gorm:"type:text" json:"notes"`
}

type ClientPatch struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	BirthDate *string `json:"birth_date,omitempty"`
	Address   *string `json:"address,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (p ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.BirthDate != nil {
		c.BirthDate = *p.BirthDate
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}
