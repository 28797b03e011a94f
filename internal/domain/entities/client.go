package entities

import "time"

// Client is a shop customer.
//
// TaxID and Phone are free text but required at the form boundary.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	TaxID     string    `json:"taxId"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientDraft carries the caller-supplied fields of a new Client.
type ClientDraft struct {
	Name    string
	Phone   string
	Email   string
	TaxID   string
	Address string
}

func (d ClientDraft) Build(id string, now time.Time) Client {
	return Client{
		ID:        id,
		Name:      d.Name,
		Phone:     d.Phone,
		Email:     d.Email,
		TaxID:     d.TaxID,
		Address:   d.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ClientPatch lists the mutable Client fields; nil means "keep".
type ClientPatch struct {
	Name    *string
	Phone   *string
	Email   *string
	TaxID   *string
	Address *string
}

func (p ClientPatch) Apply(c Client, now time.Time) Client {
	setString(&c.Name, p.Name)
	setString(&c.Phone, p.Phone)
	setString(&c.Email, p.Email)
	setString(&c.TaxID, p.TaxID)
	setString(&c.Address, p.Address)
	c.UpdatedAt = now
	return c
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
