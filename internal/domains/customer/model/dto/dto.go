package dto

import (
	"strings"

	"github.com/NikQuila/website-gocar-sub000/infras/jwt"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model"
	"github.com/NikQuila/website-gocar-sub000/shared/validator"
)

// CustomerForm is the contact data collected on the details step.
type CustomerForm struct {
	ClientID  string `json:"client_id"  validate:"required"`
	FirstName string `json:"first_name" validate:"required,trimmedmin=2"`
	LastName  string `json:"last_name"  validate:"required,trimmedmin=2"`
	Email     string `json:"email"      validate:"required,contactemail"`
	Phone     string `json:"phone"      validate:"required,phonedigits=8"`
}

// Normalize trims every field and lowercases the email.
func (f CustomerForm) Normalize() CustomerForm {
	return CustomerForm{
		ClientID:  strings.TrimSpace(f.ClientID),
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Email:     strings.ToLower(strings.TrimSpace(f.Email)),
		Phone:     strings.TrimSpace(f.Phone),
	}
}

func (f CustomerForm) Validate() error {
	return validator.ValidateStruct(&f)
}

func (f CustomerForm) IsValid() bool {
	return f.Validate() == nil
}

func (f CustomerForm) ToModel(ref model.Ref) model.Customer {
	n := f.Normalize()

	return model.Customer{
		Ref:       ref,
		ClientID:  n.ClientID,
		FirstName: n.FirstName,
		LastName:  n.LastName,
		Email:     n.Email,
		Phone:     n.Phone,
	}
}

type InitializeRequest struct {
	CustomerForm
}

type CustomerResponse struct {
	ID        string     `json:"id"`
	IDKind    string     `json:"id_kind"`
	ClientID  string     `json:"client_id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Token     *jwt.Token `json:"token,omitempty"`
}

func (c *CustomerResponse) FromModel(m model.Customer) {
	c.ID = m.Ref.String()
	c.IDKind = string(m.Ref.Kind())
	c.ClientID = m.ClientID
	c.FirstName = m.FirstName
	c.LastName = m.LastName
	c.Email = m.Email
	c.Phone = m.Phone
}
