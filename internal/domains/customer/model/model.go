package model

const (
	EntityName = "customer"
	TableName  = "customers"

	FieldID       = "id"
	FieldLegacyID = "legacy_id"
	FieldClientID = "client_id"
	FieldEmail    = "email"
)

// Row is the customers table as read for alternate id lookups.
type Row struct {
	ID        string `db:"id"`
	LegacyID  *int64 `db:"legacy_id"`
	ClientID  string `db:"client_id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
}

// Refs returns every id representation the row carries, uuid first.
func (r Row) Refs() []Ref {
	refs := []Ref{}

	if ref, err := ParseRef(r.ID); err == nil {
		refs = append(refs, ref)
	}

	if r.LegacyID != nil {
		refs = append(refs, IntegerRef(*r.LegacyID))
	}

	return refs
}

func (r Row) ToModel(ref Ref) Customer {
	return Customer{
		Ref:       ref,
		ClientID:  r.ClientID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}

// Customer is a person booking appointments for one tenant.
type Customer struct {
	Ref       Ref    `json:"ref"`
	ClientID  string `json:"client_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
