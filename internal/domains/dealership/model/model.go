package model

const (
	EntityName = "dealership"
	TableName  = "dealerships"

	FieldID       = "id"
	FieldClientID = "client_id"
	FieldName     = "name"
)

const (
	ClientEntityName = "client"
	ClientTableName  = "clients"

	VehicleEntityName = "vehicle"
	VehicleTableName  = "vehicles"
)

// Dealership is a physical location of a tenant where appointments happen.
type Dealership struct {
	ID       string  `db:"id"`
	ClientID string  `db:"client_id"`
	Name     string  `db:"name"`
	Address  *string `db:"address"`
}

// Client is the tenant owning dealerships, vehicles and customers.
type Client struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	ContactEmail *string `db:"contact_email"`
	Timezone     *string `db:"timezone"`
}

// Vehicle carries the listing location and the seller to notify.
type Vehicle struct {
	ID           string  `db:"id"`
	ClientID     string  `db:"client_id"`
	DealershipID *string `db:"dealership_id"`
	Brand        *string `db:"brand"`
	Model        *string `db:"model"`
	Year         *int    `db:"year"`
	SellerEmail  *string `db:"seller_email" table:"sellers" column:"email"`
}

func (Vehicle) JoinClause() string {
	return "LEFT JOIN sellers ON sellers.id = vehicles.seller_id"
}
