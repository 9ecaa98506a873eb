package model

// QueryProfile is a named column set for the listing view. Deployments
// whose view lacks some joined columns fall back to a smaller profile.
type QueryProfile struct {
	Name    string
	Columns []string
}

var baseColumns = []string{
	"id", "client_id", "dealership_id", "vehicle_id", "customer_uuid", "customer_int_id",
	"slot_start", "slot_end", "status", "channel", "notes", "contact_snapshot",
}

var (
	ProfileFull = QueryProfile{
		Name:    "full",
		Columns: append(append([]string{}, baseColumns...), "dealership_name", "dealership_address", "vehicle_brand", "vehicle_model", "vehicle_year"),
	}
	ProfilePartial = QueryProfile{
		Name:    "partial",
		Columns: append(append([]string{}, baseColumns...), "dealership_name", "dealership_address"),
	}
	ProfileMinimal = QueryProfile{
		Name:    "minimal",
		Columns: baseColumns,
	}
)

// ListProfiles is the order in which profiles are tried.
var ListProfiles = []QueryProfile{ProfileFull, ProfilePartial, ProfileMinimal}
