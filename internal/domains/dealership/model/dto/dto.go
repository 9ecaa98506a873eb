package dto

import (
	"github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/model"
)

type DealershipResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

func (d *DealershipResponse) FromModel(m model.Dealership) {
	d.ID = m.ID
	d.Name = m.Name

	if m.Address != nil {
		d.Address = *m.Address
	}
}

type DealershipsResponse struct {
	Dealerships []DealershipResponse `json:"dealerships"`
}

func (d *DealershipsResponse) FromModels(models []model.Dealership) {
	d.Dealerships = make([]DealershipResponse, 0, len(models))

	for _, m := range models {
		var res DealershipResponse
		res.FromModel(m)
		d.Dealerships = append(d.Dealerships, res)
	}
}

// IDs returns the dealership ids in listing order.
func (d *DealershipsResponse) IDs() []string {
	ids := make([]string, 0, len(d.Dealerships))
	for _, dealership := range d.Dealerships {
		ids = append(ids, dealership.ID)
	}

	return ids
}
