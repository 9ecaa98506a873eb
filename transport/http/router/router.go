package router

import (
	"github.com/NikQuila/website-gocar-sub000/internal/handlers/appointment"
	"github.com/NikQuila/website-gocar-sub000/internal/handlers/booking"
	"github.com/NikQuila/website-gocar-sub000/internal/handlers/customer"
	"github.com/NikQuila/website-gocar-sub000/internal/handlers/dealership"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Dealership  dealership.Handler
	Booking     booking.Handler
	Customer    customer.Handler
	Appointment appointment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Dealership.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Appointment.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
