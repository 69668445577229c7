package router

import (
	"hms/internal/handlers/auth"
	"hms/internal/handlers/hospital"
	"hms/internal/handlers/icu"
	"hms/internal/handlers/realtime"
	"hms/internal/handlers/shift"
	"hms/internal/handlers/task"
	"hms/internal/handlers/user"
	"hms/internal/handlers/vacation"
	"hms/internal/handlers/visitorroom"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Hospital    hospital.Handler
	ICU         icu.Handler
	VisitorRoom visitorroom.Handler
	Task        task.Handler
	Vacation    vacation.Handler
	Shift       shift.Handler
	Realtime    realtime.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Hospital.Router(routerGroup)
		r.DomainHandlers.ICU.Router(routerGroup)
		r.DomainHandlers.VisitorRoom.Router(routerGroup)
		r.DomainHandlers.Task.Router(routerGroup)
		r.DomainHandlers.Vacation.Router(routerGroup)
		r.DomainHandlers.Shift.Router(routerGroup)
		r.DomainHandlers.Realtime.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
