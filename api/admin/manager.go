package admin

import (
	"mountspa_server/api/middleware"
	"mountspa_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger         *gecho.Logger
	leadService    *services.LeadService
	catalogService *services.CatalogService
	mw             *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	leadService *services.LeadService,
	catalogService *services.CatalogService,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:         logger,
		leadService:    leadService,
		catalogService: catalogService,
		mw:             mw,
	}
}

func (ar *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(ar.mw.UserAuthMiddleware)
		r.Use(ar.mw.AdminAuthMiddleware)

		r.Get("/leads", ar.ListLeads)
		r.Delete("/cache/catalog", ar.InvalidateCatalogCache)
	})
}
