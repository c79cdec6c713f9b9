package api

import (
	"mountspa_server/api/admin"
	"mountspa_server/api/auth"
	"mountspa_server/api/catalog"
	"mountspa_server/api/configurator"
	"mountspa_server/api/health"
	"mountspa_server/api/leads"
	"mountspa_server/api/middleware"
	"mountspa_server/database"
	"mountspa_server/services"
	"mountspa_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	catalogRoutes      *catalog.CatalogRoutesManager
	configuratorRoutes *configurator.ConfiguratorRoutesManager
	leadRoutes         *leads.LeadRoutesManager
	healthRoutes       *health.HealthRoutesManager
	authRoutes         *auth.AuthRoutesManager
	adminRoutes        *admin.AdminRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	db *database.DB,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *routerManager {
	sm := services.NewServiceManager(logger, cfg, db)

	return &routerManager{
		catalogRoutes:      catalog.NewCatalogRoutesManager(logger, sm.CatalogService, cfg),
		configuratorRoutes: configurator.NewConfiguratorRoutesManager(logger, sm.ConfiguratorService, sm.CatalogService, sm.PDFService, cfg),
		leadRoutes:         leads.NewLeadRoutesManager(logger, sm.LeadService, cfg),
		healthRoutes:       health.NewHealthRoutesManager(sm.HealthService, sm.CacheService),
		authRoutes:         auth.NewAuthRoutesManager(logger, sm.AuthService, sm.CacheService, cfg),
		adminRoutes:        admin.NewAdminRoutesManager(logger, sm.LeadService, sm.CatalogService, mw),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.catalogRoutes.RegisterRoutes(r)
	rm.configuratorRoutes.RegisterRoutes(r)
	rm.leadRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
}
