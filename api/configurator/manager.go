package configurator

import (
	"mountspa_server/services"
	"mountspa_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ConfiguratorRoutesManager struct {
	logger              *gecho.Logger
	configuratorService *services.ConfiguratorService
	catalogService      *services.CatalogService
	pdfService          *services.PDFService
	cfg                 *structs.Config
}

func NewConfiguratorRoutesManager(
	logger *gecho.Logger,
	configuratorService *services.ConfiguratorService,
	catalogService *services.CatalogService,
	pdfService *services.PDFService,
	cfg *structs.Config,
) *ConfiguratorRoutesManager {
	return &ConfiguratorRoutesManager{
		logger:              logger,
		configuratorService: configuratorService,
		catalogService:      catalogService,
		pdfService:          pdfService,
		cfg:                 cfg,
	}
}

func (cr *ConfiguratorRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/configurator", func(r chi.Router) {
		r.Post("/quote", cr.HandleQuote)
		r.Post("/share", cr.HandleShare)
		r.Get("/share", cr.HandleResolveShare)
		r.Post("/document", cr.HandleDocument)
	})
}
