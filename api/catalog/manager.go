package catalog

import (
	"mountspa_server/services"
	"mountspa_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CatalogRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	cfg            *structs.Config
}

func NewCatalogRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	cfg *structs.Config,
) *CatalogRoutesManager {
	return &CatalogRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		cfg:            cfg,
	}
}

func (cr *CatalogRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/catalog", func(r chi.Router) {
		r.Get("/", cr.GetCatalog)
		r.Get("/hottubes", cr.ListHotTubes)
		r.Get("/hottubes/{id}", cr.GetHotTub)
		r.Get("/meta", cr.GetCatalogMeta)
		r.Get("/accessories", cr.ListAccessories)
		r.Get("/service-packages", cr.ListServicePackages)
	})
}
