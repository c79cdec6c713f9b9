package leads

import (
	"mountspa_server/services"
	"mountspa_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type LeadRoutesManager struct {
	logger      *gecho.Logger
	leadService *services.LeadService
	cfg         *structs.Config
}

func NewLeadRoutesManager(
	logger *gecho.Logger,
	leadService *services.LeadService,
	cfg *structs.Config,
) *LeadRoutesManager {
	return &LeadRoutesManager{
		logger:      logger,
		leadService: leadService,
		cfg:         cfg,
	}
}

func (lr *LeadRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/leads", lr.HandleCreateLead)
}
