package services

import (
	"mountspa_server/database"
	"mountspa_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService         *AuthService
	EmailService        *EmailService
	CacheService        *CacheService
	HealthService       *HealthService
	CatalogService      *CatalogService
	ConfiguratorService *ConfiguratorService
	PDFService          *PDFService
	LeadService         *LeadService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	authService := NewAuthService(cfg, logger, db)
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db)
	catalogService := NewCatalogService(logger, cfg, cacheService)
	configuratorService := NewConfiguratorService(logger, cfg, catalogService)
	pdfService := NewPDFService(logger, cfg)
	leadService := NewLeadService(logger, db, emailService)

	return &ServiceManager{
		AuthService:         authService,
		EmailService:        emailService,
		CacheService:        cacheService,
		HealthService:       healthService,
		CatalogService:      catalogService,
		ConfiguratorService: configuratorService,
		PDFService:          pdfService,
		LeadService:         leadService,
	}
}
