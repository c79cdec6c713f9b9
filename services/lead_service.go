package services

import (
	"context"
	"fmt"
	"mountspa_server/database"
	"mountspa_server/lib"
	"mountspa_server/structs"
	"mountspa_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// LeadService stores configurator leads and notifies the sales inbox
type LeadService struct {
	logger       *gecho.Logger
	db           *database.DB
	emailService *EmailService
}

func NewLeadService(logger *gecho.Logger, db *database.DB, emailService *EmailService) *LeadService {
	return &LeadService{
		logger:       logger,
		db:           db,
		emailService: emailService,
	}
}

// Create persists a lead and sends the notification email. Email delivery is
// best effort; a stored lead with a failed notification is still a success.
func (ls *LeadService) Create(ctx context.Context, req *structs.LeadRequest) (*tables.Lead, error) {
	lead := &tables.Lead{
		Id:            uuid.New(),
		LeadNumber:    lib.GenerateLeadNumber(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Message:       req.Message,
		HotTubModel:   req.HotTubModel,
		Configuration: req.HotTubConfig,
		ConfigLink:    req.ConfigLink,
		Locale:        req.Locale,
		QuotedTotal:   req.TotalPrice,
		CreatedAt:     time.Now(),
	}

	err := database.WithRetry(ctx, func() error {
		_, err := ls.db.NewInsert().Model(lead).Exec(ctx)
		return err
	})
	if err != nil {
		ls.logger.Error("Failed to store lead",
			gecho.Field("lead_number", lead.LeadNumber),
			gecho.Field("error", err),
		)
		return nil, fmt.Errorf("failed to store lead: %w", lib.MapPgError(err))
	}

	ls.logger.Info("Lead stored",
		gecho.Field("lead_number", lead.LeadNumber),
		gecho.Field("model", lead.HotTubModel),
	)

	go func() {
		if err := ls.emailService.SendLeadNotification(lead); err != nil {
			ls.logger.Error("Failed to send lead notification",
				gecho.Field("lead_number", lead.LeadNumber),
				gecho.Field("error", err),
			)
		}
	}()

	return lead, nil
}

// List returns stored leads, newest first, with the total count for paging
func (ls *LeadService) List(ctx context.Context, limit, offset int) ([]tables.Lead, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}

	var leads []tables.Lead
	var total int

	err := database.WithRetry(ctx, func() error {
		var err error
		total, err = ls.db.NewSelect().
			Model(&leads).
			Order("created_at DESC").
			Limit(limit).
			Offset(offset).
			ScanAndCount(ctx)
		return err
	})
	if err != nil {
		ls.logger.Error("Failed to list leads", gecho.Field("error", err))
		return nil, 0, fmt.Errorf("failed to list leads: %w", lib.MapPgError(err))
	}

	return leads, total, nil
}
