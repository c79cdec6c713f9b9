package services

import (
	"context"
	"fmt"
	"mountspa_server/lib"
	"mountspa_server/pricing"
	"mountspa_server/structs"
	"net/url"

	"github.com/MonkyMars/gecho"
)

// ConfiguratorService turns raw configurations into priced quotes, share
// tokens and printable document details. It owns no state of its own; every
// call resolves the catalog snapshot for the requested locale first.
type ConfiguratorService struct {
	logger         *gecho.Logger
	config         *structs.Config
	catalogService *CatalogService
}

func NewConfiguratorService(logger *gecho.Logger, cfg *structs.Config, catalogService *CatalogService) *ConfiguratorService {
	return &ConfiguratorService{
		logger:         logger,
		config:         cfg,
		catalogService: catalogService,
	}
}

// Defaults returns the starting configuration for a hot tub
func (cs *ConfiguratorService) Defaults(ctx context.Context, locale, hottubID string) (structs.Configuration, error) {
	catalog := cs.catalogService.GetCatalog(ctx, locale)
	hottub := catalog.HotTubByID(hottubID)
	if hottub == nil {
		return structs.Configuration{}, fmt.Errorf("hot tub %q: %w", hottubID, lib.ErrNotFound)
	}
	return structs.DefaultConfiguration(hottub, catalog.Accessories), nil
}

// Quote prices a configuration against the locale's catalog. Disallowed
// shell/cabinet pairs are corrected to the first allowed shell before pricing,
// matching what the selector does on screen.
func (cs *ConfiguratorService) Quote(ctx context.Context, locale string, cfg structs.Configuration) (*structs.Quote, error) {
	catalog := cs.catalogService.GetCatalog(ctx, locale)
	hottub := catalog.HotTubByID(cfg.HotTubID)
	if hottub == nil {
		return nil, fmt.Errorf("hot tub %q: %w", cfg.HotTubID, lib.ErrNotFound)
	}

	adjusted := cs.adjustColors(hottub, &cfg)

	additional := pricing.AdditionalCost(hottub, &cfg, catalog.Accessories, catalog.ServicePackages)
	total := pricing.TotalPriceValue(hottub, &cfg, catalog.Accessories, catalog.ServicePackages)

	fin := cs.config.Financing
	estimate := pricing.Financing(total, fin.MonthlyRate, fin.TermMonths, fin.MaxLoan)

	quote := &structs.Quote{
		Configuration:  cfg,
		AdjustedColors: adjusted,
		BasePrice:      hottub.BasePrice,
		AdditionalCost: additional,
		TotalValue:     total,
		TotalDisplay:   pricing.FormatPrice(total),
		Lines:          cs.quotedLines(hottub, &cfg, catalog),
		Financing: structs.FinancingEstimate{
			MonthlyPayment: estimate.MonthlyPayment,
			UpfrontPayment: estimate.UpfrontPayment,
		},
	}

	return quote, nil
}

// adjustColors moves the shell selection to the first allowed shell when the
// current pair is disallowed. Returns true when a correction happened.
func (cs *ConfiguratorService) adjustColors(hottub *structs.HotTub, cfg *structs.Configuration) bool {
	if hottub.AllowsPair(cfg.ShellIndex, cfg.CabinetIndex) {
		return false
	}
	for i := range hottub.Colors.ShellColors {
		if hottub.AllowsPair(i, cfg.CabinetIndex) {
			cs.logger.Debug("Adjusted disallowed color pair",
				gecho.Field("hottub", hottub.ID),
				gecho.Field("from_shell", cfg.ShellIndex),
				gecho.Field("to_shell", i),
			)
			cfg.ShellIndex = i
			return true
		}
	}
	return false
}

func (cs *ConfiguratorService) quotedLines(hottub *structs.HotTub, cfg *structs.Configuration, catalog *structs.Catalog) []structs.QuotedLine {
	var lines []structs.QuotedLine

	for _, category := range structs.KnownCategories {
		selectedID := cfg.SelectedOptionID(category)
		if selectedID == "" {
			continue
		}
		for _, option := range hottub.AdditionalOptions.OptionsFor(category) {
			if option.ID == selectedID {
				lines = append(lines, structs.QuotedLine{
					Label: string(category),
					Name:  option.Name,
					Price: option.Price,
				})
				break
			}
		}
	}

	for _, accessory := range catalog.Accessories {
		if cfg.Accessories[accessory.ID] {
			lines = append(lines, structs.QuotedLine{
				Label: "accessory",
				Name:  accessory.Name,
				Price: accessory.Price,
			})
		}
	}

	if cfg.ServicePackage != "" && cfg.ServicePackage != structs.ServicePackageNone {
		for _, pkg := range catalog.ServicePackages {
			if pkg.ID == cfg.ServicePackage {
				lines = append(lines, structs.QuotedLine{
					Label: "servicePackage",
					Name:  pkg.Name,
					Price: pkg.Price,
				})
				break
			}
		}
	}

	return lines
}

// Share encodes a configuration into a token and the frontend deep link
// carrying it.
func (cs *ConfiguratorService) Share(ctx context.Context, locale string, cfg structs.Configuration) (*structs.ShareResponse, error) {
	catalog := cs.catalogService.GetCatalog(ctx, locale)
	if catalog.HotTubByID(cfg.HotTubID) == nil {
		return nil, fmt.Errorf("hot tub %q: %w", cfg.HotTubID, lib.ErrNotFound)
	}

	token, err := lib.EncodeConfiguration(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}

	shareURL := fmt.Sprintf("%s/configurator/%s?%s=%s",
		cs.config.Server.FrontendURL,
		url.PathEscape(cfg.HotTubID),
		lib.ShareQueryParam,
		url.QueryEscape(token),
	)

	return &structs.ShareResponse{Token: token, URL: shareURL}, nil
}

// Resolve rehydrates a configuration from a share token against the given hot
// tub. A bad token degrades to the default configuration; the returned error
// is one of the recoverable codec sentinels in that case.
func (cs *ConfiguratorService) Resolve(ctx context.Context, locale, hottubID, token string) (structs.Configuration, error) {
	catalog := cs.catalogService.GetCatalog(ctx, locale)
	hottub := catalog.HotTubByID(hottubID)
	if hottub == nil {
		return structs.Configuration{}, fmt.Errorf("hot tub %q: %w", hottubID, lib.ErrNotFound)
	}

	base := structs.DefaultConfiguration(hottub, catalog.Accessories)
	if token == "" {
		return base, nil
	}

	cfg, err := lib.DecodeConfiguration(token, hottub, base)
	if err != nil {
		cs.logger.Warn("Share token not applied",
			gecho.Field("hottub", hottubID),
			gecho.Field("error", err.Error()),
		)
	}
	return cfg, err
}

// BuildDocumentDetails assembles everything the PDF exporter renders for a
// configuration, with prices resolved per line item.
func (cs *ConfiguratorService) BuildDocumentDetails(ctx context.Context, locale string, cfg structs.Configuration) (*structs.DocumentDetails, error) {
	catalog := cs.catalogService.GetCatalog(ctx, locale)
	hottub := catalog.HotTubByID(cfg.HotTubID)
	if hottub == nil {
		return nil, fmt.Errorf("hot tub %q: %w", cfg.HotTubID, lib.ErrNotFound)
	}

	cs.adjustColors(hottub, &cfg)

	details := &structs.DocumentDetails{
		ModelName:   hottub.Model,
		Collection:  hottub.Collection,
		Seating:     hottub.Seating,
		BasePrice:   hottub.BasePrice,
		TotalPrice:  pricing.TotalPrice(hottub, &cfg, catalog.Accessories, catalog.ServicePackages),
		Accessories: map[string]structs.AccessoryState{},
	}

	if cfg.ShellIndex >= 0 && cfg.ShellIndex < len(hottub.Colors.ShellColors) {
		details.ShellColorName = hottub.Colors.ShellColors[cfg.ShellIndex].Name
	}
	if cfg.CabinetIndex >= 0 && cfg.CabinetIndex < len(hottub.Colors.CabinetColors) {
		details.CabinetColorName = hottub.Colors.CabinetColors[cfg.CabinetIndex].Color
	}

	details.WaterCare = cs.pricedOption(hottub, structs.CategoryWaterCare, cfg.WaterCareID)
	details.Entertainment = cs.pricedOption(hottub, structs.CategoryEntertainment, cfg.EntertainmentID)
	details.Control = cs.pricedOption(hottub, structs.CategoryControl, cfg.ControlID)

	for _, accessory := range catalog.Accessories {
		if cfg.Accessories[accessory.ID] {
			details.Accessories[accessory.Name] = structs.AccessoryState{
				Selected: true,
				Price:    accessory.Price,
			}
		}
	}

	if cfg.ServicePackage != "" && cfg.ServicePackage != structs.ServicePackageNone {
		for _, pkg := range catalog.ServicePackages {
			if pkg.ID == cfg.ServicePackage {
				details.ServicePackage = &structs.PricedOption{Name: pkg.Name, Price: pkg.Price}
				break
			}
		}
	}

	if share, err := cs.Share(ctx, locale, cfg); err == nil {
		details.ConfigurationURL = share.URL
	}

	return details, nil
}

func (cs *ConfiguratorService) pricedOption(hottub *structs.HotTub, category structs.OptionCategory, selectedID string) *structs.PricedOption {
	if selectedID == "" {
		return nil
	}
	for _, option := range hottub.AdditionalOptions.OptionsFor(category) {
		if option.ID == selectedID {
			return &structs.PricedOption{Name: option.Name, Price: option.Price}
		}
	}
	return nil
}
