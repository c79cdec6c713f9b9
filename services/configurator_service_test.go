package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mountspa_server/lib"
	"mountspa_server/structs"

	"github.com/MonkyMars/gecho"
)

func fixtureCatalog() *structs.Catalog {
	return &structs.Catalog{
		HotTubes: []structs.HotTub{
			{
				ID:         "utopia-monarch",
				Collection: "Utopia",
				Model:      "Monarch",
				BasePrice:  "45,000",
				Seating:    "6 Adults",
				Colors: structs.Colors{
					ShellColors: []structs.ShellColor{
						{Name: "Platinum"}, {Name: "Alpine White"},
					},
					CabinetColors: []structs.CabinetColor{
						{Color: "Parchment"}, {Color: "Java"},
					},
				},
				AdditionalOptions: &structs.AdditionalOptions{
					WaterCare: []structs.Option{
						{ID: "ozone", Name: "Ozone System", Price: 0, IsDefault: true},
						{ID: "freshwater-salt", Name: "FreshWater Salt System", Price: 3500},
					},
					Control: []structs.Option{
						{ID: "smart-control", Name: "Smart Control", Price: 1800},
					},
				},
				DisallowedPairs: []structs.ColorPair{
					{Shell: "Platinum", Cabinet: "Parchment"},
				},
			},
		},
		Accessories: []structs.Accessory{
			{ID: "cover-lifter", Name: "Cover Lifter", Price: 1200},
		},
		ServicePackages: []structs.ServicePackage{
			{ID: "premium-care", Name: "Premium Care", Price: 2400},
		},
	}
}

// testConfiguratorService wires a configurator over a preloaded catalog
// snapshot so no HTTP or Redis round trips happen.
func testConfiguratorService(catalog *structs.Catalog) *ConfiguratorService {
	logger := gecho.NewDefaultLogger()
	cfg := &structs.Config{
		Server: &structs.ServerConfig{
			FrontendURL: "https://mountspa.pl",
		},
		Catalog: &structs.CatalogConfig{
			DefaultLocale:  "pl",
			FallbackLocale: "en",
			FetchTimeout:   time.Second,
		},
		Financing: &structs.FinancingConfig{
			MonthlyRate: 0.005,
			TermMonths:  36,
			MaxLoan:     50000,
		},
	}
	catalogService := &CatalogService{
		logger: logger,
		config: cfg,
		snapshots: map[string]*catalogEntry{
			"pl": {state: structs.CatalogReady, catalog: catalog, loadedAt: time.Now()},
		},
	}
	return NewConfiguratorService(logger, cfg, catalogService)
}

func TestDefaults(t *testing.T) {
	cs := testConfiguratorService(fixtureCatalog())

	cfg, err := cs.Defaults(context.Background(), "pl", "utopia-monarch")
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	if cfg.WaterCareID != "ozone" {
		t.Fatalf("WaterCareID = %q, want the catalog default", cfg.WaterCareID)
	}
	if cfg.ServicePackage != structs.ServicePackageNone {
		t.Fatalf("ServicePackage = %q, want none", cfg.ServicePackage)
	}
	if selected, ok := cfg.Accessories["cover-lifter"]; !ok || selected {
		t.Fatal("accessories must be present and unselected by default")
	}

	if _, err := cs.Defaults(context.Background(), "pl", "missing"); !lib.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestQuote_PricesAndFinancing(t *testing.T) {
	cs := testConfiguratorService(fixtureCatalog())

	quote, err := cs.Quote(context.Background(), "pl", structs.Configuration{
		HotTubID:       "utopia-monarch",
		ShellIndex:     1,
		CabinetIndex:   0,
		WaterCareID:    "freshwater-salt",
		ControlID:      "smart-control",
		Accessories:    map[string]bool{"cover-lifter": true},
		ServicePackage: "premium-care",
	})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}

	// 3500 + 1800 + 1200 + 2400 over the 45000 base.
	if quote.AdditionalCost != 8900 {
		t.Fatalf("AdditionalCost = %v, want 8900", quote.AdditionalCost)
	}
	if quote.TotalValue != 53900 {
		t.Fatalf("TotalValue = %v, want 53900", quote.TotalValue)
	}
	if quote.TotalDisplay != "53 900 zł brutto" {
		t.Fatalf("TotalDisplay = %q", quote.TotalDisplay)
	}
	if quote.AdjustedColors {
		t.Fatal("allowed pair must not be adjusted")
	}
	if len(quote.Lines) != 4 {
		t.Fatalf("Lines = %d entries, want 4", len(quote.Lines))
	}
	// 3900 above the loan cap is due upfront.
	if quote.Financing.UpfrontPayment != 3900 {
		t.Fatalf("UpfrontPayment = %v, want 3900", quote.Financing.UpfrontPayment)
	}
	if quote.Financing.MonthlyPayment <= 0 {
		t.Fatalf("MonthlyPayment = %v, want positive", quote.Financing.MonthlyPayment)
	}
}

func TestQuote_AdjustsDisallowedPair(t *testing.T) {
	cs := testConfiguratorService(fixtureCatalog())

	quote, err := cs.Quote(context.Background(), "pl", structs.Configuration{
		HotTubID:     "utopia-monarch",
		ShellIndex:   0, // Platinum over Parchment is disallowed
		CabinetIndex: 0,
	})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if !quote.AdjustedColors {
		t.Fatal("disallowed pair must be flagged as adjusted")
	}
	if quote.Configuration.ShellIndex != 1 {
		t.Fatalf("ShellIndex = %d, want the first allowed shell", quote.Configuration.ShellIndex)
	}
}

func TestShareAndResolve_RoundTrip(t *testing.T) {
	cs := testConfiguratorService(fixtureCatalog())
	original := structs.Configuration{
		HotTubID:       "utopia-monarch",
		ShellIndex:     1,
		CabinetIndex:   1,
		WaterCareID:    "freshwater-salt",
		Accessories:    map[string]bool{"cover-lifter": true},
		ServicePackage: "premium-care",
	}

	share, err := cs.Share(context.Background(), "pl", original)
	if err != nil {
		t.Fatalf("Share: %v", err)
	}
	if !strings.HasPrefix(share.URL, "https://mountspa.pl/configurator/utopia-monarch?config=") {
		t.Fatalf("share URL = %q", share.URL)
	}

	resolved, err := cs.Resolve(context.Background(), "pl", "utopia-monarch", share.Token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.WaterCareID != "freshwater-salt" || !resolved.Accessories["cover-lifter"] {
		t.Fatalf("resolved = %+v, selections lost", resolved)
	}
}

func TestResolve_BadTokenFallsBackToDefaults(t *testing.T) {
	cs := testConfiguratorService(fixtureCatalog())

	resolved, err := cs.Resolve(context.Background(), "pl", "utopia-monarch", "@@@not-a-token@@@")
	if !errors.Is(err, lib.ErrMalformedConfigToken) {
		t.Fatalf("err = %v, want ErrMalformedConfigToken", err)
	}
	if resolved.WaterCareID != "ozone" {
		t.Fatalf("fallback must be the default configuration, got %+v", resolved)
	}
}

func TestBuildDocumentDetails(t *testing.T) {
	cs := testConfiguratorService(fixtureCatalog())

	details, err := cs.BuildDocumentDetails(context.Background(), "pl", structs.Configuration{
		HotTubID:       "utopia-monarch",
		ShellIndex:     1,
		CabinetIndex:   0,
		WaterCareID:    "freshwater-salt",
		Accessories:    map[string]bool{"cover-lifter": true},
		ServicePackage: "premium-care",
	})
	if err != nil {
		t.Fatalf("BuildDocumentDetails: %v", err)
	}

	if details.ModelName != "Monarch" || details.Collection != "Utopia" {
		t.Fatalf("model/collection = %q/%q", details.ModelName, details.Collection)
	}
	if details.ShellColorName != "Alpine White" || details.CabinetColorName != "Parchment" {
		t.Fatalf("colors = %q/%q", details.ShellColorName, details.CabinetColorName)
	}
	if details.WaterCare == nil || details.WaterCare.Price != 3500 {
		t.Fatalf("WaterCare = %+v", details.WaterCare)
	}
	if details.Control != nil {
		t.Fatal("unselected category must stay nil")
	}
	state, ok := details.Accessories["Cover Lifter"]
	if !ok || !state.Selected || state.Price != 1200 {
		t.Fatalf("Accessories = %+v", details.Accessories)
	}
	if details.ServicePackage == nil || details.ServicePackage.Name != "Premium Care" {
		t.Fatalf("ServicePackage = %+v", details.ServicePackage)
	}
	// 45000 + 3500 + 1200 + 2400
	if details.TotalPrice != "52 100 zł brutto" {
		t.Fatalf("TotalPrice = %q", details.TotalPrice)
	}
	if !strings.Contains(details.ConfigurationURL, "configurator/utopia-monarch") {
		t.Fatalf("ConfigurationURL = %q", details.ConfigurationURL)
	}
}
