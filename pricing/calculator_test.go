package pricing

import (
	"math"
	"testing"

	"mountspa_server/structs"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func fixtureHotTub() *structs.HotTub {
	return &structs.HotTub{
		ID:        "utopia-monarch",
		Model:     "Monarch",
		BasePrice: "45,000",
		AdditionalOptions: &structs.AdditionalOptions{
			WaterCare: []structs.Option{
				{ID: "freshwater-salt", Name: "FreshWater Salt System", Price: 3500},
				{ID: "ozone", Name: "Ozone System", Price: 0, IsDefault: true},
			},
			Entertainment: []structs.Option{
				{ID: "bluetooth-audio", Name: "Bluetooth Audio", Price: 4200},
			},
			Control: []structs.Option{
				{ID: "smart-control", Name: "Smart Control", Price: 1800},
			},
		},
	}
}

func fixtureAccessories() []structs.Accessory {
	return []structs.Accessory{
		{ID: "cover-lifter", Name: "Cover Lifter", Price: 1200},
		{ID: "steps", Name: "Steps", Price: 800},
	}
}

func fixturePackages() []structs.ServicePackage {
	return []structs.ServicePackage{
		{ID: "premium-care", Name: "Premium Care", Price: 2400},
	}
}

func TestAdditionalCost_AllSelections(t *testing.T) {
	cfg := &structs.Configuration{
		HotTubID:        "utopia-monarch",
		WaterCareID:     "freshwater-salt",
		EntertainmentID: "bluetooth-audio",
		ControlID:       "smart-control",
		Accessories:     map[string]bool{"cover-lifter": true, "steps": false},
		ServicePackage:  "premium-care",
	}

	cost := AdditionalCost(fixtureHotTub(), cfg, fixtureAccessories(), fixturePackages())

	// 3500 + 4200 + 1800 + 1200 + 2400
	nearlyEqual(t, "additionalCost", cost, 13100)
}

func TestAdditionalCost_DefaultsAreFree(t *testing.T) {
	cfg := &structs.Configuration{
		HotTubID:       "utopia-monarch",
		WaterCareID:    "ozone",
		Accessories:    map[string]bool{},
		ServicePackage: structs.ServicePackageNone,
	}

	cost := AdditionalCost(fixtureHotTub(), cfg, fixtureAccessories(), fixturePackages())

	nearlyEqual(t, "additionalCost", cost, 0)
}

func TestAdditionalCost_UnknownIDsContributeZero(t *testing.T) {
	cfg := &structs.Configuration{
		HotTubID:        "utopia-monarch",
		WaterCareID:     "retired-option",
		EntertainmentID: "bluetooth-audio",
		Accessories:     map[string]bool{"gone-accessory": true, "cover-lifter": true},
		ServicePackage:  "retired-package",
	}

	cost := AdditionalCost(fixtureHotTub(), cfg, fixtureAccessories(), fixturePackages())

	// Only bluetooth-audio and cover-lifter still exist.
	nearlyEqual(t, "additionalCost", cost, 5400)
}

func TestAdditionalCost_NilInputs(t *testing.T) {
	nearlyEqual(t, "nil hottub", AdditionalCost(nil, &structs.Configuration{}, nil, nil), 0)
	nearlyEqual(t, "nil config", AdditionalCost(fixtureHotTub(), nil, nil, nil), 0)

	bare := &structs.HotTub{ID: "bare", BasePrice: "10,000"}
	cfg := &structs.Configuration{HotTubID: "bare", WaterCareID: "anything"}
	nearlyEqual(t, "nil options", AdditionalCost(bare, cfg, nil, nil), 0)
}

func TestTotalPriceValue(t *testing.T) {
	cfg := &structs.Configuration{
		HotTubID:       "utopia-monarch",
		ControlID:      "smart-control",
		Accessories:    map[string]bool{},
		ServicePackage: structs.ServicePackageNone,
	}

	total := TotalPriceValue(fixtureHotTub(), cfg, fixtureAccessories(), fixturePackages())

	nearlyEqual(t, "total", total, 46800)
}

func TestTotalPrice_DisplayForm(t *testing.T) {
	cfg := &structs.Configuration{
		HotTubID:       "utopia-monarch",
		Accessories:    map[string]bool{},
		ServicePackage: structs.ServicePackageNone,
	}

	got := TotalPrice(fixtureHotTub(), cfg, nil, nil)
	if got != "45 000 zł brutto" {
		t.Fatalf("TotalPrice = %q, want %q", got, "45 000 zł brutto")
	}
}

func TestSelectedOptionName(t *testing.T) {
	hottub := fixtureHotTub()

	if got := SelectedOptionName(hottub, structs.CategoryWaterCare, "freshwater-salt"); got != "FreshWater Salt System" {
		t.Fatalf("SelectedOptionName = %q, want %q", got, "FreshWater Salt System")
	}
	if got := SelectedOptionName(hottub, structs.CategoryWaterCare, "missing"); got != "" {
		t.Fatalf("SelectedOptionName for unknown id = %q, want empty", got)
	}
	if got := SelectedOptionName(nil, structs.CategoryWaterCare, "freshwater-salt"); got != "" {
		t.Fatalf("SelectedOptionName for nil hottub = %q, want empty", got)
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"12,500", 12500},
		{"$12,500", 12500},
		{"45 000", 45000},
		{"45,000.50", 45000.50},
		{"-1,200", -1200},
		{"", 0},
		{"darmowy", 0},
	}
	for _, tc := range cases {
		nearlyEqual(t, "ParsePrice("+tc.input+")", ParsePrice(tc.input), tc.want)
	}
}

func TestGroupThousands(t *testing.T) {
	cases := []struct {
		input float64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1 000"},
		{45000, "45 000"},
		{1234567, "1 234 567"},
		{-45000, "-45 000"},
		{1250.5, "1 250.5"},
	}
	for _, tc := range cases {
		if got := GroupThousands(tc.input); got != tc.want {
			t.Fatalf("GroupThousands(%v) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
