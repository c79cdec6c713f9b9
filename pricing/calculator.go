// Package pricing computes the priced view of a hot-tub configuration: the
// incremental cost of the selected options over the base price, the resulting
// total, and the financing estimate. Everything here is pure; the catalog and
// configuration are passed in explicitly and never mutated.
package pricing

import (
	"math"
	"strconv"
	"strings"

	"mountspa_server/structs"
)

// DisplaySuffix is appended to formatted totals, matching the storefront.
const DisplaySuffix = "zł brutto"

// AdditionalCost sums the prices of every selection in cfg over the hot tub's
// base price. Unknown option ids, absent categories, accessories missing from
// the catalog and unknown service packages all contribute zero; stale shared
// links must price gracefully rather than fail.
func AdditionalCost(hottub *structs.HotTub, cfg *structs.Configuration, accessories []structs.Accessory, packages []structs.ServicePackage) float64 {
	if hottub == nil || cfg == nil {
		return 0
	}

	var cost float64

	for _, category := range structs.KnownCategories {
		selected := cfg.SelectedOptionID(category)
		if selected == "" {
			continue
		}
		for _, option := range hottub.AdditionalOptions.OptionsFor(category) {
			if option.ID == selected {
				cost += option.Price
				break
			}
		}
	}

	// Accessories are priced from the catalog side so that flags for
	// since-removed accessories are ignored, never guessed at.
	for _, accessory := range accessories {
		if cfg.Accessories[accessory.ID] {
			cost += accessory.Price
		}
	}

	if cfg.ServicePackage != structs.ServicePackageNone {
		for _, pkg := range packages {
			if pkg.ID == cfg.ServicePackage {
				cost += pkg.Price
				break
			}
		}
	}

	if cost < 0 {
		return 0
	}
	return cost
}

// TotalPriceValue returns base price plus additional cost as a raw number.
func TotalPriceValue(hottub *structs.HotTub, cfg *structs.Configuration, accessories []structs.Accessory, packages []structs.ServicePackage) float64 {
	if hottub == nil {
		return 0
	}
	return ParsePrice(hottub.BasePrice) + AdditionalCost(hottub, cfg, accessories, packages)
}

// TotalPrice returns the display form of TotalPriceValue, e.g. "45 800 zł brutto".
func TotalPrice(hottub *structs.HotTub, cfg *structs.Configuration, accessories []structs.Accessory, packages []structs.ServicePackage) string {
	return FormatPrice(TotalPriceValue(hottub, cfg, accessories, packages))
}

// SelectedOptionName resolves the display name of the selected option in a
// category, or "" when nothing matches.
func SelectedOptionName(hottub *structs.HotTub, category structs.OptionCategory, selectedID string) string {
	if hottub == nil || selectedID == "" {
		return ""
	}
	for _, option := range hottub.AdditionalOptions.OptionsFor(category) {
		if option.ID == selectedID {
			return option.Name
		}
	}
	return ""
}

// ParsePrice extracts the numeric value from a catalog price string, keeping
// only digits, the decimal point and a leading minus. "12,500" and "$12,500"
// both parse to 12500. Unparseable input yields 0, never NaN.
func ParsePrice(display string) float64 {
	var b strings.Builder
	for i, r := range display {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && i == 0:
			b.WriteRune(r)
		}
	}
	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// FormatPrice renders a value with space-grouped thousands and the currency
// suffix: 45000 -> "45 000 zł brutto".
func FormatPrice(value float64) string {
	return GroupThousands(value) + " " + DisplaySuffix
}

// GroupThousands formats a value with a plain space as the thousands
// separator. Fractions are rendered with two digits only when present.
func GroupThousands(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	text := strconv.FormatFloat(value, 'f', -1, 64)
	intPart := text
	fracPart := ""
	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		intPart = text[:dot]
		fracPart = text[dot:]
		if len(fracPart) > 3 {
			fracPart = fracPart[:3]
		}
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(digit)
	}
	b.WriteString(fracPart)
	return b.String()
}
