package structs

import "encoding/json"

// ShellColor is one selectable shell finish of a hot tub.
type ShellColor struct {
	Name             string `json:"name"`
	SelectorColorIMG string `json:"selectorColorIMG"`
	ShellIMG         string `json:"shellIMG"`
}

// CabinetColor is one selectable cabinet finish of a hot tub.
type CabinetColor struct {
	Color            string `json:"color"`
	SelectorColorIMG string `json:"selectorColorIMG"`
	CabinetIMG       string `json:"cabinetIMG"`
}

type Colors struct {
	ShellColors   []ShellColor   `json:"shellColors"`
	CabinetColors []CabinetColor `json:"cabinetColors"`
}

// Extra is a free-text marketing attribute (e.g. lounge seat flag) on a hot tub.
type Extra struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Value       string `json:"value"`
}

// Option is one priced choice within an option category of a hot tub.
type Option struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	IsDefault   bool    `json:"isDefault"`
}

// OptionCategory enumerates the option categories every hot tub may carry.
type OptionCategory string

const (
	CategoryWaterCare     OptionCategory = "waterCare"
	CategoryEntertainment OptionCategory = "entertainment"
	CategoryControl       OptionCategory = "control"
)

// KnownCategories lists the closed set of categories in catalog order.
var KnownCategories = []OptionCategory{CategoryWaterCare, CategoryEntertainment, CategoryControl}

// AdditionalOptions holds the three known option categories plus an open
// extension map for category keys future catalogs may introduce. The two are
// kept separate so known categories stay statically typed.
type AdditionalOptions struct {
	WaterCare     []Option
	Entertainment []Option
	Control       []Option
	Extended      map[string][]Option
}

// OptionsFor returns the option list for a category, known or extended.
// A missing category yields nil, which downstream pricing treats as empty.
func (ao *AdditionalOptions) OptionsFor(category OptionCategory) []Option {
	if ao == nil {
		return nil
	}
	switch category {
	case CategoryWaterCare:
		return ao.WaterCare
	case CategoryEntertainment:
		return ao.Entertainment
	case CategoryControl:
		return ao.Control
	default:
		return ao.Extended[string(category)]
	}
}

// UnmarshalJSON routes known category keys into their typed fields and every
// other key into the Extended map.
func (ao *AdditionalOptions) UnmarshalJSON(data []byte) error {
	raw := map[string][]Option{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ao.WaterCare = raw[string(CategoryWaterCare)]
	ao.Entertainment = raw[string(CategoryEntertainment)]
	ao.Control = raw[string(CategoryControl)]
	for key, options := range raw {
		switch OptionCategory(key) {
		case CategoryWaterCare, CategoryEntertainment, CategoryControl:
			continue
		}
		if ao.Extended == nil {
			ao.Extended = map[string][]Option{}
		}
		ao.Extended[key] = options
	}
	return nil
}

// MarshalJSON restores the flat category map shape of the catalog files.
func (ao AdditionalOptions) MarshalJSON() ([]byte, error) {
	raw := map[string][]Option{}
	if ao.WaterCare != nil {
		raw[string(CategoryWaterCare)] = ao.WaterCare
	}
	if ao.Entertainment != nil {
		raw[string(CategoryEntertainment)] = ao.Entertainment
	}
	if ao.Control != nil {
		raw[string(CategoryControl)] = ao.Control
	}
	for key, options := range ao.Extended {
		raw[key] = options
	}
	return json.Marshal(raw)
}

// ColorPair names a shell/cabinet combination a product does not allow.
// Catalog entries carry these declaratively instead of hardcoded rules.
type ColorPair struct {
	Shell   string `json:"shell"`
	Cabinet string `json:"cabinet"`
}

// HotTub is one configurable product in the catalog. BasePrice is kept as the
// display string the catalog ships ("12,500", "$12,500"); parsing happens in
// the pricing package.
type HotTub struct {
	ID                string             `json:"id"`
	Collection        string             `json:"collection"`
	Model             string             `json:"model"`
	BasePrice         string             `json:"price"`
	Colors            Colors             `json:"colors"`
	AdditionalOptions *AdditionalOptions `json:"additionalOptions,omitempty"`
	Seating           string             `json:"seating"`
	Dimensions        string             `json:"dimensions"`
	Jets              string             `json:"jets"`
	WaterCare         string             `json:"watercare"`
	UserManualURL     string             `json:"usermanualURL"`
	Extras            []Extra            `json:"extras"`
	DisallowedPairs   []ColorPair        `json:"disallowedPairs,omitempty"`
}

// AllowsPair reports whether the shell/cabinet combination at the given
// indices is allowed. Out-of-range indices are allowed by definition; index
// validation is the caller's concern.
func (h *HotTub) AllowsPair(shellIndex, cabinetIndex int) bool {
	if h == nil || shellIndex < 0 || shellIndex >= len(h.Colors.ShellColors) ||
		cabinetIndex < 0 || cabinetIndex >= len(h.Colors.CabinetColors) {
		return true
	}
	shell := h.Colors.ShellColors[shellIndex].Name
	cabinet := h.Colors.CabinetColors[cabinetIndex].Color
	for _, pair := range h.DisallowedPairs {
		if pair.Shell == shell && pair.Cabinet == cabinet {
			return false
		}
	}
	return true
}

// Accessory is a catalog-wide add-on, not tied to a single hot tub.
type Accessory struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category,omitempty"`
}

// ServicePackage is an optional maintenance tier; selection is mutually
// exclusive with the "none" sentinel.
type ServicePackage struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	IsDefault   bool    `json:"isDefault,omitempty"`
}

// Catalog is the immutable per-locale reference data set. It is loaded once
// per locale and passed by reference; nothing mutates it after load.
type Catalog struct {
	HotTubes        []HotTub         `json:"hottubes"`
	Accessories     []Accessory      `json:"accessories"`
	ServicePackages []ServicePackage `json:"servicePackages"`
}

// HotTubByID returns the hot tub with the given id, or nil.
func (c *Catalog) HotTubByID(id string) *HotTub {
	if c == nil {
		return nil
	}
	for i := range c.HotTubes {
		if c.HotTubes[i].ID == id {
			return &c.HotTubes[i]
		}
	}
	return nil
}

// CatalogState tracks the per-locale load lifecycle of the catalog cache.
type CatalogState string

const (
	CatalogIdle    CatalogState = "idle"
	CatalogLoading CatalogState = "loading"
	CatalogReady   CatalogState = "ready"
	CatalogFailed  CatalogState = "failed"
)
