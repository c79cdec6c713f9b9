package structs

// ServicePackageNone is the sentinel meaning no service package is selected.
const ServicePackageNone = "none"

// Configuration is one user's current set of selections for a hot tub. The
// JSON field names are the wire shape of the shareable token, so they must
// stay stable across releases or old links stop rehydrating.
type Configuration struct {
	HotTubID        string          `json:"hottubId"`
	ShellIndex      int             `json:"shellIndex"`
	CabinetIndex    int             `json:"cabinetIndex"`
	WaterCareID     string          `json:"waterCareId"`
	EntertainmentID string          `json:"entertainmentId"`
	ControlID       string          `json:"controlId"`
	Accessories     map[string]bool `json:"accessories"`
	ServicePackage  string          `json:"servicePackage"`
}

// SelectedOptionID returns the selected option id for a known category.
// Extended categories have no dedicated selection slot; they price as zero.
func (c *Configuration) SelectedOptionID(category OptionCategory) string {
	if c == nil {
		return ""
	}
	switch category {
	case CategoryWaterCare:
		return c.WaterCareID
	case CategoryEntertainment:
		return c.EntertainmentID
	case CategoryControl:
		return c.ControlID
	}
	return ""
}

// SetSelectedOptionID sets the selection slot for a known category.
func (c *Configuration) SetSelectedOptionID(category OptionCategory, id string) {
	switch category {
	case CategoryWaterCare:
		c.WaterCareID = id
	case CategoryEntertainment:
		c.EntertainmentID = id
	case CategoryControl:
		c.ControlID = id
	}
}

// DefaultConfiguration builds the configuration a fresh detail view starts
// from: indices 0, per-category default option ids where the catalog declares
// one, every known accessory unselected, no service package.
func DefaultConfiguration(hottub *HotTub, accessories []Accessory) Configuration {
	cfg := Configuration{
		Accessories:    map[string]bool{},
		ServicePackage: ServicePackageNone,
	}
	if hottub == nil {
		return cfg
	}
	cfg.HotTubID = hottub.ID
	for _, category := range KnownCategories {
		for _, option := range hottub.AdditionalOptions.OptionsFor(category) {
			if option.IsDefault {
				cfg.SetSelectedOptionID(category, option.ID)
				break
			}
		}
	}
	for _, accessory := range accessories {
		cfg.Accessories[accessory.ID] = false
	}
	return cfg
}
