package structs

// PricedOption is a selected option name with the price it was quoted at.
type PricedOption struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// AccessoryState is the selection flag plus quoted price of one accessory.
type AccessoryState struct {
	Selected bool    `json:"selected"`
	Price    float64 `json:"price"`
}

// DocumentDetails aggregates everything the PDF exporter renders. Prices are
// carried per line item so the exporter can recompute the grand total from
// the very rows it prints.
type DocumentDetails struct {
	ModelName        string                    `json:"modelName"`
	Collection       string                    `json:"collection"`
	ShellColorName   string                    `json:"shellColorName"`
	CabinetColorName string                    `json:"cabinetColorName"`
	Seating          string                    `json:"seating"`
	BasePrice        string                    `json:"basePrice"`
	TotalPrice       string                    `json:"totalPrice"`
	WaterCare        *PricedOption             `json:"waterCare,omitempty"`
	Entertainment    *PricedOption             `json:"entertainmentSystem,omitempty"`
	Control          *PricedOption             `json:"controlSystem,omitempty"`
	Accessories      map[string]AccessoryState `json:"accessories"`
	ServicePackage   *PricedOption             `json:"servicePackage,omitempty"`
	ConfigurationURL string                    `json:"configurationUrl,omitempty"`
}
