package structs

// LeadRequest is the lead-capture payload the configurator frontend submits
// alongside the current configuration snapshot.
type LeadRequest struct {
	Name         string         `json:"name" validate:"required,min=2,max=100"`
	Email        string         `json:"email" validate:"required,email"`
	Phone        string         `json:"phone" validate:"omitempty,min=7,max=20"`
	Message      string         `json:"message" validate:"omitempty,max=1000"`
	HotTubModel  string         `json:"hottubModel"`
	HotTubConfig *Configuration `json:"hottubConfig,omitempty"`
	ConfigLink   string         `json:"configLink,omitempty"`
	Locale       string         `json:"locale,omitempty"`
	TotalPrice   string         `json:"totalPrice,omitempty"`
}
