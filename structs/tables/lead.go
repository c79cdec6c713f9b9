package tables

import (
	"time"

	"github.com/google/uuid"

	"mountspa_server/structs"
)

type Lead struct {
	// Table name and identifiers
	tableName  struct{}  `bun:"table:leads,alias:l"`
	Id         uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id" validate:"omitempty,uuid4"`
	LeadNumber string    `bun:"lead_number,notnull,unique" json:"lead_number" validate:"omitempty,min=8,max=50"`

	// Customer data
	Name    string `bun:"name,notnull" json:"name" validate:"required,min=2,max=100"`
	Email   string `bun:"email,notnull" json:"email" validate:"required,email"`
	Phone   string `bun:"phone" json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Message string `bun:"message" json:"message,omitempty" validate:"omitempty,max=1000"`

	// Configuration snapshot at submission time
	HotTubModel   string                 `bun:"hottub_model,notnull" json:"hottub_model"`
	Configuration *structs.Configuration `bun:"configuration,type:jsonb" json:"configuration,omitempty"`
	ConfigLink    string                 `bun:"config_link" json:"config_link,omitempty"`
	Locale        string                 `bun:"locale" json:"locale,omitempty"`
	QuotedTotal   string                 `bun:"quoted_total" json:"quoted_total,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
