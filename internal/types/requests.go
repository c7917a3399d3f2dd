package types

import (
	"github.com/go-playground/validator/v10"
)

// GiftInput is a single gift record as submitted to the enrich API, with the
// date still in string form. Parsing and validation happen in ingestion.
type GiftInput struct {
	DonorID      string  `json:"donor_id" validate:"required"`
	DonorSegment string  `json:"donor_segment"`
	DonorName    string  `json:"donor_full_name"`
	DonorCountry string  `json:"donor_country"`
	DonorState   string  `json:"donor_state"`
	DonorCity    string  `json:"donor_city"`
	DonorZip     string  `json:"donor_zip"`
	GiftID       string  `json:"gift_id" validate:"required"`
	GiftDate     string  `json:"gift_date" validate:"required"`
	GiftAmount   float64 `json:"gift_amount"`
	Channel      string  `json:"channel"`
	CampaignName string  `json:"campaign_name"`
	Fund         string  `json:"fund_designation"`
	GiftType     string  `json:"gift_type"`
}

// EnrichRequest is the request body for POST /enrich.
type EnrichRequest struct {
	Mode  Mode        `json:"mode" validate:"required,oneof=discrete continuous"`
	AsOf  string      `json:"as_of,omitempty"`
	Gifts []GiftInput `json:"gifts" validate:"required,min=1,dive"`
}

// Validate validates the EnrichRequest using the validator.
func (r *EnrichRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// TokenRequest is the request body for POST /auth/token.
type TokenRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

// Validate validates the TokenRequest using the validator.
func (r *TokenRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
