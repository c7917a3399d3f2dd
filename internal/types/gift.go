// Package types provides type definitions for structured data used throughout the donor-rfm system.
package types

import (
	"time"
)

// Gift represents a single validated gift record from the donation log.
// Descriptive fields pass through the pipeline unmodified.
type Gift struct {
	DonorID      string    `json:"donor_id"`
	DonorSegment string    `json:"donor_segment"`
	DonorName    string    `json:"donor_full_name"`
	DonorCountry string    `json:"donor_country"`
	DonorState   string    `json:"donor_state"`
	DonorCity    string    `json:"donor_city"`
	DonorZip     string    `json:"donor_zip"`
	GiftID       string    `json:"gift_id"`
	GiftDate     time.Time `json:"gift_date"`
	GiftAmount   float64   `json:"gift_amount"`
	Channel      string    `json:"channel"`
	CampaignName string    `json:"campaign_name"`
	Fund         string    `json:"fund_designation"`
	GiftType     string    `json:"gift_type"`
}

// DonorAggregate holds the per-donor reduction of the gift log.
// One aggregate exists per distinct donor ID; it is immutable after construction.
type DonorAggregate struct {
	DonorID           string    `json:"donor_id"`
	LastGift          time.Time `json:"last_gift"`
	TotalGifts        int       `json:"total_gifts"`
	TotalAmount       float64   `json:"total_amount"`
	DaysSinceLastGift int       `json:"days_since_last_gift"`
}
