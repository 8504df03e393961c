package entities

import "time"

type OBD2Scan struct {
	ExtractedCodes []string   `json:"extractedCodes,omitempty"`
	CriticalCodes  []string   `json:"criticalCodes,omitempty"`
	ScannedAt      *time.Time `json:"scannedAt,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusDeclined QuoteStatus = "declined"
)

// Quote is the purchase offer prepared for the seller.
type Quote struct {
	ID          string      `json:"id,omitempty"`
	OfferAmount *float64    `json:"offerAmount,omitempty"`
	Status      QuoteStatus `json:"status,omitempty"`
	ValidUntil  *time.Time  `json:"validUntil,omitempty"`
	OBD2Scan    *OBD2Scan   `json:"obd2Scan,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	PreparedBy  string      `json:"preparedBy,omitempty"`
	CreatedAt   *time.Time  `json:"createdAt,omitempty"`
}
