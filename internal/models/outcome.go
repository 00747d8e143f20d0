package models

// Fixed two-digit outcome codes returned for every authorization attempt.
const (
	CodeApproved          = "00"
	CodeInsufficientFunds = "51"
	CodeError             = "07"
)

// Outcome is the result of a single authorization attempt.
// It is produced once per request and becomes part of the transaction record.
type Outcome struct {
	Code    string `json:"code"`    // Outcome code: "00", "51" or "07"
	Message string `json:"message"` // Human-readable message including the failure detail, if any
}
