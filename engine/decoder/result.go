package decoder

import (
	"github.com/WessleyAI/wessley-vin/engine/specs"
)

// Confidence grades how well the identity is supported.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Source tags where make and model came from.
type Source string

const (
	SourceAPI     Source = "api"
	SourcePattern Source = "pattern"
	SourceHybrid  Source = "hybrid"
)

// Result is the decoded identity of one VIN. Make and Model are "Unknown"
// when unresolved; Year and Trim are nil.
type Result struct {
	Year             *int       `json:"year"`
	Make             string     `json:"make"`
	Model            string     `json:"model"`
	Trim             *string    `json:"trim"`
	WMI              string     `json:"wmi"`
	YearPositionChar string     `json:"yearPositionChar"`
	Confidence       Confidence `json:"confidence"`
	Source           Source     `json:"source"`
}

// Identity is the record handed to persistence and display: the decode
// result plus the advisory specs and check-digit outcome.
type Identity struct {
	VIN string `json:"vin"`
	Result
	Specs           specs.Specs `json:"specs"`
	CheckDigitValid bool        `json:"checkDigitValid"`
}
