package api

import (
	"encoding/json"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/output"
	"github.com/rgehrsitz/sgfin/internal/report"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Field   string `json:"field,omitempty"`
}

type CalculatorDTO struct {
	ID     domain.CalculatorID `json:"id"`
	Title  string              `json:"title"`
	Fields []domain.InputField `json:"fields"`
}

// CalculateResponse carries the raw result together with its formatted
// fields so clients need no formatting logic of their own.
type CalculateResponse struct {
	Calculator domain.CalculatorID     `json:"calculator"`
	Title      string                  `json:"title"`
	Input      domain.Input            `json:"input"`
	Result     domain.Result           `json:"result"`
	Fields     []output.FormattedField `json:"fields"`
	Breakdown  []domain.BracketLine    `json:"breakdown,omitempty"`
	Headline   *output.FormattedField  `json:"headline,omitempty"`
}

// ValidateRequest accepts the value as a JSON number or string.
type ValidateRequest struct {
	Domain string          `json:"domain"`
	Value  json.RawMessage `json:"value"`
}

// ReportRejected is returned when a report fails its pre-delivery checks.
type ReportRejected struct {
	Error   string                   `json:"error"`
	Summary report.ValidationSummary `json:"summary"`
}
