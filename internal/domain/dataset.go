package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// SchemaVersion is the only dataset envelope version this build understands.
const SchemaVersion = 1

// Dataset is the JSON envelope used for export and import. Participants and
// expenses are the only source of truth; balances and settlements are
// derived on demand and deliberately absent from the envelope.
type Dataset struct {
	SchemaVersion int            `json:"schemaVersion"`
	CurrencyCode  string         `json:"currencyCode"`
	Participants  []*Participant `json:"participants"`
	Expenses      []*Expense     `json:"expenses"`
}

var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidateCurrency checks that the code looks like an ISO 4217 alpha code.
// The system never does currency arithmetic; the code is stored and
// round-tripped only.
func ValidateCurrency(code string) error {
	if !currencyRegex.MatchString(strings.TrimSpace(code)) {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}

	return nil
}

// Validate performs the structural checks an import must pass before any of
// it reaches storage: known schema version, plausible currency code, unique
// ids, well-formed expenses, and no references to participants outside the
// envelope.
func (d *Dataset) Validate() error {
	if d.SchemaVersion != SchemaVersion {
		return fmt.Errorf("%w: got %d, want %d", ErrUnsupportedSchema, d.SchemaVersion, SchemaVersion)
	}

	if err := ValidateCurrency(d.CurrencyCode); err != nil {
		return err
	}

	known := make(map[string]bool, len(d.Participants))
	for _, p := range d.Participants {
		if p.ID == "" || strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: participant %q", ErrInvalidName, p.ID)
		}
		if known[p.ID] {
			return fmt.Errorf("%w: participant %s", ErrDuplicateID, p.ID)
		}
		known[p.ID] = true
	}

	seen := make(map[string]bool, len(d.Expenses))
	for _, e := range d.Expenses {
		if e.ID == "" || seen[e.ID] {
			return fmt.Errorf("%w: expense %s", ErrDuplicateID, e.ID)
		}
		seen[e.ID] = true

		if err := e.Validate(); err != nil {
			return fmt.Errorf("expense %s: %w", e.ID, err)
		}

		if !known[e.PayerID] {
			return fmt.Errorf("%w: expense %s payer %s", ErrDanglingReference, e.ID, e.PayerID)
		}
		for _, id := range e.ParticipantIDs {
			if !known[id] {
				return fmt.Errorf("%w: expense %s participant %s", ErrDanglingReference, e.ID, id)
			}
		}
	}

	return nil
}
