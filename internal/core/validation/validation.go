// Package validation holds the pure business rules checked before any write.
// Every rule accumulates all violations instead of stopping at the first.
package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/SscSPs/shift_cashbox_app/internal/apperrors"
	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day format used for shift dates.
const DateLayout = "2006-01-02"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func fieldValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Result is the outcome of a rule check.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func (r *Result) add(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Valid = false
}

// Merge appends the errors of other, prefixed with prefix when it is non-empty.
func (r *Result) Merge(other Result, prefix string) {
	for _, e := range other.Errors {
		if prefix != "" {
			e = prefix + ": " + e
		}
		r.add("%s", e)
	}
}

// Err converts a failed result into an *apperrors.ValidationError, nil when valid.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return apperrors.NewValidationError(r.Errors)
}

func ok() Result {
	return Result{Valid: true, Errors: []string{}}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateAmount fails for a missing or negative value. Zero is valid.
func ValidateAmount(value *decimal.Decimal, field string) Result {
	res := ok()
	if value == nil {
		res.add("%s is required", field)
		return res
	}
	if value.IsNegative() {
		res.add("%s cannot be negative", field)
	}
	return res
}

// ValidatePositiveAmount additionally requires the value to be greater than zero.
func ValidatePositiveAmount(value *decimal.Decimal, field string) Result {
	res := ValidateAmount(value, field)
	if !res.Valid {
		return res
	}
	if !value.IsPositive() {
		res.add("%s must be greater than zero", field)
	}
	return res
}

// BoxOpening is the opening state declared for one box.
type BoxOpening struct {
	InitialFund          *decimal.Decimal
	InitialFundBreakdown *domain.Breakdown
}

// ShiftStart is the data needed to open a shift.
type ShiftStart struct {
	Date          string
	Period        domain.ShiftPeriod
	CashierName   string
	CashierEmail  string
	Boxes         map[domain.BoxID]BoxOpening
	OpeningCounts map[domain.ProductID]int
}

// ValidateShiftStart checks the date, period, cashier and both box funds.
func ValidateShiftStart(data ShiftStart) Result {
	res := ok()

	if blank(data.Date) {
		res.add("date is required")
	} else if err := fieldValidator().Var(data.Date, "datetime="+DateLayout); err != nil {
		res.add("date must use the YYYY-MM-DD format")
	}

	if !data.Period.IsValid() {
		res.add("shift period must be one of: %s, %s", domain.PeriodMorning, domain.PeriodAfternoon)
	}

	if blank(data.CashierName) {
		res.add("cashier name is required")
	}
	if !blank(data.CashierEmail) {
		if err := fieldValidator().Var(data.CashierEmail, "email"); err != nil {
			res.add("cashier email is not a valid email address")
		}
	}

	for _, box := range domain.CashBoxes {
		opening, found := data.Boxes[box]
		if !found {
			res.add("%s: initial fund is required", box)
			continue
		}
		res.Merge(ValidateAmount(opening.InitialFund, "initial fund"), string(box))
		if opening.InitialFundBreakdown != nil {
			res.Merge(validateBreakdown(opening.InitialFundBreakdown, opening.InitialFund, "initial fund"), string(box))
		}
	}
	for id := range data.Boxes {
		if !id.IsCashBox() {
			res.add("unknown box %q", id)
		}
	}

	res.Merge(ValidateProductCounts(data.OpeningCounts, false), "opening counts")
	return res
}

// CanClose checks a shift still has what a close needs. Collected cash is checked by ValidateClose.
func CanClose(shift *domain.Shift) Result {
	res := ok()
	if shift == nil {
		res.add("shift is required")
		return res
	}
	for _, id := range domain.CashBoxes {
		box, found := shift.Box(id)
		if !found {
			res.add("%s: initial fund is required", id)
			continue
		}
		fund := box.InitialFund
		res.Merge(ValidateAmount(&fund, "initial fund"), string(id))
	}
	return res
}

// ValidateClose requires a valid collected-cash value for every box of an open shift.
func ValidateClose(shift *domain.Shift, collectedCashByBox map[domain.BoxID]*decimal.Decimal) Result {
	res := ok()
	if shift == nil {
		res.add("shift is required")
		return res
	}
	if shift.Closed {
		res.add("shift is already closed")
	}
	for _, id := range domain.CashBoxes {
		res.Merge(ValidateAmount(collectedCashByBox[id], "collected cash"), string(id))
	}
	for id := range collectedCashByBox {
		if !id.IsCashBox() {
			res.add("unknown box %q", id)
		}
	}
	return res
}

// ValidateBreakdown reports unknown denominations and negative counts.
func ValidateBreakdown(b *domain.Breakdown) Result {
	return validateBreakdown(b, nil, "")
}

// ValidateProductCounts rejects unknown products and negative counts. With requireAll,
// every product must be present.
func ValidateProductCounts(counts map[domain.ProductID]int, requireAll bool) Result {
	res := ok()
	for p, n := range counts {
		if !p.IsValid() {
			res.add("unknown product %q", p)
			continue
		}
		if n < 0 {
			res.add("%s count cannot be negative", p)
		}
	}
	if requireAll {
		for _, p := range domain.Products {
			if _, found := counts[p]; !found {
				res.add("%s count is required", p)
			}
		}
	}
	return res
}

// MovementData is a movement as submitted, before it is stored.
type MovementData struct {
	ShiftID   string
	Box       domain.BoxID
	Type      domain.MovementType
	Amount    *decimal.Decimal
	Reason    string
	Breakdown *domain.Breakdown
}

// ValidateMovement checks the shift reference, box, type, amount, reason and optional breakdown.
func ValidateMovement(m MovementData) Result {
	res := ok()
	if blank(m.ShiftID) {
		res.add("shift id is required")
	}
	if !m.Box.IsCashBox() {
		res.add("box must be one of: %s, %s", domain.BoxCounter, domain.BoxGamingDesk)
	}
	if !m.Type.IsValid() {
		res.add("movement type must be one of: %s, %s", domain.Inflow, domain.Outflow)
	}
	amount := ValidatePositiveAmount(m.Amount, "amount")
	res.Merge(amount, "")
	if blank(m.Reason) {
		res.add("reason is required")
	}
	if m.Breakdown != nil {
		// The total can only be compared against an amount that is itself valid.
		target := m.Amount
		if !amount.Valid {
			target = nil
		}
		res.Merge(validateBreakdown(m.Breakdown, target, "amount"), "")
	}
	return res
}

// IncidentData is an incident as submitted, before it is stored.
type IncidentData struct {
	ShiftID     string
	Type        domain.IncidentType
	CustomType  *string
	Box         domain.BoxID
	Description string
	Amount      *decimal.Decimal
}

// ValidateIncident checks the shift reference, type, box, description and optional amount.
func ValidateIncident(i IncidentData) Result {
	res := ok()
	if blank(i.ShiftID) {
		res.add("shift id is required")
	}
	if blank(string(i.Type)) {
		res.add("incident type is required")
	} else if i.Type == domain.IncidentOther && (i.CustomType == nil || blank(*i.CustomType)) {
		res.add("custom type is required when the incident type is %s", domain.IncidentOther)
	}
	if !i.Box.IsIncidentBox() {
		res.add("box must be one of: %s, %s, %s", domain.BoxCounter, domain.BoxGamingDesk, domain.BoxOther)
	}
	if blank(i.Description) {
		res.add("description is required")
	}
	if i.Amount != nil {
		res.Merge(ValidatePositiveAmount(i.Amount, "amount"), "")
	}
	return res
}

func validateBreakdown(b *domain.Breakdown, amount *decimal.Decimal, field string) Result {
	res := ok()
	for _, p := range b.Problems() {
		res.add("breakdown: %s", p)
	}
	if amount != nil && !b.Matches(*amount) {
		res.add("breakdown total %s does not match %s %s", b.Sum().StringFixed(2), field, amount.StringFixed(2))
	}
	return res
}
