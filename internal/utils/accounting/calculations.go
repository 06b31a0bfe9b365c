package accounting

import (
	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MovementTotals sums inflows and outflows recorded against box.
func MovementTotals(movements []domain.Movement, box domain.BoxID) (inflow, outflow decimal.Decimal) {
	inflow, outflow = decimal.Zero, decimal.Zero
	for _, m := range movements {
		if m.Box != box {
			continue
		}
		switch m.Type {
		case domain.Inflow:
			inflow = inflow.Add(m.Amount)
		case domain.Outflow:
			outflow = outflow.Add(m.Amount)
		}
	}
	return inflow, outflow
}

// BoxBalance is initialFund + collectedCash + Σinflow − Σoutflow for box.
// Collected cash only contributes once it has been recorded at close.
func BoxBalance(shift domain.Shift, movements []domain.Movement, box domain.BoxID) decimal.Decimal {
	b, _ := shift.Box(box)
	inflow, outflow := MovementTotals(movements, box)

	balance := b.InitialFund
	if b.CollectedCash != nil {
		balance = balance.Add(*b.CollectedCash)
	}
	return balance.Add(inflow).Sub(outflow)
}

// Reconcile compares a declared breakdown with the expected amount.
// A mismatch is never accepted here; callers must call AcceptOverride explicitly.
func Reconcile(declared *domain.Breakdown, expected decimal.Decimal) domain.ReconciliationResult {
	total := declared.Sum()
	res := domain.ReconciliationResult{
		Status:     domain.ReconciliationAccepted,
		Declared:   total,
		Expected:   expected,
		Difference: decimal.Zero,
	}
	if declared.Matches(expected) {
		return res
	}

	diff := total.Sub(expected)
	res.Status = domain.ReconciliationMismatch
	res.Difference = diff.Abs()
	if diff.IsPositive() {
		res.Direction = domain.DirectionOver
	} else {
		res.Direction = domain.DirectionUnder
	}
	return res
}

// Summarize derives the closing report from a snapshot. It never mutates its inputs.
func Summarize(shift domain.Shift, movements []domain.Movement, incidents []domain.Incident) domain.ShiftSummary {
	summary := domain.ShiftSummary{
		ShiftID:       shift.ShiftID,
		Date:          shift.Date,
		Period:        shift.Period,
		CashierName:   shift.CashierName,
		Closed:        shift.Closed,
		ClosedAt:      shift.ClosedAt,
		Observations:  shift.Observations,
		Boxes:         make(map[domain.BoxID]domain.BoxSummary, len(domain.CashBoxes)),
		TotalBalance:  decimal.Zero,
		ProductDeltas: shift.ProductCounts.Deltas(),
		Incidents:     append([]domain.Incident{}, incidents...),
		MovementCount: len(movements),
	}

	for _, id := range domain.CashBoxes {
		b, _ := shift.Box(id)
		inflow, outflow := MovementTotals(movements, id)
		balance := BoxBalance(shift, movements, id)

		summary.Boxes[id] = domain.BoxSummary{
			Box:           id,
			InitialFund:   b.InitialFund,
			CollectedCash: b.CollectedCash,
			InflowTotal:   inflow,
			OutflowTotal:  outflow,
			Balance:       balance,
		}
		summary.TotalBalance = summary.TotalBalance.Add(balance)
	}
	return summary
}
