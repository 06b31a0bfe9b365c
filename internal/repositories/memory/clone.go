package memory

import (
	"maps"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
)

// Stored values never share maps or pointers with callers.

func cloneShift(s domain.Shift) domain.Shift {
	boxes := make(map[domain.BoxID]domain.Box, len(s.Boxes))
	for id, b := range s.Boxes {
		b.InitialFundBreakdown = b.InitialFundBreakdown.Clone()
		b.CollectedCashBreakdown = b.CollectedCashBreakdown.Clone()
		if b.CollectedCash != nil {
			cash := *b.CollectedCash
			b.CollectedCash = &cash
		}
		boxes[id] = b
	}
	s.Boxes = boxes
	s.ProductCounts = domain.ProductCounts{
		Opening: maps.Clone(s.ProductCounts.Opening),
		Closing: maps.Clone(s.ProductCounts.Closing),
	}
	if s.ClosedAt != nil {
		t := *s.ClosedAt
		s.ClosedAt = &t
	}
	if s.Observations != nil {
		obs := *s.Observations
		s.Observations = &obs
	}
	return s
}

func cloneMovement(m domain.Movement) domain.Movement {
	m.Breakdown = m.Breakdown.Clone()
	return m
}

func cloneIncident(i domain.Incident) domain.Incident {
	if i.CustomType != nil {
		ct := *i.CustomType
		i.CustomType = &ct
	}
	if i.Amount != nil {
		amount := *i.Amount
		i.Amount = &amount
	}
	return i
}
