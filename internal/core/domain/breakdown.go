package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DenominationKind groups denominations for display.
type DenominationKind string

const (
	Bill DenominationKind = "bill"
	Coin DenominationKind = "coin"
)

// Denomination is one entry of the fixed currency table.
type Denomination struct {
	Key   string           `json:"key"`
	Value decimal.Decimal  `json:"value"`
	Label string           `json:"label"`
	Kind  DenominationKind `json:"kind"`
}

// BreakdownTolerance absorbs decimal rounding when comparing totals. It is not business slack.
var BreakdownTolerance = decimal.NewFromFloat(0.01)

// NoBreakdown is the display text for an absent or all-zero breakdown.
const NoBreakdown = "no breakdown"

// Denominations is ordered bills descending, then coins descending.
var Denominations = []Denomination{
	{Key: "2000", Value: decimal.NewFromInt(2000), Label: "$2000", Kind: Bill},
	{Key: "1000", Value: decimal.NewFromInt(1000), Label: "$1000", Kind: Bill},
	{Key: "500", Value: decimal.NewFromInt(500), Label: "$500", Kind: Bill},
	{Key: "200", Value: decimal.NewFromInt(200), Label: "$200", Kind: Bill},
	{Key: "100", Value: decimal.NewFromInt(100), Label: "$100", Kind: Bill},
	{Key: "50", Value: decimal.NewFromInt(50), Label: "$50", Kind: Bill},
	{Key: "20", Value: decimal.NewFromInt(20), Label: "$20", Kind: Bill},
	{Key: "coin_50", Value: decimal.NewFromInt(50), Label: "$50 (coin)", Kind: Coin},
	{Key: "coin_10", Value: decimal.NewFromInt(10), Label: "$10 (coin)", Kind: Coin},
	{Key: "coin_5", Value: decimal.NewFromInt(5), Label: "$5 (coin)", Kind: Coin},
	{Key: "coin_2", Value: decimal.NewFromInt(2), Label: "$2 (coin)", Kind: Coin},
	{Key: "coin_1", Value: decimal.NewFromInt(1), Label: "$1 (coin)", Kind: Coin},
}

var denominationIndex = func() map[string]Denomination {
	idx := make(map[string]Denomination, len(Denominations))
	for _, d := range Denominations {
		idx[d.Key] = d
	}
	return idx
}()

// DenominationByKey looks up a denomination in the fixed table.
func DenominationByKey(key string) (Denomination, bool) {
	d, ok := denominationIndex[key]
	return d, ok
}

// Breakdown counts physical cash per denomination key.
// Total is a cache of Sum() and is recomputed on every mutation and on decode.
type Breakdown struct {
	Counts map[string]int
	Total  decimal.Decimal
}

// EmptyBreakdown returns a breakdown with every denomination at zero.
func EmptyBreakdown() *Breakdown {
	counts := make(map[string]int, len(Denominations))
	for _, d := range Denominations {
		counts[d.Key] = 0
	}
	return &Breakdown{Counts: counts, Total: decimal.Zero}
}

// NewBreakdown builds a breakdown from the given counts and computes its total.
func NewBreakdown(counts map[string]int) *Breakdown {
	b := EmptyBreakdown()
	for k, v := range counts {
		b.Counts[k] = v
	}
	b.recompute()
	return b
}

// Clone returns an independent copy, nil for nil.
func (b *Breakdown) Clone() *Breakdown {
	if b == nil {
		return nil
	}
	return NewBreakdown(b.Counts)
}

// Sum is Σ count × face value over the denomination table. Unknown keys are ignored.
func (b *Breakdown) Sum() decimal.Decimal {
	if b == nil {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, d := range Denominations {
		if n := b.Counts[d.Key]; n != 0 {
			total = total.Add(d.Value.Mul(decimal.NewFromInt(int64(n))))
		}
	}
	return total
}

// Set changes the count for a denomination and refreshes the cached total.
func (b *Breakdown) Set(key string, count int) error {
	if _, ok := denominationIndex[key]; !ok {
		return fmt.Errorf("unknown denomination %q", key)
	}
	if count < 0 {
		return fmt.Errorf("count for %s cannot be negative", key)
	}
	if b.Counts == nil {
		b.Counts = make(map[string]int, len(Denominations))
	}
	b.Counts[key] = count
	b.recompute()
	return nil
}

// Matches reports whether the breakdown total equals expected within BreakdownTolerance.
func (b *Breakdown) Matches(expected decimal.Decimal) bool {
	return b.Sum().Sub(expected).Abs().LessThan(BreakdownTolerance)
}

// IsEmpty is true for a nil breakdown or one where every count is zero.
func (b *Breakdown) IsEmpty() bool {
	if b == nil {
		return true
	}
	for _, n := range b.Counts {
		if n != 0 {
			return false
		}
	}
	return true
}

// Problems lists unknown denomination keys and negative counts.
func (b *Breakdown) Problems() []string {
	if b == nil {
		return nil
	}
	var problems []string
	for key, n := range b.Counts {
		if _, ok := denominationIndex[key]; !ok {
			problems = append(problems, fmt.Sprintf("unknown denomination %q", key))
			continue
		}
		if n < 0 {
			problems = append(problems, fmt.Sprintf("count for %s cannot be negative", denominationIndex[key].Label))
		}
	}
	return problems
}

// Format renders "label: count" pairs in table order, skipping zero counts.
func (b *Breakdown) Format() string {
	if b.IsEmpty() {
		return NoBreakdown
	}
	parts := make([]string, 0, len(Denominations))
	for _, d := range Denominations {
		if n := b.Counts[d.Key]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", d.Label, n))
		}
	}
	if len(parts) == 0 {
		return NoBreakdown
	}
	return strings.Join(parts, ", ")
}

// Bills returns the non-zero bill counts in table order.
func (b *Breakdown) Bills() []DenominationCount {
	return b.byKind(Bill)
}

// Coins returns the non-zero coin counts in table order.
func (b *Breakdown) Coins() []DenominationCount {
	return b.byKind(Coin)
}

// DenominationCount pairs a denomination with its count and subtotal.
type DenominationCount struct {
	Denomination Denomination    `json:"denomination"`
	Count        int             `json:"count"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

func (b *Breakdown) byKind(kind DenominationKind) []DenominationCount {
	if b == nil {
		return nil
	}
	var out []DenominationCount
	for _, d := range Denominations {
		if d.Kind != kind {
			continue
		}
		if n := b.Counts[d.Key]; n > 0 {
			out = append(out, DenominationCount{
				Denomination: d,
				Count:        n,
				Subtotal:     d.Value.Mul(decimal.NewFromInt(int64(n))),
			})
		}
	}
	return out
}

func (b *Breakdown) recompute() {
	b.Total = b.Sum()
}

type breakdownJSON struct {
	Counts map[string]int  `json:"counts"`
	Total  decimal.Decimal `json:"total"`
}

// MarshalJSON writes counts alongside the freshly computed total.
func (b Breakdown) MarshalJSON() ([]byte, error) {
	return json.Marshal(breakdownJSON{Counts: b.Counts, Total: b.Sum()})
}

// UnmarshalJSON ignores any incoming total and derives it from the counts.
func (b *Breakdown) UnmarshalJSON(data []byte) error {
	var raw breakdownJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Counts = raw.Counts
	if b.Counts == nil {
		b.Counts = map[string]int{}
	}
	b.recompute()
	return nil
}
