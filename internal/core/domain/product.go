package domain

// ProductID identifies a counted stock item.
type ProductID string

const (
	ProductCoffeeSenior ProductID = "coffee-senior"
	ProductCigarsLarge  ProductID = "cigars-large"
	ProductCigarsSmall  ProductID = "cigars-small"
	ProductTobacco      ProductID = "tobacco"
)

// Products lists the counted items in display order.
var Products = []ProductID{ProductCoffeeSenior, ProductCigarsLarge, ProductCigarsSmall, ProductTobacco}

// IsValid reports whether p is a known product.
func (p ProductID) IsValid() bool {
	for _, known := range Products {
		if p == known {
			return true
		}
	}
	return false
}

// ProductCounts holds stock counts taken at opening and, once closed, at closing.
type ProductCounts struct {
	Opening map[ProductID]int `json:"opening"`
	Closing map[ProductID]int `json:"closing,omitempty"`
}

// Deltas returns closing minus opening per product. Nil until closing counts exist.
func (pc ProductCounts) Deltas() map[ProductID]int {
	if pc.Closing == nil {
		return nil
	}
	deltas := make(map[ProductID]int, len(Products))
	for _, p := range Products {
		closing, ok := pc.Closing[p]
		if !ok {
			continue
		}
		deltas[p] = closing - pc.Opening[p]
	}
	return deltas
}
