package model

// Vegetable is a sellable product with pricing and procurement state.
type Vegetable struct {
	ID                  string
	Name                string
	Unit                string
	MinPrice            float64
	MaxPrice            float64
	CurrentSellingPrice float64
	BuyPrice            *float64
	IsBought            bool
	BuyDate             *string
	RequiredQuantity    *float64
}

// Clone returns a copy with independent optional fields.
func (v Vegetable) Clone() Vegetable {
	if v.BuyPrice != nil {
		p := *v.BuyPrice
		v.BuyPrice = &p
	}
	if v.BuyDate != nil {
		d := *v.BuyDate
		v.BuyDate = &d
	}
	if v.RequiredQuantity != nil {
		q := *v.RequiredQuantity
		v.RequiredQuantity = &q
	}
	return v
}

// PriceBandDraft holds staged min/max edits awaiting confirmation.
type PriceBandDraft struct {
	VegetableID string
	MinPrice    *float64
	MaxPrice    *float64
}

// Apply merges the draft into vegetable. Unset or zero values keep the current band.
func (d PriceBandDraft) Apply(v *Vegetable) {
	if d.MinPrice != nil && *d.MinPrice != 0 {
		v.MinPrice = *d.MinPrice
	}
	if d.MaxPrice != nil && *d.MaxPrice != 0 {
		v.MaxPrice = *d.MaxPrice
	}
}

// Requirement is the aggregate quantity of one vegetable needed for a delivery date.
type Requirement struct {
	VegetableID string
	Name        string
	Unit        string
	Quantity    float64
}

// CalculateRequirements sums item quantities per vegetable across orders
// delivered on date that still require stock. Vegetables with no matching
// orders are absent from the result.
func CalculateRequirements(orders []Order, date string) map[string]float64 {
	result := make(map[string]float64)
	for _, order := range orders {
		if order.DeliveryDate != date || !order.Status.RequiresStock() {
			continue
		}
		for _, item := range order.Items {
			result[item.VegetableID] += item.Quantity
		}
	}
	return result
}
