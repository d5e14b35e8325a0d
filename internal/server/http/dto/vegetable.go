package dto

import "github.com/polkiloo/vegdelivery/internal/domain/model"

// VegetableResponse describes a catalogue entry.
type VegetableResponse struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Unit                string   `json:"unit"`
	MinPrice            float64  `json:"minPrice"`
	MaxPrice            float64  `json:"maxPrice"`
	CurrentSellingPrice float64  `json:"currentSellingPrice"`
	BuyPrice            *float64 `json:"buyPrice,omitempty"`
	IsBought            bool     `json:"isBought"`
	BuyDate             *string  `json:"buyDate,omitempty"`
	RequiredQuantity    *float64 `json:"requiredQuantity,omitempty"`
}

// ProcurementRequest marks a vegetable bought or not.
type ProcurementRequest struct {
	IsBought bool   `json:"isBought"`
	BuyPrice Number `json:"buyPrice"`
}

// PriceRequest sets the selling price.
type PriceRequest struct {
	Price Number `json:"price"`
}

// PriceBandRequest stages min/max edits; omitted fields stay unstaged.
type PriceBandRequest struct {
	MinPrice *Number `json:"minPrice"`
	MaxPrice *Number `json:"maxPrice"`
}

// PriceBandResponse describes a staged min/max edit.
type PriceBandResponse struct {
	VegetableID string   `json:"vegetableId"`
	MinPrice    *float64 `json:"minPrice,omitempty"`
	MaxPrice    *float64 `json:"maxPrice,omitempty"`
}

// CommitResponse is returned after committing a staged price band.
type CommitResponse struct {
	Vegetable VegetableResponse `json:"vegetable"`
	Applied   bool              `json:"applied"`
}

// RequirementResponse is one row of the requirements report.
type RequirementResponse struct {
	VegetableID string  `json:"vegetableId"`
	Name        string  `json:"name,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Quantity    float64 `json:"quantity"`
}

// RequirementsResponse is the requirements report for one date.
type RequirementsResponse struct {
	Date  string                `json:"date"`
	Items []RequirementResponse `json:"items"`
}

// ManagerDashboardResponse holds manager counters.
type ManagerDashboardResponse struct {
	ReferenceDate    string  `json:"referenceDate"`
	PackedOrders     int     `json:"packedOrders"`
	TotalOrderValue  float64 `json:"totalOrderValue"`
	TotalVegRequired float64 `json:"totalVegRequired"`
}

// NewVegetableResponse converts model.Vegetable.
func NewVegetableResponse(v model.Vegetable) VegetableResponse {
	return VegetableResponse{
		ID:                  v.ID,
		Name:                v.Name,
		Unit:                v.Unit,
		MinPrice:            v.MinPrice,
		MaxPrice:            v.MaxPrice,
		CurrentSellingPrice: v.CurrentSellingPrice,
		BuyPrice:            v.BuyPrice,
		IsBought:            v.IsBought,
		BuyDate:             v.BuyDate,
		RequiredQuantity:    v.RequiredQuantity,
	}
}

// NewVegetableList converts a slice of vegetables.
func NewVegetableList(vegetables []model.Vegetable) []VegetableResponse {
	out := make([]VegetableResponse, 0, len(vegetables))
	for _, v := range vegetables {
		out = append(out, NewVegetableResponse(v))
	}
	return out
}

// NewPriceBandList converts staged drafts.
func NewPriceBandList(drafts []model.PriceBandDraft) []PriceBandResponse {
	out := make([]PriceBandResponse, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, PriceBandResponse{VegetableID: d.VegetableID, MinPrice: d.MinPrice, MaxPrice: d.MaxPrice})
	}
	return out
}

// NewRequirementsResponse converts a requirements report.
func NewRequirementsResponse(date string, rows []model.Requirement) RequirementsResponse {
	items := make([]RequirementResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, RequirementResponse{VegetableID: r.VegetableID, Name: r.Name, Unit: r.Unit, Quantity: r.Quantity})
	}
	return RequirementsResponse{Date: date, Items: items}
}
