package usecase

import "context"

// BloodStock is the dashboard view of the registry: per-label donor counts
// and the overall total. Units carries every label present in the data
// (legacy labels included) with the canonical 8 zero-filled for display.
type BloodStock struct {
	Units map[string]int `json:"units"`
	Total int            `json:"total"`
}

// InventoryUsecase defines the interface for blood stock aggregation.
type InventoryUsecase interface {
	BloodStock(ctx context.Context) (*BloodStock, error)
}
