// Package domain declares the stats DTO shapes shared by http and service.
package domain

// LoadInput filters the operator load report
type LoadInput struct {
	IsActive *bool `json:"is_active,omitempty" example:"true"`
}

// BySourceInput asks for the assignment breakdown of one source
type BySourceInput struct {
	SourceID int64 `json:"source_id" validate:"required,min=1" example:"1"`
}

// OperatorLoad is one row of the load report
type OperatorLoad struct {
	OperatorID  int64   `json:"operator_id"`
	Name        string  `json:"name"`
	IsActive    bool    `json:"is_active"`
	Load        int     `json:"load"`
	MaxLoad     int     `json:"max_load"`
	LoadPercent float64 `json:"load_percent"`
}

// SourceBreakdown is one operator's share of a source's assignments
type SourceBreakdown struct {
	OperatorID *int64 `json:"operator_id,omitempty"`
	Name       string `json:"name,omitempty"`
	Active     int64  `json:"active"`
	Pending    int64  `json:"pending"`
	Completed  int64  `json:"completed"`
	Cancelled  int64  `json:"cancelled"`
}
