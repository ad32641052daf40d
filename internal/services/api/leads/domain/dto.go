// Package domain holds DTOs for leads http and service contracts
package domain

// Assignment statuses an operator may set. A completed or cancelled
// assignment no longer counts toward the operator's load
const (
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ListInput is the paged lead list query
type ListInput struct {
	Page     int `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}

// SearchInput matches leads by a substring of any identity value
type SearchInput struct {
	Query    string `json:"query" validate:"required,min=1,max=200" example:"555"`
	Page     int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int    `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}

// AssignmentsInput is the paged assignment list query
type AssignmentsInput struct {
	Page     int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int    `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=active pending completed cancelled" example:"active"`
	SourceID *int64 `json:"source_id,omitempty" validate:"omitempty,min=1" example:"1"`
	Operator *int64 `json:"operator_id,omitempty" validate:"omitempty,min=1" example:"1"`
}

// StatusInput moves one assignment into a terminal status
type StatusInput struct {
	AssignmentID int64  `json:"assignment_id" validate:"required,min=1" example:"42"`
	Status       string `json:"status" validate:"required,oneof=completed cancelled" example:"completed"`
}

// Lead is the wire representation of a lead row
type Lead struct {
	ID         int64  `json:"id"`
	ExternalID string `json:"external_id,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// Assignment is the wire representation of an assignment row
type Assignment struct {
	ID         int64  `json:"id"`
	LeadID     int64  `json:"lead_id"`
	SourceID   int64  `json:"source_id"`
	OperatorID *int64 `json:"operator_id,omitempty"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

// ListOutput carries one page of leads
type ListOutput struct {
	Items    []Lead `json:"items"`
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// AssignmentsOutput carries one page of assignments
type AssignmentsOutput struct {
	Items    []Assignment `json:"items"`
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}
