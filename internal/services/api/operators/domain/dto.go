// Package domain holds DTOs for operators http and service contracts
package domain

// CreateInput is the payload for registering an operator
type CreateInput struct {
	Name     string `json:"name" validate:"required,min=1,max=200" example:"Alice"`
	Email    string `json:"email,omitempty" validate:"omitempty,email" example:"alice@example.com"`
	IsActive *bool  `json:"is_active,omitempty" example:"true"`
	MaxLoad  *int   `json:"max_load,omitempty" validate:"omitempty,min=0,max=10000" example:"10"`
}

// ListInput is the paged list query
type ListInput struct {
	Page     int   `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int   `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
	IsActive *bool `json:"is_active,omitempty" example:"true"`
}

// Operator is the wire representation of an operator row
type Operator struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	IsActive  bool   `json:"is_active"`
	MaxLoad   int    `json:"max_load"`
	CreatedAt string `json:"created_at"`
}

// ListOutput carries one page of operators
type ListOutput struct {
	Items    []Operator `json:"items"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}
