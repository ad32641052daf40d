// Package domain holds DTOs for sources http and service contracts
package domain

// CreateInput is the payload for registering a source
type CreateInput struct {
	Name  string `json:"name" validate:"required,min=1,max=200" example:"Landing bot"`
	BotID string `json:"bot_id" validate:"required,min=1,max=200" example:"landing_bot"`
}

// ListInput is the paged list query
type ListInput struct {
	Page     int `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize int `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}

// LinkInput attaches an operator to a source with a routing weight
type LinkInput struct {
	SourceID   int64 `json:"source_id" validate:"required,min=1" example:"1"`
	OperatorID int64 `json:"operator_id" validate:"required,min=1" example:"1"`
	Weight     *int  `json:"weight,omitempty" validate:"omitempty,min=0,max=10000" example:"10"`
}

// Source is the wire representation of a source row
type Source struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BotID     string `json:"bot_id"`
	CreatedAt string `json:"created_at"`
}

// Link is the wire representation of an operator-source link
type Link struct {
	ID         int64 `json:"id"`
	SourceID   int64 `json:"source_id"`
	OperatorID int64 `json:"operator_id"`
	Weight     int   `json:"weight"`
}

// ListOutput carries one page of sources
type ListOutput struct {
	Items    []Source `json:"items"`
	Total    int      `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
}
