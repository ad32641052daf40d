// Package domain holds DTOs for distribution http and service contracts
package domain

// DistributeInput is one inbound routing request from a source channel
// at least one identity field must be present
type DistributeInput struct {
	ExternalID string `json:"external_id,omitempty" validate:"omitempty,min=1,max=200" example:"crm-91422"`
	Phone      string `json:"phone,omitempty" validate:"omitempty,min=3,max=32" example:"+15550100"`
	Email      string `json:"email,omitempty" validate:"omitempty,email,max=200" example:"lead@example.com"`
	SourceKey  string `json:"source_key" validate:"required,min=1,max=200" example:"bot-landing-1"`
}

// DistributeOutput is the routing decision for one request
// OperatorID is nil when the lead parked as pending
type DistributeOutput struct {
	LeadID       int64  `json:"lead_id" example:"101"`
	AssignmentID int64  `json:"assignment_id" example:"2001"`
	OperatorID   *int64 `json:"operator_id,omitempty" example:"7"`
	Status       string `json:"status" example:"active"`
}

// RedistributeInput optionally narrows the sweep to one source
type RedistributeInput struct {
	SourceID *int64 `json:"source_id,omitempty" validate:"omitempty,min=1" example:"3"`
}

// RedistributeOutput reports one sweep run
type RedistributeOutput struct {
	SweepID       string `json:"sweep_id" example:"0d9af5f2-9e3c-4df1-8a45-1f1f6f2a9b10"`
	Redistributed int    `json:"redistributed_count" example:"4"`
	TotalPending  int    `json:"total_pending_count" example:"9"`
}

// AssignmentStatus values for lead_assignments
const (
	StatusActive  = "active"
	StatusPending = "pending"
)
