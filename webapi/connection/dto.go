package connection

import "github.com/google/uuid"

// ConnectInput is the request body for sending a connection request.
type ConnectInput struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// RespondInput is the request body for answering a pending request. Status
// is parsed case-insensitively; only accepted and rejected are decisions.
type RespondInput struct {
	Status string `json:"status" validate:"required"`
}
