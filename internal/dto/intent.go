package dto

import (
	"encoding/json"
	"time"

	"github.com/noah-isme/tinta-academy-api/internal/models"
)

// IntentRequest is a raw intent as posted by a client.
type IntentRequest struct {
	Kind    models.IntentKind `json:"kind" binding:"required"`
	Payload json.RawMessage   `json:"payload"`
}

// IntentAccepted acknowledges an intent handed to dispatch.
type IntentAccepted struct {
	ID         string            `json:"id"`
	Kind       models.IntentKind `json:"kind"`
	AcceptedAt time.Time         `json:"acceptedAt"`
}
