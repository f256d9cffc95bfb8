package request

import (
	"bytes"
	"encoding/json"
)

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// StartMatchRequest is the request body for starting a match.
// Anything in Target but a positive integer means the default.
type StartMatchRequest struct {
	Target   TargetInput `json:"target,omitempty"`
	Strategy string      `json:"strategy,omitempty"`
}

// TargetInput accepts the target as a JSON string or number.
// Other values are kept as raw text and never fail decoding.
type TargetInput string

// UnmarshalJSON implements json.Unmarshaler
func (t *TargetInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*t = TargetInput(text)
		return nil
	}
	*t = TargetInput(data)
	return nil
}

// HoldRequest is the request body for toggling a die's hold
type HoldRequest struct {
	Index *int `json:"index"`
}
