package session

import "time"

// Snapshot is the JSON view of a session.
type Snapshot struct {
	ID               string    `json:"id,omitempty"`
	Display          string    `json:"display"`
	Error            string    `json:"error,omitempty"`
	Operator         string    `json:"operator"`
	Operands         [2]string `json:"operands"`
	Pressed          []string  `json:"pressed"`
	Blocked          []string  `json:"blocked"`
	OverwritePending bool      `json:"overwrite_pending"`
	Recent           []string  `json:"recent"`
	Created          time.Time `json:"created"`
}

// KeysRequest is the JSON body for POST /sessions/{id}/keys.
type KeysRequest struct {
	Keys string `json:"keys"` // key labels, e.g. "12×3="
}

// KeysResponse is the JSON response for POST /sessions/{id}/keys.
type KeysResponse struct {
	Snapshot
	Updates   []string `json:"updates"` // display updates caused by this request
	RequestID string   `json:"request_id"`
}

// EvaluateRequest is the JSON body for POST /evaluate.
type EvaluateRequest struct {
	Keys      string `json:"keys"`
	Precision int    `json:"precision,omitempty"` // 0 keeps the configured precision
}

// EvaluateResponse is the JSON response for POST /evaluate.
type EvaluateResponse struct {
	Display   string   `json:"display"`
	Error     string   `json:"error,omitempty"`
	Updates   []string `json:"updates"`
	RequestID string   `json:"request_id"`
}
