// Package dashboard provides a Go SDK for the waitline queue API,
// including a Board view that mirrors the caller's queue state.
package dashboard

import (
	"encoding/json"
	"time"
)

// Ticket represents a queue ticket as returned by the API.
type Ticket struct {
	ID                   uint       `json:"id"`
	Number               string     `json:"number"`
	ServiceClass         string     `json:"service_class"`
	Status               string     `json:"status"`
	PriorityWeight       int        `json:"priority_weight"`
	EstimatedWaitMinutes int        `json:"estimated_wait_minutes"`
	IssuedAt             time.Time  `json:"issued_at"`
	ServedAt             *time.Time `json:"served_at,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	NoShowAt             *time.Time `json:"no_show_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// Service class and status values used by the API.
const (
	ClassRegular  = "regular"
	ClassPriority = "priority"

	StatusWaiting   = "waiting"
	StatusServing   = "serving"
	StatusCompleted = "completed"
	StatusNoShow    = "no-show"
)

// IssueRequest is the payload for issuing a new ticket.
type IssueRequest struct {
	ServiceClass         string  `json:"service_class"`
	Number               *string `json:"number,omitempty"`
	EstimatedWaitMinutes *int    `json:"estimated_wait_minutes,omitempty"`
	PriorityWeight       *int    `json:"priority_weight,omitempty"`
}

// UpdateRequest is the partial-update payload for a ticket.
type UpdateRequest struct {
	Status         *string    `json:"status,omitempty"`
	ServedAt       *time.Time `json:"served_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	NoShowAt       *time.Time `json:"no_show_at,omitempty"`
	PriorityWeight *int       `json:"priority_weight,omitempty"`
}

// Counters holds the next display counter per service class.
type Counters struct {
	Regular  int `json:"regular"`
	Priority int `json:"priority"`
}

// LoginResult holds the session issued after a successful login.
type LoginResult struct {
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// RegisterResult holds the account created by Register.
type RegisterResult struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// ResetResult reports how many tickets a queue reset removed.
type ResetResult struct {
	Deleted int64 `json:"deleted"`
}

// apiResponse represents the standard API response envelope.
type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *apiError       `json:"error,omitempty"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
