package models

import (
	"time"

	"k8s-profile-api/internal/config"
)

// ErrorResponse represents a failed API response
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Fields  []string `json:"fields,omitempty"`
}

// RequestRecord describes one generated request document
type RequestRecord struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	Params    config.Params `json:"params"`
}

// ListResponse represents the request history response
type ListResponse struct {
	Success  bool            `json:"success"`
	Requests []RequestRecord `json:"requests"`
}
