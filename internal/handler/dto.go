package handler

import (
	"encoding/json"

	"footyproxy/internal/model"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status    string          `json:"status"`
	Timestamp string          `json:"timestamp"`
	Cache     map[string]bool `json:"cache"`
}

type MatchArticlesResponse struct {
	Success        bool              `json:"success"`
	Articles       []json.RawMessage `json:"articles"`
	Total          int               `json:"total"`
	SearchStrategy model.Strategy    `json:"searchStrategy"`
}

type TeamArticlesResponse struct {
	Success  bool              `json:"success"`
	Articles []json.RawMessage `json:"articles"`
	Total    int               `json:"total"`
}

type HeadToHeadResponse struct {
	Success    bool              `json:"success"`
	Stats      *model.HeadToHead `json:"stats"`
	AllMatches []json.RawMessage `json:"allMatches,omitempty"`
	Message    string            `json:"message,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
