package models

import "time"

type Notification struct {
	ID         string                 `json:"id"`
	UserID     string                 `json:"userId"`
	Type       string                 `json:"type"`
	Priority   string                 `json:"priority"`
	Message    string                 `json:"message"`
	FromUserID string                 `json:"fromUserId,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
	Read       bool                   `json:"read"`
}
