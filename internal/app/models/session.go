package models

import "time"

type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	ClinicID  string    `json:"clinic_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}
