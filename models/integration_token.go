package models

import "time"

// IntegrationToken stores an OAuth credential for an external integration.
// There is at most one row per (provider, token_type).
type IntegrationToken struct {
	ID           string    `bson:"id" json:"id"`
	Provider     string    `bson:"provider" json:"provider"`     // e.g. "google-calendar"
	TokenType    string    `bson:"token_type" json:"token_type"` // e.g. "oauth"
	AccessToken  string    `bson:"access_token,omitempty" json:"-"`
	RefreshToken string    `bson:"refresh_token,omitempty" json:"-"`
	ExpiresAt    time.Time `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
