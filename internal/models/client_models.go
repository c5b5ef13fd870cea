package models

import "time"

// Subscription tiers a client can hold.
const (
	TierStandard = "Standard"
	TierPremium  = "Premium"
	TierVIP      = "VIP"
)

// Client statuses.
const (
	StatusActive  = "Active"
	StatusExpired = "Expired"
)

// Client represents a customer of the fitness center.
type Client struct {
	ID               string     `json:"id" db:"id"`
	FullName         string     `json:"full_name" db:"full_name"`
	Phone            *string    `json:"phone" db:"phone"`
	SubscriptionType string     `json:"subscription_type" db:"subscription_type"`
	Status           string     `json:"status" db:"status"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	LastVisit        *time.Time `json:"last_visit" db:"last_visit"`
}

// ValidTier reports whether t is a known subscription tier.
func ValidTier(t string) bool {
	return t == TierStandard || t == TierPremium || t == TierVIP
}

// ValidStatus reports whether s is a known client status.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusExpired
}
