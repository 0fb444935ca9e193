package entity

// SubscriptionStatus describes a member's standing with the portal.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "Active"
	SubscriptionExpiring SubscriptionStatus = "Expiring"
	SubscriptionTrial    SubscriptionStatus = "Trial"
)

type MemberAccount struct {
	ID                 string             `json:"id"`
	PharmacyName       string             `json:"pharmacy_name"`
	Email              string             `json:"email"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	LastLogin          string             `json:"last_login,omitempty"`
}
