package models

// PlatformConfig is the singleton platform/config document. Admin tooling may
// write extra fields here; Extra keeps them intact across reads and merges.
type PlatformConfig struct {
	StripeEnabled bool           `bson:"stripeEnabled" json:"stripeEnabled"`
	StripePriceID string         `bson:"stripePriceId,omitempty" json:"stripePriceId,omitempty"`
	Extra         map[string]any `bson:",inline" json:"-"`
}
