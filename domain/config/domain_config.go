package config

import "time"

// DomainConfig holds tunable domain rules
type DomainConfig struct {
	// ReminderWindow is how far ahead an appointment counts as imminent
	ReminderWindow time.Duration

	// MaxNameLength limits patient names
	MaxNameLength int

	// MaxReasonLength limits appointment reasons
	MaxReasonLength int

	// AllowFutureBirthDates permits birth dates after "now" (disabled by default)
	AllowFutureBirthDates bool
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		ReminderWindow:        24 * time.Hour,
		MaxNameLength:         255,
		MaxReasonLength:       500,
		AllowFutureBirthDates: false,
	}
}
