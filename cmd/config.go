package cmd

// Config carries the application settings read from the environment.
// All values are raw strings; parsing with defaults happens in the
// composition root.
type Config struct {
	HTTPPort           string
	DailyQuotaLimit    string // units per product per UTC day, default 100
	ProhibitedProducts string // comma-separated product identifiers
	ApprovalThreshold  string // order total requiring manual approval; empty disables
	DiscountCodes      string // CODE=amount pairs, comma-separated
	InitialStock       string // product=quantity pairs, comma-separated
}
