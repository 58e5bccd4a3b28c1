package catalog

// Money represents a monetary amount in the smallest currency unit.
// For example, $20 USD would be Amount: 2000, Currency: "USD".
type Money struct {
	Amount   int64  `yaml:"amount"`
	Currency string `yaml:"currency"`
}

// Plan describes a single paywall tier. RateCardID is the billing provider's
// rate card identifier and is the join key between this catalog and the
// provider's subscription records.
type Plan struct {
	RateCardID      string   `yaml:"rate_card_id"`
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Price           Money    `yaml:"price"` // monthly
	IncludedCredits int64    `yaml:"included_credits"`
	OverageAllowed  bool     `yaml:"overage_allowed"`
	Features        []string `yaml:"features"`
}

// ChangeType classifies a plan change relative to the currently subscribed plan.
type ChangeType string

const (
	ChangeNone      ChangeType = "no_change"
	ChangeUpgrade   ChangeType = "upgrade"
	ChangeDowngrade ChangeType = "downgrade"
)
