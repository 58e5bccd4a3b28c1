package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the rate card IDs for the product's built-in paywall tiers.
// The defaults match the billing provider's demo environment and can be
// overridden per deployment.
type Config struct {
	FreeRateCardID    string `env:"FREE_PLAN_RATE_CARD_ID" envDefault:"rc_MRdNmrqTPTXZWiNINmj4YVAX"`
	StarterRateCardID string `env:"STARTER_PLAN_RATE_CARD_ID" envDefault:"rc_7WpF3Yi69QGpgzrGdS3Uyggd"`
	PremiumRateCardID string `env:"PREMIUM_PLAN_RATE_CARD_ID" envDefault:"rc_hSIYwdT1RBhELkIAR256qVW3"`
}

// Default returns the product's built-in three-tier catalog wired to the
// rate card IDs from cfg. Only the Premium tier allows overage.
func Default(cfg Config) (*Catalog, error) {
	return New(
		Plan{
			RateCardID:      cfg.FreeRateCardID,
			Name:            "Free",
			Description:     "Perfect for trying out our AI character generator",
			Price:           Money{Amount: 0, Currency: "USD"},
			IncludedCredits: 5,
			Features: []string{
				"5 credits per month",
				"Basic character generation",
				"Community support",
			},
		},
		Plan{
			RateCardID:      cfg.StarterRateCardID,
			Name:            "Starter",
			Description:     "Best for individuals and small projects",
			Price:           Money{Amount: 2000, Currency: "USD"},
			IncludedCredits: 25,
			Features: []string{
				"25 credits per month",
				"Premium character generation",
				"Priority support",
			},
		},
		Plan{
			RateCardID:      cfg.PremiumRateCardID,
			Name:            "Premium",
			Description:     "Unlimited power for professionals and teams",
			Price:           Money{Amount: 10000, Currency: "USD"},
			IncludedCredits: 105,
			OverageAllowed:  true,
			Features: []string{
				"105 included credits, $0.90 per additional generation",
				"Premium character generation",
				"Priority support",
			},
		},
	)
}

// LoadFile reads a catalog from a YAML file containing a list of plans.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidPlanConfiguration, fmt.Errorf("read catalog file: %w", err))
	}

	var plans []Plan
	if err := yaml.Unmarshal(data, &plans); err != nil {
		return nil, errors.Join(ErrInvalidPlanConfiguration, fmt.Errorf("parse catalog file: %w", err))
	}

	return New(plans...)
}
