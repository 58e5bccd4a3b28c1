package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Catalog is an immutable, price-ordered set of plans. Construct it once at
// process start with New (or Default / LoadFile) and share it read-only.
type Catalog struct {
	plans map[string]Plan
	order []string // rate card IDs sorted by ascending price
}

// New builds a catalog from the given plans. It validates that at least one
// plan is present, rate card IDs are non-empty and unique, and prices and
// credit allotments are non-negative. Plans are deep-copied so later
// modification of the arguments cannot affect the catalog.
func New(plans ...Plan) (*Catalog, error) {
	if len(plans) == 0 {
		return nil, errors.Join(ErrInvalidPlanConfiguration, errors.New("catalog requires at least one plan"))
	}

	byID := make(map[string]Plan, len(plans))
	for _, plan := range plans {
		if plan.RateCardID == "" {
			return nil, errors.Join(ErrInvalidPlanConfiguration, errors.New("plan has empty rate card ID"))
		}
		if _, exists := byID[plan.RateCardID]; exists {
			return nil, errors.Join(ErrInvalidPlanConfiguration,
				fmt.Errorf("duplicate rate card ID %s", plan.RateCardID))
		}
		if plan.Price.Amount < 0 {
			return nil, errors.Join(ErrInvalidPlanConfiguration,
				fmt.Errorf("plan %s has negative price: %d", plan.RateCardID, plan.Price.Amount))
		}
		if plan.IncludedCredits < 0 {
			return nil, errors.Join(ErrInvalidPlanConfiguration,
				fmt.Errorf("plan %s has negative included credits: %d", plan.RateCardID, plan.IncludedCredits))
		}
		plan.Features = slices.Clone(plan.Features)
		byID[plan.RateCardID] = plan
	}

	order := slices.Collect(maps.Keys(byID))
	slices.SortFunc(order, func(a, b string) int {
		if d := byID[a].Price.Amount - byID[b].Price.Amount; d != 0 {
			if d < 0 {
				return -1
			}
			return 1
		}
		// Stable order for equal prices; Classify rejects them if compared.
		if byID[a].RateCardID < byID[b].RateCardID {
			return -1
		}
		return 1
	})

	return &Catalog{plans: byID, order: order}, nil
}

// List returns all plans ordered by ascending monthly price.
func (c *Catalog) List() []Plan {
	out := make([]Plan, 0, len(c.order))
	for _, id := range c.order {
		plan := c.plans[id]
		plan.Features = slices.Clone(plan.Features)
		out = append(out, plan)
	}
	return out
}

// Lookup returns the plan for the given rate card ID.
// Returns ErrPlanNotFound if the ID is not in the catalog.
func (c *Catalog) Lookup(rateCardID string) (Plan, error) {
	plan, exists := c.plans[rateCardID]
	if !exists {
		return Plan{}, errors.Join(ErrPlanNotFound, fmt.Errorf("rate card ID %s", rateCardID))
	}
	plan.Features = slices.Clone(plan.Features)
	return plan, nil
}

// OverageAllowed reports whether the plan for the given rate card ID permits
// metered usage beyond its included credits.
func (c *Catalog) OverageAllowed(rateCardID string) (bool, error) {
	plan, exists := c.plans[rateCardID]
	if !exists {
		return false, errors.Join(ErrPlanNotFound, fmt.Errorf("rate card ID %s", rateCardID))
	}
	return plan.OverageAllowed, nil
}

// Classify compares a target plan against the currently subscribed plan by
// price ordering. Equal IDs classify as ChangeNone regardless of price;
// otherwise a strictly cheaper target is a downgrade and a strictly more
// expensive one an upgrade. Two distinct plans with equal price indicate a
// broken catalog and return ErrInvalidCatalog rather than a guessed result.
func (c *Catalog) Classify(currentRateCardID, targetRateCardID string) (ChangeType, error) {
	if currentRateCardID == targetRateCardID {
		if _, exists := c.plans[currentRateCardID]; !exists {
			return "", errors.Join(ErrPlanNotFound, fmt.Errorf("rate card ID %s", currentRateCardID))
		}
		return ChangeNone, nil
	}

	current, err := c.Lookup(currentRateCardID)
	if err != nil {
		return "", err
	}
	target, err := c.Lookup(targetRateCardID)
	if err != nil {
		return "", err
	}

	switch {
	case target.Price.Amount > current.Price.Amount:
		return ChangeUpgrade, nil
	case target.Price.Amount < current.Price.Amount:
		return ChangeDowngrade, nil
	default:
		return "", errors.Join(ErrInvalidCatalog,
			fmt.Errorf("plans %s and %s share price %d", currentRateCardID, targetRateCardID, target.Price.Amount))
	}
}
