package key

// Offer is what the hosted checkout page sells for one plan.
type Offer struct {
	Plan        Plan
	Name        string
	Description string
	UnitAmount  int64 // minor currency units
	Currency    string
}

type Catalog struct {
	offers map[Plan]Offer
}

func NewCatalog(currency string, lifetimeCents, monthlyCents int64) *Catalog {
	return &Catalog{
		offers: map[Plan]Offer{
			PlanLifetime: {
				Plan:        PlanLifetime,
				Name:        "Vander Defender - Lifetime Key",
				Description: "Permanent access to Vander Lua Code Defender. One-time HWID key.",
				UnitAmount:  lifetimeCents,
				Currency:    currency,
			},
			PlanMonthly: {
				Plan:        PlanMonthly,
				Name:        "Vander Defender - Monthly Key",
				Description: "30 days of access to Vander Lua Code Defender. One-time HWID key.",
				UnitAmount:  monthlyCents,
				Currency:    currency,
			},
		},
	}
}

func (c *Catalog) Offer(plan Plan) (Offer, error) {
	offer, ok := c.offers[plan]
	if !ok {
		return Offer{}, ErrInvalidPlan
	}
	return offer, nil
}
