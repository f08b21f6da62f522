// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pricing

// Tier is one plan shown on the pricing page, prices are whole USD per month
type Tier struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PriceMonthly  int      `json:"price_monthly"`
	PriceAnnually int      `json:"price_annually"`
	Features      []string `json:"features"`
}

type Catalog struct {
	Tiers    []Tier `json:"tiers"`
	Currency string `json:"currency"`
}

// DefaultCatalog returns a fresh copy on every call so callers may not mutate shared state
func DefaultCatalog() Catalog {
	return Catalog{
		Currency: "USD",
		Tiers: []Tier{
			{
				ID:            "personal",
				Name:          "Personal",
				PriceMonthly:  0,
				PriceAnnually: 0,
				Features:      []string{"Up to 3 docs/month", "Unlimited recipients", "No credit card"},
			},
			{
				ID:            "individual",
				Name:          "Individual",
				PriceMonthly:  15,
				PriceAnnually: 12,
				Features:      []string{"Unlimited documents", "API access", "Email support"},
			},
			{
				ID:            "business",
				Name:          "Business",
				PriceMonthly:  60,
				PriceAnnually: 50,
				Features:      []string{"+$8/user for more", "API + Automation", "Embedding"},
			},
			{
				ID:            "enterprise",
				Name:          "Enterprise",
				PriceMonthly:  200,
				PriceAnnually: 180,
				Features:      []string{"Custom domain", "Unlimited teams", "SMTP + OAuth"},
			},
		},
	}
}
