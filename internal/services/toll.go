package services

import "fuel-route-service/internal/ports"

// MoneyToUSD converts a structured money value to a float dollar amount
// (whole units plus fractional nanos).
func MoneyToUSD(m ports.Money) float64 {
	return float64(m.Units) + float64(m.Nanos)/1e9
}

// sumTollPrices sums the priced entries of one advisory. USD-tagged entries
// (and untagged ones) are preferred; when no entry is tagged USD the full
// set is summed best-effort. The second return is false when the advisory
// carries no priced entry at all.
func sumTollPrices(ti *ports.TollInfo) (float64, bool) {
	if ti == nil || len(ti.EstimatedPrice) == 0 {
		return 0, false
	}

	usd := make([]ports.Money, 0, len(ti.EstimatedPrice))
	for _, m := range ti.EstimatedPrice {
		if m.CurrencyCode == "" || m.CurrencyCode == "USD" {
			usd = append(usd, m)
		}
	}

	use := ti.EstimatedPrice
	if len(usd) > 0 {
		use = usd
	}

	var sum float64
	for _, m := range use {
		sum += MoneyToUSD(m)
	}
	return sum, true
}

// ExtractToll produces a single USD toll figure for a route.
//
// The route-level advisory wins when it is priced; otherwise priced per-leg
// advisories are summed. The return is nil when no priced toll data exists
// anywhere on the route: null means "toll existence unknown or unpriced",
// while a concrete zero means the provider confirmed a toll-free route.
func ExtractToll(route ports.ProviderRoute) *float64 {
	if sum, priced := sumTollPrices(route.TollInfo); priced {
		return &sum
	}

	var total float64
	anyPriced := false
	for _, leg := range route.Legs {
		if sum, priced := sumTollPrices(leg.TollInfo); priced {
			total += sum
			anyPriced = true
		}
	}
	if !anyPriced {
		return nil
	}
	return &total
}
