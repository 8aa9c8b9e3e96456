package shipping

import "sort"

// Aggregate builds a Quote from raw carrier rates: rates sorted by price,
// the cheapest / fastest / best-value picks, and a by-provider grouping.
// Ties break toward fewer estimated days, then provider name, so the
// selection is deterministic for a given rate set.
func Aggregate(rates []Rate) Quote {
	if len(rates) == 0 {
		return Quote{Rates: []Rate{}}
	}

	sorted := make([]Rate, len(rates))
	copy(sorted, rates)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].AmountCents != sorted[j].AmountCents {
			return sorted[i].AmountCents < sorted[j].AmountCents
		}

		if sorted[i].EstimatedDays != sorted[j].EstimatedDays {
			return sorted[i].EstimatedDays < sorted[j].EstimatedDays
		}

		return sorted[i].Provider < sorted[j].Provider
	})

	byProvider := make(map[string][]Rate)
	for _, r := range sorted {
		byProvider[r.Provider] = append(byProvider[r.Provider], r)
	}

	cheapest := sorted[0]
	fastest := pickFastest(sorted)
	bestValue := pickBestValue(sorted)

	return Quote{
		Rates:      sorted,
		Cheapest:   &cheapest,
		Fastest:    &fastest,
		BestValue:  &bestValue,
		ByProvider: byProvider,
	}
}

// fastest delivery; among equally fast rates the cheaper one wins because
// the input is already price-sorted
func pickFastest(sorted []Rate) Rate {
	fastest := sorted[0]

	for _, r := range sorted[1:] {
		if r.EstimatedDays > 0 && (fastest.EstimatedDays == 0 || r.EstimatedDays < fastest.EstimatedDays) {
			fastest = r
		}
	}

	return fastest
}

// best value minimizes price x estimated days. Rates without an estimate
// are treated as the slowest option on offer.
func pickBestValue(sorted []Rate) Rate {
	maxDays := 0
	for _, r := range sorted {
		if r.EstimatedDays > maxDays {
			maxDays = r.EstimatedDays
		}
	}

	if maxDays == 0 {
		return sorted[0]
	}

	best := sorted[0]
	bestScore := score(sorted[0], maxDays)

	for _, r := range sorted[1:] {
		if s := score(r, maxDays); s < bestScore {
			best = r
			bestScore = s
		}
	}

	return best
}

func score(r Rate, maxDays int) int64 {
	days := r.EstimatedDays
	if days == 0 {
		days = maxDays
	}

	return r.AmountCents * int64(days)
}
