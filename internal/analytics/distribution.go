package analytics

import (
	"math"
	"sort"
)

// SportShare is one row of the sport distribution widget.
type SportShare struct {
	Sport   string `json:"sport"`
	Percent int    `json:"percent"`
}

// SportDistribution counts each sport label once per venue that offers it and
// converts the counts to integer percentages of all occurrences, largest
// first. Rounding is independent per sport, so the percentages need not sum
// to exactly 100.
func SportDistribution(venues []Venue) []SportShare {
	counter := map[string]int{}
	total := 0
	for _, v := range venues {
		for _, sport := range v.Sports {
			counter[sport]++
			total++
		}
	}
	if total == 0 {
		return nil
	}

	shares := make([]SportShare, 0, len(counter))
	for sport, count := range counter {
		shares = append(shares, SportShare{
			Sport:   sport,
			Percent: int(math.Round(float64(count) / float64(total) * 100)),
		})
	}
	// Name order first so equal percentages come out deterministically.
	sort.Slice(shares, func(i, j int) bool { return shares[i].Sport < shares[j].Sport })
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].Percent > shares[j].Percent })
	return shares
}
