// Package report implements the aggregation engine behind the dashboard and
// reports pages. Every function here is pure: it consumes in-memory slices of
// evaluations or coaching logs and returns derived metrics, with no I/O and
// no side effects. Handlers fetch collections through the repo layer and feed
// them in.
package report

import (
	"math"
	"sort"

	"github.com/royalvending/go-coaching-backend/internal/domain"
)

// MonthlyAverage is one point of the dashboard trend series.
type MonthlyAverage struct {
	Month   string  `json:"month"`   // "YYYY-MM"
	Average float64 `json:"average"` // mean of evaluation totals, 2 decimals
}

// Round2 rounds v to two decimal places, the precision used for every
// displayed score in the system.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TotalOf returns the evaluation's stored total, recomputing the mean of its
// scores when the stored value is absent (zero). Scores range 1..5, so a
// legitimate total can never be zero; records imported from the legacy store
// occasionally lack the field.
func TotalOf(e domain.Evaluation) float64 {
	if e.Total != 0 {
		return e.Total
	}
	if len(e.Scores) == 0 {
		return 0
	}
	sum := 0
	for _, v := range e.Scores {
		sum += v
	}
	return Round2(float64(sum) / float64(len(e.Scores)))
}

// monthOf extracts the "YYYY-MM" key from an ISO date, reporting false for
// missing or malformed dates so they drop out of date-keyed groupings.
func monthOf(date string) (string, bool) {
	if len(date) < 7 || date[4] != '-' {
		return "", false
	}
	for i, r := range date[:7] {
		if i == 4 {
			continue
		}
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return date[:7], true
}

// AverageScore returns the mean evaluation total for the given "YYYY-MM"
// month. When no evaluation falls in that month the scope silently broadens
// to the all-time mean; only an entirely empty collection yields ok=false
// (rendered as "-" by callers). Both fallback levels are intentional: an
// empty current month shows the overall average rather than zero.
func AverageScore(evals []domain.Evaluation, monthKey string) (avg float64, ok bool) {
	if len(evals) == 0 {
		return 0, false
	}
	var sum float64
	var n int
	for _, e := range evals {
		if m, valid := monthOf(e.Date); valid && m == monthKey {
			sum += TotalOf(e)
			n++
		}
	}
	if n == 0 {
		for _, e := range evals {
			sum += TotalOf(e)
		}
		n = len(evals)
	}
	return Round2(sum / float64(n)), true
}

// DistinctMembersEvaluated counts unique member names across the collection.
func DistinctMembersEvaluated(evals []domain.Evaluation) int {
	seen := make(map[string]struct{}, len(evals))
	for _, e := range evals {
		seen[e.Member] = struct{}{}
	}
	return len(seen)
}

// TopSkill returns the criterion with the greatest score sum across all
// evaluations, or ok=false when no scores exist at all. Ranking is by total
// volume, not average, so a skill scored often beats one scored high but
// rarely; the skill-level report uses per-key means instead.
//
// Ties keep the criterion that appeared first. Evaluations are scanned in
// slice order and keys within one evaluation in sorted order, so the
// tie-break is deterministic.
func TopSkill(evals []domain.Evaluation) (name string, ok bool) {
	sums := map[string]int{}
	var order []string
	for _, e := range evals {
		keys := sortedKeys(e.Scores)
		for _, k := range keys {
			if _, seen := sums[k]; !seen {
				order = append(order, k)
			}
			sums[k] += e.Scores[k]
		}
	}
	if len(order) == 0 {
		return "", false
	}
	best := order[0]
	for _, k := range order[1:] {
		if sums[k] > sums[best] {
			best = k
		}
	}
	return best, true
}

// MonthlyAverageSeries groups evaluations by the year-month of their date and
// returns one averaged point per distinct month, sorted ascending by month
// key. Records with missing or malformed dates are skipped. An empty input
// yields an empty (non-nil) series.
func MonthlyAverageSeries(evals []domain.Evaluation) []MonthlyAverage {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, e := range evals {
		m, valid := monthOf(e.Date)
		if !valid {
			continue
		}
		sums[m] += TotalOf(e)
		counts[m]++
	}
	months := make([]string, 0, len(sums))
	for m := range sums {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]MonthlyAverage, 0, len(months))
	for _, m := range months {
		out = append(out, MonthlyAverage{
			Month:   m,
			Average: Round2(sums[m] / float64(counts[m])),
		})
	}
	return out
}

// AverageBySkill returns the mean score per criterion across all evaluations
// that contain that criterion. An evaluation without a given key contributes
// nothing to that key's denominator, so a skill scored once at 5 averages
// 5.0 even when other evaluations omit it.
func AverageBySkill(evals []domain.Evaluation) map[string]float64 {
	sums := map[string]int{}
	counts := map[string]int{}
	for _, e := range evals {
		for k, v := range e.Scores {
			sums[k] += v
			counts[k]++
		}
	}
	out := make(map[string]float64, len(sums))
	for k := range sums {
		out[k] = Round2(float64(sums[k]) / float64(counts[k]))
	}
	return out
}

// CoachingCountByMember tallies coaching sessions per member name.
func CoachingCountByMember(logs []domain.CoachingLog) map[string]int {
	out := make(map[string]int, len(logs))
	for _, l := range logs {
		out[l.Member]++
	}
	return out
}

// sortedKeys returns the map keys in ascending order.
func sortedKeys(m domain.ScoreMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
