// Filter layer: predicate-based narrowing of evaluation and coaching-log
// collections. All predicates are optional and combined with logical AND; an
// empty predicate always matches. Input ordering is preserved, so callers
// that want newest-first display pass collections already in that order.
package report

import (
	"strconv"
	"strings"

	"github.com/royalvending/go-coaching-backend/internal/domain"
)

// EvaluationFilter narrows an evaluation collection. Zero values disable the
// corresponding predicate.
type EvaluationFilter struct {
	Member     string // exact member-name match
	Evaluator  string // exact evaluator-name match
	Month      string // "YYYY-MM" equality on the date's year-month
	ScoreRange string // inclusive "min-max" range on the total
	Search     string // case-insensitive substring over member+evaluator+comments
}

// Apply returns the evaluations matching every set predicate, in input order.
func (f EvaluationFilter) Apply(evals []domain.Evaluation) []domain.Evaluation {
	min, max, hasRange := parseScoreRange(f.ScoreRange)
	needle := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]domain.Evaluation, 0, len(evals))
	for _, e := range evals {
		if f.Member != "" && e.Member != f.Member {
			continue
		}
		if f.Evaluator != "" && e.Evaluator != f.Evaluator {
			continue
		}
		if f.Month != "" {
			m, valid := monthOf(e.Date)
			if !valid || m != f.Month {
				continue
			}
		}
		if hasRange {
			t := TotalOf(e)
			if t < min || t > max {
				continue
			}
		}
		if needle != "" {
			hay := strings.ToLower(e.Member + " " + e.Evaluator + " " + e.Comments)
			if !strings.Contains(hay, needle) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// CoachingFilter narrows a coaching-log collection. Zero values disable the
// corresponding predicate. From/To are inclusive ISO date bounds compared
// lexicographically, which is correct because ISO 8601 dates sort that way.
type CoachingFilter struct {
	Member string // exact member-name match
	Coach  string // exact coach-name match
	From   string // inclusive lower "YYYY-MM-DD" bound
	To     string // inclusive upper "YYYY-MM-DD" bound
	Search string // case-insensitive substring over topics+actions
}

// Apply returns the coaching logs matching every set predicate, in input order.
func (f CoachingFilter) Apply(logs []domain.CoachingLog) []domain.CoachingLog {
	needle := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]domain.CoachingLog, 0, len(logs))
	for _, l := range logs {
		if f.Member != "" && l.Member != f.Member {
			continue
		}
		if f.Coach != "" && l.Coach != f.Coach {
			continue
		}
		if f.From != "" && l.Date < f.From {
			continue
		}
		if f.To != "" && l.Date > f.To {
			continue
		}
		if needle != "" {
			hay := strings.ToLower(l.Topics + " " + l.Actions)
			if !strings.Contains(hay, needle) {
				continue
			}
		}
		out = append(out, l)
	}
	return out
}

// parseScoreRange parses "min-max" into an inclusive numeric range.
// Malformed input disables the predicate rather than erroring, matching the
// tolerant behavior of the filter bar it backs.
func parseScoreRange(s string) (min, max float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, false
	}
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	hi, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi, true
}
