package schema

import (
	"slices"

	"github.com/MKhiriev/f4f-study-portal/models"
)

// TransitionOutcome is the result of leaving a food screen.
type TransitionOutcome struct {
	// Index is the position of the fired transition.
	Index int

	// Target is the next food screen, or "" when the flow finishes.
	Target string

	// Tags is the accumulated tag set after the transition fired.
	Tags []string
}

// Finished reports whether the flow ends after this transition.
func (o TransitionOutcome) Finished() bool {
	return o.Target == ""
}

// Matches reports whether t is eligible for the selected item given the
// accumulated tags.
func Matches(t models.FoodEnumTransition, selectedItemID string, tags []string) bool {
	if !t.IsWildcard() && *t.SelectedItemID != selectedItemID {
		return false
	}
	for _, req := range t.RequireTags {
		if !slices.Contains(tags, req) {
			return false
		}
	}
	return true
}

// Evaluate picks the transition that fires when selectedItemID is chosen on
// fe. Transitions are tried in list order and the first eligible one wins,
// so a wildcard placed after a specific transition only acts as fallback.
// The returned tags are tags followed by the new add_tags, each once.
// ok is false when no transition is eligible.
func Evaluate(fe models.FoodEnum, selectedItemID string, tags []string) (TransitionOutcome, bool) {
	for i, t := range fe.Transitions {
		if !Matches(t, selectedItemID, tags) {
			continue
		}

		out := TransitionOutcome{Index: i, Tags: mergeTags(tags, t.AddTags)}
		if !t.IsFinish() {
			out.Target = *t.TargetEnum
		}
		return out, true
	}
	return TransitionOutcome{}, false
}

// UnreachableTransitions returns the positions of transitions that can never
// fire because an earlier transition is eligible whenever they are.
func UnreachableTransitions(fe models.FoodEnum) []int {
	var res []int
	for j := range fe.Transitions {
		for i := 0; i < j; i++ {
			if shadows(fe.Transitions[i], fe.Transitions[j]) {
				res = append(res, j)
				break
			}
		}
	}
	return res
}

// shadows reports whether a is eligible in every situation b is.
func shadows(a, b models.FoodEnumTransition) bool {
	if !a.IsWildcard() {
		if b.IsWildcard() || *a.SelectedItemID != *b.SelectedItemID {
			return false
		}
	}
	for _, req := range a.RequireTags {
		if !slices.Contains(b.RequireTags, req) {
			return false
		}
	}
	return true
}

func mergeTags(tags, add []string) []string {
	res := make([]string, 0, len(tags)+len(add))
	for _, list := range [][]string{tags, add} {
		for _, tag := range list {
			if !slices.Contains(res, tag) {
				res = append(res, tag)
			}
		}
	}
	return res
}

// DanglingTarget is a transition pointing at a food screen that does not exist.
type DanglingTarget struct {
	FoodEnumID      string `json:"food_enum_id"`
	TransitionIndex int    `json:"transition_index"`
	TargetEnum      string `json:"target_enum"`
}

// FoodGraphReport summarizes the food screen graph of a study.
type FoodGraphReport struct {
	Initial string `json:"initial"`

	// Reachable lists the screens reachable from Initial, Initial included,
	// in breadth-first order.
	Reachable []string `json:"reachable"`

	// Unreachable lists the remaining screens ordered by id.
	Unreachable []string `json:"unreachable"`

	// DeadEnds are screens without any transition.
	DeadEnds []string `json:"dead_ends"`

	Dangling []DanglingTarget `json:"dangling"`
}

// AnalyzeFoodGraph walks the transitions starting at initial. An empty or
// unknown initial screen yields a report in which every screen is
// unreachable.
func AnalyzeFoodGraph(c *Catalog, initial string) FoodGraphReport {
	report := FoodGraphReport{
		Initial:     initial,
		Reachable:   []string{},
		Unreachable: []string{},
		DeadEnds:    []string{},
		Dangling:    []DanglingTarget{},
	}

	ids := make([]string, 0, len(c.FoodEnums))
	for id := range c.FoodEnums {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		fe := c.FoodEnums[id]
		if len(fe.Transitions) == 0 {
			report.DeadEnds = append(report.DeadEnds, id)
		}
		for i, t := range fe.Transitions {
			if !t.IsFinish() && !hasKey(c.FoodEnums, *t.TargetEnum) {
				report.Dangling = append(report.Dangling, DanglingTarget{
					FoodEnumID:      id,
					TransitionIndex: i,
					TargetEnum:      *t.TargetEnum,
				})
			}
		}
	}

	seen := make(map[string]bool)
	if hasKey(c.FoodEnums, initial) {
		queue := []string{initial}
		seen[initial] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			report.Reachable = append(report.Reachable, id)
			for _, t := range c.FoodEnums[id].Transitions {
				if t.IsFinish() {
					continue
				}
				next := *t.TargetEnum
				if seen[next] || !hasKey(c.FoodEnums, next) {
					continue
				}
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	for _, id := range ids {
		if !seen[id] {
			report.Unreachable = append(report.Unreachable, id)
		}
	}

	return report
}
