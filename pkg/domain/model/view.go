package model

import (
	"sort"
	"strings"

	"github.com/taskops-lab/riskregister/pkg/domain/types"
)

// RiskFilter narrows a risk set. All set fields must match (conjunction);
// Query is a case-insensitive substring match over name and description.
type RiskFilter struct {
	Category types.RiskCategory
	Status   types.RiskStatus
	Query    string
}

// Match reports whether the risk passes the filter
func (f *RiskFilter) Match(risk *Risk) bool {
	if f == nil {
		return true
	}
	if f.Category != "" && risk.Category != f.Category {
		return false
	}
	if f.Status != "" && risk.Status != f.Status {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(risk.Name), q) &&
			!strings.Contains(strings.ToLower(risk.Description), q) {
			return false
		}
	}
	return true
}

// ProjectView filters and sorts a risk set for presentation. The input slice
// is not modified; ties keep the relative order of the input (stable sort).
// Textual keys compare case-insensitively.
func ProjectView(risks []*Risk, key types.SortKey, order types.SortOrder, filter *RiskFilter) []*Risk {
	key = key.Normalize()
	order = order.Normalize()

	view := make([]*Risk, 0, len(risks))
	for _, risk := range risks {
		if filter.Match(risk) {
			view = append(view, risk)
		}
	}

	sort.SliceStable(view, func(i, j int) bool {
		if order == types.SortDesc {
			return lessByKey(view[j], view[i], key)
		}
		return lessByKey(view[i], view[j], key)
	})

	return view
}

func lessByKey(a, b *Risk, key types.SortKey) bool {
	switch key {
	case types.SortByName:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	case types.SortByCategory:
		return strings.ToLower(a.Category.String()) < strings.ToLower(b.Category.String())
	case types.SortByProbability:
		return a.Probability < b.Probability
	case types.SortByImpact:
		return a.Impact < b.Impact
	case types.SortByStatus:
		return strings.ToLower(a.Status.String()) < strings.ToLower(b.Status.String())
	case types.SortByIdentifiedAt:
		return a.IdentifiedAt.Before(b.IdentifiedAt)
	default:
		return a.Severity < b.Severity
	}
}
