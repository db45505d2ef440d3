package application

import (
	"time"

	domain "loandesk-backend/internal/domain/application"
)

const dayLayout = "2006-01-02"

// Filter narrows the application list. All set fields must match (AND);
// unset fields impose no constraint.
type Filter struct {
	FromDate string
	ToDate   string
	Sales    string
	Status   string
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// matches reports whether the record passes every set predicate. Date
// comparison is by calendar day. A bound that does not parse is treated as
// unset; a record whose loginDate does not parse is excluded only when a
// parsable date bound is in effect.
func (f Filter) matches(a *domain.Application) bool {
	if f.Sales != "" && a.Sales != f.Sales {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	from, fromOK := parseDay(f.FromDate)
	to, toOK := parseDay(f.ToDate)
	if !fromOK && !toOK {
		return true
	}
	day, ok := parseDay(a.LoginDate)
	if !ok {
		return false
	}
	if fromOK && day.Before(from) {
		return false
	}
	if toOK && day.After(to) {
		return false
	}
	return true
}

// apply filters in place, preserving the incoming order.
func (f Filter) apply(apps []domain.Application) []domain.Application {
	out := make([]domain.Application, 0, len(apps))
	for i := range apps {
		if f.matches(&apps[i]) {
			out = append(out, apps[i])
		}
	}
	return out
}
