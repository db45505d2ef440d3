package application

import (
	"testing"

	domain "loandesk-backend/internal/domain/application"
)

func app(loginDate, sales, status string) domain.Application {
	return domain.Application{LoginDate: loginDate, Sales: sales, Status: status}
}

func TestFilter_DateRange(t *testing.T) {
	apps := []domain.Application{
		app("2024-01-01", "Vinay Mishra", "Login"),
		app("2024-02-15", "Vinay Mishra", "Login"),
		app("2024-03-01", "Vinay Mishra", "Login"),
	}

	got := Filter{FromDate: "2024-02-01", ToDate: "2024-02-28"}.apply(apps)
	if len(got) != 1 || got[0].LoginDate != "2024-02-15" {
		t.Fatalf("got %d records, want only 2024-02-15: %+v", len(got), got)
	}
}

func TestFilter_BoundsAreInclusive(t *testing.T) {
	apps := []domain.Application{app("2024-02-01", "", ""), app("2024-02-28", "", "")}
	got := Filter{FromDate: "2024-02-01", ToDate: "2024-02-28"}.apply(apps)
	if len(got) != 2 {
		t.Fatalf("boundary dates must match, got %d", len(got))
	}
}

func TestFilter_SalesAndStatusExactMatch(t *testing.T) {
	apps := []domain.Application{
		app("2024-01-01", "Vinay Mishra", "Login"),
		app("2024-01-02", "Parag Shah", "Login"),
		app("2024-01-03", "Vinay Mishra", "Sanction"),
	}

	got := Filter{Sales: "Vinay Mishra", Status: "Login"}.apply(apps)
	if len(got) != 1 || got[0].LoginDate != "2024-01-01" {
		t.Fatalf("conjunctive filter failed: %+v", got)
	}
}

func TestFilter_EmptyFilterPassesAll(t *testing.T) {
	apps := []domain.Application{
		app("2024-01-01", "A", "Login"),
		app("garbage", "B", "Sanction"),
		app("", "C", ""),
	}
	if got := (Filter{}).apply(apps); len(got) != 3 {
		t.Fatalf("no-op filter dropped records: %d", len(got))
	}
}

func TestFilter_UnparsableDateExcludedOnlyWhenDateBounded(t *testing.T) {
	apps := []domain.Application{
		app("not-a-date", "Vinay Mishra", "Login"),
		app("", "Vinay Mishra", "Login"),
		app("2024-02-10", "Vinay Mishra", "Login"),
	}

	// Date-bounded: bad dates are excluded.
	got := Filter{FromDate: "2024-01-01"}.apply(apps)
	if len(got) != 1 || got[0].LoginDate != "2024-02-10" {
		t.Fatalf("date-bounded filter must exclude unparsable dates: %+v", got)
	}

	// Not date-bounded: bad dates still pass owner/status predicates.
	got = Filter{Sales: "Vinay Mishra"}.apply(apps)
	if len(got) != 3 {
		t.Fatalf("sales-only filter must keep unparsable dates: %d", len(got))
	}
}

func TestFilter_UnparsableBoundTreatedAsUnset(t *testing.T) {
	apps := []domain.Application{
		app("2024-01-01", "A", "Login"),
		app("not-a-date", "B", "Login"),
	}

	// A bound that does not parse imposes no constraint at all.
	if got := (Filter{FromDate: "garbage"}).apply(apps); len(got) != 2 {
		t.Fatalf("unparsable bound must be a no-op, got %d records", len(got))
	}

	// A parsable bound alongside an unparsable one still applies.
	got := Filter{FromDate: "garbage", ToDate: "2024-01-31"}.apply(apps)
	if len(got) != 1 || got[0].LoginDate != "2024-01-01" {
		t.Fatalf("parsable bound must still filter: %+v", got)
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	apps := []domain.Application{
		app("2024-03-01", "", ""),
		app("2024-02-01", "", ""),
		app("2024-01-01", "", ""),
	}
	got := Filter{FromDate: "2024-01-15"}.apply(apps)
	if len(got) != 2 || got[0].LoginDate != "2024-03-01" || got[1].LoginDate != "2024-02-01" {
		t.Fatalf("order not preserved: %+v", got)
	}
}
