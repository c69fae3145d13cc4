package contributions

import (
	"context"
	"errors"
	"testing"
)

func TestMergeSumsAcrossAccounts(t *testing.T) {
	a := Calendar{"2024-01-01": 2, "2024-01-03": 1}
	b := Calendar{"2024-01-01": 3, "2024-01-02": 5}

	merged := Merge(a, b)

	want := Calendar{"2024-01-01": 5, "2024-01-02": 5, "2024-01-03": 1}
	if len(merged) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(merged))
	}
	for date, count := range want {
		if merged[date] != count {
			t.Errorf("%s: expected %d, got %d", date, count, merged[date])
		}
	}
}

func TestMergeAdditivity(t *testing.T) {
	inputs := []Calendar{
		{"2024-03-01": 1, "2024-03-02": 4},
		{"2024-03-02": 2},
		{},
		{"2024-03-01": 7, "2024-03-05": 3},
	}

	merged := Merge(inputs...)

	dates := map[string]bool{}
	for _, c := range inputs {
		for d := range c {
			dates[d] = true
		}
	}
	for d := range dates {
		sum := 0
		for _, c := range inputs {
			sum += c[d]
		}
		if merged[d] != sum {
			t.Errorf("%s: expected %d, got %d", d, sum, merged[d])
		}
	}
	if len(merged) != len(dates) {
		t.Fatalf("expected %d dates, got %d", len(dates), len(merged))
	}
}

func TestMergeEmpty(t *testing.T) {
	if merged := Merge(); len(merged) != 0 {
		t.Fatalf("expected empty calendar, got %v", merged)
	}
}

func TestBuildPayload(t *testing.T) {
	merged := Merge(
		Calendar{"2024-01-01": 2, "2024-01-03": 1},
		Calendar{"2024-01-01": 3, "2024-01-02": 5},
	)

	p := BuildPayload(merged)

	if p.Start != "2024-01-01" {
		t.Errorf("expected start 2024-01-01, got %q", p.Start)
	}
	if p.End != "2024-01-03" {
		t.Errorf("expected end 2024-01-03, got %q", p.End)
	}
	if p.Total != 11 {
		t.Errorf("expected total 11, got %d", p.Total)
	}
	if len(p.Counts) != 3 {
		t.Errorf("expected 3 dates, got %d", len(p.Counts))
	}
}

func TestBuildPayloadKeepsExplicitZeroes(t *testing.T) {
	p := BuildPayload(Calendar{"2024-05-01": 0, "2024-05-02": 2})
	if _, ok := p.Counts["2024-05-01"]; !ok {
		t.Fatalf("expected explicit zero-count date to survive")
	}
	if p.Total != 2 {
		t.Fatalf("expected total 2, got %d", p.Total)
	}
}

func TestBuildPayloadEmpty(t *testing.T) {
	p := BuildPayload(Merge())
	if p.Start != "" || p.End != "" {
		t.Fatalf("expected empty bounds, got %q..%q", p.Start, p.End)
	}
	if p.Total != 0 {
		t.Fatalf("expected total 0, got %d", p.Total)
	}
	if len(p.Counts) != 0 {
		t.Fatalf("expected empty counts, got %v", p.Counts)
	}
}

func TestMonthlyTotals(t *testing.T) {
	c := Calendar{
		"2024-01-15": 2,
		"2024-01-31": 3,
		"2024-03-01": 7,
	}
	totals := MonthlyTotals(c)
	if len(totals) != 2 {
		t.Fatalf("expected 2 months, got %d", len(totals))
	}
	if totals[0].Month != "2024-01" || totals[0].Total != 5 {
		t.Errorf("expected 2024-01 total 5, got %v", totals[0])
	}
	if totals[1].Month != "2024-03" || totals[1].Total != 7 {
		t.Errorf("expected 2024-03 total 7, got %v", totals[1])
	}
}

func TestBusiestDay(t *testing.T) {
	date, count, ok := BusiestDay(Calendar{"2024-01-02": 4, "2024-01-01": 4, "2024-01-03": 1})
	if !ok {
		t.Fatalf("expected a busiest day")
	}
	if date != "2024-01-01" || count != 4 {
		t.Fatalf("expected tie to break toward earlier date, got %s (%d)", date, count)
	}
	if _, _, ok := BusiestDay(Calendar{}); ok {
		t.Fatalf("expected no busiest day for empty calendar")
	}
}

type fakeFetcher struct {
	calendars map[string]Calendar
	errs      map[string]error
}

func (f *fakeFetcher) ContributionCalendar(_ context.Context, account string) (Calendar, error) {
	if err := f.errs[account]; err != nil {
		return nil, err
	}
	return f.calendars[account], nil
}

func TestFetchAllPreservesOrder(t *testing.T) {
	f := &fakeFetcher{calendars: map[string]Calendar{
		"alice": {"2024-01-01": 1},
		"bob":   {"2024-01-02": 2},
	}}

	calendars, err := FetchAll(context.Background(), f, []string{"alice", "bob"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calendars) != 2 {
		t.Fatalf("expected 2 calendars, got %d", len(calendars))
	}
	if calendars[0]["2024-01-01"] != 1 || calendars[1]["2024-01-02"] != 2 {
		t.Fatalf("results out of order: %v", calendars)
	}
}

func TestFetchAllAllOrNothing(t *testing.T) {
	f := &fakeFetcher{
		calendars: map[string]Calendar{"alice": {"2024-01-01": 1}},
		errs:      map[string]error{"bob": errors.New("boom")},
	}

	calendars, err := FetchAll(context.Background(), f, []string{"alice", "bob"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if calendars != nil {
		t.Fatalf("expected no partial results, got %v", calendars)
	}
}
