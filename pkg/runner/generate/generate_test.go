package generate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/contribgraph/pkg/contributions"
)

type fakeFetcher struct {
	calendars map[string]contributions.Calendar
	errs      map[string]error
}

func (f *fakeFetcher) ContributionCalendar(_ context.Context, account string) (contributions.Calendar, error) {
	if err := f.errs[account]; err != nil {
		return nil, err
	}
	return f.calendars[account], nil
}

func TestGenerateWritesDocument(t *testing.T) {
	out := filepath.Join(t.TempDir(), "graph.svg")
	g := &Generate{
		Accounts: []string{"alice", "bob"},
		Output:   out,
		Fetcher: &fakeFetcher{calendars: map[string]contributions.Calendar{
			"alice": {"2024-01-01": 2, "2024-01-03": 1},
			"bob":   {"2024-01-01": 3, "2024-01-02": 5},
		}},
	}

	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if !strings.Contains(string(doc), `aria-label="alice and bob"`) {
		t.Fatalf("expected accounts label in document:\n%s", doc)
	}
	if !strings.Contains(string(doc), "<title>5 contributions on 2024-01-01</title>") {
		t.Fatalf("expected merged counts in document:\n%s", doc)
	}
}

func TestGenerateEmptyCalendars(t *testing.T) {
	out := filepath.Join(t.TempDir(), "graph.svg")
	g := &Generate{
		Accounts: []string{"alice"},
		Output:   out,
		Fetcher:  &fakeFetcher{calendars: map[string]contributions.Calendar{"alice": {}}},
	}

	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if strings.Contains(string(doc), "<rect") {
		t.Fatalf("expected empty document, got:\n%s", doc)
	}
}

func TestGenerateFetchFailureWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "graph.svg")
	g := &Generate{
		Accounts: []string{"alice", "bob"},
		Output:   out,
		Fetcher: &fakeFetcher{
			calendars: map[string]contributions.Calendar{"alice": {"2024-01-01": 1}},
			errs:      map[string]error{"bob": errors.New("boom")},
		},
	}

	if err := g.Do(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("expected no partial output, stat err: %v", err)
	}
}

func TestGenerateRequiresConfiguration(t *testing.T) {
	if err := (&Generate{Accounts: []string{"a"}, Output: "x"}).Do(context.Background()); err == nil {
		t.Errorf("expected error without fetcher")
	}
	f := &fakeFetcher{}
	if err := (&Generate{Fetcher: f, Output: "x"}).Do(context.Background()); err == nil {
		t.Errorf("expected error without accounts")
	}
	if err := (&Generate{Fetcher: f, Accounts: []string{"a"}}).Do(context.Background()); err == nil {
		t.Errorf("expected error without output path")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		accounts []string
		want     string
	}{
		{nil, ""},
		{[]string{"alice"}, "alice"},
		{[]string{"alice", "bob"}, "alice and bob"},
		{[]string{"alice", "bob", "carol"}, "alice, bob and carol"},
	}
	for _, tc := range tests {
		if got := Describe(tc.accounts); got != tc.want {
			t.Errorf("Describe(%v): expected %q, got %q", tc.accounts, tc.want, got)
		}
	}
}
