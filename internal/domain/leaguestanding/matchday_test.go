package leaguestanding

import (
	"fmt"
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2011, time.August, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func fixtures(days ...int) []Fixture {
	out := make([]Fixture, 0, len(days))
	for i, d := range days {
		out = append(out, Fixture{MatchID: fmt.Sprintf("m%02d", i), Date: day(d)})
	}
	return out
}

func TestGroupByMatchday_WindowClustering(t *testing.T) {
	t.Parallel()

	got := GroupByMatchday(fixtures(0, 1, 3, 4, 10, 11), 4, 3)
	if len(got) != 4 {
		t.Fatalf("unexpected matchday count: got=%d want=4", len(got))
	}
	sizes := []int{len(got[0].Fixtures), len(got[1].Fixtures), len(got[2].Fixtures), len(got[3].Fixtures)}
	want := []int{3, 1, 2, 0}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("unexpected sizes: got=%v want=%v", sizes, want)
		}
	}
	if got[0].Number != 1 || got[3].Number != 4 {
		t.Fatalf("unexpected numbering: first=%d last=%d", got[0].Number, got[3].Number)
	}
}

func TestGroupByMatchday_MergesSmallestIntoSuccessor(t *testing.T) {
	t.Parallel()

	// clusters: [0,1] [10] [20,21] [30]
	got := GroupByMatchday(fixtures(0, 1, 10, 20, 21, 30), 3, 3)
	if len(got) != 3 {
		t.Fatalf("unexpected matchday count: got=%d want=3", len(got))
	}
	sizes := []int{len(got[0].Fixtures), len(got[1].Fixtures), len(got[2].Fixtures)}
	want := []int{2, 3, 1}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("unexpected sizes: got=%v want=%v", sizes, want)
		}
	}
}

func TestGroupByMatchday_AlwaysTotal(t *testing.T) {
	t.Parallel()

	for _, total := range []int{1, 2, 5, 38} {
		days := make([]int, 0, 60)
		for i := 0; i < 60; i++ {
			days = append(days, i*7)
		}
		if got := GroupByMatchday(fixtures(days...), total, 3); len(got) != total {
			t.Fatalf("unexpected matchday count: got=%d want=%d", len(got), total)
		}
	}
	if got := GroupByMatchday(nil, 38, 3); len(got) != 38 {
		t.Fatalf("unexpected matchday count for empty season: got=%d want=38", len(got))
	}
}

func TestGroupByMatchday_DoesNotReorderInput(t *testing.T) {
	t.Parallel()

	in := fixtures(5, 0)
	_ = GroupByMatchday(in, 2, 3)
	if in[0].MatchID != "m00" {
		t.Fatalf("input slice was mutated")
	}
}
