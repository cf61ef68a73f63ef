package core

import (
	"testing"
)

func byDates(dates ...string) []Article {
	out := make([]Article, 0, len(dates))
	for _, d := range dates {
		out = append(out, Article{ArticleID: "a-" + d, Title: "t", Date: d})
	}
	return out
}

func TestOrder(t *testing.T) {
	t.Run("Descending Lexical", func(t *testing.T) {
		got := Order(byDates("2023-05-01", "2024-01-15", "2022-12-31", "2024-01-02"))

		for i := 0; i < len(got)-1; i++ {
			if got[i].Date < got[i+1].Date {
				t.Errorf("position %d: %q sorts before %q", i, got[i].Date, got[i+1].Date)
			}
		}
		if got[0].Date != "2024-01-15" {
			t.Errorf("expected newest first, got %q", got[0].Date)
		}
	})

	t.Run("Input Not Mutated", func(t *testing.T) {
		in := byDates("2020-01-01", "2021-01-01")
		Order(in)
		if in[0].Date != "2020-01-01" {
			t.Errorf("input slice was reordered")
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got := Order(nil); len(got) != 0 {
			t.Errorf("expected empty result, got %d", len(got))
		}
	})

	// The comparison is lexical on the raw string, never calendar-aware. A
	// date outside yyyy-mm-dd simply sorts wherever the characters land.
	t.Run("Lexical Not Calendar", func(t *testing.T) {
		got := Order(byDates("2024-1-5", "2024-02-01"))
		if got[0].Date != "2024-1-5" {
			t.Errorf("expected plain string comparison, got %q first", got[0].Date)
		}
	})
}

func TestPaginate(t *testing.T) {
	ordered := Order(byDates(
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
		"2024-01-06", "2024-01-07", "2024-01-08", "2024-01-09", "2024-01-10",
		"2024-01-11", "2024-01-12", "2024-01-13", "2024-01-14", "2024-01-15",
		"2024-01-16", "2024-01-17", "2024-01-18", "2024-01-19", "2024-01-20",
		"2024-01-21", "2024-01-22", "2024-01-23", "2024-01-24", "2024-01-25",
	))

	tests := []struct {
		name      string
		index     int
		wantLen   int
		wantFirst string
	}{
		{name: "First Page", index: 0, wantLen: 10, wantFirst: "2024-01-25"},
		{name: "Second Page", index: 1, wantLen: 10, wantFirst: "2024-01-15"},
		{name: "Partial Last Page", index: 2, wantLen: 5, wantFirst: "2024-01-05"},
		{name: "Beyond End", index: 3, wantLen: 0},
		{name: "Far Beyond End", index: 1000, wantLen: 0},
		{name: "Negative", index: -1, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(ordered, tt.index, PageSize)
			if len(got) != tt.wantLen {
				t.Fatalf("expected %d articles, got %d", tt.wantLen, len(got))
			}
			if tt.wantLen > 0 && got[0].Date != tt.wantFirst {
				t.Errorf("expected first date %q, got %q", tt.wantFirst, got[0].Date)
			}
		})
	}

	t.Run("Contiguous Blocks", func(t *testing.T) {
		var joined []Article
		for i := 0; ; i++ {
			block := Paginate(ordered, i, PageSize)
			if len(block) == 0 {
				break
			}
			joined = append(joined, block...)
		}
		if len(joined) != len(ordered) {
			t.Fatalf("pages cover %d articles, want %d", len(joined), len(ordered))
		}
		for i := range joined {
			if joined[i].ArticleID != ordered[i].ArticleID {
				t.Fatalf("position %d: got %q, want %q", i, joined[i].ArticleID, ordered[i].ArticleID)
			}
		}
	})
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		name  string
		total int
		want  int
	}{
		{name: "Empty", total: 0, want: 0},
		{name: "Partial Single Page", total: 7, want: 0},
		{name: "Exact Page", total: 10, want: 1},
		// 25 articles floor-divide to 2 even though page index 2 holds five
		// more; navigation built on this value reproduces that quirk.
		{name: "Trailing Partial Page", total: 25, want: 2},
		{name: "Exact Multiple", total: 30, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PageCount(tt.total, PageSize); got != tt.want {
				t.Errorf("PageCount(%d, %d) = %d, want %d", tt.total, PageSize, got, tt.want)
			}
		})
	}
}
