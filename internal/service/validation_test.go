package service

import (
	"testing"

	"github.com/hooprivals/stats-service/internal/repository"
)

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name string
		in   repository.Page
		want repository.Page
	}{
		{"zero value gets default limit", repository.Page{}, repository.Page{Limit: 50}},
		{"negative offset clamped", repository.Page{Limit: 10, Offset: -5}, repository.Page{Limit: 10, Offset: 0}},
		{"valid page untouched", repository.Page{Limit: 20, Offset: 40}, repository.Page{Limit: 20, Offset: 40}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizePage(tc.in); got != tc.want {
				t.Fatalf("normalizePage(%+v) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDuplicatePlayer(t *testing.T) {
	if _, ok := duplicatePlayer([]string{"a", "b"}, []string{"c", "d"}); ok {
		t.Fatalf("disjoint rosters flagged as duplicate")
	}
	if p, ok := duplicatePlayer([]string{"a", "b"}, []string{"b", "c"}); !ok || p != "b" {
		t.Fatalf("cross-team duplicate not caught: %q %v", p, ok)
	}
	if p, ok := duplicatePlayer([]string{"a", "a"}, nil); !ok || p != "a" {
		t.Fatalf("same-team duplicate not caught: %q %v", p, ok)
	}
}
