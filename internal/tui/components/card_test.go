package components

import (
	"testing"

	"github.com/ledgerlight/runway/internal/model"
)

func TestLayoutRowSumsExactly(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{100, 4},
		{101, 4},
		{103, 4},
		{80, 3},
		{7, 2},
	}

	for _, tc := range cases {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Fatalf("LayoutRow(%d, %d) widths sum to %d", tc.total, tc.n, sum)
		}
		// No width may differ from another by more than one.
		for _, w := range widths {
			if w < tc.total/tc.n || w > tc.total/tc.n+1 {
				t.Fatalf("LayoutRow(%d, %d) uneven widths %v", tc.total, tc.n, widths)
			}
		}
	}
}

func TestLayoutRowZeroItems(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Fatalf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestLevelBadgeTotal(t *testing.T) {
	for _, l := range []model.Level{model.LevelOK, model.LevelWarn, model.LevelBad} {
		glyph, text := LevelBadge(l)
		if glyph == "" || text == "" {
			t.Fatalf("level %q missing badge: glyph=%q text=%q", l, glyph, text)
		}
	}
}

func TestTabIndexForKey(t *testing.T) {
	if got := TabIndexForKey('d'); got != 0 {
		t.Fatalf("TabIndexForKey('d') = %d, want 0", got)
	}
	if got := TabIndexForKey('x'); got != 2 {
		t.Fatalf("TabIndexForKey('x') = %d, want 2", got)
	}
	if got := TabIndexForKey('z'); got != -1 {
		t.Fatalf("TabIndexForKey('z') = %d, want -1", got)
	}
}
