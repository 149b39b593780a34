package tui

import (
	"strings"
	"testing"
)

func TestKeyTableRows(t *testing.T) {
	tbl := KeyTable(DefaultKeyMap())
	rows := tbl.Rows()
	if len(rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(rows))
	}

	want := map[string]string{
		"chop left":  "left, a, h",
		"chop right": "right, d, l",
		"replay":     "space",
		"debug":      "i",
		"quit":       "esc, q, ctrl+c",
	}
	for _, r := range rows[:5] {
		if got := want[r[0]]; got != r[1] {
			t.Errorf("%s: keys = %q, want %q", r[0], r[1], got)
		}
	}

	if !strings.Contains(tbl.View(), "chop left") {
		t.Error("table view is missing rows")
	}
}
