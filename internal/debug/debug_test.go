package debug

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestStatsLines(t *testing.T) {
	got := StatsLines(Stats{
		Bodies:   12,
		Contacts: 3,
		Gravity:  rl.NewVector2(0, 100),
		Speed:    250,
		Angle:    30,
		Time:     4.5,
	})
	want := []string{
		"Bodies: 12",
		"Contacts: 3",
		"G: (0, 100)",
		"Speed: 250  Angle: 30",
		"T:   4.50",
	}
	if len(got) != len(want) {
		t.Fatalf("StatsLines() = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
