package terminal

import (
	"errors"
	"strings"
	"testing"

	"physics-sandbox/internal/commands"
	"physics-sandbox/internal/logger"
)

func newTestTerminal() (*Terminal, *logger.Logger, *[]string) {
	log := logger.New("")
	reg := commands.NewRegistry()
	var ran []string
	reg.Register("spawn", "spawn", nil, func(args []string) error {
		ran = append(ran, "spawn")
		return nil
	})
	reg.Register("broken", "broken", nil, func([]string) error {
		return errors.New("surface 3 does not exist")
	})
	return New(log, reg), log, &ran
}

func TestSubmit_RunsCommandAndLogs(t *testing.T) {
	term, log, ran := newTestTerminal()
	term.Submit("cmd spawn")
	if len(*ran) != 1 {
		t.Fatalf("spawn ran %d times", len(*ran))
	}
	lines := log.Lines()
	if len(lines) != 1 || !strings.HasSuffix(lines[0], "> cmd spawn") {
		t.Errorf("log = %q", lines)
	}
}

func TestSubmit_LogsErrors(t *testing.T) {
	term, log, _ := newTestTerminal()
	term.Submit("broken")
	term.Submit("teleport")
	lines := log.Lines()
	if len(lines) != 4 {
		t.Fatalf("log = %q", lines)
	}
	if !strings.HasSuffix(lines[1], "surface 3 does not exist") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.HasSuffix(lines[3], "unknown command: teleport") {
		t.Errorf("line 3 = %q", lines[3])
	}
}

func TestSubmit_BlankIgnored(t *testing.T) {
	term, log, _ := newTestTerminal()
	term.Submit("   ")
	if len(log.Lines()) != 0 || len(term.history) != 0 {
		t.Error("blank line was recorded")
	}
}

func TestRecall(t *testing.T) {
	term, _, _ := newTestTerminal()
	if got := term.Recall(-1); got != "" {
		t.Errorf("Recall on empty history = %q", got)
	}
	term.Submit("spawn")
	term.Submit("broken")
	steps := []struct {
		step int
		want string
	}{
		{-1, "broken"},
		{-1, "spawn"},
		{-1, "spawn"},
		{1, "broken"},
		{1, ""},
		{1, ""},
	}
	for i, s := range steps {
		if got := term.Recall(s.step); got != s.want {
			t.Errorf("step %d: Recall(%d) = %q, want %q", i, s.step, got, s.want)
		}
	}
}
