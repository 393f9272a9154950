package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-sandbox/internal/commands"
	"physics-sandbox/internal/logger"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxHistory       = 50
)

var (
	// Reused every frame when drawing the console to avoid per-frame color allocations.
	termBarColor    = rl.NewColor(40, 40, 40, 255)
	termLineColor   = rl.NewColor(80, 80, 80, 255)
	termChatBgColor = rl.NewColor(24, 24, 24, 220)
)

// Terminal is the console bar at the bottom of the window, shown and hidden with ESC or the grave key.
// Every submitted line is logged and run through the command registry; command errors are logged too.
// While it is open the simulation keys are ignored.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	history  []string
	recall   int // index into history while browsing with Up/Down; len(history) when not browsing
}

// New returns a closed Terminal that logs lines and runs them through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen returns true when the console is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Submit logs line and executes it. It is what Enter does.
func (t *Terminal) Submit(line string) {
	args, ok := commands.Parse(line)
	if !ok {
		return
	}
	t.log.Log(prompt + line)
	t.history = append(t.history, line)
	if len(t.history) > maxHistory {
		t.history = t.history[len(t.history)-maxHistory:]
	}
	t.recall = len(t.history)
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
	}
}

// Recall moves through submitted lines: step -1 is older, +1 is newer. Past the newest line it
// returns an empty buffer.
func (t *Terminal) Recall(step int) string {
	if len(t.history) == 0 {
		return ""
	}
	t.recall = min(max(t.recall+step, 0), len(t.history))
	if t.recall == len(t.history) {
		return ""
	}
	return t.history[t.recall]
}

// Update handles the toggle key and, when open, typing, history, backspace and enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyGrave) {
		t.open = !t.open
		// Drain the toggle keystroke so it does not land in the buffer.
		for rl.GetCharPressed() != 0 {
		}
		return
	}
	if !t.open {
		return
	}
	for {
		c := rl.GetCharPressed()
		if c == 0 {
			break
		}
		t.inputBuf += string(rune(c))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		t.inputBuf = t.Recall(-1)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		t.inputBuf = t.Recall(1)
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
}

// Draw draws the input bar at the bottom when open, and the recent log lines above it.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := rl.GetScreenWidth()
	barY := rl.GetScreenHeight() - BarHeight

	chatHeight := maxLinesOnScreen * lineHeight
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, int32(chatY), int32(screenW), int32(chatHeight), termChatBgColor)
	}
	lines := t.log.Lines()
	start := max(len(lines)-maxLinesOnScreen, 0)
	for i := start; i < len(lines); i++ {
		y := chatY + (i-start)*lineHeight + padding
		line := lines[i]
		if len(line) > 200 {
			line = line[:197] + "..."
		}
		rl.DrawText(line, int32(padding), int32(y), int32(fontSize), rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), termBarColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, termLineColor)
	rl.DrawText(prompt+t.inputBuf+"|", int32(padding), int32(barY+padding), int32(fontSize), rl.White)
}
