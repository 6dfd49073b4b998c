package keepsake

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	logMu     sync.Mutex
	logOutput io.Writer = os.Stderr
	logDebug  bool
)

// SetLogOutput redirects diagnostics. A nil writer discards them.
func SetLogOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	if w == nil {
		w = io.Discard
	}
	logOutput = w
}

// SetDebug enables debug-only diagnostics such as tick timing and poll failures.
func SetDebug(on bool) {
	logMu.Lock()
	defer logMu.Unlock()
	logDebug = on
}

func debugEnabled() bool {
	logMu.Lock()
	defer logMu.Unlock()
	return logDebug
}

// logf prints a diagnostic that is always shown.
func logf(format string, args ...any) {
	logMu.Lock()
	defer logMu.Unlock()
	_, _ = fmt.Fprintf(logOutput, "[keepsake] "+format+"\n", args...)
}

// Logf prints a diagnostic through the shared writer. Frontend packages use
// it so their messages carry the same prefix.
func Logf(format string, args ...any) { logf(format, args...) }

// debugf prints a diagnostic only in debug mode.
func debugf(format string, args ...any) {
	logMu.Lock()
	defer logMu.Unlock()
	if !logDebug {
		return
	}
	_, _ = fmt.Fprintf(logOutput, "[keepsake] "+format+"\n", args...)
}

// debugStatsInterval is how many ticks are aggregated per stats line.
const debugStatsInterval = 300

// debugStats accumulates per-tick timing. Only populated in debug mode.
type debugStats struct {
	ticks      int
	updateTime time.Duration
	renderTime time.Duration
	inputTime  time.Duration
	commands   int
}

func (s *debugStats) add(update, render, input time.Duration, commands int) {
	s.ticks++
	s.updateTime += update
	s.renderTime += render
	s.inputTime += input
	s.commands += commands
}

// flush prints the averages and resets once enough ticks were collected.
func (s *debugStats) flush(frame uint64) {
	if s.ticks < debugStatsInterval {
		return
	}
	n := time.Duration(s.ticks)
	debugf("frame %d | update: %v | render: %v | input: %v | commands/tick: %d",
		frame, s.updateTime/n, s.renderTime/n, s.inputTime/n, s.commands/s.ticks)
	*s = debugStats{}
}
