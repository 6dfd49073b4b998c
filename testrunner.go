package keepsake

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Button string  `json:"button,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input events and screenshots across ticks
// for automated runs. Attach it to a Loop via SetTestRunner.
//
// Supported actions: "click" (left press at x,y), "press" (press at x,y with
// an optional "button" of left, right or middle), "wait" (frames), "quit"
// and "screenshot" (label).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Loop via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "wait", "quit", "screenshot":
		case "press":
			if _, ok := parseButton(st.Button); !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown button %q", i, st.Button)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func parseButton(s string) (MouseButton, bool) {
	switch s {
	case "", "left":
		return MouseButtonLeft, true
	case "right":
		return MouseButtonRight, true
	case "middle":
		return MouseButtonMiddle, true
	}
	return 0, false
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick. Called from Loop.Tick before the
// clock advances.
func (r *TestRunner) step(l *Loop) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if l.Queue.Len() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		l.screenshot(st.Label)
	case "click":
		l.Queue.InjectClick(st.X, st.Y)
	case "press":
		b, _ := parseButton(st.Button)
		l.Queue.InjectPress(st.X, st.Y, b)
	case "quit":
		l.Queue.InjectQuit()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && l.Queue.Len() == 0 {
		r.done = true
	}
}
