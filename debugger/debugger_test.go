package debugger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/handegar/wcsemu/dsp"
)

func Test_ColorMemoryMap(t *testing.T) {
	got := colorMemoryMap("..▓▒.W\n░")
	expected := "..[▓▒](fg:red).W\n[░](fg:red)"
	if got != expected {
		t.Errorf("FAILED: Got %q, expected %q", got, expected)
	}
}

func Test_BuildMemMapText(t *testing.T) {
	uiState.terminalWidth = 11
	uiState.terminalHeight = 20

	state := dsp.NewState(800, 20480)
	state.Memory.WritePtr = 0
	state.Memory.Fill(1.0)

	text, perChar := buildMemMapText(uiState.terminalWidth-1, state)
	if perChar != 8 {
		t.Fatalf("FAILED: Got %d values per char, expected 8", perChar)
	}
	if !strings.HasPrefix(text, "W▓") {
		t.Errorf("FAILED: Got %q", text)
	}
	if strings.Count(text, "\n") != 800/8/9 {
		t.Errorf("FAILED: Got %d lines", strings.Count(text, "\n"))
	}
}

func Test_GenerateCodeListing(t *testing.T) {
	e, err := dsp.NewEngine(0, 44100)
	if err != nil {
		t.Fatal(err)
	}
	outL, outR := e.OutputSteps()
	state := e.State()
	state.IP = outL

	listing := generateCodeListing(e.Steps(), outL, outR, state, 10)
	lines := strings.Split(listing, "\n")
	if len(lines) != 10 {
		t.Fatalf("FAILED: Got %d lines, expected 10", len(lines))
	}
	if !strings.Contains(lines[5], "[OUT](fg:green)") || !strings.Contains(lines[5], "mod:bold") {
		t.Errorf("FAILED: Output step not highlighted: %q", lines[5])
	}
}

func Test_SessionSkipsWithoutUI(t *testing.T) {
	e, err := dsp.NewEngine(1, 20480)
	if err != nil {
		t.Fatal(err)
	}
	s := NewSession(e.Steps(), 60, 124)
	s.SkipTo(1000)

	// Every step is before the stop sample, so no screen is touched
	for i := 0; i < 128; i++ {
		s.Trace(i, e.Steps()[i], e.State())
	}
	if s.Quit() {
		t.Errorf("FAILED: Session must not quit")
	}
}

func Test_TracerOutput(t *testing.T) {
	var buf bytes.Buffer
	savedOutput, savedNoColor := color.Output, color.NoColor
	color.Output, color.NoColor = &buf, true
	defer func() { color.Output, color.NoColor = savedOutput, savedNoColor }()

	e, err := dsp.NewEngine(0, 44100)
	if err != nil {
		t.Fatal(err)
	}
	outL, outR := e.OutputSteps()
	tracer := NewTracer(outL, outR, false)
	for i, step := range e.Steps() {
		tracer.Trace(i, step, e.State())
	}

	out := buf.String()
	if strings.Count(out, "<- OUT") != 2 {
		t.Errorf("FAILED: Expected two output steps in:\n%s", out)
	}
	if strings.Contains(out, "%!") {
		t.Errorf("FAILED: Malformed format verbs in:\n%s", out)
	}
	if !strings.HasPrefix(out, "sample=0 ") {
		t.Errorf("FAILED: Missing sample header: %q", out[:20])
	}
}
