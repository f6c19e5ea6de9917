package debugger

import (
	"fmt"
	"strings"

	ui "github.com/gizak/termui/v3"
	widgets "github.com/gizak/termui/v3/widgets"

	"github.com/handegar/wcsemu/base"
	"github.com/handegar/wcsemu/disasm"
	"github.com/handegar/wcsemu/dsp"
	"github.com/handegar/wcsemu/settings"
	"github.com/handegar/wcsemu/utils"
)

const (
	MainScreen int = iota
	MemoryScreen
	HelpScreen
)

type UIState struct {
	terminalWidth  int
	terminalHeight int
	centerLine     int

	currentScreen int
	memoryCursor  int

	codeView        *widgets.Paragraph
	metaInfoView    *widgets.Paragraph
	mainStateView   *widgets.Paragraph
	flagsView       *widgets.Paragraph
	versionLineView *widgets.Paragraph
	registerView    *widgets.Paragraph
	helpLineView    *widgets.Paragraph
}

var uiState UIState

var lastState *dsp.State
var lastSteps []base.Step
var lastOutL, lastOutR int

var boxTitleStyle = ui.NewStyle(ui.ColorRed, ui.ColorBlue)

func Init() {
	width, height := ui.TerminalDimensions()
	uiState.terminalHeight = height
	uiState.terminalWidth = width
	uiState.centerLine = max(width/2, 60)
}

/*
Returns the Event.ID string for events which is relevant for others
(quit, next sample etc.)
*/
func WaitForInput() string {
	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			if uiState.currentScreen != MainScreen {
				uiState.currentScreen = MainScreen
				redraw()
			} else {
				return "quit"
			}
		case "n", "<Down>":
			return "next op"
		case "6":
			moveMemoryCursor(1)
		case "4":
			moveMemoryCursor(-1)
		case "2":
			moveMemoryCursor(128)
		case "8":
			moveMemoryCursor(-128)
		case "s", "<PageDown>":
			return "next sample"
		case "S":
			return "next 100 samples"
		case "<C-s>":
			return "next 1000 samples"
		case "g":
			return "next 10000 samples"
		case "G":
			return "next 100000 samples"
		case "h", "<F1>", "?":
			toggleScreen(HelpScreen)
		case "m", "<F2>":
			toggleScreen(MemoryScreen)
		case "<Resize>":
			Init()
			redraw()
		}
	}

	return ""
}

func toggleScreen(screen int) {
	if uiState.currentScreen == screen {
		uiState.currentScreen = MainScreen
	} else {
		uiState.currentScreen = screen
	}
	redraw()
}

func redraw() {
	if lastState != nil {
		UpdateScreen(lastSteps, lastOutL, lastOutR, lastState)
	}
}

func UpdateScreen(steps []base.Step, outL int, outR int, state *dsp.State) {
	lastState = state
	lastSteps = steps
	lastOutL, lastOutR = outL, outR

	ui.Clear()
	switch uiState.currentScreen {
	case HelpScreen:
		renderHelpScreen()
	case MemoryScreen:
		renderMemoryMap(state, uiState.memoryCursor)
	case MainScreen:
		renderMainScreen(steps, outL, outR, state)
	default:
		utils.Assert(false, "Unknown ui-screen: %d", uiState.currentScreen)
	}
}

func renderMainScreen(steps []base.Step, outL int, outR int, state *dsp.State) {
	updateCodeView(steps, outL, outR, state)
	updateStateView(state)
	updateRegistersView(state)
	updateMetaInfoView(steps, state)
	updateHelpLineView()

	ui.Render(uiState.codeView, uiState.mainStateView, uiState.flagsView,
		uiState.registerView, uiState.metaInfoView, uiState.versionLineView,
		uiState.helpLineView)
}

func moveMemoryCursor(count int) {
	if lastState == nil {
		return
	}
	size := lastState.Memory.Size()
	uiState.memoryCursor = (uiState.memoryCursor + count*calculateMemoryValuesPerChar(size)) % size
	if uiState.memoryCursor < 0 {
		uiState.memoryCursor += size
	}

	if uiState.currentScreen == MemoryScreen {
		redraw()
	}
}

func updateHelpLineView() {
	helpLine := widgets.NewParagraph()
	helpLine.Text =
		"[ESC/q:](fg:black) Quit [|](fg:white,bg:black) " +
			"[F1/h/?:](fg:black) Help [|](fg:white,bg:black) " +
			"[F2/m:](fg:black) Memory [|](fg:white,bg:black) " +
			"[s/PgDn:](fg:black) Next sample [|](fg:white,bg:black) " +
			"[n/Down:](fg:black) Next step "

	helpLine.Border = false
	helpLine.TextStyle = boxTitleStyle
	helpLine.SetRect(0, uiState.terminalHeight-1, uiState.terminalWidth, uiState.terminalHeight)

	uiState.helpLineView = helpLine
}

func renderHelpScreen() {
	ypos := 0

	frame := widgets.NewParagraph()
	frame.Title = "  Help / Keys / Keywords  "
	frame.TitleStyle = boxTitleStyle
	frame.SetRect(0, 0, uiState.terminalWidth, uiState.terminalHeight)
	ypos += 1

	keys := widgets.NewList()
	keys.Border = false
	keys.TextStyle = ui.NewStyle(ui.ColorYellow)
	keys.SelectedRowStyle = ui.NewStyle(ui.ColorCyan)

	keys.Rows = append(keys.Rows, "Keys:")
	keys.Rows = append(keys.Rows, " h, F1, ?:          [This help-page](fg:white)")
	keys.Rows = append(keys.Rows, " ESC, q, CTRL-C:    [Quit debugger / exit help](fg:white)")
	keys.Rows = append(keys.Rows, " m, F2:             [Show delay memory map](fg:white)")
	keys.Rows = append(keys.Rows, " 6 (Keypad right):  [Memory map: Next position](fg:white)")
	keys.Rows = append(keys.Rows, " 4 (Keypad left):   [Memory map: Prev position](fg:white)")
	keys.Rows = append(keys.Rows, " 8 (Keypad up):     [Memory map: Back 128 positions](fg:white)")
	keys.Rows = append(keys.Rows, " 2 (Keypad down):   [Memory map: Skip 128 positions](fg:white)")
	keys.Rows = append(keys.Rows, " s, PgDn:           [Next sample](fg:white)")
	keys.Rows = append(keys.Rows, " SHIFT-s:           [Skip 100 samples](fg:white)")
	keys.Rows = append(keys.Rows, " CTRL-s:            [Skip 1000 samples](fg:white)")
	keys.Rows = append(keys.Rows, " g:                 [Skip 10.000 samples](fg:white)")
	keys.Rows = append(keys.Rows, " SHIFT-g:           [Skip 100.000 samples](fg:white)")
	keys.Rows = append(keys.Rows, " n, DownKey:        [Next step](fg:white)")

	keys.SetRect(1, ypos, uiState.terminalWidth-1, ypos+len(keys.Rows)+2)
	ypos += len(keys.Rows) + 1

	help := widgets.NewParagraph()
	help.Border = false
	help.Text = "[Keywords:](fg:cyan)\n" +
		" [IP](fg:yellow):        Current step. 0..63 is the left half, 64..127 the right half.\n" +
		" [WritePtr](fg:yellow):  Delay memory write position. Advances by one each sample.\n" +
		"             Taps are addressed as WritePtr - offset.\n" +
		" [LFO](fg:yellow):       0.37 Hz sine modulating taps longer than 5000 hardware samples.\n" +
		" [R2/IN](fg:yellow):     Receives the input sample before each half.\n" +
		" [R1/OUT](fg:yellow):    Captured after each half's output step (marked OUT).\n" +
		" [C0-CF](fg:yellow):     The 16 coefficients selected by the 4-bit code.\n"

	help.SetRect(1, ypos, uiState.terminalWidth-1, uiState.terminalHeight-1)

	ui.Render(frame, keys, help)
}

// Prints the code with a highlighted current step
func updateCodeView(steps []base.Step, outL int, outR int, state *dsp.State) {
	width := uiState.centerLine
	height := uiState.terminalHeight - 5 - 1

	code := widgets.NewParagraph()
	code.Title = fmt.Sprintf("  Steps (%d) ", len(steps))
	code.TitleStyle = boxTitleStyle

	code.Text = generateCodeListing(steps, outL, outR, state, height-2)
	code.SetRect(0, 0, width, height)

	uiState.codeView = code
}

func generateCodeListing(steps []base.Step, outL int, outR int, state *dsp.State, rows int) string {
	var lines []string

	lineNo := 0
	if state.IP > (rows / 2) {
		lineNo = state.IP - (rows / 2)
	}

	for i := 0; i < rows; i++ {
		pos := lineNo + i
		if pos > (len(steps) - 1) {
			break
		}

		codeColor := "fg:white"
		numColor := "fg:yellow"
		if pos == state.IP { // Cursor line?
			codeColor = "fg:red,bg:white,mod:bold"
			numColor = "fg:black,bg:white,mod:bold"
		}

		marker := ""
		if pos == outL || pos == outR {
			marker = " [OUT](fg:green)"
		}

		str := fmt.Sprintf("[%3d](%s)[  %s  ](%s)%s",
			pos, numColor,
			disasm.StepToString(steps[pos], pos, false), codeColor, marker)
		lines = append(lines, str)
	}
	return strings.Join(lines, "\n")
}

func overflowColored(v float64, min float64, max float64) string {
	color := ""
	if v > max || v < min {
		color = "fg:black,bg:red"
	} else if v > 0.0 {
		color = "bg:black"
	}
	return fmt.Sprintf("[%f](%s)", v, color)
}

// Prints all values in the state
func updateStateView(state *dsp.State) {
	half := "left"
	if state.IP >= base.StepsPerHalf {
		half = "right"
	}

	stateStr := fmt.Sprintf(" [IP:](fg:yellow,mod:bold) %d (%s half)\n"+
		" [WritePtr:](fg:yellow) %d of %d\n"+
		" [LFO:](fg:yellow) %f [(phase %.4f)](fg:gray)\n"+
		" [IN:](fg:yellow) %f, [OUT:](fg:green) %s\n",
		state.IP, half,
		state.Memory.WritePtr, state.Memory.Size(),
		state.LFO.GetSine(), state.LFO.GetPhase(),
		state.Registers[base.InputRegister].Value,
		overflowColored(state.Registers[base.OutputRegister].Value, -1.0, 1.0))

	df := state.DebugFlags
	flagsStr := fmt.Sprintf(" [Product clamps:](fg:cyan) %d\n"+
		" [Register clamps:](fg:cyan) %d\n"+
		" [Limited writes:](fg:cyan) %d\n"+
		" [Capture > 1.0:](fg:cyan) L=%d R=%d\n",
		df.ProductClampCount, df.RegisterClampCount, df.MemoryLimiterCount,
		df.CaptureOverflowL, df.CaptureOverflowR)

	vPos := 0
	stateP := widgets.NewParagraph()
	stateP.Title = fmt.Sprintf("  State (sample #%d)  ", state.SampleNum)
	stateP.TitleStyle = boxTitleStyle
	stateP.BorderStyle = ui.NewStyle(ui.ColorGreen)
	stateP.Text = stateStr
	stateP.SetRect(uiState.centerLine-1, vPos, uiState.terminalWidth, vPos+6)
	vPos += 6

	flagsP := widgets.NewParagraph()
	flagsP.Title = "  Counters  "
	flagsP.TitleStyle = boxTitleStyle
	flagsP.BorderStyle = ui.NewStyle(ui.ColorGreen)
	flagsP.Text = flagsStr
	flagsP.SetRect(uiState.centerLine-1, vPos, uiState.terminalWidth, vPos+6)

	uiState.mainStateView = stateP
	uiState.flagsView = flagsP
}

func updateRegistersView(state *dsp.State) {
	vPos := 12

	regStr := ""
	for i := 0; i < base.NumRegisters; i++ {
		regStr += fmt.Sprintf(" [%-7s](fg:cyan) %s\n",
			base.RegisterSymbols[uint8(i)]+":",
			overflowColored(state.Registers[i].Value, -1.0, 1.0))
	}

	regP := widgets.NewParagraph()
	regP.Title = "  Registers  "
	regP.TitleStyle = boxTitleStyle
	regP.BorderStyle = ui.NewStyle(ui.ColorGreen)
	regP.Text = regStr
	regP.SetRect(uiState.centerLine-1, vPos, uiState.terminalWidth, uiState.terminalHeight-6)

	uiState.registerView = regP
}

// Prints misc info regarding current state and step
func updateMetaInfoView(steps []base.Step, state *dsp.State) {
	step := steps[state.IP]
	kind := disasm.StepKind(step)
	doc := disasm.StepDocs[kind]

	theight := uiState.terminalHeight - 1 // Make one line free at the bottom for keys

	infoP := widgets.NewParagraph()
	infoP.Title = "  Info  "
	infoP.TitleStyle = boxTitleStyle
	infoP.Text = fmt.Sprintf("[%s](fg:red): [%s](fg:yellow) (%s) [ctrl=%s](fg:gray)\n[%s](fg:cyan)",
		kind, doc.Short, doc.Formulae, base.CtrlToString(step.Ctrl), doc.Long)
	infoP.SetRect(0, theight-5, uiState.terminalWidth, theight)

	versionP := widgets.NewParagraph()
	versionP.Border = false
	versionP.Text = fmt.Sprintf("[v%s](fg:blue)", settings.Version)
	versionP.SetRect(uiState.terminalWidth-len(settings.Version)-6, theight-1,
		uiState.terminalWidth-3, theight)

	uiState.metaInfoView = infoP
	uiState.versionLineView = versionP
}
