package debugger

import (
	"fmt"
	"strings"

	ui "github.com/gizak/termui/v3"
	widgets "github.com/gizak/termui/v3/widgets"

	"github.com/handegar/wcsemu/dsp"
)

const VALUE_TABLE_ROWS = 1
const VALUE_COLOR = "(fg:red)"

func renderMemoryMap(state *dsp.State, cursorPosition int) {
	width, height := uiState.terminalWidth, uiState.terminalHeight
	size := state.Memory.Size()
	ypos := 0

	memMap := widgets.NewParagraph()
	memMap.Title = fmt.Sprintf("  '▓': 3/3 set | '▒': 2/3 set | '░': 1/3 set | '.': Zero  "+
		"(sample #%d)  ", state.SampleNum)
	memMap.TitleStyle = ui.NewStyle(ui.ColorYellow, ui.ColorBlue)
	memMapTxt, valuesPerChar := buildMemMapText(width-1, state)
	memMap.Text = colorMemoryMap(memMapTxt)
	memMap.BorderStyle = ui.NewStyle(ui.ColorGreen)
	memMap.SetRect(0, 0, width, height-(VALUE_TABLE_ROWS+3))
	ypos += height - (VALUE_TABLE_ROWS + 3)

	infoP := widgets.NewParagraph()
	infoP.Border = false
	txt := fmt.Sprintf("'W': WritePtr | One character is %d of %d values", valuesPerChar, size)
	infoP.Text = fmt.Sprintf("[%s](fg:blue)", txt)
	infoP.SetRect(width-len(txt)-4, ypos-1, width-2, ypos)

	zoomTable := buildZoomTable(state, cursorPosition, valuesPerChar)
	zoomTable.SetRect(0, ypos, width, ypos+VALUE_TABLE_ROWS+3)

	ui.Render(memMap, infoP, zoomTable)
}

func buildZoomTable(state *dsp.State, cursorPosition int, valuesPerChar int) *widgets.Table {
	table := widgets.NewTable()
	table.RowSeparator = false

	columns := valuesPerChar
	if columns > 8 {
		columns = 8
	}

	var header []string
	var values []string
	for i := 0; i < columns; i++ {
		pos := (cursorPosition + i) % state.Memory.Size()
		header = append(header, fmt.Sprintf("%d", pos))
		values = append(values, fmt.Sprintf("%f", state.Memory.Read(pos)))
	}
	table.Rows = append(table.Rows, header, values)
	table.RowStyles[0] = ui.NewStyle(ui.ColorYellow)
	table.RowStyles[1] = ui.NewStyle(ui.ColorWhite, ui.ColorBlack, ui.ModifierBold)

	return table
}

func calculateMemoryValuesPerChar(size int) int {
	width, height := uiState.terminalWidth, uiState.terminalHeight
	width = width - 1
	numChars := width * (height - ((VALUE_TABLE_ROWS + 3) + 3))
	if numChars <= 0 {
		return size
	}

	ret := size / numChars
	if ret < 8 {
		return 8
	}
	return ret
}

func buildMemMapText(width int, state *dsp.State) (string, int) {
	width = width - 1
	size := state.Memory.Size()
	valuesPerChar := calculateMemoryValuesPerChar(size)
	writePtr := state.Memory.WritePtr

	var sb strings.Builder
	col := 0
	for c := 0; c < size; c += valuesPerChar {
		if writePtr >= c && writePtr < c+valuesPerChar {
			sb.WriteString("W")
		} else {
			f := float64(state.Memory.CountNonZero(c, c+valuesPerChar)) / float64(valuesPerChar)
			if f == 0 {
				sb.WriteString(".")
			} else if f < 1.0/3.0 {
				sb.WriteString("░")
			} else if f < 2.0/3.0 {
				sb.WriteString("▒")
			} else {
				sb.WriteString("▓")
			}
		}

		col += 1
		if col == width {
			sb.WriteString("\n")
			col = 0
		}
	}

	return sb.String(), valuesPerChar
}

// Wraps runs of non-zero cells in termui color markup
func colorMemoryMap(mem string) string {
	var sb strings.Builder
	coloring := false

	for _, r := range mem {
		nonZero := r != '.' && r != '\n' && r != 'W'
		if nonZero && !coloring {
			sb.WriteString("[")
			coloring = true
		} else if !nonZero && coloring {
			sb.WriteString("]" + VALUE_COLOR)
			coloring = false
		}
		sb.WriteRune(r)
	}

	if coloring {
		sb.WriteString("]" + VALUE_COLOR)
	}
	return sb.String()
}
