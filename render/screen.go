package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blob-morph/core"
)

// halfBlock carries two vertical pixels per terminal cell: the
// foreground paints the upper pixel, the background the lower
const halfBlock = '▀'

// BufferSize returns the pixel dimensions backing a cols-by-rows
// terminal
func BufferSize(cols, rows int) (int, int) {
	return cols, rows * 2
}

// Present writes the buffer to the screen in half-block cells and
// flushes it
func Present(screen tcell.Screen, buf *Buffer) {
	cols, rows := screen.Size()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top, ok := buf.At(cx, cy*2)
			if !ok {
				continue
			}
			bottom, _ := buf.At(cx, cy*2+1)
			style := tcell.StyleDefault.
				Foreground(toTcell(top)).
				Background(toTcell(bottom))
			screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	screen.Show()
}

func toTcell(c core.Color) tcell.Color {
	r, g, b := c.RGB8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
