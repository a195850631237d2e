package buildview

// Frame size limits. A frame narrower than minFrameWidth or shorter than
// minFrameHeight is never produced, even on a smaller terminal.
const (
	minFrameWidth   = 60
	minFrameHeight  = 10
	minContentRows  = 3
	frameChromeRows = 6 // top border, title, separator, footer separator, footer, bottom border
	frameChromeCols = 6 // border and two columns of padding on each side
)

// Geometry is the modal frame position on screen and the size of its
// content area. Frame coordinates are 0-based and inclusive.
type Geometry struct {
	FrameTop    int
	FrameLeft   int
	FrameBottom int
	FrameRight  int

	ContentRows int
	ContentCols int
}

// Width returns the frame width in columns.
func (g Geometry) Width() int { return g.FrameRight - g.FrameLeft + 1 }

// Height returns the frame height in rows.
func (g Geometry) Height() int { return g.FrameBottom - g.FrameTop + 1 }

// CalcGeometry derives the modal frame for a terminal of rows x cols.
//
// The frame is 80% of the terminal width, but at least 60 columns, and 90%
// of its height, but at least 10 rows, centred in both directions. Content
// loses six rows and six columns to the frame chrome. Degenerate sizes are
// clamped; the result is never negative.
func CalcGeometry(rows, cols int) Geometry {
	rows = max(rows, 0)
	cols = max(cols, 0)

	width := cols * 8 / 10
	left := (cols - width) / 2
	if width < minFrameWidth {
		width = minFrameWidth
		left = max((cols-width)/2, 0)
	}

	height := max(rows*9/10, minFrameHeight)
	top := max((rows-height)/2, 0)

	return Geometry{
		FrameTop:    top,
		FrameLeft:   left,
		FrameBottom: top + height - 1,
		FrameRight:  left + width - 1,
		ContentRows: max(height-frameChromeRows, minContentRows),
		ContentCols: width - frameChromeCols,
	}
}
