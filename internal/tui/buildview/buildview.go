package buildview

import (
	"github.com/Iron-Ham/buildview/internal/build"
	"github.com/Iron-Ham/buildview/internal/errors"
)

// Action is a key press already translated by the keymap.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionPageUp
	ActionPageDown
	ActionEnter
	ActionEscape
	ActionNextError
	ActionPrevError
	ActionTop
	ActionBottom
	ActionCopy
)

// String returns the action name used in logs.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionPageUp:
		return "page_up"
	case ActionPageDown:
		return "page_down"
	case ActionEnter:
		return "enter"
	case ActionEscape:
		return "escape"
	case ActionNextError:
		return "next_error"
	case ActionPrevError:
		return "prev_error"
	case ActionTop:
		return "top"
	case ActionBottom:
		return "bottom"
	case ActionCopy:
		return "copy"
	default:
		return "unknown"
	}
}

// Outcome tells the caller what an action did.
type Outcome struct {
	// Redraw is set when the modal should be repainted.
	Redraw bool
	// Hidden is set when the action closed the modal.
	Hidden bool
	// Jump is set after Enter opened a diagnostic.
	Jump *Jump
	// Copy holds the selected line's text after ActionCopy.
	Copy string
	// Err is a failure to report in the status line; state is unchanged.
	Err error
}

// Frame is everything the painter needs for one redraw.
type Frame struct {
	Geometry Geometry
	Title    string
	Rows     []Row
	Footer   string
}

// BuildView is the build output modal. It borrows the OutputLog; the build
// runner owns it and outlives the view.
type BuildView struct {
	log     OutputLog
	sel     Selection
	geom    Geometry
	spinner Spinner
	locator *Locator

	rows, cols int
	visible    bool
}

// New creates a hidden view with no log attached.
func New(locator *Locator, spinner Spinner) *BuildView {
	return &BuildView{
		locator: locator,
		spinner: spinner,
		geom:    CalcGeometry(0, 0),
	}
}

// Attach points the view at a new build's log and resets the selection.
func (v *BuildView) Attach(log OutputLog) {
	v.log = log
	v.sel = Selection{}
}

// Log returns the attached log, which may be nil.
func (v *BuildView) Log() OutputLog { return v.log }

// Show makes the modal visible, recomputing its geometry and selecting the
// last line.
func (v *BuildView) Show() {
	v.visible = true
	v.geom = CalcGeometry(v.rows, v.cols)
	v.ScrollToEnd()
}

// Hide closes the modal and resets the selection. The build keeps running.
func (v *BuildView) Hide() {
	v.visible = false
	v.sel = Selection{}
}

// Visible reports whether the modal is shown.
func (v *BuildView) Visible() bool { return v.visible }

// RecalcGeometry records the terminal size and recomputes the frame.
func (v *BuildView) RecalcGeometry(rows, cols int) {
	v.rows, v.cols = rows, cols
	v.geom = CalcGeometry(rows, cols)
}

// Geometry returns the current frame geometry.
func (v *BuildView) Geometry() Geometry { return v.geom }

// Selection returns the current selection state.
func (v *BuildView) Selection() Selection { return v.sel }

// AdvanceSpinner steps the running indicator.
func (v *BuildView) AdvanceSpinner() { v.spinner.Advance() }

// Spinner returns the running indicator.
func (v *BuildView) Spinner() *Spinner { return &v.spinner }

// ScrollToEnd selects the last line of the log.
func (v *BuildView) ScrollToEnd() {
	v.sel.ScrollToEnd(v.lineCount(), v.geom.ContentRows)
}

// SelectedLine returns the selected line, or false when the log is empty.
func (v *BuildView) SelectedLine() (build.Line, bool) {
	if v.log == nil {
		return build.Line{}, false
	}
	return v.log.At(v.sel.Selected)
}

// HasNavigableSelection reports whether the selected line names a file
// and a positive line number.
func (v *BuildView) HasNavigableSelection() bool {
	line, ok := v.SelectedLine()
	return ok && line.Navigable()
}

// Redraw reframes the selection and renders the visible rows.
func (v *BuildView) Redraw() Frame {
	v.sel.Reframe(v.lineCount(), v.geom.ContentRows)
	return Frame{
		Geometry: v.geom,
		Title:    Title(v.log, &v.spinner),
		Rows:     RenderRows(v.log, v.sel, v.geom),
		Footer:   Footer(),
	}
}

// RouteKeyAction applies one key action. Selection moves are not reframed
// here; Redraw does that.
func (v *BuildView) RouteKeyAction(a Action) Outcome {
	n := v.lineCount()
	rows := v.geom.ContentRows

	switch a {
	case ActionUp:
		v.sel.MoveUp(n)
	case ActionDown:
		v.sel.MoveDown(n)
	case ActionPageUp:
		v.sel.PageUp(n, rows)
	case ActionPageDown:
		v.sel.PageDown(n, rows)
	case ActionTop:
		v.sel.Home(n)
	case ActionBottom:
		v.sel.ScrollToEnd(n, rows)
	case ActionNextError:
		if v.log != nil {
			v.sel.NextDiagnostic(v.log)
		}
	case ActionPrevError:
		if v.log != nil {
			v.sel.PrevDiagnostic(v.log)
		}
	case ActionEscape:
		v.Hide()
		return Outcome{Redraw: true, Hidden: true}
	case ActionEnter:
		return v.enter()
	case ActionCopy:
		line, ok := v.SelectedLine()
		if !ok {
			return Outcome{Err: errors.ErrNoSelection}
		}
		if line.Text == "" {
			return Outcome{Err: errors.ErrNothingToCopy}
		}
		return Outcome{Copy: line.Text}
	default:
		return Outcome{}
	}
	return Outcome{Redraw: true}
}

func (v *BuildView) enter() Outcome {
	line, ok := v.SelectedLine()
	if !ok {
		return Outcome{Redraw: true, Err: errors.ErrNoSelection}
	}
	if v.locator == nil || !v.HasNavigableSelection() {
		return Outcome{Redraw: true, Err: errors.ErrNoDiagnostic}
	}

	jump, err := v.locator.Locate(line.Text)
	if err != nil {
		return Outcome{Redraw: true, Err: err}
	}

	v.Hide()
	return Outcome{Redraw: true, Hidden: true, Jump: &jump}
}

func (v *BuildView) lineCount() int {
	if v.log == nil {
		return 0
	}
	return v.log.Len()
}
