package tltui

// dragKind names the single interaction that may own the pointer.
type dragKind int

const (
	dragNone dragKind = iota
	dragMarker
	dragLoopIn
	dragLoopOut
	dragScrub
	dragResize
	dragMinimap
)

// dragState is a two-state machine: idle -> dragging -> idle. begin is a
// no-op while a drag is active, so at most one owner holds the pointer;
// end always returns to idle, including on teardown.
type dragState struct {
	kind dragKind
	id   string // marker or track id, depending on kind

	// Resize bookkeeping: the row where the drag started and the track
	// height at that moment.
	startRow    int
	startHeight float64
}

func (d *dragState) active() bool { return d.kind != dragNone }

func (d *dragState) begin(kind dragKind, id string) bool {
	if d.kind != dragNone {
		return false
	}
	d.kind = kind
	d.id = id
	return true
}

func (d *dragState) beginResize(id string, row int, height float64) bool {
	if !d.begin(dragResize, id) {
		return false
	}
	d.startRow = row
	d.startHeight = height
	return true
}

func (d *dragState) end() {
	*d = dragState{}
}
