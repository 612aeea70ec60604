package tltui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/clipline/clipline/internal/media"
	"github.com/clipline/clipline/internal/timecode"
	"github.com/clipline/clipline/internal/timeline"
	"github.com/clipline/clipline/internal/tui/render"
	"github.com/clipline/clipline/internal/watcher"
)

const (
	// tickRate drives playback advancement and scroll easing.
	tickRate = 50 * time.Millisecond

	// Auto-scroll margins in virtual pixels: while playing, a playhead
	// crossing either margin starts an eased recenter of the view.
	autoScrollRightPx = 150.0
	autoScrollLeftPx  = 100.0

	// scrollEase is the fraction of the remaining distance covered per tick
	// while recentering.
	scrollEase = 0.3

	// statusTTL is how long a status message stays on the status line.
	statusTTL = 4 * time.Second
)

type tickMsg time.Time

type waveMsg struct {
	wave  []float64
	width float64
}

type thumbsMsg struct {
	colors []media.RGB
	width  float64
}

type reloadMsg struct{}

// Model is the timeline editor container. It owns the event loop: sizing,
// the playback tick, pointer routing through layout regions, the drag
// machine, and composition of every render surface into one frame.
type Model struct {
	ctx  *Context
	keys keyMap
	rng  *rand.Rand

	widthCells  int
	heightCells int
	ready       bool

	drag     dragState
	menu     contextMenu
	tcInput  timecodeInput
	showHelp bool

	// scrollTarget, when ≥0, is eased toward each tick.
	scrollTarget float64

	// collapsedIDs remembers which tracks the collapse toggle hid so
	// expanding restores exactly those.
	collapsedIDs []string

	wave   []float64
	thumbs []media.RGB
	// requestedWidth is the track width the current media assets were
	// sampled for. A zoom change invalidates it and triggers a re-request.
	requestedWidth float64

	watch       *watcher.FileWatcher
	status      string
	statusUntil time.Time
	now         time.Time
	lastTick    time.Time
}

// NewModel builds the editor around an already-probed clip. The rng seeds
// the synthetic waveform fallback so renders are reproducible in tests.
func NewModel(ctx *Context, rng *rand.Rand, watch *watcher.FileWatcher) Model {
	return Model{
		ctx:          ctx,
		keys:         defaultKeyMap(),
		rng:          rng,
		tcInput:      newTimecodeInput(ctx.Theme),
		scrollTarget: -1,
		watch:        watch,
		now:          time.Now(),
		lastTick:     time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick()}
	if m.watch != nil {
		cmds = append(cmds, waitForReload(m.watch))
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func waitForReload(w *watcher.FileWatcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Events; !ok {
			return nil
		}
		return reloadMsg{}
	}
}

// loadMedia samples the waveform and thumbnail strip for the current track
// width. Failures fall back silently: a synthetic waveform and a flat
// placeholder strip.
func (m *Model) loadMedia() tea.Cmd {
	st := m.ctx.Store.Snapshot()
	dur := m.ctx.Duration()
	width := st.TrackWidth()
	m.requestedWidth = width

	buckets := WaveBucketCount(width)
	times := ThumbSlotTimes(width, dur)
	prober := m.ctx.Prober
	path := m.ctx.Path
	rng := m.rng

	waveCmd := func() tea.Msg {
		wave, err := prober.Waveform(context.Background(), path, buckets)
		if err != nil {
			wave = media.SyntheticWaveform(buckets, rng)
		}
		return waveMsg{wave: wave, width: width}
	}
	thumbCmd := func() tea.Msg {
		colors, err := prober.ThumbnailColors(context.Background(), path, times)
		if err != nil {
			colors = nil
		}
		return thumbsMsg{colors: colors, width: width}
	}
	return tea.Batch(waveCmd, thumbCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.widthCells = msg.Width
		m.heightCells = msg.Height
		m.ctx.Store.SetContainerWidth(float64(msg.Width) * render.CellWidthPx)
		var cmd tea.Cmd
		if !m.ready {
			m.ready = true
			cmd = m.loadMedia()
		}
		return m, cmd

	case tickMsg:
		return m.updateTick(time.Time(msg))

	case waveMsg:
		m.wave = msg.wave
		return m, nil

	case thumbsMsg:
		m.thumbs = msg.colors
		return m, nil

	case reloadMsg:
		m.setStatus("media changed, reloading")
		cmds := []tea.Cmd{m.loadMedia()}
		if m.watch != nil {
			cmds = append(cmds, waitForReload(m.watch))
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) updateTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := now.Sub(m.lastTick).Seconds()
	if dt > 0.5 {
		dt = 0.5
	}
	m.lastTick = now
	m.now = now

	if m.status != "" && now.After(m.statusUntil) {
		m.status = ""
	}

	st := m.ctx.Store.Snapshot()
	p := m.ctx.Player

	var loopIn, loopOut float64
	looping := false
	if st.Loop != nil && st.Loop.Enabled {
		loopIn, loopOut, looping = st.Loop.InPoint, st.Loop.OutPoint, true
	}
	moved := p.Advance(dt, loopIn, loopOut, looping)

	// Keep the playhead on screen during playback.
	if moved && p.IsPlaying() {
		m.followPlayhead(st)
	}

	// Ease toward a minimap recenter target.
	if m.scrollTarget >= 0 {
		cur := m.ctx.Store.Snapshot().ScrollLeft
		delta := m.scrollTarget - cur
		if delta < 1 && delta > -1 {
			m.ctx.Store.SetScrollLeft(m.scrollTarget)
			m.scrollTarget = -1
		} else {
			m.ctx.Store.SetScrollLeft(cur + delta*scrollEase)
		}
	}

	// A zoom change since the last media request means the strip densities
	// no longer match. Re-sample once interaction has settled.
	if m.ready && !m.drag.active() {
		if w := m.ctx.Store.Snapshot().TrackWidth(); w != m.requestedWidth {
			return m, tea.Batch(tick(), m.loadMedia())
		}
	}
	return m, tick()
}

// followPlayhead keeps the playhead inside the auto-scroll margins. A
// playhead crossing either margin starts an eased recenter that leaves it
// at the middle of the viewport, clamped so the view never pages past the
// end of the track.
func (m *Model) followPlayhead(st timeline.State) {
	lay := m.layout(st)
	viewPx := float64(lay.TrackCols) * render.CellWidthPx
	px := timecode.TimeToX(m.ctx.Player.CurrentTime(), m.ctx.Duration(), st.TrackWidth())
	rel := px - st.ScrollLeft
	if rel > viewPx-autoScrollRightPx || rel < autoScrollLeftPx {
		m.scrollTarget = timecode.Clamp(px-viewPx/2, 0, maxScroll(st, lay))
	}
}

// setScroll stores a scroll offset clamped into [0, maxScroll].
func (m *Model) setScroll(left float64, st timeline.State, lay Layout) {
	m.ctx.Store.SetScrollLeft(timecode.Clamp(left, 0, maxScroll(st, lay)))
}

// setStatus shows a transient message on the status line.
func (m *Model) setStatus(s string) {
	m.status = s
	m.statusUntil = m.now.Add(statusTTL)
}

func (m Model) layout(st timeline.State) Layout {
	return computeLayout(m.widthCells, st, m.ctx.Duration())
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal surfaces consume everything first.
	if m.tcInput.active {
		return m.updateTimecodeKey(msg)
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.menu.open {
		return m.updateMenuKey(msg)
	}

	p := m.ctx.Player
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		if m.watch != nil {
			m.watch.Close()
		}
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.showHelp = true
	case key.Matches(msg, keys.PlayPause):
		p.PlayPause()
	case key.Matches(msg, keys.FrameBack):
		p.StepFrames(-1)
	case key.Matches(msg, keys.FrameFwd):
		p.StepFrames(1)
	case key.Matches(msg, keys.SecondBack):
		p.SkipBackward()
	case key.Matches(msg, keys.SecondFwd):
		p.SkipForward()
	case key.Matches(msg, keys.ShuttleBack):
		p.ShuttleBackward()
	case key.Matches(msg, keys.ShuttleStop):
		p.StopShuttle()
	case key.Matches(msg, keys.ShuttleFwd):
		p.ShuttleForward()
	case key.Matches(msg, keys.Home):
		p.Home()
		m.ctx.Store.SetScrollLeft(0)
	case key.Matches(msg, keys.End):
		p.End()
		m.followPlayhead(m.ctx.Store.Snapshot())
	case key.Matches(msg, keys.ZoomIn):
		m.zoomAroundPlayhead(timeline.ZoomStep)
	case key.Matches(msg, keys.ZoomOut):
		m.zoomAroundPlayhead(-timeline.ZoomStep)
	case key.Matches(msg, keys.AddMarker):
		mk := m.ctx.Store.AddMarker(p.CurrentTime(), "", "")
		m.setStatus("marker at " + timecode.FormatTime(mk.Time))
	case key.Matches(msg, keys.LoopIn):
		m.ctx.Store.SetLoopIn(p.CurrentTime())
	case key.Matches(msg, keys.LoopOut):
		m.ctx.Store.SetLoopOut(p.CurrentTime())
	case key.Matches(msg, keys.ToggleSnap):
		st := m.ctx.Store.Snapshot()
		m.ctx.Store.SetSnapEnabled(!st.SnapEnabled)
	case key.Matches(msg, keys.ToggleTracks):
		m.toggleCollapse()
	case key.Matches(msg, keys.Timecode):
		m.tcInput.open(p.CurrentTime())
	case key.Matches(msg, keys.SpeedDown):
		m.stepSpeed(-1)
	case key.Matches(msg, keys.SpeedUp):
		m.stepSpeed(1)
	}
	return m, nil
}

func (m Model) updateTimecodeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.tcInput.close()
		return m, nil
	case tea.KeyEnter:
		if t, ok := m.tcInput.submit(m.now); ok {
			m.ctx.Player.Seek(t)
			m.followPlayhead(m.ctx.Store.Snapshot())
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.tcInput.input, cmd = m.tcInput.input.Update(msg)
	return m, cmd
}

func (m Model) updateMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.menu.open = false
	case "up", "k":
		m.menu.move(-1)
	case "down", "j":
		m.menu.move(1)
	case "enter":
		if action, ok := m.menu.selected(); ok {
			m.runMenuAction(action, m.menu.time)
		}
		m.menu.open = false
	}
	return m, nil
}

func (m *Model) runMenuAction(action menuAction, t float64) {
	switch action {
	case menuAddMarker:
		m.ctx.Store.AddMarker(t, "", "")
	case menuLoopIn:
		m.ctx.Store.SetLoopIn(t)
	case menuLoopOut:
		m.ctx.Store.SetLoopOut(t)
	case menuClearLoop:
		m.ctx.Store.SetLoopRegion(nil)
	case menuZoomFit:
		m.ctx.Store.SetZoom(1)
		m.ctx.Store.SetScrollLeft(0)
		m.scrollTarget = -1
	case menuZoomReset:
		m.ctx.Store.SetZoom(1)
	}
}

// zoomAroundPlayhead changes zoom while keeping the playhead's on-screen
// position fixed.
func (m *Model) zoomAroundPlayhead(delta float64) {
	st := m.ctx.Store.Snapshot()
	dur := m.ctx.Duration()
	before := timecode.TimeToX(m.ctx.Player.CurrentTime(), dur, st.TrackWidth()) - st.ScrollLeft

	m.ctx.Store.AdjustZoom(delta)

	after := m.ctx.Store.Snapshot()
	px := timecode.TimeToX(m.ctx.Player.CurrentTime(), dur, after.TrackWidth())
	m.setScroll(px-before, after, m.layout(after))
	m.scrollTarget = -1
}

// zoomAroundCol anchors wheel zoom at the pointer column instead.
func (m *Model) zoomAroundCol(delta float64, col int, lay Layout) {
	st := m.ctx.Store.Snapshot()
	dur := m.ctx.Duration()
	relPx := render.ColCenterPx(col - lay.GutterCols)
	t := timecode.XToTime(st.ScrollLeft+relPx, dur, st.TrackWidth())

	m.ctx.Store.AdjustZoom(delta)

	after := m.ctx.Store.Snapshot()
	px := timecode.TimeToX(t, dur, after.TrackWidth())
	m.setScroll(px-relPx, after, lay)
	m.scrollTarget = -1
}

func (m *Model) stepSpeed(dir int) {
	st := m.ctx.Store.Snapshot()
	idx := 0
	for i, s := range timeline.PlaybackSpeeds {
		if s == st.PlaybackSpeed {
			idx = i
			break
		}
	}
	idx += dir
	if idx < 0 || idx >= len(timeline.PlaybackSpeeds) {
		return
	}
	speed := timeline.PlaybackSpeeds[idx]
	m.ctx.Store.SetPlaybackSpeed(speed)
	m.ctx.Player.SetSpeed(speed)
}

// toggleCollapse hides every visible track, or restores exactly the set it
// previously hid.
func (m *Model) toggleCollapse() {
	if len(m.collapsedIDs) > 0 {
		for _, id := range m.collapsedIDs {
			m.ctx.Store.ToggleTrackVisibility(id)
		}
		m.collapsedIDs = nil
		return
	}
	for _, t := range m.ctx.Store.Snapshot().Tracks {
		if t.Visible {
			m.ctx.Store.ToggleTrackVisibility(t.ID)
			m.collapsedIDs = append(m.collapsedIDs, t.ID)
		}
	}
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	st := m.ctx.Store.Snapshot()
	lay := m.layout(st)

	// An open context menu owns the pointer.
	if m.menu.open {
		return m.updateMenuMouse(msg)
	}

	switch msg.Type {
	case tea.MouseLeft:
		return m.mousePress(msg, st, lay)
	case tea.MouseRight:
		if t, ok := m.timeAtCell(msg.X, msg.Y, st, lay); ok {
			menu := openContextMenu(msg.X, msg.Y, t, st)
			menu.x, menu.y = clampMenuPos(menu.x, menu.y, menu.width()+2, len(menu.items)+2, m.widthCells, lay.GridRows)
			m.menu = menu
		}
	case tea.MouseMotion:
		return m.mouseMotion(msg, st, lay)
	case tea.MouseRelease:
		m.drag.end()
	case tea.MouseWheelUp:
		if msg.Ctrl {
			m.zoomAroundCol(timeline.ZoomStep, msg.X, lay)
		} else {
			m.setScroll(st.ScrollLeft-4*render.CellWidthPx, st, lay)
			m.scrollTarget = -1
		}
	case tea.MouseWheelDown:
		if msg.Ctrl {
			m.zoomAroundCol(-timeline.ZoomStep, msg.X, lay)
		} else {
			m.setScroll(st.ScrollLeft+4*render.CellWidthPx, st, lay)
			m.scrollTarget = -1
		}
	}
	return m, nil
}

func (m Model) updateMenuMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.MouseMotion:
		if i, ok := m.menu.hit(msg.X, msg.Y); ok && !m.menu.items[i].disabled {
			m.menu.cursor = i
		}
	case tea.MouseLeft:
		if i, ok := m.menu.hit(msg.X, msg.Y); ok {
			m.menu.cursor = i
			if action, sel := m.menu.selected(); sel {
				m.runMenuAction(action, m.menu.time)
			}
		}
		m.menu.open = false
	}
	return m, nil
}

func (m Model) mousePress(msg tea.MouseMsg, st timeline.State, lay Layout) (tea.Model, tea.Cmd) {
	region := lay.RegionAt(msg.X, msg.Y)
	if region == nil {
		return m, nil
	}

	switch region.Kind {
	case RegionToolbarHide:
		m.toggleCollapse()
	case RegionToolbarSnap:
		m.ctx.Store.SetSnapEnabled(!st.SnapEnabled)
	case RegionToolbarAddMarker:
		m.ctx.Store.AddMarker(m.ctx.Player.CurrentTime(), "", "")
	case RegionToolbarZoomOut:
		m.zoomAroundPlayhead(-timeline.ZoomStep)
	case RegionToolbarZoomIn:
		m.zoomAroundPlayhead(timeline.ZoomStep)
	case RegionToolbarZoomSlider:
		m.ctx.Store.SetZoom(sliderZoom(msg.X - tbSliderX))
	case RegionToolbarZoomReadout:
		m.ctx.Store.SetZoom(1)
	case RegionTimecode:
		m.tcInput.open(m.ctx.Player.CurrentTime())
	case RegionTrackToggleVisible:
		m.ctx.Store.ToggleTrackVisibility(region.ID)
		m.collapsedIDs = nil
	case RegionTrackToggleLock:
		m.ctx.Store.ToggleTrackLock(region.ID)
	case RegionTrackToggleMute:
		m.ctx.Store.ToggleTrackMute(region.ID)
	case RegionResizer:
		if t := st.FindTrack(region.ID); t != nil {
			m.drag.beginResize(region.ID, msg.Y, t.Height)
		}
	case RegionMinimap:
		t := MinimapTime(msg.X, lay, m.ctx.Duration())
		m.ctx.Player.Seek(t)
		m.scrollTarget = MinimapScrollTarget(t, st, lay, m.ctx.Duration())
		m.drag.begin(dragMinimap, "")
	case RegionMarkerFlag:
		m.drag.begin(dragMarker, region.ID)
	case RegionLoopHandleIn:
		m.drag.begin(dragLoopIn, "")
	case RegionLoopHandleOut:
		m.drag.begin(dragLoopOut, "")
	case RegionTrackArea:
		if t := st.FindTrack(region.ID); t != nil && t.Locked {
			return m, nil
		}
		if t, ok := m.timeAtCell(msg.X, msg.Y, st, lay); ok {
			m.ctx.Player.Seek(t)
			m.drag.begin(dragScrub, region.ID)
		}
	case RegionRuler:
		if t, ok := m.timeAtCell(msg.X, msg.Y, st, lay); ok {
			m.ctx.Player.Seek(t)
			m.drag.begin(dragScrub, "")
		}
	}
	return m, nil
}

func (m Model) mouseMotion(msg tea.MouseMsg, st timeline.State, lay Layout) (tea.Model, tea.Cmd) {
	t, inTrack := m.timeAtCell(msg.X, msg.Y, st, lay)

	if !m.drag.active() {
		m.ctx.Store.SetHoveredTime(t, inTrack)
		return m, nil
	}

	switch m.drag.kind {
	case dragScrub:
		if inTrack || msg.Y == lay.RulerTickRow || msg.Y == lay.RulerLabelRow {
			m.ctx.Player.Seek(t)
		}
	case dragMarker:
		if inTrack {
			m.ctx.Store.UpdateMarker(m.drag.id, timeline.MarkerPatch{Time: ptr(m.snapExcluding(t, st, m.drag.id))})
		}
	case dragLoopIn:
		if inTrack {
			m.ctx.Store.SetLoopIn(m.snapExcluding(t, st, ""))
		}
	case dragLoopOut:
		if inTrack {
			m.ctx.Store.SetLoopOut(m.snapExcluding(t, st, ""))
		}
	case dragMinimap:
		tm := MinimapTime(msg.X, lay, m.ctx.Duration())
		m.ctx.Player.Seek(tm)
		m.scrollTarget = MinimapScrollTarget(tm, st, lay, m.ctx.Duration())
	case dragResize:
		dyPx := float64(msg.Y-m.drag.startRow) * render.RowHeightPx
		m.ctx.Store.ResizeTrack(m.drag.id, m.drag.startHeight+dyPx)
	}
	return m, nil
}

// timeAtCell converts a pointer cell inside the track area or ruler to clip
// time. Reports false outside those bands.
func (m Model) timeAtCell(x, y int, st timeline.State, lay Layout) (float64, bool) {
	if x < lay.GutterCols || x >= lay.GutterCols+lay.TrackCols {
		return 0, false
	}
	if y < lay.RulerLabelRow || y > lay.TracksBottom() {
		return 0, false
	}
	px := st.ScrollLeft + render.ColCenterPx(x-lay.GutterCols)
	return timecode.XToTime(px, m.ctx.Duration(), st.TrackWidth()), true
}

// snapExcluding snaps t to marker and playhead targets when snapping is on.
// The excluded marker id keeps a dragged marker from snapping to itself.
func (m Model) snapExcluding(t float64, st timeline.State, excludeID string) float64 {
	if !st.SnapEnabled {
		return t
	}
	var times []float64
	for _, mk := range st.Markers {
		if mk.ID == excludeID {
			continue
		}
		times = append(times, mk.Time)
	}
	targets := timecode.BuildSnapTargets(times, m.ctx.Player.CurrentTime())
	if hit := timecode.SnapPoint(t, targets, m.ctx.Duration(), st.TrackWidth(), timeline.SnapThresholdPx); hit != nil {
		return hit.Time
	}
	return t
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	st := m.ctx.Store.Snapshot()
	lay := m.layout(st)
	th := m.ctx.Theme
	dur := m.ctx.Duration()
	playhead := m.ctx.Player.CurrentTime()

	g := render.New(m.widthCells, lay.GridRows)
	g.FillRect(0, 0, m.widthCells, lay.GridRows, th.Base)

	drawToolbar(g, lay, st, th)
	drawRuler(g, lay, st, dur, th)
	for _, ln := range lay.Lanes {
		drawLaneChrome(g, lay, ln, th)
		switch ln.Track.Type {
		case timeline.TrackVideo:
			drawVideoTrack(g, lay, ln, st, m.thumbs, th)
		case timeline.TrackAudio:
			drawAudioTrack(g, lay, ln, st, m.wave, playhead, dur, th)
		}
	}
	drawMinimap(g, lay, st, playhead, dur, th)
	drawOverlays(g, lay, st, playhead, dur, m.drag, th)

	frame := g.Render() + "\n" + m.statusLine(st)

	if m.menu.open {
		frame = mergeOverlay(frame, m.menu.render(th), m.menu.x, m.menu.y)
	}
	if m.showHelp {
		help := m.renderHelp()
		helpLines := strings.Count(help, "\n") + 1
		// The help box is taller than the grid; pad the frame out to the
		// terminal height and center within that, so mergeOverlay has rows
		// to splice every line into.
		frameLines := strings.Count(frame, "\n") + 1
		total := frameLines
		if m.heightCells > total {
			total = m.heightCells
		}
		if total > frameLines {
			frame += strings.Repeat("\n", total-frameLines)
		}
		y := (total - helpLines) / 2
		if y < 0 {
			y = 0
		}
		x := (m.widthCells - lipgloss.Width(help)) / 2
		if x < 0 {
			x = 0
		}
		frame = mergeOverlay(frame, help, x, y)
	}
	return frame
}

// statusLine renders the row under the grid: timecode readout or editor,
// transport state, speed, and snap indicator.
func (m Model) statusLine(st timeline.State) string {
	th := m.ctx.Theme
	p := m.ctx.Player

	transport := "⏸"
	switch {
	case p.ShuttleRate() < 0:
		transport = fmt.Sprintf("◂◂ %gx", -p.ShuttleRate())
	case p.ShuttleRate() > 0:
		transport = fmt.Sprintf("▸▸ %gx", p.ShuttleRate())
	case p.IsPlaying():
		transport = "▶"
	}

	snap := "snap off"
	snapColor := th.Overlay
	if st.SnapEnabled {
		snap = "snap on"
		snapColor = th.Green
	}

	sep := lipgloss.NewStyle().Foreground(th.Surface2).Render(" │ ")
	parts := []string{
		"  " + m.tcInput.view(p.CurrentTime(), m.now, th),
		lipgloss.NewStyle().Foreground(th.Text).Render(transport),
		lipgloss.NewStyle().Foreground(th.Subtext).Render(fmt.Sprintf("%gx", st.PlaybackSpeed)),
		lipgloss.NewStyle().Foreground(snapColor).Render(snap),
	}
	line := strings.Join(parts, sep)
	if m.status != "" {
		line += sep + lipgloss.NewStyle().Foreground(th.Overlay).Italic(true).Render(m.status)
	}
	hint := lipgloss.NewStyle().Foreground(th.Overlay).Render("? help")
	return truncate.String(line+sep+hint, uint(m.widthCells))
}

func (m Model) renderHelp() string {
	th := m.ctx.Theme
	keyStyle := lipgloss.NewStyle().Foreground(th.Lavender).Width(10)
	descStyle := lipgloss.NewStyle().Foreground(th.Text)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(th.Text).Bold(true).Render("Keys") + "\n\n")
	for _, binding := range m.keys.helpEntries() {
		h := binding.Help()
		b.WriteString(keyStyle.Render(h.Key) + descStyle.Render(h.Desc) + "\n")
	}
	b.WriteString("\n" + lipgloss.NewStyle().Foreground(th.Overlay).Italic(true).Render("press any key to close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Surface2).
		Background(th.Surface0).
		Padding(0, 2).
		Render(b.String())
}

func ptr[T any](v T) *T { return &v }
