package tltui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the transport and editing key set. JKL shuttle follows the
// usual editing convention: repeated presses in one direction step the
// speed tier up, K parks the shuttle and toggles play.
type keyMap struct {
	PlayPause    key.Binding
	FrameBack    key.Binding
	FrameFwd     key.Binding
	SecondBack   key.Binding
	SecondFwd    key.Binding
	ShuttleBack  key.Binding
	ShuttleStop  key.Binding
	ShuttleFwd   key.Binding
	Home         key.Binding
	End          key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	AddMarker    key.Binding
	LoopIn       key.Binding
	LoopOut      key.Binding
	ToggleSnap   key.Binding
	ToggleTracks key.Binding
	SpeedDown    key.Binding
	SpeedUp      key.Binding
	Timecode     key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PlayPause:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		FrameBack:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "back one frame")),
		FrameFwd:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "forward one frame")),
		SecondBack:   key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "back 1s")),
		SecondFwd:    key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "forward 1s")),
		ShuttleBack:  key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "shuttle reverse")),
		ShuttleStop:  key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "shuttle stop")),
		ShuttleFwd:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "shuttle forward")),
		Home:         key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "jump to start")),
		End:          key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "jump to end")),
		ZoomIn:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:      key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		AddMarker:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "add marker")),
		LoopIn:       key.NewBinding(key.WithKeys("["), key.WithHelp("[", "loop in point")),
		LoopOut:      key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "loop out point")),
		ToggleSnap:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle snap")),
		ToggleTracks: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "collapse tracks")),
		SpeedDown:    key.NewBinding(key.WithKeys("<", ","), key.WithHelp("<", "slower")),
		SpeedUp:      key.NewBinding(key.WithKeys(">", "."), key.WithHelp(">", "faster")),
		Timecode:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to timecode")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpEntries are the rows of the help overlay, in display order.
func (k keyMap) helpEntries() []key.Binding {
	return []key.Binding{
		k.PlayPause, k.FrameBack, k.FrameFwd, k.SecondBack, k.SecondFwd,
		k.ShuttleBack, k.ShuttleStop, k.ShuttleFwd, k.Home, k.End,
		k.ZoomIn, k.ZoomOut, k.AddMarker, k.LoopIn, k.LoopOut,
		k.ToggleSnap, k.ToggleTracks, k.SpeedDown, k.SpeedUp,
		k.Timecode, k.Help, k.Quit,
	}
}
