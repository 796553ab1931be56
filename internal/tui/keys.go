package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"tasktidy/internal/config"
)

type keyMap struct {
	Quit    key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Add     key.Binding
	NextCat key.Binding
	PrevCat key.Binding
	Theme   key.Binding
	Tips    key.Binding

	Submit      key.Binding
	Cancel      key.Binding
	FocusNext   key.Binding
	CycleOption key.Binding
}

func newKeyMap(km config.Keymap) keyMap {
	d := config.DefaultKeymap()
	return keyMap{
		Quit:        binding(km.Quit, d.Quit, "quit"),
		Up:          binding(km.Up, d.Up, "up"),
		Down:        binding(km.Down, d.Down, "down"),
		Toggle:      binding(km.Toggle, d.Toggle, "toggle done"),
		Add:         binding(km.Add, d.Add, "add task"),
		NextCat:     binding(km.NextCat, d.NextCat, "next category"),
		PrevCat:     binding(km.PrevCat, d.PrevCat, "prev category"),
		Theme:       binding(km.Theme, d.Theme, "theme"),
		Tips:        binding(km.Tips, d.Tips, "tips"),
		Submit:      binding(km.Submit, d.Submit, "save"),
		Cancel:      binding(km.Cancel, d.Cancel, "cancel"),
		FocusNext:   binding(km.FocusNext, d.FocusNext, "next field"),
		CycleOption: binding(km.CycleOption, d.CycleOption, "next category"),
	}
}

func binding(keys, fallback []string, desc string) key.Binding {
	if len(keys) == 0 {
		keys = fallback
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpLabel(keys), desc),
	)
}

func helpLabel(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		labels = append(labels, k)
	}
	return strings.Join(labels, "/")
}

// ShortHelp implements help.KeyMap for the list view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Add, k.NextCat, k.Theme, k.Tips, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Add, k.NextCat, k.PrevCat},
		{k.Theme, k.Tips, k.Quit},
	}
}

// formHelp is the key help shown while the task form has focus.
type formHelp struct{ k keyMap }

func (f formHelp) ShortHelp() []key.Binding {
	return []key.Binding{f.k.Submit, f.k.FocusNext, f.k.CycleOption, f.k.Cancel}
}

func (f formHelp) FullHelp() [][]key.Binding { return [][]key.Binding{f.ShortHelp()} }
