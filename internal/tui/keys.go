package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	fieldUp   key.Binding
	fieldDown key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	copyEmail key.Binding
	hidden    key.Binding
	reload    key.Binding
	yes       key.Binding
	no        key.Binding
	submit    key.Binding
	discard   key.Binding
	version   key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	fieldUp:   key.NewBinding(key.WithKeys("up")),
	fieldDown: key.NewBinding(key.WithKeys("down")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	logout:    key.NewBinding(key.WithKeys("l")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	copyEmail: key.NewBinding(key.WithKeys("u")),
	hidden:    key.NewBinding(key.WithKeys("h")),
	reload:    key.NewBinding(key.WithKeys("r")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	discard:   key.NewBinding(key.WithKeys("ctrl+x")),
	version:   key.NewBinding(key.WithKeys("v")),
}
