package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	connect     key.Binding
	logout      key.Binding
	refresh     key.Binding
	download    key.Binding
	copy        key.Binding
	bid         key.Binding
	buildInfo   key.Binding
	marketplace key.Binding
	gallery     key.Binding
	upload      key.Binding
	featured    key.Binding
	left        key.Binding
	right       key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	connect:     key.NewBinding(key.WithKeys("w")),
	logout:      key.NewBinding(key.WithKeys("x")),
	refresh:     key.NewBinding(key.WithKeys("r")),
	download:    key.NewBinding(key.WithKeys("d")),
	copy:        key.NewBinding(key.WithKeys("c")),
	bid:         key.NewBinding(key.WithKeys("b")),
	buildInfo:   key.NewBinding(key.WithKeys("v")),
	marketplace: key.NewBinding(key.WithKeys("1")),
	gallery:     key.NewBinding(key.WithKeys("2")),
	upload:      key.NewBinding(key.WithKeys("3")),
	featured:    key.NewBinding(key.WithKeys("4")),
	left:        key.NewBinding(key.WithKeys("left")),
	right:       key.NewBinding(key.WithKeys("right")),
}
