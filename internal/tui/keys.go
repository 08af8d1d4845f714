package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	send         key.Binding
	nextGuru     key.Binding
	prevGuru     key.Binding
	acceptSeed   key.Binding
	acceptWisdom key.Binding
	water        key.Binding
	copyReply    key.Binding
	restart      key.Binding
	sync         key.Binding
	quit         key.Binding
}

var keys = keyMap{
	send:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	nextGuru:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next guru")),
	prevGuru:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev guru")),
	acceptSeed:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "plant seed")),
	acceptWisdom: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "save wisdom")),
	water:        key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "water seeds")),
	copyReply:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy reply")),
	restart:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "restart")),
	sync:         key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "sync")),
	quit:         key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.send, k.nextGuru, k.acceptSeed, k.acceptWisdom, k.water, k.copyReply, k.restart, k.sync, k.quit}
}
