package main

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	SubmitMessage    key.Binding
	NewAdventure     key.Binding
	CancelCompletion key.Binding
	Quit             key.Binding
}

var DefaultKeyMap = KeyMap{
	SubmitMessage:    key.NewBinding(key.WithKeys("enter")),
	NewAdventure:     key.NewBinding(key.WithKeys("ctrl+r")),
	CancelCompletion: key.NewBinding(key.WithKeys("ctrl+g")),
	Quit:             key.NewBinding(key.WithKeys("ctrl+c", "esc")),
}
