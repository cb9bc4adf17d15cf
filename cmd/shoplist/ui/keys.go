package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Submit  key.Binding
	Leave   key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Quit    key.Binding
	Abort   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "próximo campo")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "campo anterior")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "adicionar")),
		Leave:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "ir para a lista")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "subir")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "descer")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("espaço", "marcar")),
		Delete:  key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remover")),
		Refresh: key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "atualizar")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "sair")),
		Abort:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Toggle, k.Delete, k.Refresh, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Submit, k.Leave},
		{k.Up, k.Down, k.Toggle, k.Delete, k.Refresh, k.Quit},
	}
}
