// Package ui is the terminal front end of the shopping list.
//
// It mirrors the web widget: the name and quantity inputs are sanitized on
// every keystroke, the quantity is finalized when it loses focus and the
// summary is recomputed after every change.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrymomot/shoplist/pkg/shoplist"
	"github.com/dmitrymomot/shoplist/pkg/validator"
)

type focusArea int

const (
	focusName focusArea = iota
	focusQty
	focusList
)

// Model is the bubbletea model of the shopping list.
type Model struct {
	list  *shoplist.List
	items []shoplist.Item
	stats shoplist.Stats

	name  textinput.Model
	qty   textinput.Model
	focus focusArea

	cursor int
	err    string
	status string

	keys keyMap
	help help.Model
}

// New returns a model editing list, with the name input focused.
func New(list *shoplist.List) Model {
	name := textinput.New()
	name.Placeholder = "Ex.: Arroz"
	name.Prompt = ""

	qty := textinput.New()
	qty.Placeholder = "Ex.: 10, 10g ou 10kg"
	qty.Prompt = ""

	m := Model{
		list: list,
		name: name,
		qty:  qty,
		keys: defaultKeyMap(),
		help: help.New(),
	}
	m.setFocus(focusName)
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Abort):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Next):
		m.setFocus((m.focus + 1) % 3)
		return m, nil
	case key.Matches(keyMsg, m.keys.Prev):
		m.setFocus((m.focus + 2) % 3)
		return m, nil
	}

	if m.focus == focusList {
		return m.updateList(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Submit):
		m.submit()
		return m, nil
	case key.Matches(keyMsg, m.keys.Leave):
		m.setFocus(focusList)
		return m, nil
	}
	return m.updateInputs(msg)
}

// updateInputs forwards msg to the focused input and sanitizes its value.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.name, cmd = m.name.Update(msg)
		setSanitized(&m.name, shoplist.SanitizeName)
	case focusQty:
		m.qty, cmd = m.qty.Update(msg)
		setSanitized(&m.qty, shoplist.SanitizeQuantity)
	}
	return m, cmd
}

func setSanitized(in *textinput.Model, sanitize func(string) string) {
	if clean := sanitize(in.Value()); clean != in.Value() {
		in.SetValue(clean)
		in.CursorEnd()
	}
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if item, ok := m.selected(); ok {
			if _, err := m.list.Toggle(item.ID); err != nil {
				m.status = err.Error()
			}
			m.refresh()
		}
	case key.Matches(msg, m.keys.Delete):
		if item, ok := m.selected(); ok {
			if _, err := m.list.Remove(item.ID); err != nil {
				m.status = err.Error()
			}
			m.refresh()
		}
	case key.Matches(msg, m.keys.Refresh):
		m.refresh()
		m.status = "Lista atualizada"
	case key.Matches(msg, m.keys.Leave):
		m.setFocus(focusName)
	}
	return m, nil
}

// submit validates the inputs and adds the item, or reports the first
// failure and moves focus to its input.
func (m *Model) submit() {
	item, err := shoplist.ParseSubmission(m.name.Value(), m.qty.Value())
	if err != nil {
		verrs := validator.ExtractValidationErrors(err)
		if verrs == nil {
			m.err = err.Error()
			return
		}
		first, _ := verrs.First()
		m.err = first.Message
		if first.Field == shoplist.FieldQuantity {
			m.focusInput(focusQty)
		} else {
			m.focusInput(focusName)
		}
		return
	}

	m.list.Add(item)
	m.err = ""
	m.status = fmt.Sprintf("%q adicionado", item.Name)
	m.name.Reset()
	m.qty.Reset()
	m.focusInput(focusName)
	m.refresh()
}

// setFocus moves focus to area, finalizing the quantity when it loses focus.
func (m *Model) setFocus(area focusArea) {
	if m.focus == focusQty && area != focusQty {
		m.qty.SetValue(shoplist.FinalizeQuantity(m.qty.Value()))
	}
	m.focusInput(area)
}

// focusInput moves focus without finalizing, so a rejected quantity stays
// as typed.
func (m *Model) focusInput(area focusArea) {
	m.focus = area
	m.name.Blur()
	m.qty.Blur()
	switch area {
	case focusName:
		m.name.Focus()
	case focusQty:
		m.qty.Focus()
	}
}

func (m *Model) refresh() {
	m.items, m.stats = m.list.Snapshot()
	if m.cursor >= len(m.items) {
		m.cursor = max(len(m.items)-1, 0)
	}
}

func (m Model) selected() (shoplist.Item, bool) {
	if len(m.items) == 0 {
		return shoplist.Item{}, false
	}
	return m.items[m.cursor], true
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Lista de compras"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(m.stats.Subtitle()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %3d%%\n", progressBar(m.stats.Progress()), m.stats.Progress())
	fmt.Fprintf(&b, "Total: %d  Comprados: %d  Restantes: %d\n\n", m.stats.Total, m.stats.Bought, m.stats.Remaining)

	b.WriteString(m.label("Item", focusName) + m.name.View() + "\n")
	b.WriteString(m.label("Quantidade", focusQty) + m.qty.View() + "\n")
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err) + "\n")
	}
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString(statusStyle.Render("Nenhum item na lista.") + "\n")
	}
	for i, item := range m.items {
		b.WriteString(m.row(i, item) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m Model) label(text string, area focusArea) string {
	if m.focus == area {
		return focusedLabel.Render(text)
	}
	return labelStyle.Render(text)
}

func (m Model) row(i int, item shoplist.Item) string {
	pointer := "  "
	if m.focus == focusList && i == m.cursor {
		pointer = cursorStyle.Render("> ")
	}
	check := "[ ] "
	name := item.Name
	if item.Completed {
		check = "[x] "
		name = doneStyle.Render(name)
	}
	line := pointer + check + name
	if item.Quantity != "" {
		line += " " + qtyStyle.Render(item.Quantity)
	}
	return line
}
