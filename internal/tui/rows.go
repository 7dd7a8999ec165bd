package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// itemRow adapts model.Item to bubbles/list.Item.
type itemRow struct{ model.Item }

func (r itemRow) FilterValue() string { return r.Name }

// listRow adapts a saved list.
type listRow struct{ model.SavedList }

func (r listRow) FilterValue() string { return r.Title }

type itemDelegate struct{}

func (d itemDelegate) Height() int                         { return 1 }
func (d itemDelegate) Spacing() int                        { return 0 }
func (d itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(itemRow)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render(">") + " "
	}
	fmt.Fprintln(w, prefix+itemLine(it.Item))
}

func itemLine(it model.Item) string {
	unchecked, checked := boxes()
	box := mutedStyle.Render(unchecked)
	name := ui.Truncate(it.Name, 60)
	if it.Purchased {
		box = successStyle.Render(checked)
		name = doneStyle.Render(name)
	}
	line := box + " " + name
	if it.Price != nil {
		line += "  " + mutedStyle.Render(ui.Money(*it.Price))
	}
	return line
}

type listDelegate struct{}

func (d listDelegate) Height() int                         { return 1 }
func (d listDelegate) Spacing() int                        { return 0 }
func (d listDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d listDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	l, ok := item.(listRow)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render(">") + " "
	}
	fmt.Fprintf(w, "%s%s  %s  %s  %s\n", prefix,
		ui.Truncate(l.Title, 40),
		mutedStyle.Render(ui.Date(l.Date)),
		accentStyle.Render(ui.Money(l.Total)),
		mutedStyle.Render(fmt.Sprintf("%d items", len(l.Items))),
	)
}
