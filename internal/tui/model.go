// Package tui is the interactive shopping-list view. Every key press is
// applied to the shoplist.Store immediately, so quitting never loses work.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/shoplist/internal/logging"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/shoplist"
)

type screen int

const (
	screenItems screen = iota
	screenHistory
)

type inputKind int

const (
	inputNone inputKind = iota
	inputAdd
	inputEdit
	inputPrice
	inputTitle
	inputTotal
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmNewList
	confirmDeleteList
	confirmDuplicate
)

type Model struct {
	ctx   context.Context
	store *shoplist.Store
	log   logging.Logger
	now   func() time.Time
	keys  keyMap

	screen   screen
	items    list.Model
	lists    list.Model
	expanded string // saved list whose items are shown

	input     inputKind
	ti        textinput.Model
	inputErr  string
	targetID  string
	saveTitle string

	confirm   confirmKind
	confirmID string

	status    string
	statusErr bool
}

// New builds the model over an opened store. A nil logger discards.
func New(ctx context.Context, s *shoplist.Store, log logging.Logger) Model {
	if log == nil {
		log = logging.NewNop()
	}
	keys := defaultKeys()

	items := list.New(nil, itemDelegate{}, 0, 0)
	items.SetShowHelp(true)
	items.SetShowStatusBar(true)
	items.SetFilteringEnabled(false)
	items.Styles.Title = titleStyle
	items.Styles.HelpStyle = helpStyle
	items.Styles.PaginationStyle = helpStyle
	items.SetStatusBarItemName("item", "items")
	items.AdditionalShortHelpKeys = func() []key.Binding { return keys.itemsHelp()[:6] }
	items.AdditionalFullHelpKeys = keys.itemsHelp

	lists := list.New(nil, listDelegate{}, 0, 0)
	lists.Title = titleStyle.Render("History")
	lists.SetShowHelp(true)
	lists.SetFilteringEnabled(false)
	lists.Styles.Title = titleStyle
	lists.Styles.HelpStyle = helpStyle
	lists.Styles.PaginationStyle = helpStyle
	lists.SetStatusBarItemName("list", "lists")
	lists.AdditionalShortHelpKeys = keys.historyHelp
	lists.AdditionalFullHelpKeys = keys.historyHelp

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		ctx:   ctx,
		store: s,
		log:   log,
		now:   time.Now,
		keys:  keys,
		items: items,
		lists: lists,
		ti:    ti,
	}
	m.resize(widthHeight())
	m.refreshItems("")
	m.refreshLists()
	return m
}

// Run blocks until the user quits.
func Run(ctx context.Context, s *shoplist.Store, log logging.Logger) error {
	m := New(ctx, s, log)
	m.log.Info(ctx, "tui started", "items", len(s.CurrentList()), "lists", len(s.History()))
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(ws.Width, ws.Height)
		return m, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.input != inputNone {
		return m.updateInput(msg)
	}
	if m.confirm != confirmNone {
		return m.updateConfirm(msg)
	}
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.screen == screenHistory {
		return m.updateHistory(msg)
	}
	return m.updateItems(msg)
}

func (m Model) updateItems(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.items, cmd = m.items.Update(msg)
		return m, cmd
	}
	m.status, m.statusErr = "", false
	sel, hasSel := m.selectedItem()
	idx := m.items.Index()

	switch {
	case key.Matches(km, m.keys.Toggle):
		if hasSel {
			m.report(m.store.ToggleItem(m.ctx, sel.ID), "")
			m.refreshItems(sel.ID)
		}
		return m, nil

	case key.Matches(km, m.keys.Add):
		return m.startInput(inputAdd, "", "New item...")

	case key.Matches(km, m.keys.Edit):
		if !hasSel {
			return m, nil
		}
		m.targetID = sel.ID
		return m.startInput(inputEdit, sel.Name, "Item name...")

	case key.Matches(km, m.keys.Delete):
		if hasSel {
			m.report(m.store.RemoveItem(m.ctx, sel.ID), "Removed "+sel.Name)
			m.refreshItems("")
		}
		return m, nil

	case key.Matches(km, m.keys.MoveUp):
		if hasSel && idx > 0 {
			over := m.items.Items()[idx-1].(itemRow)
			m.report(m.store.ReorderItems(m.ctx, sel.ID, over.ID), "")
			m.refreshItems(sel.ID)
		}
		return m, nil

	case key.Matches(km, m.keys.MoveDn):
		if hasSel && idx < len(m.items.Items())-1 {
			over := m.items.Items()[idx+1].(itemRow)
			m.report(m.store.ReorderItems(m.ctx, sel.ID, over.ID), "")
			m.refreshItems(sel.ID)
		}
		return m, nil

	case key.Matches(km, m.keys.Price):
		if !hasSel {
			return m, nil
		}
		m.targetID = sel.ID
		value := ""
		if sel.Price != nil {
			value = fmt.Sprintf("%.2f", *sel.Price)
		}
		return m.startInput(inputPrice, value, "0.00 (empty clears)")

	case key.Matches(km, m.keys.Save):
		if len(m.store.CurrentList()) == 0 {
			m.status = "Nothing to save"
			return m, nil
		}
		return m.startInput(inputTitle, shoplist.DefaultTitle(m.now()), "Title...")

	case key.Matches(km, m.keys.New):
		if len(m.store.CurrentList()) == 0 {
			m.status = "The list is already empty"
			return m, nil
		}
		m.confirm = confirmNewList
		return m, nil

	case key.Matches(km, m.keys.History):
		m.screen = screenHistory
		m.expanded = ""
		m.refreshLists()
		return m, nil
	}

	var cmd tea.Cmd
	m.items, cmd = m.items.Update(msg)
	return m, cmd
}

func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.lists, cmd = m.lists.Update(msg)
		return m, cmd
	}
	m.status, m.statusErr = "", false
	sel, hasSel := m.selectedList()

	switch {
	case key.Matches(km, m.keys.Back), key.Matches(km, m.keys.History):
		m.screen = screenItems
		m.expanded = ""
		return m, nil

	case key.Matches(km, m.keys.Expand):
		if hasSel {
			if m.expanded == sel.ID {
				m.expanded = ""
			} else {
				m.expanded = sel.ID
			}
		}
		return m, nil

	case key.Matches(km, m.keys.DeleteList):
		if hasSel {
			m.confirm, m.confirmID = confirmDeleteList, sel.ID
		}
		return m, nil

	case key.Matches(km, m.keys.Duplicate):
		if hasSel {
			m.confirm, m.confirmID = confirmDuplicate, sel.ID
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.lists, cmd = m.lists.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Yes):
		kind, id := m.confirm, m.confirmID
		m.confirm, m.confirmID = confirmNone, ""
		m.runConfirmed(kind, id)
	case key.Matches(km, m.keys.No):
		m.confirm, m.confirmID = confirmNone, ""
	}
	return m, nil
}

func (m *Model) runConfirmed(kind confirmKind, id string) {
	switch kind {
	case confirmNewList:
		m.report(m.store.StartNewList(m.ctx), "Started a new list")
		m.refreshItems("")

	case confirmDeleteList:
		l, _ := m.store.FindList(id)
		m.report(m.store.DeleteList(m.ctx, id), "Deleted "+l.Title)
		if m.expanded == id {
			m.expanded = ""
		}
		m.refreshLists()

	case confirmDuplicate:
		l, ok := m.store.FindList(id)
		if !ok {
			return
		}
		added, err := m.store.DuplicateList(m.ctx, l)
		if errors.Is(err, shoplist.ErrNothingToAdd) {
			m.status = "Nothing new to add: every item is already on your list"
			return
		}
		m.report(err, fmt.Sprintf("Added %d items from %s", len(added), l.Title))
		m.screen = screenItems
		m.expanded = ""
		m.refreshItems("")
	}
}

func (m Model) startInput(kind inputKind, value, placeholder string) (tea.Model, tea.Cmd) {
	m.input = kind
	m.inputErr = ""
	m.ti.Placeholder = placeholder
	m.ti.SetValue(value)
	m.ti.CursorEnd()
	return m, m.ti.Focus()
}

func (m *Model) closeInput() {
	m.input = inputNone
	m.inputErr = ""
	m.targetID = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.Submit):
			return m.submitInput()
		case key.Matches(km, m.keys.Back):
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	val := strings.TrimSpace(m.ti.Value())

	switch m.input {
	case inputAdd:
		if val == "" {
			m.inputErr = "Name cannot be empty"
			return m, nil
		}
		it, err := m.store.AddItem(m.ctx, val)
		m.report(err, "")
		m.refreshItems(it.ID)

	case inputEdit:
		if val == "" {
			m.inputErr = "Name cannot be empty"
			return m, nil
		}
		m.report(m.store.EditItem(m.ctx, m.targetID, val), "")
		m.refreshItems(m.targetID)

	case inputPrice:
		var price *float64
		if val != "" {
			v, err := shoplist.ParseAmount(val)
			if err != nil {
				m.inputErr = "Enter an amount like 4.50"
				return m, nil
			}
			price = &v
		}
		m.report(m.store.SetPrice(m.ctx, m.targetID, price), "")
		m.refreshItems(m.targetID)

	case inputTitle:
		if val == "" {
			val = shoplist.DefaultTitle(m.now())
		}
		m.saveTitle = val
		return m.startInput(inputTotal, "", "0.00")

	case inputTotal:
		amount := 0.0
		if val != "" {
			v, err := shoplist.ParseAmount(val)
			if err != nil {
				m.inputErr = "Enter an amount like 42.50"
				return m, nil
			}
			amount = v
		}
		saved, err := m.store.SaveList(m.ctx, m.saveTitle, amount)
		if saved != nil {
			m.report(err, fmt.Sprintf("Saved %s (%d items)", saved.Title, len(saved.Items)))
		}
		m.saveTitle = ""
		m.refreshItems("")
		m.refreshLists()
	}

	m.closeInput()
	return m, nil
}

// report shows err in the status line, or okMsg when the write went through.
func (m *Model) report(err error, okMsg string) {
	if err != nil {
		m.log.Warn(m.ctx, "change kept in memory only", "error", err)
		m.status = "Not saved to disk: " + err.Error()
		m.statusErr = true
		return
	}
	m.status, m.statusErr = okMsg, false
}

func (m Model) selectedItem() (itemRow, bool) {
	it, ok := m.items.SelectedItem().(itemRow)
	return it, ok
}

func (m Model) selectedList() (listRow, bool) {
	l, ok := m.lists.SelectedItem().(listRow)
	return l, ok
}

// refreshItems reloads the rows from the store and moves the cursor to
// selectID, or keeps it in range when selectID is empty or gone.
func (m *Model) refreshItems(selectID string) {
	cur := m.store.CurrentList()
	rows := make([]list.Item, len(cur))
	sel := -1
	for i, it := range cur {
		rows[i] = itemRow{it}
		if it.ID == selectID {
			sel = i
		}
	}
	m.items.SetItems(rows)
	m.items.Title = m.header()
	switch {
	case sel >= 0:
		m.items.Select(sel)
	case m.items.Index() >= len(rows) && len(rows) > 0:
		m.items.Select(len(rows) - 1)
	}
}

func (m *Model) refreshLists() {
	hist := m.store.History()
	rows := make([]list.Item, len(hist))
	for i, l := range hist {
		rows[i] = listRow{l}
	}
	m.lists.SetItems(rows)
	if m.lists.Index() >= len(rows) && len(rows) > 0 {
		m.lists.Select(len(rows) - 1)
	}
}

func (m Model) header() string {
	done, pending := m.store.Stats()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Shopping list"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		accentStyle.Render("Total"), done+pending,
	)
}

func (m *Model) resize(w, h int) {
	listHeight := h - 8
	if listHeight < 3 {
		listHeight = 3
	}
	m.items.SetSize(w-4, listHeight)
	m.lists.SetSize(w-4, listHeight)
}

func (m Model) View() string {
	var b strings.Builder
	if m.screen == screenHistory {
		b.WriteString(m.lists.View())
		if l, ok := m.store.FindList(m.expanded); ok {
			b.WriteString("\n" + m.expandedView(l.Title, l.Items))
		}
	} else {
		b.WriteString(m.items.View())
	}

	switch {
	case m.input != inputNone:
		b.WriteString("\n" + m.inputView())
	case m.confirm != confirmNone:
		b.WriteString("\n" + m.confirmView())
	}

	if m.status != "" {
		style := accentStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(m.status))
	}
	return panelString(b.String())
}

func (m Model) inputView() string {
	titles := map[inputKind]string{
		inputAdd:   "Add item",
		inputEdit:  "Edit item",
		inputPrice: "Item price",
		inputTitle: "Save list: title",
		inputTotal: "Save list: amount spent",
	}
	title := titles[m.input]
	if m.inputErr != "" {
		title += ": " + errorStyle.Render(m.inputErr)
	}
	return frameStyle.Render(title + "\n" + m.ti.View())
}

func (m Model) confirmView() string {
	var q string
	switch m.confirm {
	case confirmNewList:
		q = fmt.Sprintf("Start a new list? %d unsaved items will be discarded.", len(m.store.CurrentList()))
	case confirmDeleteList:
		l, _ := m.store.FindList(m.confirmID)
		q = fmt.Sprintf("Delete %q from the history?", l.Title)
	case confirmDuplicate:
		l, _ := m.store.FindList(m.confirmID)
		q = fmt.Sprintf("Add the %d items of %q to your current list?", len(l.Items), l.Title)
	}
	return frameStyle.Render(q + "\n" + mutedStyle.Render("y confirm · n cancel"))
}

func (m Model) expandedView(title string, items []model.Item) string {
	lines := []string{titleStyle.Render(title)}
	for _, it := range items {
		lines = append(lines, itemLine(it))
	}
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
