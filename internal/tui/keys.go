package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle  key.Binding
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	MoveUp  key.Binding
	MoveDn  key.Binding
	Price   key.Binding
	Save    key.Binding
	New     key.Binding
	History key.Binding
	Quit    key.Binding

	ForceQuit key.Binding

	Expand     key.Binding
	DeleteList key.Binding
	Duplicate  key.Binding
	Back       key.Binding

	Submit key.Binding
	Yes    key.Binding
	No     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "check")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		MoveUp:  key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
		MoveDn:  key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
		Price:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "price")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new list")),
		History: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),

		Expand:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "show items")),
		DeleteList: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Duplicate:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy to list")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),

		Submit: key.NewBinding(key.WithKeys("enter")),
		Yes:    key.NewBinding(key.WithKeys("y", "enter")),
		No:     key.NewBinding(key.WithKeys("n", "esc")),
	}
}

func (k keyMap) itemsHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.Edit, k.Delete, k.MoveUp, k.MoveDn, k.Price, k.Save, k.New, k.History}
}

func (k keyMap) historyHelp() []key.Binding {
	return []key.Binding{k.Expand, k.DeleteList, k.Duplicate, k.Back}
}
