package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/ui"
)

func newListCmd(a *app) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Show the current list",
		Args:    exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			items := a.list.CurrentList()
			d, p := a.list.Stats()
			t := ui.Current()
			header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
				ui.C(t.Title, "Shopping list"),
				ui.C(t.Success, t.SymDone), d,
				ui.C(t.Pending, t.SymPending), p,
				ui.C(t.Accent, "Total"), len(items),
			)

			lines := []string{header, ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)), ""}
			if group {
				lines = append(lines, groupLines(items)...)
			} else {
				lines = append(lines, flatLines(items, 0)...)
			}
			lines = append(lines, "", ui.C(t.Muted, "Tip: add with `shoplist add Milk`"))
			ui.Panel(a.stdout, lines)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&group, "group", "g", false, "group output by to buy/purchased")
	return cmd
}

// flatLines numbers items from offset+1 so grouped output keeps the
// positions other commands accept.
func flatLines(items []model.Item, offset int) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{ui.C(t.Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", offset+i+1)
		box, color := t.BoxUnchecked, t.Muted
		name := ui.Truncate(it.Name, 60)
		if it.Purchased {
			box, color = t.BoxChecked, t.Success
			name = ui.Dim(ui.Strike(name))
		}
		line := fmt.Sprintf("%s %s %s", ui.Dim(idx), ui.C(color, box), name)
		if it.Price != nil {
			line += "  " + ui.C(t.Muted, ui.Money(*it.Price))
		}
		out = append(out, line)
	}
	return out
}

// groupLines relies on the list keeping unpurchased items first.
func groupLines(items []model.Item) []string {
	t := ui.Current()
	split := 0
	for split < len(items) && !items[split].Purchased {
		split++
	}
	pend, done := items[:split], items[split:]

	lines := []string{ui.C(t.Accent, "To buy")}
	if len(pend) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(pend, 0)...)
	}
	lines = append(lines, "", ui.C(t.Accent, "Purchased"))
	if len(done) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(done, split)...)
	}
	return lines
}
