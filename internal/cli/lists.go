package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/shoplist"
	"github.com/idilsaglam/shoplist/internal/ui"
)

func newSaveCmd(a *app) *cobra.Command {
	var title, total string
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Move the current list into the history",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(a.list.CurrentList()) == 0 {
				a.info("nothing to save")
				return nil
			}
			title = strings.TrimSpace(title)
			if title == "" {
				title = shoplist.DefaultTitle(time.Now())
			}
			amount := 0.0
			if cmd.Flags().Changed("total") {
				v, err := parseAmount(total)
				if err != nil {
					return err
				}
				amount = v
			}
			saved, err := a.list.SaveList(cmd.Context(), title, amount)
			if err != nil {
				return fmt.Errorf("save: %w", err)
			}
			a.ok(fmt.Sprintf("saved %q (%d items, %s)", saved.Title, len(saved.Items), ui.Money(saved.Total)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", `list title (default "Purchase DD/MM")`)
	cmd.Flags().StringVar(&total, "total", "", "amount spent")
	return cmd
}

func newNewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Discard the current list and start an empty one",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n := len(a.list.CurrentList()); n > 0 &&
				!a.confirm(fmt.Sprintf("Start a new list? %d unsaved items will be discarded.", n)) {
				a.info("cancelled")
				return nil
			}
			if err := a.list.StartNewList(cmd.Context()); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			a.ok("new list started")
			return nil
		},
	}
}

func newHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "history [index]",
		Aliases: []string{"hist"},
		Short:   "Show saved lists, or the items of one of them",
		Args:    rangeArgs(0, 1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				l, err := a.listAt(args[0])
				if err != nil {
					return err
				}
				ui.Panel(a.stdout, savedListLines(l))
				return nil
			}
			ui.Panel(a.stdout, historyLines(a.list.History(), a.list.Summary()))
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete a saved list",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.listAt(args[0])
			if err != nil {
				return err
			}
			if !a.confirm(fmt.Sprintf("Delete %q from the history?", l.Title)) {
				a.info("cancelled")
				return nil
			}
			if err := a.list.DeleteList(cmd.Context(), l.ID); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			a.ok("deleted " + l.Title)
			return nil
		},
	}
}

func newDupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "dup <index>",
		Aliases: []string{"duplicate"},
		Short:   "Copy the items of a saved list into the current list",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.listAt(args[0])
			if err != nil {
				return err
			}
			if !a.confirm(fmt.Sprintf("Add the %d items of %q to your current list?", len(l.Items), l.Title)) {
				a.info("cancelled")
				return nil
			}
			added, err := a.list.DuplicateList(cmd.Context(), l)
			switch {
			case errors.Is(err, shoplist.ErrNothingToAdd):
				a.info("nothing new to add: every item is already on your list")
				return nil
			case err != nil:
				return fmt.Errorf("save: %w", err)
			}
			a.ok(fmt.Sprintf("added %d items", len(added)))
			return nil
		},
	}
}

func historyLines(hist []model.SavedList, sum shoplist.HistorySummary) []string {
	t := ui.Current()
	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %s",
			ui.C(t.Title, "History"),
			ui.C(t.Accent, "Lists"), sum.Lists,
			ui.C(t.Accent, "Spent"), ui.Money(sum.Spent.InexactFloat64())),
		"",
	}
	if len(hist) == 0 {
		lines = append(lines, ui.C(t.Muted, "no saved lists"), "",
			ui.C(t.Muted, "Tip: save the current list with `shoplist save`"))
		return lines
	}
	for i, l := range hist {
		lines = append(lines, fmt.Sprintf("%s %s  %s  %s  %s",
			ui.Dim(fmt.Sprintf("%2d.", i+1)),
			ui.Truncate(l.Title, 40),
			ui.C(t.Muted, ui.Date(l.Date)),
			ui.Money(l.Total),
			ui.C(t.Muted, fmt.Sprintf("%d items", len(l.Items))),
		))
	}
	lines = append(lines, "", ui.C(t.Muted, "Tip: `shoplist history 1` shows the items, `shoplist dup 1` reuses them"))
	return lines
}

func savedListLines(l model.SavedList) []string {
	t := ui.Current()
	lines := []string{
		ui.C(t.Title, l.Title),
		ui.C(t.Muted, ui.Date(l.Date)) + "  " + ui.Money(l.Total),
		"",
	}
	return append(lines, flatLines(l.Items, 0)...)
}
