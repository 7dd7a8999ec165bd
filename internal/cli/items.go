package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/shoplist"
	"github.com/idilsaglam/shoplist/internal/ui"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name...>",
		Short: "Add an item to the current list (name can be multiple words)",
		Args:  minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return usagef("add: empty name")
			}
			it, err := a.list.AddItem(cmd.Context(), name)
			if err != nil {
				return fmt.Errorf("save: %w", err)
			}
			a.ok("added " + it.Name)
			return nil
		},
	}
}

func newToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <index>",
		Aliases: []string{"done", "check"},
		Short:   "Mark the item at a 1-based index as purchased, or back",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := a.itemAt(args[0])
			if err != nil {
				return err
			}
			if err := a.list.ToggleItem(cmd.Context(), it.ID); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			if it.Purchased {
				a.ok("unchecked " + it.Name)
			} else {
				a.ok("checked " + it.Name)
			}
			return nil
		},
	}
}

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <index> <name...>",
		Short: "Rename the item at a 1-based index",
		Args:  minArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := a.itemAt(args[0])
			if err != nil {
				return err
			}
			name := strings.TrimSpace(strings.Join(args[1:], " "))
			if name == "" {
				return usagef("edit: empty name")
			}
			if err := a.list.EditItem(cmd.Context(), it.ID, name); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			a.ok("renamed")
			return nil
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove the item at a 1-based index",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := a.itemAt(args[0])
			if err != nil {
				return err
			}
			if err := a.list.RemoveItem(cmd.Context(), it.ID); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			a.ok("removed " + it.Name)
			return nil
		},
	}
}

func newMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <from> <to>",
		Short: "Move an item to another position",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := a.itemAt(args[0])
			if err != nil {
				return err
			}
			to, err := a.itemAt(args[1])
			if err != nil {
				return err
			}
			if err := a.list.ReorderItems(cmd.Context(), from.ID, to.ID); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			a.ok("moved")
			return nil
		},
	}
}

func newPriceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "price <index> <amount|->",
		Short: "Set the expected price of an item, or clear it with -",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := a.itemAt(args[0])
			if err != nil {
				return err
			}
			var price *float64
			if args[1] != "-" {
				v, err := parseAmount(args[1])
				if err != nil {
					return err
				}
				price = &v
			}
			if err := a.list.SetPrice(cmd.Context(), it.ID, price); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			if price == nil {
				a.ok("price cleared")
			} else {
				a.ok(it.Name + " at " + ui.Money(*price))
			}
			return nil
		},
	}
}

// parseAmount turns an invalid amount into a usage error.
func parseAmount(s string) (float64, error) {
	v, err := shoplist.ParseAmount(s)
	if err != nil {
		return 0, usagef("%v", err)
	}
	return v, nil
}
