package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Print the effective configuration, or write it with --write",
		Args:        exactArgs(0),
		Annotations: map[string]string{skipStore: "true"},
		RunE: func(_ *cobra.Command, _ []string) error {
			if write {
				path := a.flags.path()
				if err := a.cfg.Save(path); err != nil {
					return err
				}
				a.ok("wrote " + path)
				return nil
			}
			out, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = a.stdout.Write(out)
			return err
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "save the effective settings to the config file")
	return cmd
}
