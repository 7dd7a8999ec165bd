package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/store"
)

// skipStore marks commands that run without opening the lists.
const skipStore = "skip-store"

type rootFlags struct {
	configPath string
	backend    string
	dataDir    string
	logLevel   string
	theme      string
	yes        bool
	noColor    bool

	changed func(name string) bool
}

// config layers flags over the file and environment.
func (f *rootFlags) config() (*config.Config, error) {
	cfg, err := config.Load(f.path())
	if err != nil {
		return nil, err
	}
	if f.changed("backend") {
		cfg.Backend = f.backend
	}
	if f.changed("data-dir") {
		cfg.DataDir = f.dataDir
	}
	if f.changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if f.changed("theme") {
		cfg.Theme = f.theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, usagef("config: %v", err)
	}
	return cfg, nil
}

func (f *rootFlags) path() string {
	if f.configPath != "" {
		return f.configPath
	}
	return config.DefaultPath()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "shoplist",
		Short: "Keep track of what to buy",
		Long: `shoplist keeps one current shopping list and a history of saved ones.

Run without a subcommand to open the interactive view.`,
		Example: `  shoplist add Milk
  shoplist ls
  shoplist toggle 2
  shoplist save --title "Weekly" --total 42.50
  shoplist dup 1`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown subcommand: %s", args[0])
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return a.open(cmd.Context(), cmd.Annotations[skipStore] == "")
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd.Context())
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	pf.StringVar(&a.flags.backend, "backend", store.BackendJSON, "storage backend: json, sqlite or memory")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "directory holding the lists")
	pf.StringVar(&a.flags.logLevel, "log-level", "info", "debug, info, warn, error or off")
	pf.StringVar(&a.flags.theme, "theme", "classic", "classic, neon or mono")
	pf.BoolVarP(&a.flags.yes, "yes", "y", false, "answer yes to confirmations")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable colors")
	a.flags.changed = func(name string) bool { return pf.Changed(name) }

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usagef("%v", err)
	})

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newToggleCmd(a),
		newEditCmd(a),
		newRemoveCmd(a),
		newMoveCmd(a),
		newPriceCmd(a),
		newSaveCmd(a),
		newNewCmd(a),
		newHistoryCmd(a),
		newDeleteCmd(a),
		newDupCmd(a),
		newConfigCmd(a),
		newTUICmd(a),
	)
	return root
}

// exactArgs is cobra.ExactArgs reporting a usage error with the command's synopsis.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("usage: shoplist %s", cmd.Use)
		}
		return nil
	}
}

func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return usagef("usage: shoplist %s", cmd.Use)
		}
		return nil
	}
}

func rangeArgs(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < lo || len(args) > hi {
			return usagef("usage: shoplist %s", cmd.Use)
		}
		return nil
	}
}
