package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/logging"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/shoplist"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// app carries what every subcommand needs once the root has set it up.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	reader *bufio.Reader

	flags rootFlags

	cfg  *config.Config
	log  *logging.ZapLogger
	kv   store.KV
	list *shoplist.Store
}

// open loads config, logger and storage. Called from the root's
// PersistentPreRunE so that flags are already parsed.
func (a *app) open(ctx context.Context, needStore bool) error {
	cfg, err := a.flags.config()
	if err != nil {
		return err
	}
	a.cfg = cfg
	ui.SetTheme(cfg.Theme)
	if a.flags.noColor {
		ui.SetColorForcing(false, true)
	}

	a.log, err = logging.NewFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		// Logging is best effort; never block the user on it.
		a.log = logging.NewNop()
	}
	if !needStore {
		return nil
	}

	a.kv, err = store.Open(ctx, cfg.Backend, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	a.list, err = shoplist.Open(ctx, a.kv,
		shoplist.WithLogger(a.log.With("component", "shoplist", "backend", cfg.Backend)))
	if err != nil {
		return fmt.Errorf("load lists: %w", err)
	}
	return nil
}

func (a *app) close() {
	if a.kv != nil {
		_ = a.kv.Close()
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func (a *app) ok(msg string)   { ui.OK(a.stdout, msg) }
func (a *app) info(msg string) { ui.Info(a.stdout, msg) }
func (a *app) fail(msg string) { ui.Fail(a.stderr, msg) }

// itemAt resolves a 1-based position argument against the current list.
func (a *app) itemAt(arg string) (model.Item, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return model.Item{}, usagef("not a number: %s", arg)
	}
	it, ok := a.list.ItemAt(n)
	if !ok {
		return model.Item{}, usagef("index out of range: have %d, got %d (run `shoplist ls`)",
			len(a.list.CurrentList()), n)
	}
	return it, nil
}

// listAt resolves a 1-based position argument against the history.
func (a *app) listAt(arg string) (model.SavedList, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return model.SavedList{}, usagef("not a number: %s", arg)
	}
	l, ok := a.list.ListAt(n)
	if !ok {
		return model.SavedList{}, usagef("index out of range: have %d, got %d (run `shoplist history`)",
			len(a.list.History()), n)
	}
	return l, nil
}
