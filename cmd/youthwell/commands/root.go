// Package commands implements the youthwell terminal client.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/benvon/youthwell/internal/appstate"
	"github.com/benvon/youthwell/internal/client"
	"github.com/benvon/youthwell/internal/config"
	"github.com/benvon/youthwell/internal/dashboard"
	"github.com/benvon/youthwell/internal/logger"
	"github.com/benvon/youthwell/internal/storage"
)

// Env is everything a command works with: one store over the durable KV,
// the consent manager guarding it and the panels calling the API.
type Env struct {
	Config    config.ClientConfig
	Logger    *zap.Logger
	Consent   *storage.Consent
	Gate      *storage.Gate
	Dashboard *dashboard.Dashboard

	kv storage.KV
}

// NewEnv wires a store and dashboard over kv and api.
func NewEnv(cfg config.ClientConfig, log *zap.Logger, kv storage.KV, api dashboard.API) *Env {
	if log == nil {
		log = zap.NewNop()
	}
	consent := storage.NewConsent(kv)
	gate := storage.NewGate(kv, consent, log)
	store := appstate.New(gate,
		appstate.WithLogger(log),
		appstate.WithHistoryLimit(cfg.HistoryLimit),
	)
	return &Env{
		Config:    cfg,
		Logger:    log,
		Consent:   consent,
		Gate:      gate,
		Dashboard: dashboard.New(store, api, log),
		kv:        kv,
	}
}

// Close releases the KV and flushes the logger.
func (e *Env) Close() error {
	if e.Dashboard != nil {
		e.Dashboard.Close()
	}
	_ = logger.Sync(e.Logger)
	return e.kv.Close()
}

// Opener builds the Env for one command invocation.
type Opener func(ctx context.Context, debug bool) (*Env, error)

// DefaultOpener loads the client configuration from the environment and
// opens the badger store in the data directory.
func DefaultOpener(_ context.Context, debug bool) (*Env, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log, err := logger.NewCLILogger(debug || cfg.DebugMode)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	kv, err := storage.OpenBadgerKV(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	api := client.New(cfg.APIURL, client.WithTimeout(cfg.Timeout), client.WithLogger(log))
	return NewEnv(*cfg, log, kv, api), nil
}

type cli struct {
	open  Opener
	debug bool
}

// NewRootCmd creates the youthwell command tree. open is called once per invocation.
func NewRootCmd(open Opener) *cobra.Command {
	c := &cli{open: open}

	rootCmd := &cobra.Command{
		Use:           "youthwell",
		Short:         "YouthWell wellness companion",
		Long:          "Terminal dashboard for YouthWell: mood based wellness plans, companion chat, reminders and analytics.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVar(&c.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(c.newConsentCmd())
	rootCmd.AddCommand(c.newMoodCmd())
	rootCmd.AddCommand(c.newChatCmd())
	rootCmd.AddCommand(c.newRemindersCmd())
	rootCmd.AddCommand(c.newAnalyticsCmd())
	rootCmd.AddCommand(c.newCheckinCmd())
	rootCmd.AddCommand(c.newContactCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newResetCmd())
	return rootCmd
}

// run opens the Env, reminds undecided users about storage consent and
// calls fn.
func (c *cli) run(cmd *cobra.Command, fn func(env *Env) error) error {
	return c.runEnv(cmd, true, fn)
}

func (c *cli) runEnv(cmd *cobra.Command, notice bool, fn func(env *Env) error) (err error) {
	env, err := c.open(cmd.Context(), c.debug)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := env.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close data store: %w", cerr)
		}
	}()

	if notice && !env.Consent.HasDecided() {
		fmt.Fprintln(cmd.ErrOrStderr(), "Note: nothing is saved between sessions until you run 'youthwell consent accept'.")
	}
	return fn(env)
}
