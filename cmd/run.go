package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizform/internal/app"
	"github.com/abhisek/quizform/internal/config"
	"github.com/abhisek/quizform/internal/drafter"
	"github.com/abhisek/quizform/internal/llm"
	"github.com/abhisek/quizform/internal/session"
	"github.com/abhisek/quizform/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.log.Sync()

	st, err := openStore(cmd, e.cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	limits := e.cfg.Limits.Quiz()
	deps := app.Deps{
		Limits: limits,
		Session: session.Deps{
			Submissions: st.SubmissionRepo(),
			Events:      st.EventRepo(),
			Log:         e.log,
		},
		Submissions: st.SubmissionRepo(),
	}

	d, err := newDrafter(commandContext(cmd), e.cfg, st.EventRepo(), e.log)
	switch {
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Drafting will be unavailable.")
	case d != nil:
		deps.Drafter = d
	}

	e.log.Info("starting tui", zap.Bool("drafting", deps.Drafter != nil))
	return app.Run(deps)
}

// newDrafter builds a drafter from the llm config. It returns nil, nil when
// no provider is configured or discoverable.
func newDrafter(ctx context.Context, cfg config.Config, events store.EventRepo, log *zap.Logger) (*drafter.Drafter, error) {
	pc, ok := cfg.LLM.ProviderConfig()
	if !ok {
		return nil, nil
	}
	provider, err := llm.NewProvider(ctx, pc, events, log)
	if err != nil {
		return nil, err
	}
	return drafter.New(provider, cfg.Limits.Quiz(), drafter.DefaultConfig()), nil
}
