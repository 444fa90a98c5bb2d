package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizform/internal/quizdoc"
	"github.com/abhisek/quizform/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect stored submissions",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			return listSubmissions(ctx, cmd.OutOrStdout(), st.SubmissionRepo(), limit)
		})
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <submission-id>",
	Short: "Print a stored submission as a quiz document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		f, err := quizdoc.ParseFormat(format)
		if err != nil {
			return err
		}
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			return viewSubmission(ctx, cmd.OutOrStdout(), st.SubmissionRepo(), args[0], f)
		})
	},
}

var historyEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List submit attempts, accepted and rejected",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return withStore(cmd, func(ctx context.Context, st *store.Store) error {
			return listSubmissionEvents(ctx, cmd.OutOrStdout(), st.EventRepo(), limit)
		})
	},
}

// withStore loads the config, opens the store and runs fn.
func withStore(cmd *cobra.Command, fn func(context.Context, *store.Store) error) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cmd, e.cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(commandContext(cmd), st)
}

func listSubmissions(ctx context.Context, w io.Writer, repo store.SubmissionRepo, limit int) error {
	subs, err := repo.List(ctx, store.QueryOpts{Limit: limit})
	if err != nil {
		return fmt.Errorf("list submissions: %w", err)
	}
	if len(subs) == 0 {
		fmt.Fprintln(w, "No submissions found.")
		return nil
	}

	fmt.Fprintf(w, "%-36s  %-19s  %9s  %7s  %s\n", "Submission", "Created", "Questions", "Answers", "Title")
	fmt.Fprintln(w, strings.Repeat("─", 100))
	for _, s := range subs {
		fmt.Fprintf(w, "%-36s  %-19s  %9d  %7d  %s\n",
			s.SubmissionID,
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.QuestionCount(),
			s.Data.AnswerCount(),
			s.Title,
		)
	}
	return nil
}

func viewSubmission(ctx context.Context, w io.Writer, repo store.SubmissionRepo, id string, f quizdoc.Format) error {
	sub, err := repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get submission: %w", err)
	}
	if sub == nil {
		return fmt.Errorf("submission %s not found", id)
	}
	return quizdoc.Encode(w, quizdoc.FromData(sub.Title, sub.Data), f)
}

func listSubmissionEvents(ctx context.Context, w io.Writer, repo store.EventRepo, limit int) error {
	events, err := repo.QuerySubmissionEvents(ctx, store.QueryOpts{Limit: limit})
	if err != nil {
		return fmt.Errorf("query events: %w", err)
	}
	if len(events) == 0 {
		fmt.Fprintln(w, "No submit attempts found.")
		return nil
	}

	fmt.Fprintf(w, "%-19s  %-36s  %-8s  %9s  %6s\n", "Timestamp", "Session", "Outcome", "Questions", "Issues")
	fmt.Fprintln(w, strings.Repeat("─", 86))
	for _, e := range events {
		fmt.Fprintf(w, "%-19s  %-36s  %-8s  %9d  %6d\n",
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.SessionID,
			e.Outcome,
			e.QuestionCount,
			e.IssueCount,
		)
	}
	return nil
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of submissions to show")
	historyEventsCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
	historyViewCmd.Flags().StringP("format", "f", "yaml", "Output format: yaml or json")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
	historyCmd.AddCommand(historyEventsCmd)
}
