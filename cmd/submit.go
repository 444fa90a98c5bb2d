package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizform/internal/quizform"
	"github.com/abhisek/quizform/internal/session"
)

var submitCmd = &cobra.Command{
	Use:   "submit FILE",
	Short: "Submit a quiz document and store it when valid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		deps := session.Deps{
			Submissions: st.SubmissionRepo(),
			Events:      st.EventRepo(),
			Log:         e.log,
		}
		return runSubmit(commandContext(cmd), cmd.OutOrStdout(), args[0], e.cfg.Limits.Quiz(), deps)
	},
}

func runSubmit(ctx context.Context, w io.Writer, path string, limits quizform.Limits, deps session.Deps) error {
	doc, qz, err := loadQuiz(path, limits)
	if err != nil {
		return err
	}
	sess := session.Resume(qz, deps)
	sess.SetTitle(doc.Title)

	out, err := sess.Submit(ctx)
	fmt.Fprintln(w, out.Status())
	if err != nil {
		return err
	}
	if !out.Accepted {
		printIssues(w, out.Issues)
		return errInvalidQuiz
	}
	if out.Stored != nil {
		fmt.Fprintf(w, "Saved as %s\n", out.Stored.SubmissionID)
	}
	return nil
}
