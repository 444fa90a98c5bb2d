package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizform/internal/drafter"
	"github.com/abhisek/quizform/internal/quizdoc"
)

var errNoProvider = errors.New("no LLM provider configured: set llm.provider or one of ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY, OPENROUTER_API_KEY")

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft a quiz on a topic with an LLM",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		questions, _ := cmd.Flags().GetInt("questions")
		answers, _ := cmd.Flags().GetInt("answers")
		out, _ := cmd.Flags().GetString("out")

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

		ctx := commandContext(cmd)
		d, err := newDrafter(ctx, e.cfg, st.EventRepo(), e.log)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		if d == nil {
			return errNoProvider
		}

		in := drafter.Input{Topic: topic, Questions: questions, Answers: answers}
		return runDraft(ctx, cmd.OutOrStdout(), d, in, out)
	},
}

type quizDrafter interface {
	Draft(ctx context.Context, in drafter.Input) (*quizdoc.Document, error)
}

// runDraft writes the draft to out, or prints it as YAML when out is empty.
func runDraft(ctx context.Context, w io.Writer, d quizDrafter, in drafter.Input, out string) error {
	doc, err := d.Draft(ctx, in)
	if err != nil {
		return fmt.Errorf("draft: %w", err)
	}
	if out == "" {
		return quizdoc.Encode(w, doc, quizdoc.FormatYAML)
	}
	if err := quizdoc.WriteFile(out, doc); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(w, "Drafted %d questions to %s\n", len(doc.Questions), out)
	return nil
}

func init() {
	draftCmd.Flags().StringP("topic", "t", "", "Quiz topic (required)")
	draftCmd.Flags().IntP("questions", "q", 0, "Number of questions (default from limits)")
	draftCmd.Flags().IntP("answers", "a", 0, "Answers per question (default from limits)")
	draftCmd.Flags().StringP("out", "o", "", "Write the draft to this .yaml or .json file")
	_ = draftCmd.MarkFlagRequired("topic")
}
