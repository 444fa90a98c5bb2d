package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizform/internal/quizdoc"
	"github.com/abhisek/quizform/internal/quizform"
)

// errInvalidQuiz makes the command exit non-zero after the issues have
// been printed.
var errInvalidQuiz = errors.New("quiz is invalid")

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a quiz document against the configured limits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		return runValidate(cmd.OutOrStdout(), args[0], e.cfg.Limits.Quiz())
	},
}

func loadQuiz(path string, limits quizform.Limits) (*quizdoc.Document, *quizform.Quiz, error) {
	doc, err := quizdoc.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	qz, err := quizdoc.Load(doc, limits)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", path, err)
	}
	return doc, qz, nil
}

func runValidate(w io.Writer, path string, limits quizform.Limits) error {
	_, qz, err := loadQuiz(path, limits)
	if err != nil {
		return err
	}
	if qz.Valid() {
		fmt.Fprintf(w, "%s: valid (%d questions)\n", path, qz.Len())
		return nil
	}
	fmt.Fprintf(w, "%s: invalid\n", path)
	printIssues(w, qz.Issues())
	return errInvalidQuiz
}

func printIssues(w io.Writer, issues []quizform.Issue) {
	width := 0
	for _, is := range issues {
		width = max(width, len(is.Path))
	}
	for _, is := range issues {
		fmt.Fprintf(w, "  %-*s  %s\n", width, is.Path, is.Message)
	}
}
