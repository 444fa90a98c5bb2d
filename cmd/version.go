package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizform/internal/quizdoc"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the quizform build and quiz document format versions",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout())
	},
}

// printVersion reports the build and the document format Encode writes.
// validate and submit accept any document of the same major version.
func printVersion(w io.Writer) {
	fmt.Fprintln(w, "quizform", version)
	fmt.Fprintln(w, "quiz document format", quizdoc.Version)
}
