// Command personalab-export renders persona documents offline and exposes the
// list-text and slug helpers the web forms rely on
package main

import (
	"fmt"
	"io"
	"os"

	"personalab/internal/core/version"
	"personalab/internal/platform/logger"

	"github.com/spf13/cobra"
)

// exitError carries a process exit code through cobra without printing usage
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "personalab-export",
		Short:         "Render and check persona documents without the API",
		Version:       version.Version() + " (" + version.Commit() + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(
		newRenderCmd(),
		newValidateCmd(),
		newSlugCmd(),
		newListTextCmd(),
		newTokenCmd(),
	)
	return root
}

func main() {
	logger.Init(logger.Options{Level: "warn", Format: "console", Service: "personalab-export", Writer: os.Stderr})

	err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute()
	if err == nil {
		return
	}
	if ee, ok := err.(exitError); ok {
		os.Exit(ee.code)
	}
	logger.Get().Error().Err(err).Msg("personalab-export failed")
	os.Exit(1)
}
