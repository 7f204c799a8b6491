package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/zeropress-app/create-zeropress-theme/internal/branding"
	"github.com/zeropress-app/create-zeropress-theme/internal/config"
	"github.com/zeropress-app/create-zeropress-theme/internal/invocation"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   branding.CLIName() + " <name>",
		Short: branding.Description(),
		Long: `Create a new ` + branding.DisplayName() + ` theme directory from a built-in starter template.

` + invocation.Usage(),
		// Options are parsed by the invocation package so that unknown and
		// malformed options are reported in one consistent way.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		// A theme may be called "completion".
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Load()
		},
		RunE: runCreate,
	}
}

// Run executes the command with args (without the program name) and returns
// the process exit code. Failures are reported on stderr as a single line
// prefixed with the tool name.
func Run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when no args are set.
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "[%s] %s\n", branding.CLIName(), err)
		return 1
	}
	return 0
}

// Execute runs the command against the process arguments with build info
// injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if code := Run(os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		return fmt.Errorf("exit status %d", code)
	}
	return nil
}
