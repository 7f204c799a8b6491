package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zeropress-app/create-zeropress-theme/internal/branding"
	"github.com/zeropress-app/create-zeropress-theme/internal/config"
	"github.com/zeropress-app/create-zeropress-theme/internal/invocation"
	"github.com/zeropress-app/create-zeropress-theme/internal/scaffold"
	"github.com/zeropress-app/create-zeropress-theme/internal/templates"
)

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := invocation.Parse(args)
	if err != nil {
		return err
	}

	baseDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	opts := scaffold.Options{Store: templateStore()}
	if config.Debug() {
		errOut := cmd.ErrOrStderr()
		fmt.Fprintf(errOut, "%s version %s (commit: %s, built: %s)\n",
			branding.CLIName(), buildVersion, buildCommit, buildDate)
		fmt.Fprintf(errOut, "templates: %s\n", opts.Store.Source())
		opts.Progress = scaffold.Progress{
			Copied: func(rel string) {
				fmt.Fprintf(errOut, "copied %s\n", rel)
			},
			Skipped: func(rel, reason string) {
				fmt.Fprintf(errOut, "skipped %s (%s)\n", rel, reason)
			},
		}
	}

	result, err := scaffold.Generate(baseDir, cfg, opts)
	if err != nil {
		return err
	}

	printResult(cmd, cfg, result)
	return nil
}

// templateStore returns the on-disk store named by template_root, or the
// built-in templates when it is unset.
func templateStore() *templates.Store {
	if root := config.TemplateRoot(); root != "" {
		return templates.Dir(root)
	}
	return templates.Embedded()
}

func printResult(cmd *cobra.Command, cfg *invocation.Config, result *scaffold.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s theme at %s\n", branding.DisplayName(), result.OutputDir)
	fmt.Fprintf(out, "Template: %s\n", result.Template)
	if cfg.WithDevtools {
		fmt.Fprintln(out, "Devtools enabled: npm run dev / npm run validate / npm run pack")
	}

	errOut := cmd.ErrOrStderr()
	for _, w := range result.Warnings {
		fmt.Fprintf(errOut, "warning: %s\n", w)
	}
}
