package cmd

import (
	"fmt"

	"github.com/compozy/getversion/internal/config"
	"github.com/compozy/getversion/internal/logger"
	"github.com/compozy/getversion/internal/repository"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the get-version command with its subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-version",
		Short: "Print the crate version from Cargo.toml prefixed with v",
		Long: `get-version runs "cargo read-manifest" against the project manifest and
prints its version as a single line, for example "v1.2.3".

Settings are read from .get-version.yaml, GET_VERSION_* environment variables
and flags, in increasing order of precedence.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReportVersion,
	}
	config.BindFlags(cmd.Flags())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runReportVersion(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	level, _ := logger.ParseLogLevel(cfg.LogLevel)
	ctx := logger.ToContext(cmd.Context(), logger.New(cmd.ErrOrStderr(), level))
	ctx = logger.WithKV(ctx, "run_id", uuid.NewString())
	logger.DebugKV(ctx, "loaded configuration",
		"manifest_path", cfg.ManifestPath, "reader", cfg.Reader, "repo_root", cfg.RepoRoot)

	c := newContainer(cfg, repository.NewOsFileSystem())
	uc, err := c.reportVersionUseCase(ctx)
	if err != nil {
		return err
	}
	line, err := uc.Execute(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
	return err
}

func Execute() error {
	return NewRootCmd().Execute()
}
