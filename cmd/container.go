package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/compozy/getversion/internal/config"
	"github.com/compozy/getversion/internal/logger"
	"github.com/compozy/getversion/internal/repository"
	"github.com/compozy/getversion/internal/service"
	"github.com/compozy/getversion/internal/usecase"
)

// container holds all the dependencies for the application.

type container struct {
	cfg *config.Config

	fsRepo repository.FileSystemRepository
	reader service.ManifestReader
}

// newContainer creates a new container with all the dependencies.
func newContainer(cfg *config.Config, fsRepo repository.FileSystemRepository) *container {
	var reader service.ManifestReader
	switch cfg.Reader {
	case config.ReaderToml:
		reader = repository.NewTomlManifestRepository(fsRepo)
	default:
		reader = service.NewCargoService(cfg.CargoBin)
	}
	return &container{
		cfg:    cfg,
		fsRepo: fsRepo,
		reader: reader,
	}
}

// manifestPath returns the configured manifest path, anchored at the git
// worktree root when repo_root is enabled.
func (c *container) manifestPath(ctx context.Context) (string, error) {
	if !c.cfg.RepoRoot {
		return c.cfg.ManifestPath, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	ws, err := repository.NewGitWorkspace(wd)
	if err != nil {
		return "", err
	}
	path := ws.Resolve(c.cfg.ManifestPath)
	logger.DebugKV(ctx, "resolved manifest against worktree", "root", ws.Root(), "manifest_path", path)
	return path, nil
}

// reportVersionUseCase builds the use case for the root command.
func (c *container) reportVersionUseCase(ctx context.Context) (*usecase.ReportVersionUseCase, error) {
	path, err := c.manifestPath(ctx)
	if err != nil {
		return nil, err
	}
	return &usecase.ReportVersionUseCase{
		Reader:       c.reader,
		ManifestPath: path,
	}, nil
}
