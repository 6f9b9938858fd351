package repository

import (
	"context"
	"fmt"

	"github.com/compozy/getversion/internal/domain"
	"github.com/compozy/getversion/internal/logger"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// TomlManifestRepository reads the [package] table of a Cargo.toml directly,
// without invoking cargo.
type TomlManifestRepository struct {
	fs afero.Fs
}

// NewTomlManifestRepository creates a manifest reader over the given filesystem.
func NewTomlManifestRepository(fs afero.Fs) *TomlManifestRepository {
	return &TomlManifestRepository{fs: fs}
}

// ReadManifest decodes the manifest file and returns its [package] table.
func (r *TomlManifestRepository) ReadManifest(ctx context.Context, path string) (domain.Manifest, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	logger.DebugKV(ctx, "read manifest file", "path", path, "bytes", len(data))

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDecodeFailure, path, err)
	}
	pkg, ok := doc["package"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no [package] table", domain.ErrDecodeFailure, path)
	}
	return domain.Manifest(pkg), nil
}
