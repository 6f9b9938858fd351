package usecase

import (
	"context"
	"fmt"

	"github.com/compozy/getversion/internal/logger"
	"github.com/compozy/getversion/internal/service"
)

// VersionPrefix is prepended to the manifest version.
const VersionPrefix = "v"

// ReportVersionUseCase contains the logic for reporting a manifest version.

type ReportVersionUseCase struct {
	Reader       service.ManifestReader
	ManifestPath string
}

// Execute reads the manifest and returns its version prefixed with "v".
// The value is relayed as-is: no trimming, validation or normalization.
func (uc *ReportVersionUseCase) Execute(ctx context.Context) (string, error) {
	manifest, err := uc.Reader.ReadManifest(ctx, uc.ManifestPath)
	if err != nil {
		return "", fmt.Errorf("failed to read manifest %s: %w", uc.ManifestPath, err)
	}
	version, err := manifest.Version()
	if err != nil {
		return "", fmt.Errorf("failed to get version from %s: %w", uc.ManifestPath, err)
	}
	logger.InfoKV(ctx, "resolved manifest version", "package", manifest.Name(), "version", version)
	return VersionPrefix + version, nil
}
