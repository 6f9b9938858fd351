package service

import (
	"context"

	"github.com/compozy/getversion/internal/domain"
)

// ManifestReader defines the interface for obtaining a decoded project manifest.

type ManifestReader interface {
	ReadManifest(ctx context.Context, path string) (domain.Manifest, error)
}
