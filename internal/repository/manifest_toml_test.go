package repository

import (
	"context"
	"testing"

	"github.com/compozy/getversion/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cargoToml = `[package]
name = "botw-freecam"
version = "0.2.5"
edition = "2018"

[lib]
crate-type = ["cdylib"]

[dependencies]
memory-rs = { git = "https://github.com/etra0/memory-rs" }
`

func TestTomlManifestRepository_ReadManifest(t *testing.T) {
	t.Run("Should read the package table", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "botw-freecam/Cargo.toml", []byte(cargoToml), 0o644))
		repo := NewTomlManifestRepository(fs)
		manifest, err := repo.ReadManifest(context.Background(), "botw-freecam/Cargo.toml")
		require.NoError(t, err)
		assert.Equal(t, "botw-freecam", manifest.Name())
		version, err := manifest.Version()
		require.NoError(t, err)
		assert.Equal(t, "0.2.5", version)
	})
	t.Run("Should return read error for a missing file", func(t *testing.T) {
		repo := NewTomlManifestRepository(afero.NewMemMapFs())
		_, err := repo.ReadManifest(context.Background(), "Cargo.toml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
		assert.NotErrorIs(t, err, domain.ErrDecodeFailure)
	})
	t.Run("Should fail to decode malformed TOML", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "Cargo.toml", []byte("[package\nversion = 1"), 0o644))
		_, err := NewTomlManifestRepository(fs).ReadManifest(context.Background(), "Cargo.toml")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDecodeFailure)
	})
	t.Run("Should fail when there is no package table", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		workspace := "[workspace]\nmembers = [\"botw-freecam\"]\n"
		require.NoError(t, afero.WriteFile(fs, "Cargo.toml", []byte(workspace), 0o644))
		_, err := NewTomlManifestRepository(fs).ReadManifest(context.Background(), "Cargo.toml")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDecodeFailure)
		assert.Contains(t, err.Error(), "[package]")
	})
	t.Run("Should surface inherited workspace versions as non-string", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		inherited := "[package]\nname = \"member\"\nversion.workspace = true\n"
		require.NoError(t, afero.WriteFile(fs, "Cargo.toml", []byte(inherited), 0o644))
		manifest, err := NewTomlManifestRepository(fs).ReadManifest(context.Background(), "Cargo.toml")
		require.NoError(t, err)
		_, err = manifest.Version()
		assert.ErrorIs(t, err, domain.ErrMissingField)
	})
	t.Run("Should report a package without version", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "Cargo.toml", []byte("[package]\nname = \"x\"\n"), 0o644))
		manifest, err := NewTomlManifestRepository(fs).ReadManifest(context.Background(), "Cargo.toml")
		require.NoError(t, err)
		_, err = manifest.Version()
		assert.ErrorIs(t, err, domain.ErrMissingField)
	})
}
