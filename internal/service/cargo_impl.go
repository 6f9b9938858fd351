package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/compozy/getversion/internal/domain"
	"github.com/compozy/getversion/internal/logger"
)

// cargoService reads manifests through `cargo read-manifest`.
type cargoService struct {
	// binary is the cargo executable, resolved through PATH when not absolute
	binary string
}

// NewCargoService creates a ManifestReader backed by the given cargo executable.
func NewCargoService(binary string) ManifestReader {
	if binary == "" {
		binary = DefaultCargoBinary
	}
	return &cargoService{binary: binary}
}

// executeCommand runs a command to completion and returns its stdout.
// Stderr of a successful run is relayed as a warning log.
func (s *cargoService) executeCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %s interrupted: %w", domain.ErrProcessFailure, name, ctx.Err())
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			status := fmt.Sprintf("exited with status %d", exitErr.ExitCode())
			if exitErr.ExitCode() < 0 {
				// terminated by a signal
				status = exitErr.String()
			}
			errMsg := strings.TrimSpace(stderr.String())
			if errMsg != "" {
				return nil, fmt.Errorf("%w: %s %s (stderr: %s)", domain.ErrProcessFailure, name, status, errMsg)
			}
			return nil, fmt.Errorf("%w: %s %s", domain.ErrProcessFailure, name, status)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrProcessFailure, err)
	}
	if warnings := strings.TrimSpace(stderr.String()); warnings != "" {
		logger.WarnKV(ctx, "manifest reader wrote to stderr", "command", name, "stderr", warnings)
	}

	return stdout.Bytes(), nil
}

// ReadManifest runs `cargo read-manifest --manifest-path <path>` and decodes its JSON output.
func (s *cargoService) ReadManifest(ctx context.Context, path string) (domain.Manifest, error) {
	args := []string{"read-manifest", "--manifest-path", path}
	logger.DebugKV(ctx, "running manifest reader", "command", s.binary, "args", args)

	output, err := s.executeCommand(ctx, s.binary, args...)
	if err != nil {
		return nil, err
	}
	logger.DebugKV(ctx, "manifest reader finished", "bytes", len(output))

	return domain.DecodeManifest(output)
}
