package version

import (
	"fmt"
	"io"
	"strings"

	"github.com/compozy/getversion/internal/domain"
)

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Summary returns a human-friendly version string for CLI output.
// Semantic versions are rendered with a v prefix; anything else is returned as-is.
func Summary() string {
	raw := strings.TrimSpace(Version)
	v, err := domain.NewVersion(raw)
	if err != nil {
		return raw
	}
	return v.String()
}

// WriteInfo writes the tab-separated build metadata, one field per line.
// Blank ldflags values are replaced with placeholders.
func WriteInfo(w io.Writer) error {
	fields := []struct {
		label, value, placeholder string
	}{
		{"Version", Summary(), "dev"},
		{"Commit", CommitHash, "unknown"},
		{"Built", BuildDate, "unknown"},
	}
	for _, f := range fields {
		value := strings.TrimSpace(f.value)
		if value == "" {
			value = f.placeholder
		}
		if _, err := fmt.Fprintf(w, "%s:\t%s\n", f.label, value); err != nil {
			return err
		}
	}
	return nil
}
