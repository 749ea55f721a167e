package build

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/alexisbeaulieu97/palette/internal/logger"
	"github.com/alexisbeaulieu97/palette/pkg/diff"
)

// ArtifactReader returns the existing content of an artifact path.
// Implementations report a missing artifact with an error matching os.ErrNotExist.
type ArtifactReader interface {
	ReadArtifact(path string) ([]byte, error)
}

// FSReader reads artifacts from a filesystem.
type FSReader struct {
	Fs afero.Fs
}

// ReadArtifact implements ArtifactReader.
func (r FSReader) ReadArtifact(path string) ([]byte, error) {
	return afero.ReadFile(r.Fs, path)
}

// WriteReport lists the paths touched by Write.
type WriteReport struct {
	Written   []string
	Unchanged []string
}

// Drift describes an artifact whose existing content differs from the generated one.
type Drift struct {
	Artifact Artifact
	Missing  bool
	Diff     diff.Result
}

// Service writes and checks artifacts on a filesystem.
type Service struct {
	fs  afero.Fs
	log *logger.Logger
}

// NewService constructs a Service. A nil logger discards output.
func NewService(fs afero.Fs, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{fs: fs, log: log}
}

// Write stores every artifact, creating parent directories as needed. Files
// whose content is already current are left untouched.
func (s *Service) Write(ctx context.Context, artifacts []Artifact) (WriteReport, error) {
	var report WriteReport

	for _, artifact := range artifacts {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		log := s.log.WithFields(map[string]any{"artifact": string(artifact.Kind), "path": artifact.Path})

		existing, err := afero.ReadFile(s.fs, artifact.Path)
		if err == nil && bytes.Equal(existing, artifact.Content) {
			log.Debug("artifact unchanged")
			report.Unchanged = append(report.Unchanged, artifact.Path)
			continue
		}

		if err := s.fs.MkdirAll(filepath.Dir(artifact.Path), 0o755); err != nil {
			return report, fmt.Errorf("create directory for %s: %w", artifact.Path, err)
		}
		if err := afero.WriteFile(s.fs, artifact.Path, artifact.Content, 0o644); err != nil {
			return report, fmt.Errorf("write %s: %w", artifact.Path, err)
		}

		log.WithFields(map[string]any{"bytes": len(artifact.Content)}).Info("artifact written")
		report.Written = append(report.Written, artifact.Path)
	}

	return report, nil
}

// Check compares every artifact with what reader holds and returns the ones
// that drifted. A nil reader reads from the service filesystem.
func (s *Service) Check(ctx context.Context, artifacts []Artifact, reader ArtifactReader) ([]Drift, error) {
	if reader == nil {
		reader = FSReader{Fs: s.fs}
	}

	var drifts []Drift
	for _, artifact := range artifacts {
		if err := ctx.Err(); err != nil {
			return drifts, err
		}

		log := s.log.WithFields(map[string]any{"artifact": string(artifact.Kind), "path": artifact.Path})

		existing, err := reader.ReadArtifact(artifact.Path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return drifts, fmt.Errorf("read %s: %w", artifact.Path, err)
			}
			log.Warn("artifact missing")
			drifts = append(drifts, Drift{
				Artifact: artifact,
				Missing:  true,
				Diff:     diff.Unified(nil, artifact.Content, "/dev/null", artifact.Path+" (generated)"),
			})
			continue
		}

		result := diff.Unified(existing, artifact.Content, artifact.Path, artifact.Path+" (generated)")
		if !result.Stats.Changed() {
			log.Debug("artifact up to date")
			continue
		}

		log.WithFields(map[string]any{"changes": result.Stats.String()}).Warn("artifact drifted")
		drifts = append(drifts, Drift{Artifact: artifact, Diff: result})
	}

	return drifts, nil
}
