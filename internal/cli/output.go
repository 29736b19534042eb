package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/provenlabs/origintrace/pkg/pipeline"
)

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, etc.), it strips that extension.
// This is used when generating multiple files (e.g., diagram.svg, diagram.dot).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	cacheHit  bool
	routed    int
	dropped   int
	crossings int
}

// writeArtifacts writes each rendered format to disk and prints a summary.
// A single format goes to the output path directly; multiple formats share a
// base path with per-format extensions.
func writeArtifacts(p artifactWriteParams) error {
	var written []string

	if len(p.formats) == 1 {
		path := p.output
		if path == "" {
			path = basePath("", p.input) + "." + p.formats[0]
		}
		if err := writeArtifact(path, p.artifacts[p.formats[0]]); err != nil {
			return err
		}
		written = append(written, path)
	} else {
		base := basePath(p.output, p.input)
		for _, format := range p.formats {
			path := fmt.Sprintf("%s.%s", base, format)
			if err := writeArtifact(path, p.artifacts[format]); err != nil {
				return err
			}
			written = append(written, path)
		}
	}

	printSuccess("Visualization complete")
	for _, path := range written {
		printFile(path)
	}
	printStats(p.routed, p.dropped, p.crossings, p.cacheHit)
	return nil
}

func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
