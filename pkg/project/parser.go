// Package project reads and writes fence project files.
package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/fencemeasure/pkg/fence"
)

// Format identifies a project file encoding
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// maxFileSize caps project files at 16MB
const maxFileSize = 16 * 1024 * 1024

// DetectFormat picks the encoding from the file extension. Unknown
// extensions fall back to sniffing the content.
func DetectFormat(filename string, content []byte) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	}

	trimmed := bytes.TrimSpace(content)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads a project file and returns the project
func Load(filename string) (*fence.Project, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to stat project file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("project file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	project, err := Decode(bytes.NewReader(content), DetectFormat(filename, content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return project, nil
}

// Decode reads a project in the given format
func Decode(reader io.Reader, format Format) (*fence.Project, error) {
	var project fence.Project

	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(reader).Decode(&project); err != nil && err != io.EOF {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
	default:
		if err := json.NewDecoder(reader).Decode(&project); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
	}

	return &project, nil
}

// Encode writes a project in the given format
func Encode(writer io.Writer, project *fence.Project, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(writer)
		enc.SetIndent(2)
		if err := enc.Encode(project); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(project); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
}

// Save writes the project to filename, choosing the format from its
// extension. The file is replaced atomically.
func Save(filename string, project *fence.Project) error {
	var buf bytes.Buffer
	if err := Encode(&buf, project, DetectFormat(filename, nil)); err != nil {
		return err
	}

	tmp := filename + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	if err := os.Rename(tmp, filename); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace project file: %w", err)
	}
	return nil
}
