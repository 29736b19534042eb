package diagram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Diagram Serialization API
// =============================================================================

// MarshalDiagram converts a Diagram to pretty-printed JSON bytes.
func MarshalDiagram(d Diagram) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeDiagramTo(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDiagramFile writes a Diagram to a JSON file.
// The file is created with 0644 permissions.
func WriteDiagramFile(d Diagram, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeDiagramTo(d, f)
}

// WriteDiagram writes a Diagram as JSON to an io.Writer.
func WriteDiagram(d Diagram, w io.Writer) error {
	return writeDiagramTo(d, w)
}

// ReadDiagramFile reads a JSON file and returns the decoded Diagram.
func ReadDiagramFile(path string) (Diagram, error) {
	f, err := os.Open(path)
	if err != nil {
		return Diagram{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readDiagramFrom(f)
}

// ReadDiagram decodes a JSON diagram from an io.Reader.
// Use ReadDiagramFile for files or pass bytes.NewReader for in-memory data.
func ReadDiagram(r io.Reader) (Diagram, error) {
	return readDiagramFrom(r)
}

// =============================================================================
// PathSet Serialization API
// =============================================================================

// PathSet is the serialization format for a routing result: the routed paths
// keyed by edge ID plus the edges dropped for missing endpoint positions.
type PathSet struct {
	Paths   map[string]EdgePath `json:"paths"`
	Dropped []string            `json:"dropped,omitempty"`
}

// MarshalPathSet serializes a PathSet to pretty-printed JSON bytes.
func MarshalPathSet(ps PathSet) ([]byte, error) {
	return json.MarshalIndent(ps, "", "  ")
}

// UnmarshalPathSet deserializes JSON bytes into a PathSet.
func UnmarshalPathSet(data []byte) (PathSet, error) {
	var ps PathSet
	if err := json.Unmarshal(data, &ps); err != nil {
		return PathSet{}, fmt.Errorf("unmarshal path set: %w", err)
	}
	return ps, nil
}

// WritePathSetFile writes a PathSet to a JSON file.
func WritePathSetFile(ps PathSet, path string) error {
	data, err := MarshalPathSet(ps)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadPathSetFile reads a PathSet from a JSON file.
func ReadPathSetFile(path string) (PathSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PathSet{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalPathSet(data)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeDiagramTo(d Diagram, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readDiagramFrom(r io.Reader) (Diagram, error) {
	var d Diagram
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Diagram{}, fmt.Errorf("decode: %w", err)
	}
	for i, c := range d.Clusters {
		if c.ID == "" {
			return Diagram{}, fmt.Errorf("cluster %d: missing id", i)
		}
	}
	for i, e := range d.Edges {
		if e.ID == "" || e.Source == "" || e.Target == "" {
			return Diagram{}, fmt.Errorf("edge %d: id, source and target are required", i)
		}
	}
	return d, nil
}
