// Package workspace loads, saves and exports Archium workspace
// documents.
//
// Workspaces round-trip through JSON (the canonical wire form) or YAML,
// selected by file extension. Derived model state is rebuilt on load
// via Workspace.Hydrate. ExportJSONLD produces a semantically expanded
// and re-compacted JSON-LD rendition of the document.
package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piprate/json-gold/ld"
	"gopkg.in/yaml.v3"

	"evalgo.org/archium/models"
)

// Supported serialization formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatForPath returns the serialization format implied by the file
// extension, defaulting to JSON.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads a workspace document from disk and rebuilds its derived
// state.
func Load(path string) (*models.Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace: %w", err)
	}
	return Decode(data, FormatForPath(path))
}

// Decode parses a workspace document and rebuilds its derived state.
func Decode(data []byte, format string) (*models.Workspace, error) {
	if format == FormatYAML {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML workspace: %w", err)
		}
		data = converted
	}

	var ws models.Workspace
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("failed to parse workspace: %w", err)
	}
	if err := ws.Hydrate(); err != nil {
		return nil, fmt.Errorf("failed to hydrate workspace: %w", err)
	}
	return &ws, nil
}

// Save writes a workspace document to disk, in the format implied by
// the file extension.
func Save(path string, ws *models.Workspace) error {
	data, err := Encode(ws, FormatForPath(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write workspace: %w", err)
	}
	return nil
}

// Encode serializes a workspace document to the given format.
func Encode(ws *models.Workspace, format string) ([]byte, error) {
	data, err := json.MarshalIndent(ws, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode workspace: %w", err)
	}
	if format != FormatYAML {
		return data, nil
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode workspace: %w", err)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode workspace as YAML: %w", err)
	}
	return out, nil
}

// ExportJSONLD expands the workspace document against its JSON-LD
// context and compacts it again, yielding a normalized JSON-LD
// rendition suitable for graph tooling.
func ExportJSONLD(ws *models.Workspace) ([]byte, error) {
	data, err := json.Marshal(ws)
	if err != nil {
		return nil, fmt.Errorf("failed to encode workspace: %w", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode workspace: %w", err)
	}

	proc := ld.NewJsonLdProcessor()
	options := ld.NewJsonLdOptions("")

	expanded, err := proc.Expand(doc, options)
	if err != nil {
		return nil, fmt.Errorf("failed to expand workspace document: %w", err)
	}

	context := ws.Context
	if context == nil {
		context = models.DefaultContext()
	}
	compacted, err := proc.Compact(expanded, context, options)
	if err != nil {
		return nil, fmt.Errorf("failed to compact workspace document: %w", err)
	}

	return json.MarshalIndent(compacted, "", "  ")
}

// yamlToJSON converts a YAML document to its JSON equivalent.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
