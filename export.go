// FILE: lixenwraith/ini/export.go
package ini

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported foreign formats for Export and Import.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Export writes the store to w as TOML, YAML or JSON. Each group becomes a
// table of string values keyed by its bare name; records stored before any
// header become top-level keys. When a key repeats, the first record wins,
// matching Read.
func (f *File) Export(w io.Writer, format string) error {
	data := f.nestedData()

	switch strings.ToLower(format) {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(data); err != nil {
			return fmt.Errorf("%w: failed to marshal config data to TOML: %w", ErrFailedToOutput, err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("%w: failed to marshal config data to YAML: %w", ErrFailedToOutput, err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("%w: failed to flush YAML output: %w", ErrFailedToOutput, err)
		}
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("%w: failed to marshal config data to JSON: %w", ErrFailedToOutput, err)
		}
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
	return nil
}

// nestedData builds the group -> key -> value tree used by Export.
func (f *File) nestedData() map[string]any {
	data := make(map[string]any)
	for _, r := range f.store.records {
		if r.Group == "" {
			if _, exists := data[r.Key]; !exists {
				data[r.Key] = r.Value
			}
			continue
		}

		name := groupName(r.Group)
		table, isMap := data[name].(map[string]any)
		if !isMap {
			if _, exists := data[name]; exists {
				// a headerless key already uses this name
				continue
			}
			table = make(map[string]any)
			data[name] = table
		}
		if _, exists := table[r.Key]; !exists {
			table[r.Key] = r.Value
		}
	}
	return data
}

// Import merges a TOML, YAML or JSON file into the store, choosing the format
// from the file extension. Top-level scalars go to the headerless group;
// each top-level table becomes a group, with nested tables flattened into dotted
// keys. Groups and keys are written in lexical order, each with updateIfPresent;
// new top-level scalars are placed before the first group so the store saves
// and reloads unchanged. Arrays of tables and maps with non-string keys are
// rejected with ErrFailedToInput before anything is written.
//
// The outcome is recorded as the handle's status. A missing or unreadable
// import file reports FailedToOpen; PathNotFound is kept for the handle's own
// path.
func (f *File) Import(path string, updateIfPresent bool) error {
	err := f.importFile(path, updateIfPresent)
	f.setStatus("import", err)
	return err
}

func (f *File) importFile(path string, updateIfPresent bool) error {
	format := detectFileFormat(path)
	if format == "" {
		return fmt.Errorf("%w: unable to determine config format for file '%s'", ErrFailedToInput, path)
	}

	fileData, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: failed to read config file '%s': %w", ErrFailedToOpen, path, err)
	}

	fileConfig := make(map[string]any)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(fileData, &fileConfig); err != nil {
			return fmt.Errorf("%w: failed to parse TOML config file '%s': %w", ErrFailedToInput, path, err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(fileData))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&fileConfig); err != nil {
			return fmt.Errorf("%w: failed to parse JSON config file '%s': %w", ErrFailedToInput, path, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(fileData, &fileConfig); err != nil {
			return fmt.Errorf("%w: failed to parse YAML config file '%s': %w", ErrFailedToInput, path, err)
		}
	}

	type entry struct {
		group, key string
		value      any
	}
	var headerless, grouped []entry
	for _, key := range sortedKeys(fileConfig) {
		if table, isMap := fileConfig[key].(map[string]any); isMap {
			flat := flattenMap(table, "")
			for _, sub := range sortedKeys(flat) {
				grouped = append(grouped, entry{group: key, key: sub, value: flat[sub]})
			}
			continue
		}
		headerless = append(headerless, entry{key: key, value: fileConfig[key]})
	}

	// Validate everything first so a rejected file leaves the store untouched
	for _, e := range slices.Concat(headerless, grouped) {
		if !importable(e.value) {
			name := e.key
			if e.group != "" {
				name = e.group + "." + e.key
			}
			return fmt.Errorf("%w: config file '%s': value of '%s' is not a scalar or a list of scalars (%T)",
				ErrFailedToInput, path, name, e.value)
		}
	}

	for _, e := range headerless {
		f.put("", f.fold.apply(e.key), stringify(e.value), updateIfPresent)
	}
	for _, e := range grouped {
		group, storedKey := f.key(e.group, e.key)
		f.put(group, storedKey, stringify(e.value), updateIfPresent)
	}

	return nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}
