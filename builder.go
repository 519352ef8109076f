// File: lixenwraith/ini/builder.go
package ini

import (
	"errors"
	"fmt"
	"log/slog"
)

// ValidatorFunc defines the signature for a function that can validate a File.
// It receives the fully loaded *File and should return an error if validation fails.
type ValidatorFunc func(f *File) error

// groupDefaults is a struct of default values bound to a group
type groupDefaults struct {
	group    string
	defaults any
}

// Builder provides a fluent interface for opening a File
type Builder struct {
	path       string
	useDefault bool
	opts       Options
	defaults   []groupDefaults
	imports    []string
	validators []ValidatorFunc
}

// NewBuilder creates a builder that opens DefaultFileName in the working
// directory unless WithPath is called.
func NewBuilder() *Builder {
	return &Builder{
		useDefault: true,
		opts:       DefaultOptions(),
		validators: make([]ValidatorFunc, 0),
	}
}

// WithPath sets the INI file path
func (b *Builder) WithPath(path string) *Builder {
	b.path = path
	b.useDefault = false
	return b
}

// WithOptions replaces all options at once
func (b *Builder) WithOptions(opts Options) *Builder {
	b.opts = opts
	return b
}

// WithCaseInsensitive enables or disables case folding of groups and keys
func (b *Builder) WithCaseInsensitive(enabled bool) *Builder {
	b.opts.CaseInsensitive = enabled
	return b
}

// WithAtomicSave enables or disables temp-file-and-rename saves
func (b *Builder) WithAtomicSave(enabled bool) *Builder {
	b.opts.AtomicSave = enabled
	return b
}

// WithLogger sets the structured logger
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.opts.Logger = logger
	return b
}

// WithDefaults registers a struct of default values for a group. Defaults are
// written after the file is decoded without overwriting, so file values win.
// Multiple calls are applied in order.
func (b *Builder) WithDefaults(group string, defaults any) *Builder {
	b.defaults = append(b.defaults, groupDefaults{group: group, defaults: defaults})
	return b
}

// WithImport merges a TOML, YAML or JSON file after the INI file is decoded and
// before defaults are applied. Imported values do not overwrite decoded ones.
func (b *Builder) WithImport(path string) *Builder {
	b.imports = append(b.imports, path)
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build opens the File with all specified options.
// A missing INI file is not fatal: the handle is returned together with an
// error wrapping ErrPathNotFound. Any other failure returns a nil File.
func (b *Builder) Build() (*File, error) {
	var f *File
	var openErr error
	if b.useDefault {
		f, openErr = OpenDefaultWithOptions(b.opts)
	} else {
		f, openErr = OpenWithOptions(b.path, b.opts)
	}
	if openErr != nil && !errors.Is(openErr, ErrPathNotFound) {
		return nil, openErr
	}

	for _, path := range b.imports {
		if err := f.Import(path, false); err != nil {
			return nil, fmt.Errorf("failed to import '%s': %w", path, err)
		}
	}

	for _, d := range b.defaults {
		if err := f.WriteStruct(d.group, d.defaults, false); err != nil {
			return nil, fmt.Errorf("failed to register defaults for group %q: %w", d.group, err)
		}
	}

	for _, validator := range b.validators {
		if err := validator(f); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	// Keep the open outcome visible after imports reset the status
	f.status = StatusOf(openErr)

	// ErrPathNotFound or nil
	return f, openErr
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *File {
	f, err := b.Build()
	if err != nil {
		// A missing file is not fatal; the application can proceed with defaults.
		if !errors.Is(err, ErrPathNotFound) {
			panic(fmt.Sprintf("ini build failed: %v", err))
		}
	}
	return f
}

// BuildAndScan builds the File and decodes one group into target.
func (b *Builder) BuildAndScan(group string, target any) (*File, error) {
	f, err := b.Build()
	if err != nil && !errors.Is(err, ErrPathNotFound) {
		return nil, err
	}

	if scanErr := f.Scan(group, target); scanErr != nil {
		return nil, fmt.Errorf("failed to scan final config into target: %w", scanErr)
	}

	// ErrPathNotFound or nil
	return f, err
}
