// FILE: lixenwraith/ini/file.go
package ini

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultFileName is the file OpenDefault looks for in the working directory.
const DefaultFileName = "FileConfig.ini"

// Options configures how a File reads, looks up and saves records.
type Options struct {
	// CaseInsensitive lower-cases groups and keys on decode, lookup and write.
	// Values are never folded.
	CaseInsensitive bool

	// AtomicSave writes through a temporary file and rename instead of
	// truncating the target in place.
	AtomicSave bool

	// Logger receives debug and warning events. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns case-sensitive, in-place save options with no logging.
func DefaultOptions() Options {
	return Options{}
}

// File is a handle on one INI file: its path, its in-memory record store and
// the status of its last I/O operation.
type File struct {
	path   string
	store  *Store
	opts   Options
	fold   FoldFunc
	logger *slog.Logger
	status Status
}

// Open reads the file at path with default options.
// See OpenWithOptions.
func Open(path string) (*File, error) {
	return OpenWithOptions(path, DefaultOptions())
}

// OpenDefault opens DefaultFileName in the current working directory.
func OpenDefault() (*File, error) {
	return OpenDefaultWithOptions(DefaultOptions())
}

// OpenDefaultWithOptions opens DefaultFileName in the current working directory.
func OpenDefaultWithOptions(opts Options) (*File, error) {
	cwd, err := os.Getwd()
	if err != nil {
		f := newFile(DefaultFileName, opts)
		f.status = FailedToOpen
		return f, fmt.Errorf("%w: failed to resolve working directory: %w", ErrFailedToOpen, err)
	}
	return OpenWithOptions(filepath.Join(cwd, DefaultFileName), opts)
}

// OpenWithOptions creates a handle for path and decodes the file into its store.
// The returned File is never nil. If path does not exist the store stays empty,
// no open is attempted and the error wraps ErrPathNotFound. Decode failures are
// returned and recorded as the handle's status; records decoded before a read
// failure are kept.
func OpenWithOptions(path string, opts Options) (*File, error) {
	f := newFile(path, opts)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		f.status = PathNotFound
		f.logger.Debug("config file not found", "path", path)
		return f, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	records, err := DecodeFile(path, f.fold)
	f.store = NewStore(records...)
	f.setStatus("open", err)
	return f, err
}

func newFile(path string, opts Options) *File {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var fold FoldFunc
	if opts.CaseInsensitive {
		fold = LowerCase
	}
	return &File{
		path:   path,
		store:  NewStore(),
		opts:   opts,
		fold:   fold,
		logger: logger,
	}
}

// setStatus records the outcome of an I/O operation and logs it.
func (f *File) setStatus(op string, err error) {
	f.status = StatusOf(err)
	if err != nil {
		f.logger.Warn("config file "+op+" failed", "path", f.path, "status", f.status, "error", err)
		return
	}
	f.logger.Debug("config file "+op, "path", f.path, "records", f.store.Len())
}

// Path returns the file path the handle reads from and saves to.
func (f *File) Path() string {
	return f.path
}

// Store returns the handle's record store. Changes to it are saved by Save.
func (f *File) Store() *Store {
	return f.store
}

// Status returns the outcome of the most recent I/O operation. It is a
// convenience mirror of the errors returned by Open, Reload, Save and Import
// and stays set until the next such call or Clear.
func (f *File) Status() Status {
	return f.status
}

// Err returns the last status as an error, nil for Success.
func (f *File) Err() error {
	return f.status.Err()
}

// Clear resets the last status to Success. The records are not touched.
func (f *File) Clear() {
	f.status = Success
}

// key folds a bare group name and a key for storage and lookup.
func (f *File) key(group, key string) (string, string) {
	return f.fold.apply("[" + group + "]"), f.fold.apply(key)
}

// Find returns the index of the first record in the bare-named group with the
// given key, or NotFound. Matching is exact after case folding; surrounding
// whitespace is significant.
func (f *File) Find(group, key string) int {
	return f.store.Index(f.key(group, key))
}

// Has reports whether the group holds the key.
func (f *File) Has(group, key string) bool {
	return f.Find(group, key) != NotFound
}

// Remove erases the first matching record. It is a no-op when nothing matches.
func (f *File) Remove(group, key string) {
	if i := f.Find(group, key); i != NotFound {
		f.store.RemoveAt(i)
	}
}

// Groups returns the bare names of all groups in first-appearance order.
// Records stored before any header are reported under "".
func (f *File) Groups() []string {
	var names []string
	for _, g := range f.store.Groups() {
		names = append(names, groupName(g))
	}
	return names
}

// Keys returns the keys of a bare-named group in store order.
func (f *File) Keys(group string) []string {
	stored, _ := f.key(group, "")
	var keys []string
	for _, r := range f.store.Group(stored) {
		keys = append(keys, r.Key)
	}
	return keys
}

// Save encodes the store into the handle's path and records the status.
func (f *File) Save() error {
	records := f.store.Records()

	var err error
	if f.opts.AtomicSave {
		err = EncodeFileAtomic(f.path, records)
	} else {
		err = EncodeFile(f.path, records)
	}

	f.setStatus("save", err)
	return err
}

// Reload decodes the file again and replaces the store. On failure the
// current store is kept and the status reflects the error.
func (f *File) Reload() error {
	if _, err := os.Stat(f.path); errors.Is(err, fs.ErrNotExist) {
		err = fmt.Errorf("%w: %s", ErrPathNotFound, f.path)
		f.setStatus("reload", err)
		return err
	}

	records, err := DecodeFile(f.path, f.fold)
	if err == nil {
		f.store = NewStore(records...)
	}
	f.setStatus("reload", err)
	return err
}

// groupName strips the header brackets from a stored group.
func groupName(stored string) string {
	if isHeader(stored) && len(stored) >= 2 {
		return stored[1 : len(stored)-1]
	}
	return stored
}
