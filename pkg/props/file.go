package props

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrNotRegular indicates that a store path exists but is not a regular file.
var ErrNotRegular = errors.New("not a regular file")

// File is a [Store] backed by a file on disk. Writes through [File.Set] stay in
// memory until [File.Save] is called.
type File struct {
	validator DocumentValidator
	values    Map
	path      string
	format    Format
	dirty     bool
}

// FileOpt configures a [File].
type FileOpt func(*File)

// WithFormat overrides the format detected from the file extension.
func WithFormat(format Format) FileOpt {
	return func(f *File) {
		f.format = format
	}
}

// WithValidator validates YAML and TOML documents with v before they are
// flattened.
func WithValidator(v DocumentValidator) FileOpt {
	return func(f *File) {
		f.validator = v
	}
}

// NewFile returns an empty [File] for path without reading it.
func NewFile(path string, opts ...FileOpt) *File {
	f := &File{
		path:   path,
		format: FormatFromPath(path),
		values: Map{},
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// OpenFile returns a [File] for path, populated from its current contents.
func OpenFile(path string, opts ...FileOpt) (*File, error) {
	f := NewFile(path, opts...)

	err := f.Reload()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// Get implements [Store].
func (f *File) Get(key string) (string, bool) {
	return f.values.Get(key)
}

// Set implements [Store].
func (f *File) Set(key, value string) {
	if old, ok := f.values[key]; ok && old == value {
		return
	}

	f.values[key] = value
	f.dirty = true
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Format returns the encoding used for the backing file.
func (f *File) Format() Format {
	return f.format
}

// Keys returns all keys in sorted order.
func (f *File) Keys() []string {
	return f.values.Keys()
}

// Values returns a copy of the current contents.
func (f *File) Values() Map {
	return f.values.Clone()
}

// Dirty reports whether there are writes that have not been saved.
func (f *File) Dirty() bool {
	return f.dirty
}

// Reload replaces the in-memory contents with the contents of the file,
// discarding unsaved writes.
func (f *File) Reload() error {
	data, err := readFile(f.path)
	if err != nil {
		return err
	}

	values, err := Decode(f.format, data, f.validator)
	if err != nil {
		return fmt.Errorf("%s: %w", f.path, err)
	}

	f.values = values
	f.dirty = false

	return nil
}

// Bytes returns the current contents encoded in the file's format.
func (f *File) Bytes() ([]byte, error) {
	return Encode(f.format, f.values)
}

// Save writes the current contents to disk. The file is replaced atomically
// while holding an advisory lock on a sibling ".lock" file.
func (f *File) Save() error {
	data, err := f.Bytes()
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)

	err = os.MkdirAll(dir, 0o700)
	if err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	lock := flock.New(f.path + ".lock")

	err = lock.Lock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", f.path, err)
	}

	defer func() {
		unlockErr := lock.Unlock()
		if unlockErr != nil {
			slog.Warn("release store lock",
				slog.String("path", f.path),
				slog.Any("error", unlockErr),
			)
		}
	}()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpPath := tmp.Name()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}

	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}

	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}

	err = os.Rename(tmpPath, f.path)
	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", f.path, err)
	}

	f.dirty = false

	slog.Debug("saved property store",
		slog.String("path", f.path),
		slog.String("format", string(f.format)),
		slog.Int("keys", len(f.values)),
	)

	return nil
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%s: path is a directory: %w", path, ErrNotRegular)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: Potential file inclusion via variable.
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}
