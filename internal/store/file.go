package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultFileName is the storage document created inside the data dir.
const DefaultFileName = "todos.json"

// CorruptSuffix is appended to a document that no longer decodes when a
// write replaces it.
const CorruptSuffix = ".corrupt"

// ErrCorrupt marks a storage document that is not a JSON object of strings.
var ErrCorrupt = errors.New("store: corrupt document")

// File persists all keys in one JSON object on disk, e.g.
//
//	{"todoList": "[{\"id\":1,\"name\":\"Buy milk\",\"done\":false}]"}
//
// Every Set rewrites the whole document. No cross-process locking; fine for
// a local single-user tool.
//
// Reads of a corrupt document fail with ErrCorrupt. Writes move it aside to
// path+CorruptSuffix and start over from an empty document, so a list that
// was loaded as empty can be saved again.
type File struct {
	mu     sync.Mutex
	path   string
	logger *log.Logger
}

type FileOption func(*File)

// WithLogger reports corrupt documents being moved aside.
func WithLogger(l *log.Logger) FileOption { return func(f *File) { f.logger = l } }

// NewFile returns a File backed by path. The file is created on first write.
func NewFile(path string, opts ...FileOption) *File {
	f := &File{path: path}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = log.Default()
	}
	return f
}

// Path of the backing document.
func (f *File) Path() string { return f.path }

func (f *File) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.readForWrite()
	if err != nil {
		return err
	}
	data[key] = value
	return f.write(data)
}

func (f *File) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.readForWrite()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return f.write(data)
}

func (f *File) Keys() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.read()
	if err != nil {
		return nil, err
	}
	return sortedKeys(data), nil
}

func (f *File) read() (map[string]string, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	data := map[string]string{}
	if len(b) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, f.path, err)
	}
	return data, nil
}

// readForWrite is read, except that a corrupt document is renamed to
// path+CorruptSuffix and replaced by an empty one.
func (f *File) readForWrite() (map[string]string, error) {
	data, err := f.read()
	if !errors.Is(err, ErrCorrupt) {
		return data, err
	}
	aside := f.path + CorruptSuffix
	if rerr := os.Rename(f.path, aside); rerr != nil {
		return nil, fmt.Errorf("move corrupt document aside: %w", rerr)
	}
	f.logger.Warn("corrupt storage document moved aside", "path", f.path, "moved_to", aside, "err", err)
	return map[string]string{}, nil
}

// write goes through a temp file + rename so readers never see a torn file.
func (f *File) write(data map[string]string) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".todos-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
