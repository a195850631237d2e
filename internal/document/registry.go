package document

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/Iron-Ham/buildview/internal/errors"
)

// Registry tracks open documents and which one is active.
// It is safe for concurrent use.
type Registry struct {
	fs       afero.Fs
	maxBytes int64

	mu     sync.RWMutex
	docs   []*Document
	active *Document
}

// NewRegistry creates a registry reading from fs. Files larger than maxBytes
// are refused so a load never stalls the UI on a huge file; maxBytes <= 0
// disables the limit.
func NewRegistry(fs afero.Fs, maxBytes int64) *Registry {
	return &Registry{fs: fs, maxBytes: maxBytes}
}

// FindByPath returns the open document whose cleaned path equals path.
func (r *Registry) FindByPath(path string) (*Document, bool) {
	path = filepath.Clean(path)

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.docs {
		if d.Path == path {
			return d, true
		}
	}
	return nil, false
}

// Load reads path from the filesystem and registers the resulting document.
// It does not activate it. Loading a path that is already open returns the
// open document. Any failure wraps errors.ErrDocumentLoad.
func (r *Registry) Load(path string) (*Document, error) {
	path = filepath.Clean(path)
	if d, ok := r.FindByPath(path); ok {
		return d, nil
	}

	info, err := r.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrDocumentLoad, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", errors.ErrDocumentLoad, path)
	}
	if r.maxBytes > 0 && info.Size() > r.maxBytes {
		return nil, fmt.Errorf("%w: %w (%d bytes, limit %d)",
			errors.ErrDocumentLoad, errors.ErrDocumentTooLarge, info.Size(), r.maxBytes)
	}

	content, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrDocumentLoad, err)
	}
	if isBinary(content) {
		return nil, fmt.Errorf("%w: binary file", errors.ErrDocumentLoad)
	}

	d := New(path, content)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = append(r.docs, d)
	return d, nil
}

// Activate makes d the active document, registering it if needed.
func (r *Registry) Activate(d *Document) {
	if d == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	found := false
	for _, existing := range r.docs {
		if existing == d {
			found = true
			break
		}
	}
	if !found {
		r.docs = append(r.docs, d)
	}
	r.active = d
}

// Active returns the active document, or nil when none is open.
func (r *Registry) Active() *Document {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Documents returns the open documents in the order they were opened.
func (r *Registry) Documents() []*Document {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Document, len(r.docs))
	copy(out, r.docs)
	return out
}
