package todo

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/wexinc/todo/internal/errors"
	"github.com/wexinc/todo/internal/logging"
)

// DefaultFilename is the store file name used under the home directory.
const DefaultFilename = ".todo.json"

// Store reads and writes the todo/done document at a single path.
//
// Every mutation writes the whole document before returning, through a
// temp file renamed over the target. When locking is enabled the store holds
// an advisory lock on "<path>.lock" from Initialize until Close, so two
// invocations against the same file run one after the other instead of
// losing each other's writes.
type Store struct {
	path string
	mu   sync.RWMutex
	doc  *Document

	now         func() time.Time
	log         *logging.Logger
	locking     bool
	lockTimeout time.Duration
	flk         *flock.Flock
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for debug output.
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithLock enables the advisory file lock. Initialize waits up to timeout
// for another process to release it; zero means try once.
func WithLock(timeout time.Duration) Option {
	return func(s *Store) {
		s.locking = true
		s.lockTimeout = timeout
	}
}

// WithClock overrides the time source used to stamp new items.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a Store for path. It does not touch the file; call
// Initialize for that.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path: path,
		now:  time.Now,
		log:  logging.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a Store and initializes it.
func Open(path string, opts ...Option) (*Store, error) {
	s := NewStore(path, opts...)
	if err := s.Initialize(); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// Path returns the file path of the store.
func (s *Store) Path() string {
	return s.path
}

// Initialize makes sure the file exists and holds both lists, creating the
// file or the missing lists as needed, and loads it. Calling it on a valid
// file does not rewrite it.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initLocked()
}

func (s *Store) initLocked() error {
	if s.locking && s.flk == nil {
		if err := s.acquireLock(); err != nil {
			return err
		}
	}

	doc, exists, err := s.read()
	if err != nil {
		return err
	}
	if exists {
		if err := checkWritable(s.path); err != nil {
			return err
		}
	}

	changed := doc.normalize()
	if !exists || changed {
		if err := s.write(doc); err != nil {
			return err
		}
		s.log.Debug("store initialized", "path", s.path, "created", !exists)
	}

	s.doc = doc
	return nil
}

// ensureLoaded initializes the store on first use. Callers hold s.mu.
func (s *Store) ensureLoaded() error {
	if s.doc != nil {
		return nil
	}
	return s.initLocked()
}

// Close releases the advisory lock, if held.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.flk == nil {
		return nil
	}
	err := s.flk.Unlock()
	s.flk = nil
	if err != nil {
		return errors.StorageWrite(s.path+".lock", err)
	}
	return nil
}

// Todo returns the todo list with current positions, loading the file on
// first use.
func (s *Store) Todo() ([]Entry, error) {
	return s.List(ListTodo)
}

// Done returns the done list with current positions, loading the file on
// first use.
func (s *Store) Done() ([]Entry, error) {
	return s.List(ListDone)
}

// List returns the named list with current positions.
func (s *Store) List(name ListName) ([]Entry, error) {
	if !name.IsValid() {
		return nil, errors.InvalidListName(string(name), ListNames())
	}
	doc, err := s.current()
	if err != nil {
		return nil, err
	}
	return entries(doc.list(name)), nil
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() (*Document, error) {
	doc, err := s.current()
	if err != nil {
		return nil, err
	}
	return doc.Clone(), nil
}

// current returns the loaded document, initializing the store if needed.
// Committed documents are never modified in place, so the result may be
// read without holding s.mu.
func (s *Store) current() (*Document, error) {
	s.mu.RLock()
	doc := s.doc
	s.mu.RUnlock()
	if doc != nil {
		return doc, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return s.doc, nil
}

// Add appends a new item stamped with the current time to the todo list.
func (s *Store) Add(text string) error {
	_, err := s.AddAll([]string{text})
	return err
}

// AddAll appends one item per text to the todo list in a single write.
// Nothing is added if any text is empty. It returns the number of items added.
func (s *Store) AddAll(texts []string) (int, error) {
	for _, text := range texts {
		if err := ValidateText(text); err != nil {
			return 0, err
		}
	}
	if len(texts) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return 0, err
	}

	now := s.now()
	next := s.doc.Clone()
	for _, text := range texts {
		item, err := NewItem(text, now)
		if err != nil {
			return 0, err
		}
		next.Todo = append(next.Todo, item)
	}

	if err := s.commit(next); err != nil {
		return 0, err
	}
	s.log.Debug("items added", "count", len(texts), "todo_len", len(next.Todo))
	return len(texts), nil
}

// Remove deletes the todo item at index. Later items move up one position.
func (s *Store) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if err := s.checkIndex(index); err != nil {
		return err
	}

	next := s.doc.Clone()
	next.Todo = append(next.Todo[:index], next.Todo[index+1:]...)

	if err := s.commit(next); err != nil {
		return err
	}
	s.log.Debug("item removed", "index", index)
	return nil
}

// MarkDone moves the todo item at index to the end of the done list,
// unchanged. Both lists are written together, so the item is never
// persisted in both lists or in neither.
func (s *Store) MarkDone(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if err := s.checkIndex(index); err != nil {
		return err
	}

	next := s.doc.Clone()
	item := next.Todo[index]
	next.Done = append(next.Done, item)
	next.Todo = append(next.Todo[:index], next.Todo[index+1:]...)

	if err := s.commit(next); err != nil {
		return err
	}
	s.log.Debug("item marked done", "index", index, "done_len", len(next.Done))
	return nil
}

// Clear empties the named list and leaves the other one alone.
// Clearing an empty list is a no-op.
func (s *Store) Clear(name ListName) error {
	if !name.IsValid() {
		return errors.InvalidListName(string(name), ListNames())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if len(s.doc.list(name)) == 0 {
		return nil
	}

	next := s.doc.Clone()
	switch name {
	case ListTodo:
		next.Todo = []Item{}
	case ListDone:
		next.Done = []Item{}
	}

	if err := s.commit(next); err != nil {
		return err
	}
	s.log.Debug("list cleared", "list", name)
	return nil
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.doc.Todo) {
		return errors.IndexOutOfRange(string(ListTodo), index, len(s.doc.Todo))
	}
	return nil
}

// commit persists next and only then makes it the in-memory state.
func (s *Store) commit(next *Document) error {
	if err := s.write(next); err != nil {
		return err
	}
	s.doc = next
	return nil
}

// read loads the document. A missing file yields an empty document and
// exists=false; an empty file counts as existing but uninitialized.
func (s *Store) read() (doc *Document, exists bool, err error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Document{}, false, nil
		}
		return nil, false, errors.StorageRead(s.path, err)
	}

	doc = &Document{}
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, true, nil
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, true, errors.StorageCorrupt(s.path, err)
	}
	return doc, true, nil
}

// write replaces the file with doc via a temp file in the same directory.
func (s *Store) write(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.StorageWrite(s.path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.StorageWrite(s.path, err)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
		// Rename only needs a writable directory; refuse to replace a file
		// the user has made read-only.
		if err := checkWritable(s.path); err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.StorageWrite(s.path, err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.StorageWrite(s.path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.StorageWrite(s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.StorageWrite(s.path, err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return errors.StorageWrite(s.path, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return errors.StorageWrite(s.path, err)
	}

	s.log.Debug("store saved", "path", s.path, "todo", len(doc.Todo), "done", len(doc.Done))
	return nil
}

// checkWritable fails with a storage error unless path can be opened for writing.
func checkWritable(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return errors.StorageWrite(path, err)
	}
	_ = f.Close()
	return nil
}
