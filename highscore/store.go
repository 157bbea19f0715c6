package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Store persists the table in a text file.
type Store struct {
	path string
	log  logrus.FieldLogger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger; the default is the standard logrus logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// NewStore returns a Store backed by the file at path. The file is not
// touched until Load or TrySubmit.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{path: path, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Load reads all entries in file order. On failure it returns an empty
// table together with an error wrapping ErrPersistence and the cause.
func (s *Store) Load() ([]Entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return []Entry{}, fmt.Errorf("%w: open %s: %w", ErrPersistence, s.path, err)
	}
	defer f.Close()

	entries, err := Parse(f, s.log.WithField("path", s.path))
	if err != nil {
		return []Entry{}, fmt.Errorf("%w: read %s: %w", ErrPersistence, s.path, err)
	}
	return entries, nil
}

// TrySubmit records a win of the given length and reports whether it
// entered the table. A missing file counts as an empty table.
func (s *Store) TrySubmit(name string, seconds int) (bool, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return false, err
	}
	entries, err := s.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	entries, ok := Insert(entries, Entry{Name: name, Seconds: seconds})
	if !ok {
		return false, nil
	}
	if err := s.save(entries); err != nil {
		return false, err
	}
	s.log.WithFields(logrus.Fields{
		"path":    s.path,
		"name":    name,
		"elapsed": seconds,
	}).Info("highscore: new entry")
	return true, nil
}

// save writes entries to a temporary file beside the target and renames
// it into place.
func (s *Store) save(entries []Entry) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrPersistence, s.path, err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: chmod %s: %w", ErrPersistence, s.path, err)
	}
	if err := Write(tmp, entries); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %w", ErrPersistence, s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrPersistence, s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: rename %s: %w", ErrPersistence, s.path, err)
	}
	return nil
}
