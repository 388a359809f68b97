package backup

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/gofrs/flock"

	"github.com/MrSnakeDoc/devhub/internal/errs"
	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/utils"
)

const (
	suffix       = ".bak."
	absentSuffix = ".absent"
	lockRetry    = 50 * time.Millisecond
)

// Entry is one backup of a config file, as found on disk.
type Entry struct {
	Path      string
	Timestamp int64
	// Absent marks a backup taken when the file did not exist yet.
	Absent bool
}

func (e Entry) Time() time.Time { return time.Unix(e.Timestamp, 0) }

// Store creates and restores timestamped sibling copies of config files.
// Backups are never deleted.
type Store struct {
	now     func() time.Time
	lockDir string
}

type Option func(*Store)

// WithClock overrides the time source used for backup timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLockDir sets where advisory lock files are created. An empty dir
// disables locking.
func WithLockDir(dir string) Option {
	return func(s *Store) { s.lockDir = dir }
}

func NewStore(opts ...Option) *Store {
	s := &Store{now: time.Now, lockDir: DefaultLockDir()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultLockDir keeps lock files out of the tools' own config directories.
func DefaultLockDir() string {
	return filepath.Join(xdg.StateHome, "devhub", "locks")
}

// Backup copies path to <path>.bak.<ts> and returns the backup location.
// It is a no-op returning "" when path does not exist.
func (s *Store) Backup(path string) (string, error) {
	exists, err := utils.FileExists(path)
	if err != nil {
		return "", errs.IO("backup", path, err)
	}
	if !exists {
		return "", nil
	}

	ts, err := s.nextTimestamp(path)
	if err != nil {
		return "", err
	}

	dst := path + suffix + strconv.FormatInt(ts, 10)
	if err := utils.CopyFile(path, dst); err != nil {
		return "", errs.IO("backup", path, err)
	}
	logger.Debug("Backed up %s to %s", path, dst)
	return dst, nil
}

// MarkAbsent records that path did not exist before a write, so restoring
// removes the file instead of failing.
func (s *Store) MarkAbsent(path string) (string, error) {
	ts, err := s.nextTimestamp(path)
	if err != nil {
		return "", err
	}

	dst := path + suffix + strconv.FormatInt(ts, 10) + absentSuffix
	if err := utils.WriteFileAtomic(dst, nil, 0o600); err != nil {
		return "", errs.IO("backup", path, err)
	}
	logger.Debug("Recorded absence of %s in %s", path, dst)
	return dst, nil
}

// Snapshot takes a Backup when path exists and a MarkAbsent otherwise. It is
// what a backend calls right before writing.
func (s *Store) Snapshot(path string) (string, error) {
	exists, err := utils.FileExists(path)
	if err != nil {
		return "", errs.IO("backup", path, err)
	}
	if exists {
		return s.Backup(path)
	}
	return s.MarkAbsent(path)
}

// RestoreLatest puts back the most recent backup of path. With no backup at
// all it returns errs.ErrNoBackup and leaves path untouched.
func (s *Store) RestoreLatest(path string) error {
	entries, err := s.List(path)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return errs.NoBackup(path)
	}

	latest := entries[0]
	if latest.Absent {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return errs.IO("restore", path, err)
		}
		logger.Debug("Removed %s, it did not exist before %s", path, latest.Time().Format(time.RFC3339))
		return nil
	}

	if err := utils.CopyFile(latest.Path, path); err != nil {
		return errs.IO("restore", path, err)
	}
	logger.Debug("Restored %s from %s", path, latest.Path)
	return nil
}

// List returns the backups of path, newest first. A missing parent directory
// yields an empty list.
func (s *Store) List(path string) ([]Entry, error) {
	dir := filepath.Dir(path)
	prefix := filepath.Base(path) + suffix

	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errs.IO("list backups", path, err)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasPrefix(f.Name(), prefix) {
			continue
		}
		entry, ok := parseEntry(strings.TrimPrefix(f.Name(), prefix))
		if !ok {
			continue
		}
		entry.Path = filepath.Join(dir, f.Name())
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})
	return entries, nil
}

// Guard takes an exclusive advisory lock for path, shared by every devhub
// process, and returns the function releasing it.
func (s *Store) Guard(ctx context.Context, path string) (func(), error) {
	if s.lockDir == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(s.lockDir, 0o700); err != nil {
		return nil, errs.IO("lock", s.lockDir, err)
	}

	lock := flock.New(filepath.Join(s.lockDir, lockName(path)))
	locked, err := lock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("failed to lock %s: lock is held", path)
	}

	return func() {
		if err := lock.Unlock(); err != nil {
			logger.Debug("failed to release lock for %s: %v", path, err)
		}
	}, nil
}

func (s *Store) nextTimestamp(path string) (int64, error) {
	ts := s.now().Unix()
	entries, err := s.List(path)
	if err != nil {
		return 0, err
	}
	if len(entries) > 0 && entries[0].Timestamp >= ts {
		ts = entries[0].Timestamp + 1
	}
	return ts, nil
}

func parseEntry(rest string) (Entry, bool) {
	absent := strings.HasSuffix(rest, absentSuffix)
	rest = strings.TrimSuffix(rest, absentSuffix)

	ts, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || ts < 0 {
		return Entry{}, false
	}
	return Entry{Timestamp: ts, Absent: absent}, true
}

func lockName(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Base(path) + "-" + hex.EncodeToString(sum[:8]) + ".lock"
}
