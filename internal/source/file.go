package source

import (
	"context"
	"errors"

	"github.com/MrSnakeDoc/devhub/internal/errs"
	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/models"
	"github.com/MrSnakeDoc/devhub/internal/utils"
)

// format is the per-tool grammar of a file backed config.
type format interface {
	// extract finds the configured mirror URL in content.
	extract(content []byte) (string, bool, error)
	// render returns the new file content for m. existing is nil when the
	// file does not exist. Rendering the same mirror twice must yield the
	// same bytes.
	render(existing []byte, m models.Mirror) ([]byte, error)
}

// fileBackend is the Manager shared by every tool whose setting lives in a
// single file.
type fileBackend struct {
	id         string
	catalogKey string
	path       string
	elevated   bool
	env        Env
	format     format
	// notice is called after a successful write, for follow-up hints.
	notice func(m models.Mirror)
}

func (b *fileBackend) Identifier() string              { return b.id }
func (b *fileBackend) RequiresElevatedPrivilege() bool { return b.elevated }
func (b *fileBackend) ConfigPath() string              { return b.path }
func (b *fileBackend) FileBacked() bool                { return true }

func (b *fileBackend) Candidates() []models.Mirror {
	key := b.catalogKey
	if key == "" {
		key = b.id
	}
	return b.env.candidates(key)
}

func (b *fileBackend) CurrentURL(_ context.Context) (string, bool, error) {
	data, exists, err := utils.ReadFileIfExists(b.path)
	if err != nil {
		return "", false, errs.IO("read", b.path, err)
	}
	if !exists {
		return "", false, nil
	}

	url, ok, err := b.format.extract(data)
	if err != nil {
		return "", false, errs.Parse(b.path, err)
	}
	return url, ok, nil
}

func (b *fileBackend) SetSource(ctx context.Context, m models.Mirror) error {
	store := b.env.backups()

	unlock, err := store.Guard(ctx, b.path)
	if err != nil {
		return err
	}
	defer unlock()

	existing, exists, err := utils.ReadFileIfExists(b.path)
	if err != nil {
		return errs.IO("read", b.path, err)
	}
	if !exists {
		existing = nil
	} else if existing == nil {
		existing = []byte{}
	}

	content, err := b.format.render(existing, m)
	if err != nil {
		var pe *errs.PathError
		if errors.As(err, &pe) {
			return err
		}
		return errs.Parse(b.path, err)
	}

	if _, err := store.Snapshot(b.path); err != nil {
		return err
	}

	if err := utils.WriteFileAtomic(b.path, content, utils.FileMode(b.path, 0o644)); err != nil {
		return errs.IO("write", b.path, err)
	}
	logger.Debug("Wrote %s mirror %s to %s", b.id, m.URL, b.path)

	if b.notice != nil {
		b.notice(m)
	}
	return nil
}

func (b *fileBackend) Restore(ctx context.Context) error {
	store := b.env.backups()

	unlock, err := store.Guard(ctx, b.path)
	if err != nil {
		return err
	}
	defer unlock()

	return store.RestoreLatest(b.path)
}
