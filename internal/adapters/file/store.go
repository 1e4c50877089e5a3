package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/coopware/grocery/internal/adapters/file/document"
	"github.com/coopware/grocery/internal/core/domain"
	"github.com/coopware/grocery/internal/core/port"
	"github.com/coopware/grocery/internal/core/serviceerrors"
	"github.com/coopware/grocery/internal/core/utils"
)

// envelope wraps the snapshot with a checksum over its JSON encoding so a
// truncated or hand-edited data file fails loudly instead of loading garbage.
type envelope struct {
	Checksum string                     `json:"checksum"`
	Snapshot *document.SnapshotDocument `json:"snapshot"`
}

// Store persists snapshots to a single flat file. Writes go through a temp
// file and rename so a crash mid-write leaves the previous snapshot intact.
type Store struct {
	path string
}

func NewStore(path string) port.DataStorePort {
	return &Store{path: path}
}

func (s *Store) Save(_ context.Context, snapshot *domain.Snapshot) error {
	doc := document.ToSnapshotDocument(snapshot)
	data, err := json.MarshalIndent(envelope{
		Checksum: utils.HashJSON(doc),
		Snapshot: doc,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".grocery-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

func (s *Store) Load(_ context.Context) (*domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("no saved data at %s", s.path))
		}
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode data file: %w", err)
	}
	if env.Snapshot == nil {
		return nil, fmt.Errorf("data file %s has no snapshot", s.path)
	}
	if got := utils.HashJSON(env.Snapshot); got != env.Checksum {
		return nil, fmt.Errorf("data file %s is corrupted: checksum mismatch", s.path)
	}

	return env.Snapshot.ToDomain()
}
