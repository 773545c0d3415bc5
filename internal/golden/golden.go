// Package golden keeps rendered boundary matrices in a key-value store and
// checks later runs against them.
package golden

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/eigerco/checkedint/internal/boundary"
	"github.com/eigerco/checkedint/pkg/db"
	"github.com/eigerco/checkedint/pkg/log"
)

var (
	ErrNoRecord = errors.New("golden: no recorded matrix")
	ErrMismatch = errors.New("golden: matrix differs from record")
)

var matrixPrefix = []byte("matrix/")

func matrixKey(typ string) []byte {
	return append(append([]byte{}, matrixPrefix...), typ...)
}

type Store struct {
	kv db.KVStore
}

func New(kv db.KVStore) *Store {
	return &Store{kv: kv}
}

// Record stores the matrices in one batch, replacing earlier records of
// the same types.
func (s *Store) Record(matrices ...boundary.Matrix) error {
	batch := s.kv.NewBatch()
	defer batch.Close()

	for _, m := range matrices {
		if err := batch.Put(matrixKey(m.Type), []byte(m.Text())); err != nil {
			return fmt.Errorf("recording %s: %w", m.Type, err)
		}
	}
	if err := batch.Commit(); err != nil {
		return fmt.Errorf("committing records: %w", err)
	}
	for _, m := range matrices {
		log.Golden.Info().Str("type", m.Type).Int("outcomes", len(m.Outcomes)).
			Int("overflows", m.Overflows()).Msg("matrix recorded")
	}
	return nil
}

// Load returns the recorded text for a representation.
func (s *Store) Load(typ string) (string, error) {
	v, err := s.kv.Get(matrixKey(typ))
	if errors.Is(err, db.ErrNotFound) {
		return "", fmt.Errorf("%w for %s", ErrNoRecord, typ)
	}
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", typ, err)
	}
	return string(v), nil
}

// Verify compares m with its record. A mismatch error carries a unified
// diff from the recorded to the current matrix.
func (s *Store) Verify(m boundary.Matrix) error {
	recorded, err := s.Load(m.Type)
	if err != nil {
		return err
	}
	current := m.Text()
	if recorded == current {
		log.Golden.Info().Str("type", m.Type).Msg("matrix matches record")
		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(recorded),
		B:        difflib.SplitLines(current),
		FromFile: "recorded/" + m.Type,
		ToFile:   "current/" + m.Type,
		Context:  2,
	})
	if err != nil {
		return fmt.Errorf("diffing %s: %w", m.Type, err)
	}
	log.Golden.Warn().Str("type", m.Type).Msg("matrix differs from record")
	return fmt.Errorf("%w for %s:\n%s", ErrMismatch, m.Type, diff)
}

// Types lists the recorded representations in key order.
func (s *Store) Types() ([]string, error) {
	iter, err := s.kv.NewIterator(matrixPrefix, db.PrefixEnd(matrixPrefix))
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var types []string
	for iter.Next() {
		types = append(types, string(bytes.TrimPrefix(iter.Key(), matrixPrefix)))
	}
	return types, nil
}
