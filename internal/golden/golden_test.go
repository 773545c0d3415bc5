package golden

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/checkedint/internal/boundary"
	"github.com/eigerco/checkedint/pkg/checked"
	"github.com/eigerco/checkedint/pkg/db/pebble"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	kv, err := pebble.NewMemKVStore()
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return New(kv)
}

func TestRecordVerify(t *testing.T) {
	s := newStore(t)
	signed := boundary.Run(boundary.Samples[int32](false), boundary.DefaultOps)
	unsigned := boundary.Run(boundary.Samples[uint32](false), boundary.DefaultOps)

	require.NoError(t, s.Record(signed, unsigned))

	assert.NoError(t, s.Verify(signed))
	assert.NoError(t, s.Verify(unsigned))

	text, err := s.Load("int32")
	require.NoError(t, err)
	assert.Equal(t, signed.Text(), text)

	types, err := s.Types()
	require.NoError(t, err)
	assert.Equal(t, []string{"int32", "uint32"}, types)
}

func TestVerify_NoRecord(t *testing.T) {
	s := newStore(t)
	err := s.Verify(boundary.Run(boundary.Samples[int8](false), boundary.DefaultOps))
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestVerify_Mismatch(t *testing.T) {
	s := newStore(t)
	recorded := boundary.Run([]int8{1, 127}, []checked.Op{checked.OpAdd})
	require.NoError(t, s.Record(recorded))

	tampered := recorded
	tampered.Outcomes = append([]boundary.Outcome(nil), recorded.Outcomes...)
	tampered.Outcomes[1].Err = nil
	tampered.Outcomes[1].Result = "-128"

	err := s.Verify(tampered)
	require.ErrorIs(t, err, ErrMismatch)
	assert.Contains(t, err.Error(), "--- recorded/int8")
	assert.Contains(t, err.Error(), "+++ current/int8")
	assert.Contains(t, err.Error(), "-1 + 127: overflow")
	assert.Contains(t, err.Error(), "+1 + 127: -128")
	assert.False(t, strings.Contains(err.Error(), "-1 + 1: 2"), "unchanged lines are not marked")
}

func TestRecord_Replaces(t *testing.T) {
	s := newStore(t)
	first := boundary.Run([]uint8{0, 1}, []checked.Op{checked.OpSub})
	second := boundary.Run([]uint8{0, 1, 255}, []checked.Op{checked.OpSub})

	require.NoError(t, s.Record(first))
	require.NoError(t, s.Record(second))
	assert.NoError(t, s.Verify(second))
	assert.ErrorIs(t, s.Verify(first), ErrMismatch)
}
