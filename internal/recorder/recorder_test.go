package recorder

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hookwire/event"
)

func openTemp(t *testing.T) *Recorder {
	t.Helper()
	rec, err := Open(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { rec.Close() })
	return rec
}

func TestRecordAndGet(t *testing.T) {
	rec := openTemp(t)

	ev := event.NewKeyboard(event.KeyA).WithMask(event.MaskLeftShift).Press()
	ev.Metadata.Time = 1700000000000

	id, err := rec.Record(&ev)
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	row, err := rec.Get(id)
	require.NoError(t, err)
	require.NotNil(t, row)

	assert.Equal(t, event.KindKeyPressed, row.Kind)
	assert.Equal(t, uint64(1700000000000), row.Timestamp)
	assert.Equal(t, event.MaskLeftShift, row.Mask)
	assert.Equal(t, uint16(event.KeyA), row.KeyCode)
	assert.True(t, row.Synthetic)
	assert.False(t, row.Reserved)
}

func TestGetMissing(t *testing.T) {
	rec := openTemp(t)
	row, err := rec.Get(12345)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestRangeAndByKind(t *testing.T) {
	rec := openTemp(t)

	for i, build := range []func() event.Event{
		func() event.Event { return event.NewKeyboard(event.KeyA).Press() },
		func() event.Event { return event.NewMouse(event.ButtonLeft).WithPosition(10, 20).Press() },
		func() event.Event { return event.NewScroll(3, 0, 0).WithRotation(-1).Build() },
		func() event.Event { return event.NewKeyboard(event.KeyB).Press() },
	} {
		ev := build()
		ev.Metadata.Time = uint64(1000 + i)
		_, err := rec.Record(&ev)
		require.NoError(t, err)
	}

	rows, err := rec.Range(1001, 1002)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, event.KindMousePressed, rows[0].Kind)
	assert.Equal(t, int16(10), rows[0].X)
	assert.Equal(t, event.KindWheel, rows[1].Kind)
	assert.Equal(t, int16(-1), rows[1].Rotation)

	keys, err := rec.ByKind(event.KindKeyPressed, 10)
	require.NoError(t, err)
	require.Len(t, keys, 2)
	// newest first
	assert.Equal(t, uint16(event.KeyB), keys[0].KeyCode)
	assert.Equal(t, uint16(event.KeyA), keys[1].KeyCode)
}

func TestCountAndPrune(t *testing.T) {
	rec := openTemp(t)

	for i := 0; i < 5; i++ {
		ev := event.NewKeyboard(event.KeyA).Press()
		ev.Metadata.Time = uint64(100 + i)
		_, err := rec.Record(&ev)
		require.NoError(t, err)
	}

	n, err := rec.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	pruned, err := rec.Prune(103)
	require.NoError(t, err)
	assert.Equal(t, int64(3), pruned)

	n, err = rec.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestControlEventsRecorded(t *testing.T) {
	rec := openTemp(t)
	ev := event.Event{Kind: event.KindDisabled, Metadata: event.Metadata{Time: 42}}
	id, err := rec.Record(&ev)
	require.NoError(t, err)

	row, err := rec.Get(id)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, event.KindDisabled, row.Kind)
	assert.Zero(t, row.KeyCode)
}
