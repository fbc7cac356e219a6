package undo

import (
	"context"
	"testing"
	"time"

	"shiftsync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batch(employee string, ids ...string) models.UndoBatch {
	b := models.UndoBatch{ID: employee + "-batch", Timestamp: time.Now(), EmployeeName: employee}
	for _, id := range ids {
		b.Events = append(b.Events, models.UndoEvent{Shift: "9:00-close", Date: "7 - Jul", EventID: id})
	}
	return b
}

func TestMemoryLedgerLIFO(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()

	require.NoError(t, l.Append(ctx, "s1", batch("Ann", "a")))
	require.NoError(t, l.Append(ctx, "s1", batch("Bob", "b")))
	require.NoError(t, l.Append(ctx, "s2", batch("Cat", "c")))

	n, err := l.Len(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := l.PopLast(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.EmployeeName)
	got, err = l.PopLast(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.EmployeeName)

	_, err = l.PopLast(ctx, "s1")
	assert.ErrorIs(t, err, ErrNothingToUndo)

	n, err = l.Len(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "sessions are independent")
}
