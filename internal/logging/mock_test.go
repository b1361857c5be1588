package logging

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_ChildLoggersShareEntries(t *testing.T) {
	root := NewMockLogger()
	child := root.WithField(FieldRunID, "r1").WithError(errors.New("bad"))

	root.Info("start")
	child.Warn("problem", Field{Key: FieldIndex, Value: 4})

	entries := root.GetEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "problem", entries[1].Message)
	assert.EqualError(t, entries[1].Error, "bad")

	runID, ok := entries[1].FieldValue(FieldRunID)
	require.True(t, ok)
	assert.Equal(t, "r1", runID)
	idx, _ := entries[1].FieldValue(FieldIndex)
	assert.Equal(t, 4, idx)

	_, ok = entries[0].FieldValue(FieldRunID)
	assert.False(t, ok)
}

func TestMockLogger_ZeroValueUsable(t *testing.T) {
	var m MockLogger
	m.Debug("one")
	m.Fatalf("two %d", 2)

	assert.True(t, m.HasEntry("DEBUG", "one"))
	assert.True(t, m.HasEntry("FATAL", "two 2"))
	assert.Len(t, m.GetEntriesByLevel("FATAL"), 1)

	m.Clear()
	assert.Empty(t, m.GetEntries())
}

func TestMockLogger_SiblingFieldsDoNotLeak(t *testing.T) {
	root := NewMockLogger()
	base := root.WithFields(Field{Key: "a", Value: 1})
	base.WithField("b", 2).Info("left")
	base.WithField("c", 3).Info("right")

	entries := root.GetEntries()
	require.Len(t, entries, 2)
	assert.Len(t, entries[0].Fields, 2)
	_, hasB := entries[1].FieldValue("b")
	assert.False(t, hasB)
}

func TestMockLogger_Concurrent(t *testing.T) {
	m := NewMockLogger()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.WithField("i", 1).Info("tick")
		}()
	}
	wg.Wait()
	assert.Len(t, m.GetEntriesByLevel("INFO"), 20)
}
