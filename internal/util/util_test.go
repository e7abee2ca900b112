package util

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID(t *testing.T) {
	seen := make(map[string]struct{})
	prev := ""
	for i := 0; i < 100; i++ {
		id := NewULID()
		_, err := ulid.ParseStrict(id)
		require.NoError(t, err)
		assert.Greater(t, id, prev, "ids must be monotonic")
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
		prev = id
	}
}

func TestNullStringHelpers(t *testing.T) {
	assert.False(t, PtrToNullString(nil).Valid)
	assert.Nil(t, NullStringToPtr(PtrToNullString(nil)))

	empty := ""
	ns := PtrToNullString(&empty)
	assert.True(t, ns.Valid)
	require.NotNil(t, NullStringToPtr(ns))
	assert.Equal(t, "", *NullStringToPtr(ns))

	v := "금융정책"
	assert.Equal(t, "금융정책", *NullStringToPtr(PtrToNullString(&v)))
}
