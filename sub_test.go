package tendril

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubOfInlineProducesInline(t *testing.T) {
	var tr, piece Tendril
	require.NoError(t, PushBuffer(&tr, []byte("abcdef")))
	defer Destroy(&tr)

	require.NoError(t, Sub(&piece, &tr, 1, 3))
	defer Destroy(&piece)

	require.Equal(t, formInline, piece.form())
	require.Equal(t, "bcd", piece.String())
}

func TestSubShortResultIsAlwaysInline(t *testing.T) {
	var tr, piece Tendril
	require.NoError(t, PushBuffer(&tr, []byte("well past the eight byte inline threshold, plenty of room")))
	defer Destroy(&tr)

	require.NoError(t, Sub(&piece, &tr, 0, 4))
	defer Destroy(&piece)

	require.Equal(t, formInline, piece.form())
	require.Equal(t, "well", piece.String())
	require.False(t, IsShared(&tr))
}

func TestSubLongResultSharesAndPromotes(t *testing.T) {
	var tr, piece Tendril
	content := "well past the eight byte inline threshold, plenty of room here"
	require.NoError(t, PushBuffer(&tr, []byte(content)))
	require.Equal(t, formOwned, tr.form())
	defer Destroy(&tr)

	require.NoError(t, Sub(&piece, &tr, 5, 20))
	defer Destroy(&piece)

	require.True(t, IsShared(&tr))
	require.True(t, IsSharedWith(&tr, &piece))
	require.Equal(t, content[5:25], piece.String())
}

func TestSubOutOfBounds(t *testing.T) {
	var tr, piece Tendril
	require.NoError(t, PushBuffer(&tr, []byte("abc")))
	defer Destroy(&tr)

	require.ErrorIs(t, Sub(&piece, &tr, 1, 10), ErrOutOfBounds)
	require.ErrorIs(t, Sub(&piece, &tr, 4, 0), ErrOutOfBounds)
}

func TestSubThenPopBackShareAndRelease(t *testing.T) {
	var tr, piece Tendril
	content := "well past the eight byte inline threshold, plenty of room here"
	require.NoError(t, PushBuffer(&tr, []byte(content)))
	require.NoError(t, Sub(&piece, &tr, 0, 30))

	require.NoError(t, PopBack(&piece, 10))
	require.Equal(t, content[:20], piece.String())
	require.True(t, IsSharedWith(&tr, &piece))

	Destroy(&piece)
	require.Equal(t, content, tr.String())
	Destroy(&tr)
}
