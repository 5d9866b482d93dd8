package tendril

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIsEmpty(t *testing.T) {
	tr := New()
	require.Equal(t, formEmpty, tr.form())
	require.Equal(t, uint32(0), tr.Len())
	require.Nil(t, tr.Bytes())
}

func TestPushBufferStaysInline(t *testing.T) {
	tr := New()
	defer Destroy(&tr)

	require.NoError(t, PushBuffer(&tr, []byte("abc")))
	require.Equal(t, formInline, tr.form())
	require.Equal(t, "abc", tr.String())
}

func TestPushBufferCrossesInlineThreshold(t *testing.T) {
	tr := New()
	defer Destroy(&tr)

	require.NoError(t, PushBuffer(&tr, []byte("exactly8")))
	require.Equal(t, formInline, tr.form())

	require.NoError(t, PushBuffer(&tr, []byte("9")))
	require.Equal(t, formOwned, tr.form())
	require.Equal(t, "exactly89", tr.String())
}

func TestPushBufferGrowsOwnedByDoubling(t *testing.T) {
	tr := New()
	defer Destroy(&tr)

	require.NoError(t, PushBuffer(&tr, make([]byte, 20)))
	firstCap := tr.capacity()

	require.NoError(t, PushBuffer(&tr, make([]byte, int(firstCap))))
	require.Equal(t, formOwned, tr.form())
	require.GreaterOrEqual(t, tr.capacity(), firstCap*2)
}
