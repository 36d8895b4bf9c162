package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSidecar(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SidecarFileName), []byte(content), 0o644))
	return dir
}

func TestReadSidecar(t *testing.T) {
	dir := writeSidecar(t, "post_fork: altair\nfork_block: 7\nblocks_count: 16\n")

	sc, err := ReadSidecar(dir)
	require.NoError(t, err)

	post, ok := sc.PostFork()
	require.True(t, ok)
	assert.Equal(t, "altair", post)

	block, ok := sc.ForkBlock()
	require.True(t, ok)
	assert.Equal(t, uint64(7), block)
}

func TestReadSidecarAbsent(t *testing.T) {
	sc, err := ReadSidecar(t.TempDir())
	require.NoError(t, err, "a missing sidecar is the common case, not an error")

	_, ok := sc.PostFork()
	assert.False(t, ok)
	_, ok = sc.ForkBlock()
	assert.False(t, ok)
}

func TestReadSidecarUnparsable(t *testing.T) {
	dir := writeSidecar(t, "post_fork: [unterminated\n")

	sc, err := ReadSidecar(dir)
	require.Error(t, err, "a present but broken sidecar must surface to the caller")

	_, ok := sc.PostFork()
	assert.False(t, ok)
}

func TestSidecarIgnoresUnusableValues(t *testing.T) {
	dir := writeSidecar(t, "post_fork: 42\nfork_block: deep\n")

	sc, err := ReadSidecar(dir)
	require.NoError(t, err)

	_, ok := sc.PostFork()
	assert.False(t, ok, "non-string post_fork is not a fork name")
	_, ok = sc.ForkBlock()
	assert.False(t, ok, "non-integer fork_block is not a boundary")
}
