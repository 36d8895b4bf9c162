package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	fp, err := Decompose("data/v1.6.0/tests/tests/mainnet/altair/ssz_static/SyncCommittee/ssz_random/case_0/serialized.ssz_snappy")
	require.NoError(t, err)

	assert.Equal(t, "mainnet", fp.Preset)
	assert.Equal(t, "altair", fp.Fork)
	assert.Equal(t, "ssz_static", fp.Category)
	assert.Equal(t, "SyncCommittee", fp.Suite)
	assert.Equal(t, []string{"ssz_random", "case_0", "serialized.ssz_snappy"}, fp.Rest)
	assert.Equal(t, "serialized", fp.FileName)
}

func TestDecomposeStripsBareSSZExtension(t *testing.T) {
	fp, err := Decompose("tests/tests/minimal/phase0/sanity/blocks/case_0/blocks_3.ssz")
	require.NoError(t, err)
	assert.Equal(t, "blocks_3", fp.FileName)
}

func TestDecomposeDirPointsAtFixtureDirectory(t *testing.T) {
	fp, err := Decompose("corpus/tests/tests/minimal/altair/transition/core/case_1/pre.ssz_snappy")
	require.NoError(t, err)
	assert.Equal(t, "corpus/tests/tests/minimal/altair/transition/core/case_1", fp.Dir())
}

func TestDecomposeErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"no anchor", "data/mainnet/altair/ssz_static/Foo/case_0/serialized.ssz_snappy"},
		{"single tests segment", "tests/mainnet/altair/ssz_static/Foo/case_0/serialized.ssz_snappy"},
		{"too few segments", "tests/tests/mainnet/altair/ssz_static/serialized.ssz_snappy"},
		{"anchor at end", "data/tests/tests"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decompose(tc.path)
			require.ErrorIs(t, err, ErrPathFormat)
		})
	}
}
