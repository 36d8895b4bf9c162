package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownTypes(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		fork     string
		preset   string
		typeName string
	}{
		{"phase0", PresetMainnet, "BeaconState"},
		{"phase0", PresetMinimal, "SignedBeaconBlock"},
		{"altair", PresetMainnet, "SyncCommittee"},
		{"altair", PresetMinimal, "LightClientUpdate"},
		{"bellatrix", PresetMainnet, "PowBlock"},
		{"capella", PresetMinimal, "SignedBLSToExecutionChange"},
		{"capella", PresetMainnet, "HistoricalSummary"},
		{"deneb", PresetMainnet, "BlobSidecar"},
		{"electra", PresetMinimal, "PendingConsolidation"},
		{"electra", PresetMainnet, "SingleAttestation"},
	}
	for _, tc := range tests {
		s, err := reg.Lookup(tc.fork, tc.preset, tc.typeName)
		require.NoErrorf(t, err, "%s/%s/%s", tc.fork, tc.preset, tc.typeName)
		assert.Equal(t, KindContainer, s.Kind)
		assert.Equal(t, tc.typeName, s.Name)
	}
}

func TestLookupErrors(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Lookup("gloas", PresetMainnet, "BeaconState")
	assert.ErrorIs(t, err, ErrUnknownFork)

	_, err = reg.Lookup("phase0", "general", "BeaconState")
	assert.ErrorIs(t, err, ErrUnknownFork, "general must be normalized away before lookup")

	_, err = reg.Lookup("phase0", PresetMainnet, "SyncCommittee")
	assert.ErrorIs(t, err, ErrUnknownType, "altair types must not leak into phase0")

	_, err = reg.Lookup("deneb", PresetMainnet, "NoSuchThing")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestSyntheticDeltasAvailableUnderEveryFork(t *testing.T) {
	reg := NewRegistry()
	for _, fork := range reg.Forks() {
		s, err := reg.Lookup(fork, PresetMinimal, "Deltas")
		require.NoError(t, err, fork)
		require.Len(t, s.Fields, 2)
		assert.Equal(t, "rewards", s.Fields[0].Name)
		assert.Equal(t, "penalties", s.Fields[1].Name)
	}
}

// Forks only ever add or replace types; nothing a predecessor defines may
// vanish from a successor's catalog.
func TestCatalogDeltaLaw(t *testing.T) {
	reg := NewRegistry()
	forks := reg.Forks()
	for i := 1; i < len(forks); i++ {
		prev := reg.catalogs[catalogKey{fork: forks[i-1], preset: PresetMainnet}]
		cur := reg.catalogs[catalogKey{fork: forks[i], preset: PresetMainnet}]
		for name := range prev {
			_, ok := cur[name]
			assert.Truef(t, ok, "%s lost type %s present in %s", forks[i], name, forks[i-1])
		}
	}
}

func TestFixedSizesOfCoreContainers(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		fork     string
		preset   string
		typeName string
		size     uint64
	}{
		{"phase0", PresetMainnet, "Checkpoint", 40},
		{"phase0", PresetMainnet, "Fork", 16},
		{"phase0", PresetMainnet, "Validator", 121},
		{"phase0", PresetMainnet, "AttestationData", 128},
		{"phase0", PresetMainnet, "BeaconBlockHeader", 112},
		{"phase0", PresetMainnet, "DepositData", 184},
		{"phase0", PresetMainnet, "Deposit", 33*32 + 184},
		{"phase0", PresetMainnet, "VoluntaryExit", 16},
		{"altair", PresetMainnet, "SyncCommittee", 512*48 + 48},
		{"altair", PresetMinimal, "SyncCommittee", 32*48 + 48},
		{"altair", PresetMainnet, "SyncAggregate", 512/8 + 96},
		{"capella", PresetMainnet, "Withdrawal", 44},
		{"electra", PresetMainnet, "PendingConsolidation", 16},
	}
	for _, tc := range tests {
		s, err := reg.Lookup(tc.fork, tc.preset, tc.typeName)
		require.NoError(t, err)
		size, fixed := FixedSize(s)
		require.Truef(t, fixed, "%s should be fixed-size", tc.typeName)
		assert.Equalf(t, tc.size, size, "%s/%s/%s", tc.fork, tc.preset, tc.typeName)
	}
}

func TestStatesAreVariableSize(t *testing.T) {
	reg := NewRegistry()
	for _, fork := range reg.Forks() {
		s, err := reg.Lookup(fork, PresetMainnet, "BeaconState")
		require.NoError(t, err)
		_, fixed := FixedSize(s)
		assert.Falsef(t, fixed, "%s BeaconState must be variable-size", fork)
	}
}

func TestPresetGeometryDiverges(t *testing.T) {
	mainnet, minimal := Mainnet(), Minimal()

	assert.Equal(t, uint64(8192), mainnet.SlotsPerHistoricalRoot)
	assert.Equal(t, uint64(64), minimal.SlotsPerHistoricalRoot)
	assert.Equal(t, uint64(1)<<40, mainnet.ValidatorRegistryLimit)
	assert.Equal(t, mainnet.ValidatorRegistryLimit, minimal.ValidatorRegistryLimit)
	assert.Equal(t, uint64(512), mainnet.SyncCommitteeSize)
	assert.Equal(t, uint64(32), minimal.SyncCommitteeSize)

	// KZG inclusion proof depth tracks the commitment list size.
	assert.Equal(t, uint64(17), mainnet.kzgInclusionProofDepth())
	assert.Equal(t, uint64(10), minimal.kzgInclusionProofDepth())
}

func TestRegistryBuildsIndependentCatalogsPerFork(t *testing.T) {
	reg := NewRegistry()

	p0, err := reg.Lookup("phase0", PresetMainnet, "BeaconBlockBody")
	require.NoError(t, err)
	altair, err := reg.Lookup("altair", PresetMainnet, "BeaconBlockBody")
	require.NoError(t, err)

	assert.Len(t, p0.Fields, 8)
	assert.Len(t, altair.Fields, 9)
	assert.Equal(t, "sync_aggregate", altair.Fields[8].Name)
}
