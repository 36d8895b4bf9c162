package fixture

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHistory = NewForkHistory([]string{"phase0", "altair", "bellatrix", "capella", "deneb", "electra"})

func mustDecompose(t *testing.T, path string) FixturePath {
	t.Helper()
	fp, err := Decompose(path)
	require.NoError(t, err)
	return fp
}

func noSidecar(string) (Sidecar, error) { return Sidecar{}, nil }

func sidecarWith(fields map[string]any) SidecarFunc {
	return func(string) (Sidecar, error) { return Sidecar{fields: fields}, nil }
}

func TestResolveTypeNames(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		typeName string
		fork     string
		preset   string
	}{
		{
			name:     "ssz_static suite is the type",
			path:     "tests/tests/mainnet/altair/ssz_static/SyncCommittee/ssz_random/case_0/serialized.ssz_snappy",
			typeName: "SyncCommittee",
			fork:     "altair",
			preset:   "mainnet",
		},
		{
			name:     "general preset reuses mainnet types",
			path:     "tests/tests/general/phase0/ssz_static/Checkpoint/ssz_random/case_0/serialized.ssz_snappy",
			typeName: "Checkpoint",
			fork:     "phase0",
			preset:   "mainnet",
		},
		{
			name:     "single merkle proof type sits below the suite",
			path:     "tests/tests/mainnet/deneb/merkle_proof/single_merkle_proof/BeaconBlockBody/blob_kzg_commitment_merkle_proof/object.ssz_snappy",
			typeName: "BeaconBlockBody",
			fork:     "deneb",
			preset:   "mainnet",
		},
		{
			name:     "light client proof object",
			path:     "tests/tests/minimal/altair/light_client/single_merkle_proof/BeaconState/current_sync_committee_merkle_proof/object.ssz_snappy",
			typeName: "BeaconState",
			fork:     "altair",
			preset:   "minimal",
		},
		{
			name:     "pre state snapshot",
			path:     "tests/tests/minimal/phase0/epoch_processing/justification_and_finalization/pyspec_tests/case_0/pre.ssz_snappy",
			typeName: "BeaconState",
			fork:     "phase0",
			preset:   "minimal",
		},
		{
			name:     "post state snapshot",
			path:     "tests/tests/minimal/capella/operations/withdrawals/pyspec_tests/case_0/post.ssz_snappy",
			typeName: "BeaconState",
			fork:     "capella",
			preset:   "minimal",
		},
		{
			name:     "block body file",
			path:     "tests/tests/mainnet/deneb/some_category/some_suite/case_0/body.ssz_snappy",
			typeName: "BeaconBlockBody",
			fork:     "deneb",
			preset:   "mainnet",
		},
		{
			name:     "signed execution payload envelope",
			path:     "tests/tests/minimal/gloas/operations/execution_payload/pyspec_tests/case_0/signed_envelope.ssz_snappy",
			typeName: "SignedExecutionPayloadEnvelope",
			fork:     "gloas",
			preset:   "minimal",
		},
		{
			name:     "fork choice anchor state",
			path:     "tests/tests/mainnet/bellatrix/fork_choice/on_block/pyspec_tests/case_0/anchor_state.ssz_snappy",
			typeName: "BeaconState",
			fork:     "bellatrix",
			preset:   "mainnet",
		},
		{
			name:     "fork choice anchor block is unsigned",
			path:     "tests/tests/mainnet/bellatrix/fork_choice/on_block/pyspec_tests/case_0/anchor_block.ssz_snappy",
			typeName: "BeaconBlock",
			fork:     "bellatrix",
			preset:   "mainnet",
		},
		{
			name:     "fork choice block by root",
			path:     "tests/tests/mainnet/bellatrix/fork_choice/on_block/pyspec_tests/case_0/block_0xdeadbeef.ssz_snappy",
			typeName: "SignedBeaconBlock",
			fork:     "bellatrix",
			preset:   "mainnet",
		},
		{
			name:     "fork choice attestation",
			path:     "tests/tests/mainnet/phase0/fork_choice/on_attestation/pyspec_tests/case_0/attestation_0xabc.ssz_snappy",
			typeName: "Attestation",
			fork:     "phase0",
			preset:   "mainnet",
		},
		{
			name:     "fork choice attester slashing beats attestation prefix",
			path:     "tests/tests/mainnet/phase0/fork_choice/on_attester_slashing/pyspec_tests/case_0/attester_slashing_0xabc.ssz_snappy",
			typeName: "AttesterSlashing",
			fork:     "phase0",
			preset:   "mainnet",
		},
		{
			name:     "sync category pow block",
			path:     "tests/tests/mainnet/bellatrix/sync/optimistic/pyspec_tests/case_0/pow_block_0xabc.ssz_snappy",
			typeName: "PowBlock",
			fork:     "bellatrix",
			preset:   "mainnet",
		},
		{
			name:     "rewards deltas resolve to the synthetic container",
			path:     "tests/tests/minimal/phase0/rewards/basic/pyspec_tests/case_0/head_deltas.ssz_snappy",
			typeName: "Deltas",
			fork:     "phase0",
			preset:   "minimal",
		},
		{
			name:     "block_header operation block is unsigned",
			path:     "tests/tests/minimal/phase0/operations/block_header/pyspec_tests/case_0/block.ssz_snappy",
			typeName: "BeaconBlock",
			fork:     "phase0",
			preset:   "minimal",
		},
		{
			name:     "execution_payload_bid operation block is unsigned",
			path:     "tests/tests/minimal/gloas/operations/execution_payload_bid/pyspec_tests/case_0/block.ssz_snappy",
			typeName: "BeaconBlock",
			fork:     "gloas",
			preset:   "minimal",
		},
		{
			name:     "plain block file in other operations is the signed block",
			path:     "tests/tests/mainnet/capella/operations/bls_to_execution_change/pyspec_tests/case_0/block.ssz_snappy",
			typeName: "SignedBeaconBlock",
			fork:     "capella",
			preset:   "mainnet",
		},
		{
			name:     "indexed blocks file is the signed block",
			path:     "tests/tests/minimal/phase0/sanity/blocks/pyspec_tests/case_0/blocks_3.ssz_snappy",
			typeName: "SignedBeaconBlock",
			fork:     "phase0",
			preset:   "minimal",
		},
		{
			name:     "operations suite table",
			path:     "tests/tests/minimal/capella/operations/bls_to_execution_change/pyspec_tests/case_0/address_change.ssz_snappy",
			typeName: "SignedBLSToExecutionChange",
			fork:     "capella",
			preset:   "minimal",
		},
		{
			name:     "withdrawals operation carries the payload",
			path:     "tests/tests/minimal/capella/operations/withdrawals/pyspec_tests/case_0/execution_payload.ssz_snappy",
			typeName: "ExecutionPayload",
			fork:     "capella",
			preset:   "minimal",
		},
		{
			name:     "finality category holds full states",
			path:     "tests/tests/minimal/altair/finality/finality/pyspec_tests/case_0/blocks.ssz_snappy",
			typeName: "BeaconState",
			fork:     "altair",
			preset:   "minimal",
		},
		{
			name:     "unknown category falls back to capitalized suite",
			path:     "tests/tests/minimal/phase0/genesis/justification_and_finalization/pyspec_tests/case_0/thing.ssz_snappy",
			typeName: "JustificationAndFinalization",
			fork:     "phase0",
			preset:   "minimal",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Resolve(mustDecompose(t, tc.path), testHistory, noSidecar)
			assert.Equal(t, tc.typeName, res.TypeName)
			assert.Equal(t, tc.fork, res.Fork)
			assert.Equal(t, tc.preset, res.Preset)
		})
	}
}

func TestResolveForkCategoryPreUsesPredecessor(t *testing.T) {
	pre := mustDecompose(t, "tests/tests/mainnet/altair/fork/fork/pyspec_tests/case_0/pre.ssz_snappy")
	res := Resolve(pre, testHistory, noSidecar)
	assert.Equal(t, "phase0", res.Fork)
	assert.Equal(t, "BeaconState", res.TypeName)
	assert.Empty(t, res.Warnings)

	post := mustDecompose(t, "tests/tests/mainnet/altair/fork/fork/pyspec_tests/case_0/post.ssz_snappy")
	res = Resolve(post, testHistory, noSidecar)
	assert.Equal(t, "altair", res.Fork, "only the pre state is rewritten")
}

func TestResolveForkCategoryUnknownPredecessorWarns(t *testing.T) {
	pre := mustDecompose(t, "tests/tests/mainnet/phase0/fork/fork/pyspec_tests/case_0/pre.ssz_snappy")
	res := Resolve(pre, testHistory, noSidecar)
	assert.Equal(t, "phase0", res.Fork)
	assert.NotEmpty(t, res.Warnings)
}

func TestResolveTransitionPre(t *testing.T) {
	pre := mustDecompose(t, "tests/tests/minimal/bellatrix/transition/core/pyspec_tests/case_0/pre.ssz_snappy")

	t.Run("sidecar names the post fork", func(t *testing.T) {
		res := Resolve(pre, testHistory, sidecarWith(map[string]any{"post_fork": "bellatrix", "fork_block": 7}))
		assert.Equal(t, "altair", res.Fork)
		assert.Empty(t, res.Warnings)
	})

	t.Run("absent sidecar keeps the declared fork and warns", func(t *testing.T) {
		res := Resolve(pre, testHistory, noSidecar)
		assert.Equal(t, "bellatrix", res.Fork)
		assert.NotEmpty(t, res.Warnings)
	})

	t.Run("unreadable sidecar keeps the declared fork and warns", func(t *testing.T) {
		broken := func(string) (Sidecar, error) { return Sidecar{}, errors.New("yaml: bad") }
		res := Resolve(pre, testHistory, broken)
		assert.Equal(t, "bellatrix", res.Fork)
		assert.NotEmpty(t, res.Warnings)
	})
}

func TestResolveTransitionBlocksStraddleTheBoundary(t *testing.T) {
	sidecar := sidecarWith(map[string]any{"post_fork": "bellatrix", "fork_block": 7})

	for n, want := range map[int]string{0: "altair", 7: "altair", 8: "bellatrix", 15: "bellatrix"} {
		path := fmt.Sprintf("tests/tests/minimal/bellatrix/transition/core/pyspec_tests/case_0/blocks_%d.ssz_snappy", n)
		res := Resolve(mustDecompose(t, path), testHistory, sidecar)
		assert.Equalf(t, want, res.Fork, "blocks_%d", n)
		assert.Equal(t, "SignedBeaconBlock", res.TypeName)
	}
}

func TestResolveTransitionBlocksWithoutBoundaryWarns(t *testing.T) {
	fp := mustDecompose(t, "tests/tests/minimal/bellatrix/transition/core/pyspec_tests/case_0/blocks_2.ssz_snappy")
	res := Resolve(fp, testHistory, sidecarWith(map[string]any{"post_fork": "bellatrix"}))
	assert.Equal(t, "bellatrix", res.Fork)
	assert.NotEmpty(t, res.Warnings)
}

func TestResolveBareBlockInForkChoiceWarns(t *testing.T) {
	fp := mustDecompose(t, "tests/tests/mainnet/phase0/fork_choice/on_block/pyspec_tests/case_0/block.ssz_snappy")
	res := Resolve(fp, testHistory, noSidecar)
	assert.Equal(t, "SignedBeaconBlock", res.TypeName)
	assert.NotEmpty(t, res.Warnings, "undocumented layout must warn, not guess silently")
}

func TestResolveNeverReadsSidecarOutsideTransitions(t *testing.T) {
	fp := mustDecompose(t, "tests/tests/mainnet/altair/ssz_static/Fork/ssz_random/case_0/serialized.ssz_snappy")
	touched := false
	spy := func(string) (Sidecar, error) { touched = true; return Sidecar{}, nil }
	Resolve(fp, testHistory, spy)
	assert.False(t, touched)
}
