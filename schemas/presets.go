package schemas

import (
	"github.com/prysmaticlabs/prysm/v5/config/params"
)

// Preset names as they appear in corpus paths.
const (
	PresetMainnet = "mainnet"
	PresetMinimal = "minimal"
)

// Preset carries every size constant the catalogs parameterize over. Values
// come from prysm's beacon chain configs where that config carries them;
// constants prysm keeps in compile-time fieldparams (payload geometry, blob
// and electra list limits) are pinned here per upstream preset files.
type Preset struct {
	Name string

	SlotsPerEpoch             uint64
	SlotsPerHistoricalRoot    uint64
	EpochsPerEth1VotingPeriod uint64
	EpochsPerHistoricalVector uint64
	EpochsPerSlashingsVector  uint64
	HistoricalRootsLimit      uint64
	ValidatorRegistryLimit    uint64

	MaxProposerSlashings uint64
	MaxAttesterSlashings uint64
	MaxAttestations      uint64
	MaxDeposits          uint64
	MaxVoluntaryExits    uint64

	MaxValidatorsPerCommittee uint64
	MaxCommitteesPerSlot      uint64
	SyncCommitteeSize         uint64

	MaxWithdrawalsPerPayload uint64
	MaxBlsToExecutionChanges uint64

	MaxBlobCommitmentsPerBlock uint64
	FieldElementsPerBlob       uint64

	MaxAttestationsElectra             uint64
	MaxAttesterSlashingsElectra        uint64
	PendingDepositsLimit               uint64
	PendingPartialWithdrawalsLimit     uint64
	PendingConsolidationsLimit         uint64
	MaxDepositRequestsPerPayload       uint64
	MaxWithdrawalRequestsPerPayload    uint64
	MaxConsolidationRequestsPerPayload uint64
}

// Constants shared by both presets.
const (
	depositContractTreeDepth  = 32
	justificationBitsLength   = 4
	bytesPerLogsBloom         = 256
	maxExtraDataBytes         = 32
	maxBytesPerTransaction    = 1 << 30
	maxTransactionsPerPayload = 1 << 20
	syncCommitteeSubnetCount  = 4
)

// Mainnet is the mainnet-scale preset.
func Mainnet() Preset {
	p := fromBeaconConfig(PresetMainnet, params.MainnetConfig())
	p.MaxBlobCommitmentsPerBlock = 4096
	p.FieldElementsPerBlob = 4096
	p.PendingDepositsLimit = 1 << 27
	p.PendingPartialWithdrawalsLimit = 1 << 27
	p.PendingConsolidationsLimit = 1 << 18
	p.MaxDepositRequestsPerPayload = 8192
	p.MaxWithdrawalRequestsPerPayload = 16
	p.MaxConsolidationRequestsPerPayload = 2
	return p
}

// Minimal is the reduced-scale preset used by most state transition suites.
func Minimal() Preset {
	p := fromBeaconConfig(PresetMinimal, params.MinimalSpecConfig())
	p.MaxBlobCommitmentsPerBlock = 32
	p.FieldElementsPerBlob = 4096
	p.PendingDepositsLimit = 1 << 27
	p.PendingPartialWithdrawalsLimit = 64
	p.PendingConsolidationsLimit = 64
	p.MaxDepositRequestsPerPayload = 4
	p.MaxWithdrawalRequestsPerPayload = 2
	p.MaxConsolidationRequestsPerPayload = 1
	return p
}

func fromBeaconConfig(name string, cfg *params.BeaconChainConfig) Preset {
	return Preset{
		Name: name,

		SlotsPerEpoch:             uint64(cfg.SlotsPerEpoch),
		SlotsPerHistoricalRoot:    uint64(cfg.SlotsPerHistoricalRoot),
		EpochsPerEth1VotingPeriod: uint64(cfg.EpochsPerEth1VotingPeriod),
		EpochsPerHistoricalVector: uint64(cfg.EpochsPerHistoricalVector),
		EpochsPerSlashingsVector:  uint64(cfg.EpochsPerSlashingsVector),
		HistoricalRootsLimit:      cfg.HistoricalRootsLimit,
		ValidatorRegistryLimit:    cfg.ValidatorRegistryLimit,

		MaxProposerSlashings: cfg.MaxProposerSlashings,
		MaxAttesterSlashings: cfg.MaxAttesterSlashings,
		MaxAttestations:      cfg.MaxAttestations,
		MaxDeposits:          cfg.MaxDeposits,
		MaxVoluntaryExits:    cfg.MaxVoluntaryExits,

		MaxValidatorsPerCommittee: cfg.MaxValidatorsPerCommittee,
		MaxCommitteesPerSlot:      cfg.MaxCommitteesPerSlot,
		SyncCommitteeSize:         cfg.SyncCommitteeSize,

		MaxWithdrawalsPerPayload: cfg.MaxWithdrawalsPerPayload,
		MaxBlsToExecutionChanges: cfg.MaxBlsToExecutionChanges,

		MaxAttestationsElectra:      8,
		MaxAttesterSlashingsElectra: 1,
	}
}

// eth1DataVotesLimit is SLOTS_PER_EPOCH * EPOCHS_PER_ETH1_VOTING_PERIOD.
func (p Preset) eth1DataVotesLimit() uint64 {
	return p.SlotsPerEpoch * p.EpochsPerEth1VotingPeriod
}

// ceilLog2 for the KZG inclusion proof depth derivation.
func ceilLog2(n uint64) uint64 {
	var d uint64
	for v := uint64(1); v < n; v <<= 1 {
		d++
	}
	return d
}

// kzgInclusionProofDepth is floorlog2 of the commitments gindex in the block
// body (5, list length mix-in included) plus the commitment list depth.
func (p Preset) kzgInclusionProofDepth() uint64 {
	return 5 + ceilLog2(p.MaxBlobCommitmentsPerBlock)
}
