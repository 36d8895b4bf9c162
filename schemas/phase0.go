package schemas

// phase0Catalog builds the genesis fork's full container set. Later forks
// start from a clone of their predecessor's catalog and apply deltas, the
// same way the upstream spec defines them.
func phase0Catalog(p Preset) Catalog {
	root := Bytes(32)
	pubkey := Bytes(48)
	signature := Bytes(96)

	fork := Container("Fork",
		F("previous_version", Bytes(4)),
		F("current_version", Bytes(4)),
		F("epoch", Uint64()),
	)
	forkData := Container("ForkData",
		F("current_version", Bytes(4)),
		F("genesis_validators_root", root),
	)
	checkpoint := Container("Checkpoint",
		F("epoch", Uint64()),
		F("root", root),
	)
	validator := Container("Validator",
		F("pubkey", pubkey),
		F("withdrawal_credentials", root),
		F("effective_balance", Uint64()),
		F("slashed", Bool()),
		F("activation_eligibility_epoch", Uint64()),
		F("activation_epoch", Uint64()),
		F("exit_epoch", Uint64()),
		F("withdrawable_epoch", Uint64()),
	)
	attestationData := Container("AttestationData",
		F("slot", Uint64()),
		F("index", Uint64()),
		F("beacon_block_root", root),
		F("source", checkpoint),
		F("target", checkpoint),
	)
	indexedAttestation := Container("IndexedAttestation",
		F("attesting_indices", List(p.MaxValidatorsPerCommittee, Uint64())),
		F("data", attestationData),
		F("signature", signature),
	)
	pendingAttestation := Container("PendingAttestation",
		F("aggregation_bits", Bitlist(p.MaxValidatorsPerCommittee)),
		F("data", attestationData),
		F("inclusion_delay", Uint64()),
		F("proposer_index", Uint64()),
	)
	eth1Data := Container("Eth1Data",
		F("deposit_root", root),
		F("deposit_count", Uint64()),
		F("block_hash", root),
	)
	historicalBatch := Container("HistoricalBatch",
		F("block_roots", Vector(p.SlotsPerHistoricalRoot, root)),
		F("state_roots", Vector(p.SlotsPerHistoricalRoot, root)),
	)
	depositMessage := Container("DepositMessage",
		F("pubkey", pubkey),
		F("withdrawal_credentials", root),
		F("amount", Uint64()),
	)
	depositData := Container("DepositData",
		F("pubkey", pubkey),
		F("withdrawal_credentials", root),
		F("amount", Uint64()),
		F("signature", signature),
	)
	blockHeader := Container("BeaconBlockHeader",
		F("slot", Uint64()),
		F("proposer_index", Uint64()),
		F("parent_root", root),
		F("state_root", root),
		F("body_root", root),
	)
	signedBlockHeader := Container("SignedBeaconBlockHeader",
		F("message", blockHeader),
		F("signature", signature),
	)
	signingData := Container("SigningData",
		F("object_root", root),
		F("domain", root),
	)
	proposerSlashing := Container("ProposerSlashing",
		F("signed_header_1", signedBlockHeader),
		F("signed_header_2", signedBlockHeader),
	)
	attesterSlashing := Container("AttesterSlashing",
		F("attestation_1", indexedAttestation),
		F("attestation_2", indexedAttestation),
	)
	attestation := Container("Attestation",
		F("aggregation_bits", Bitlist(p.MaxValidatorsPerCommittee)),
		F("data", attestationData),
		F("signature", signature),
	)
	deposit := Container("Deposit",
		F("proof", Vector(depositContractTreeDepth+1, root)),
		F("data", depositData),
	)
	voluntaryExit := Container("VoluntaryExit",
		F("epoch", Uint64()),
		F("validator_index", Uint64()),
	)
	signedVoluntaryExit := Container("SignedVoluntaryExit",
		F("message", voluntaryExit),
		F("signature", signature),
	)
	body := Container("BeaconBlockBody",
		F("randao_reveal", signature),
		F("eth1_data", eth1Data),
		F("graffiti", root),
		F("proposer_slashings", List(p.MaxProposerSlashings, proposerSlashing)),
		F("attester_slashings", List(p.MaxAttesterSlashings, attesterSlashing)),
		F("attestations", List(p.MaxAttestations, attestation)),
		F("deposits", List(p.MaxDeposits, deposit)),
		F("voluntary_exits", List(p.MaxVoluntaryExits, signedVoluntaryExit)),
	)
	state := Container("BeaconState",
		F("genesis_time", Uint64()),
		F("genesis_validators_root", root),
		F("slot", Uint64()),
		F("fork", fork),
		F("latest_block_header", blockHeader),
		F("block_roots", Vector(p.SlotsPerHistoricalRoot, root)),
		F("state_roots", Vector(p.SlotsPerHistoricalRoot, root)),
		F("historical_roots", List(p.HistoricalRootsLimit, root)),
		F("eth1_data", eth1Data),
		F("eth1_data_votes", List(p.eth1DataVotesLimit(), eth1Data)),
		F("eth1_deposit_index", Uint64()),
		F("validators", List(p.ValidatorRegistryLimit, validator)),
		F("balances", List(p.ValidatorRegistryLimit, Uint64())),
		F("randao_mixes", Vector(p.EpochsPerHistoricalVector, root)),
		F("slashings", Vector(p.EpochsPerSlashingsVector, Uint64())),
		F("previous_epoch_attestations", List(p.MaxAttestations*p.SlotsPerEpoch, pendingAttestation)),
		F("current_epoch_attestations", List(p.MaxAttestations*p.SlotsPerEpoch, pendingAttestation)),
		F("justification_bits", Bitvector(justificationBitsLength)),
		F("previous_justified_checkpoint", checkpoint),
		F("current_justified_checkpoint", checkpoint),
		F("finalized_checkpoint", checkpoint),
	)
	aggregateAndProof := Container("AggregateAndProof",
		F("aggregator_index", Uint64()),
		F("aggregate", attestation),
		F("selection_proof", signature),
	)
	signedAggregateAndProof := Container("SignedAggregateAndProof",
		F("message", aggregateAndProof),
		F("signature", signature),
	)

	c := Catalog{
		"Fork":                    fork,
		"ForkData":                forkData,
		"Checkpoint":              checkpoint,
		"Validator":               validator,
		"AttestationData":         attestationData,
		"IndexedAttestation":      indexedAttestation,
		"PendingAttestation":      pendingAttestation,
		"Eth1Data":                eth1Data,
		"HistoricalBatch":         historicalBatch,
		"DepositMessage":          depositMessage,
		"DepositData":             depositData,
		"BeaconBlockHeader":       blockHeader,
		"SignedBeaconBlockHeader": signedBlockHeader,
		"SigningData":             signingData,
		"ProposerSlashing":        proposerSlashing,
		"AttesterSlashing":        attesterSlashing,
		"Attestation":             attestation,
		"Deposit":                 deposit,
		"VoluntaryExit":           voluntaryExit,
		"SignedVoluntaryExit":     signedVoluntaryExit,
		"BeaconBlockBody":         body,
		"BeaconState":             state,
		"AggregateAndProof":       aggregateAndProof,
		"SignedAggregateAndProof": signedAggregateAndProof,
	}
	c.rebuildBlocks()
	return c
}
