package schemas

// Electra deepens the state tree, so the light client branches grow.
const (
	currentSyncCommitteeBranchDepthElectra = 6
	nextSyncCommitteeBranchDepthElectra    = 6
	finalityBranchDepthElectra             = 7
)

func applyElectra(c Catalog, p Preset) {
	root := Bytes(32)
	pubkey := Bytes(48)
	address := Bytes(20)
	signature := Bytes(96)

	// Attestations aggregate across all committees of a slot from electra on.
	maxAggregationBits := p.MaxValidatorsPerCommittee * p.MaxCommitteesPerSlot

	attestationData := c["AttestationData"]
	attestation := Container("Attestation",
		F("aggregation_bits", Bitlist(maxAggregationBits)),
		F("data", attestationData),
		F("signature", signature),
		F("committee_bits", Bitvector(p.MaxCommitteesPerSlot)),
	)
	indexedAttestation := Container("IndexedAttestation",
		F("attesting_indices", List(maxAggregationBits, Uint64())),
		F("data", attestationData),
		F("signature", signature),
	)
	attesterSlashing := Container("AttesterSlashing",
		F("attestation_1", indexedAttestation),
		F("attestation_2", indexedAttestation),
	)
	singleAttestation := Container("SingleAttestation",
		F("committee_index", Uint64()),
		F("attester_index", Uint64()),
		F("data", attestationData),
		F("signature", signature),
	)
	aggregateAndProof := Container("AggregateAndProof",
		F("aggregator_index", Uint64()),
		F("aggregate", attestation),
		F("selection_proof", signature),
	)

	c["Attestation"] = attestation
	c["IndexedAttestation"] = indexedAttestation
	c["AttesterSlashing"] = attesterSlashing
	c["SingleAttestation"] = singleAttestation
	c["AggregateAndProof"] = aggregateAndProof
	c["SignedAggregateAndProof"] = Container("SignedAggregateAndProof",
		F("message", aggregateAndProof),
		F("signature", signature),
	)

	depositRequest := Container("DepositRequest",
		F("pubkey", pubkey),
		F("withdrawal_credentials", root),
		F("amount", Uint64()),
		F("signature", signature),
		F("index", Uint64()),
	)
	withdrawalRequest := Container("WithdrawalRequest",
		F("source_address", address),
		F("validator_pubkey", pubkey),
		F("amount", Uint64()),
	)
	consolidationRequest := Container("ConsolidationRequest",
		F("source_address", address),
		F("source_pubkey", pubkey),
		F("target_pubkey", pubkey),
	)
	executionRequests := Container("ExecutionRequests",
		F("deposits", List(p.MaxDepositRequestsPerPayload, depositRequest)),
		F("withdrawals", List(p.MaxWithdrawalRequestsPerPayload, withdrawalRequest)),
		F("consolidations", List(p.MaxConsolidationRequestsPerPayload, consolidationRequest)),
	)
	pendingDeposit := Container("PendingDeposit",
		F("pubkey", pubkey),
		F("withdrawal_credentials", root),
		F("amount", Uint64()),
		F("signature", signature),
		F("slot", Uint64()),
	)
	pendingPartialWithdrawal := Container("PendingPartialWithdrawal",
		F("validator_index", Uint64()),
		F("amount", Uint64()),
		F("withdrawable_epoch", Uint64()),
	)
	pendingConsolidation := Container("PendingConsolidation",
		F("source_index", Uint64()),
		F("target_index", Uint64()),
	)

	c["DepositRequest"] = depositRequest
	c["WithdrawalRequest"] = withdrawalRequest
	c["ConsolidationRequest"] = consolidationRequest
	c["ExecutionRequests"] = executionRequests
	c["PendingDeposit"] = pendingDeposit
	c["PendingPartialWithdrawal"] = pendingPartialWithdrawal
	c["PendingConsolidation"] = pendingConsolidation

	bodyFields := replaceField(c["BeaconBlockBody"].Fields, "attester_slashings",
		List(p.MaxAttesterSlashingsElectra, attesterSlashing))
	bodyFields = replaceField(bodyFields, "attestations",
		List(p.MaxAttestationsElectra, attestation))
	bodyFields = append(bodyFields, F("execution_requests", executionRequests))
	c["BeaconBlockBody"] = Container("BeaconBlockBody", bodyFields...)
	c.rebuildBlocks()

	stateFields := append(append([]Field{}, c["BeaconState"].Fields...),
		F("deposit_requests_start_index", Uint64()),
		F("deposit_balance_to_consume", Uint64()),
		F("exit_balance_to_consume", Uint64()),
		F("earliest_exit_epoch", Uint64()),
		F("consolidation_balance_to_consume", Uint64()),
		F("earliest_consolidation_epoch", Uint64()),
		F("pending_deposits", List(p.PendingDepositsLimit, pendingDeposit)),
		F("pending_partial_withdrawals", List(p.PendingPartialWithdrawalsLimit, pendingPartialWithdrawal)),
		F("pending_consolidations", List(p.PendingConsolidationsLimit, pendingConsolidation)),
	)
	c["BeaconState"] = Container("BeaconState", stateFields...)

	c.rebuildLightClient(lightClientDepths{
		currentSyncCommittee: currentSyncCommitteeBranchDepthElectra,
		nextSyncCommittee:    nextSyncCommitteeBranchDepthElectra,
		finality:             finalityBranchDepthElectra,
	})
}
