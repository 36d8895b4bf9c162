package schemas

const executionBranchDepth = 4

func applyCapella(c Catalog, p Preset) {
	root := Bytes(32)
	pubkey := Bytes(48)
	address := Bytes(20)
	signature := Bytes(96)

	withdrawal := Container("Withdrawal",
		F("index", Uint64()),
		F("validator_index", Uint64()),
		F("address", address),
		F("amount", Uint64()),
	)
	blsChange := Container("BLSToExecutionChange",
		F("validator_index", Uint64()),
		F("from_bls_pubkey", pubkey),
		F("to_execution_address", address),
	)
	signedBLSChange := Container("SignedBLSToExecutionChange",
		F("message", blsChange),
		F("signature", signature),
	)
	historicalSummary := Container("HistoricalSummary",
		F("block_summary_root", root),
		F("state_summary_root", root),
	)

	c["Withdrawal"] = withdrawal
	c["BLSToExecutionChange"] = blsChange
	c["SignedBLSToExecutionChange"] = signedBLSChange
	c["HistoricalSummary"] = historicalSummary

	payload := Container("ExecutionPayload",
		append(append([]Field{}, c["ExecutionPayload"].Fields...),
			F("withdrawals", List(p.MaxWithdrawalsPerPayload, withdrawal)),
		)...,
	)
	payloadHeader := Container("ExecutionPayloadHeader",
		append(append([]Field{}, c["ExecutionPayloadHeader"].Fields...),
			F("withdrawals_root", root),
		)...,
	)
	c["ExecutionPayload"] = payload
	c["ExecutionPayloadHeader"] = payloadHeader

	body := c["BeaconBlockBody"]
	fields := replaceField(body.Fields, "execution_payload", payload)
	fields = append(fields, F("bls_to_execution_changes", List(p.MaxBlsToExecutionChanges, signedBLSChange)))
	c["BeaconBlockBody"] = Container("BeaconBlockBody", fields...)
	c.rebuildBlocks()

	stateFields := replaceField(c["BeaconState"].Fields, "latest_execution_payload_header", payloadHeader)
	stateFields = append(stateFields,
		F("next_withdrawal_index", Uint64()),
		F("next_withdrawal_validator_index", Uint64()),
		F("historical_summaries", List(p.HistoricalRootsLimit, historicalSummary)),
	)
	c["BeaconState"] = Container("BeaconState", stateFields...)

	// The light client header gains an execution summary from capella on.
	c["LightClientHeader"] = Container("LightClientHeader",
		F("beacon", c["BeaconBlockHeader"]),
		F("execution", payloadHeader),
		F("execution_branch", Vector(executionBranchDepth, root)),
	)
	c.rebuildLightClient(lightClientDepths{
		currentSyncCommittee: currentSyncCommitteeBranchDepth,
		nextSyncCommittee:    nextSyncCommitteeBranchDepth,
		finality:             finalityBranchDepth,
	})
}
