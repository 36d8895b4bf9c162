package schemas

func applyBellatrix(c Catalog, p Preset) {
	root := Bytes(32)
	address := Bytes(20)

	// Shared fixed prefix of the payload and its header; they diverge only
	// in how the variable tail fields are represented.
	payloadPrefix := []Field{
		F("parent_hash", root),
		F("fee_recipient", address),
		F("state_root", root),
		F("receipts_root", root),
		F("logs_bloom", Bytes(bytesPerLogsBloom)),
		F("prev_randao", root),
		F("block_number", Uint64()),
		F("gas_limit", Uint64()),
		F("gas_used", Uint64()),
		F("timestamp", Uint64()),
		F("extra_data", ByteList(maxExtraDataBytes)),
		F("base_fee_per_gas", Uint256()),
		F("block_hash", root),
	}

	payload := Container("ExecutionPayload",
		append(append([]Field{}, payloadPrefix...),
			F("transactions", List(maxTransactionsPerPayload, ByteList(maxBytesPerTransaction))),
		)...,
	)
	payloadHeader := Container("ExecutionPayloadHeader",
		append(append([]Field{}, payloadPrefix...),
			F("transactions_root", root),
		)...,
	)
	powBlock := Container("PowBlock",
		F("block_hash", root),
		F("parent_hash", root),
		F("total_difficulty", Uint256()),
	)

	c["ExecutionPayload"] = payload
	c["ExecutionPayloadHeader"] = payloadHeader
	c["PowBlock"] = powBlock

	body := c["BeaconBlockBody"]
	c["BeaconBlockBody"] = Container("BeaconBlockBody",
		append(append([]Field{}, body.Fields...), F("execution_payload", payload))...,
	)
	c.rebuildBlocks()

	state := c["BeaconState"]
	c["BeaconState"] = Container("BeaconState",
		append(append([]Field{}, state.Fields...), F("latest_execution_payload_header", payloadHeader))...,
	)
}
