package schemas

func applyDeneb(c Catalog, p Preset) {
	root := Bytes(32)
	kzgCommitment := Bytes(48)
	kzgProof := Bytes(48)

	payloadFields := append(append([]Field{}, c["ExecutionPayload"].Fields...),
		F("blob_gas_used", Uint64()),
		F("excess_blob_gas", Uint64()),
	)
	payload := Container("ExecutionPayload", payloadFields...)
	headerFields := append(append([]Field{}, c["ExecutionPayloadHeader"].Fields...),
		F("blob_gas_used", Uint64()),
		F("excess_blob_gas", Uint64()),
	)
	payloadHeader := Container("ExecutionPayloadHeader", headerFields...)
	c["ExecutionPayload"] = payload
	c["ExecutionPayloadHeader"] = payloadHeader

	bodyFields := replaceField(c["BeaconBlockBody"].Fields, "execution_payload", payload)
	bodyFields = append(bodyFields,
		F("blob_kzg_commitments", List(p.MaxBlobCommitmentsPerBlock, kzgCommitment)),
	)
	c["BeaconBlockBody"] = Container("BeaconBlockBody", bodyFields...)
	c.rebuildBlocks()

	c["BeaconState"] = Container("BeaconState",
		replaceField(c["BeaconState"].Fields, "latest_execution_payload_header", payloadHeader)...,
	)

	c["BlobIdentifier"] = Container("BlobIdentifier",
		F("block_root", root),
		F("index", Uint64()),
	)
	c["BlobSidecar"] = Container("BlobSidecar",
		F("index", Uint64()),
		F("blob", Bytes(p.FieldElementsPerBlob*32)),
		F("kzg_commitment", kzgCommitment),
		F("kzg_proof", kzgProof),
		F("signed_block_header", c["SignedBeaconBlockHeader"]),
		F("kzg_commitment_inclusion_proof", Vector(p.kzgInclusionProofDepth(), root)),
	)

	// The capella light client header carries the deneb payload header now.
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
