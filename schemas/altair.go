package schemas

// Merkle branch depths for the altair light client protocol.
const (
	currentSyncCommitteeBranchDepth = 5
	nextSyncCommitteeBranchDepth    = 5
	finalityBranchDepth             = 6
)

func applyAltair(c Catalog, p Preset) {
	root := Bytes(32)
	pubkey := Bytes(48)
	signature := Bytes(96)

	syncCommittee := Container("SyncCommittee",
		F("pubkeys", Vector(p.SyncCommitteeSize, pubkey)),
		F("aggregate_pubkey", pubkey),
	)
	syncAggregate := Container("SyncAggregate",
		F("sync_committee_bits", Bitvector(p.SyncCommitteeSize)),
		F("sync_committee_signature", signature),
	)
	syncCommitteeMessage := Container("SyncCommitteeMessage",
		F("slot", Uint64()),
		F("beacon_block_root", root),
		F("validator_index", Uint64()),
		F("signature", signature),
	)
	syncCommitteeContribution := Container("SyncCommitteeContribution",
		F("slot", Uint64()),
		F("beacon_block_root", root),
		F("subcommittee_index", Uint64()),
		F("aggregation_bits", Bitvector(p.SyncCommitteeSize/syncCommitteeSubnetCount)),
		F("signature", signature),
	)
	contributionAndProof := Container("ContributionAndProof",
		F("aggregator_index", Uint64()),
		F("contribution", syncCommitteeContribution),
		F("selection_proof", signature),
	)
	signedContributionAndProof := Container("SignedContributionAndProof",
		F("message", contributionAndProof),
		F("signature", signature),
	)
	selectionData := Container("SyncAggregatorSelectionData",
		F("slot", Uint64()),
		F("subcommittee_index", Uint64()),
	)

	c["SyncCommittee"] = syncCommittee
	c["SyncAggregate"] = syncAggregate
	c["SyncCommitteeMessage"] = syncCommitteeMessage
	c["SyncCommitteeContribution"] = syncCommitteeContribution
	c["ContributionAndProof"] = contributionAndProof
	c["SignedContributionAndProof"] = signedContributionAndProof
	c["SyncAggregatorSelectionData"] = selectionData

	body := c["BeaconBlockBody"]
	c["BeaconBlockBody"] = Container("BeaconBlockBody",
		append(append([]Field{}, body.Fields...), F("sync_aggregate", syncAggregate))...,
	)
	c.rebuildBlocks()

	fields := c["BeaconState"].Fields
	fields = insertFieldsAfter(fields, "slashings",
		F("previous_epoch_participation", ByteList(p.ValidatorRegistryLimit)),
		F("current_epoch_participation", ByteList(p.ValidatorRegistryLimit)),
	)
	fields = removeFields(fields, "previous_epoch_attestations", "current_epoch_attestations")
	fields = append(fields,
		F("inactivity_scores", List(p.ValidatorRegistryLimit, Uint64())),
		F("current_sync_committee", syncCommittee),
		F("next_sync_committee", syncCommittee),
	)
	c["BeaconState"] = Container("BeaconState", fields...)

	c.rebuildLightClient(lightClientDepths{
		currentSyncCommittee: currentSyncCommitteeBranchDepth,
		nextSyncCommittee:    nextSyncCommitteeBranchDepth,
		finality:             finalityBranchDepth,
	})
}

// lightClientDepths parameterizes the proof branch lengths, which deepen in
// electra when the state's tree grows.
type lightClientDepths struct {
	currentSyncCommittee uint64
	nextSyncCommittee    uint64
	finality             uint64
}

// rebuildLightClient rederives the sync-protocol containers from the current
// LightClientHeader (or the bare beacon header before capella wraps it).
func (c Catalog) rebuildLightClient(d lightClientDepths) {
	root := Bytes(32)

	header, ok := c["LightClientHeader"]
	if !ok {
		header = Container("LightClientHeader",
			F("beacon", c["BeaconBlockHeader"]),
		)
		c["LightClientHeader"] = header
	}
	syncCommittee := c["SyncCommittee"]
	syncAggregate := c["SyncAggregate"]

	c["LightClientBootstrap"] = Container("LightClientBootstrap",
		F("header", header),
		F("current_sync_committee", syncCommittee),
		F("current_sync_committee_branch", Vector(d.currentSyncCommittee, root)),
	)
	c["LightClientUpdate"] = Container("LightClientUpdate",
		F("attested_header", header),
		F("next_sync_committee", syncCommittee),
		F("next_sync_committee_branch", Vector(d.nextSyncCommittee, root)),
		F("finalized_header", header),
		F("finality_branch", Vector(d.finality, root)),
		F("sync_aggregate", syncAggregate),
		F("signature_slot", Uint64()),
	)
	c["LightClientFinalityUpdate"] = Container("LightClientFinalityUpdate",
		F("attested_header", header),
		F("finalized_header", header),
		F("finality_branch", Vector(d.finality, root)),
		F("sync_aggregate", syncAggregate),
		F("signature_slot", Uint64()),
	)
	c["LightClientOptimisticUpdate"] = Container("LightClientOptimisticUpdate",
		F("attested_header", header),
		F("sync_aggregate", syncAggregate),
		F("signature_slot", Uint64()),
	)
}
