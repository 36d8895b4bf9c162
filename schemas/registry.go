package schemas

import (
	"errors"
	"fmt"
)

// Taxonomy for lookup failures. Both mean "fixture outside this tool's
// coverage", not a defect.
var (
	ErrUnknownFork = errors.New("schemas: unknown fork")
	ErrUnknownType = errors.New("schemas: unknown type")
)

// Catalog maps SSZ type names to their schemas for one (fork, preset) pair.
type Catalog map[string]*Schema

func (c Catalog) clone() Catalog {
	out := make(Catalog, len(c))
	for name, s := range c {
		out[name] = s
	}
	return out
}

// rebuildBlocks rederives BeaconBlock and SignedBeaconBlock from the current
// BeaconBlockBody. Every fork that touches the body calls this afterwards.
func (c Catalog) rebuildBlocks() {
	block := Container("BeaconBlock",
		F("slot", Uint64()),
		F("proposer_index", Uint64()),
		F("parent_root", Bytes(32)),
		F("state_root", Bytes(32)),
		F("body", c["BeaconBlockBody"]),
	)
	c["BeaconBlock"] = block
	c["SignedBeaconBlock"] = Container("SignedBeaconBlock",
		F("message", block),
		F("signature", Bytes(96)),
	)
}

// forkBuilders lists forks in activation order with the delta each applies
// on top of a clone of its predecessor's catalog.
var forkBuilders = []struct {
	fork  string
	apply func(Catalog, Preset)
}{
	{"phase0", nil},
	{"altair", applyAltair},
	{"bellatrix", applyBellatrix},
	{"capella", applyCapella},
	{"deneb", applyDeneb},
	{"electra", applyElectra},
}

type catalogKey struct {
	fork   string
	preset string
}

// Registry resolves (fork, preset, type name) to a concrete schema by exact
// key. All catalogs are populated at construction; lookups never build
// anything.
type Registry struct {
	catalogs  map[catalogKey]Catalog
	synthetic map[string]Catalog
}

// NewRegistry builds the catalogs for every shipped fork under both presets,
// plus the per-preset synthetic types that exist only in test fixtures.
func NewRegistry() *Registry {
	reg := &Registry{
		catalogs:  make(map[catalogKey]Catalog),
		synthetic: make(map[string]Catalog),
	}
	for _, p := range []Preset{Mainnet(), Minimal()} {
		cur := phase0Catalog(p)
		for _, b := range forkBuilders {
			if b.apply != nil {
				cur = cur.clone()
				b.apply(cur, p)
			}
			reg.catalogs[catalogKey{fork: b.fork, preset: p.Name}] = cur
		}
		reg.synthetic[p.Name] = syntheticCatalog(p)
	}
	return reg
}

// Lookup returns the schema for typeName under the given fork and preset.
// Synthetic test-only types are consulted after the fork catalog misses.
func (r *Registry) Lookup(fork, preset, typeName string) (*Schema, error) {
	c, ok := r.catalogs[catalogKey{fork: fork, preset: preset}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownFork, fork, preset)
	}
	if s, ok := c[typeName]; ok {
		return s, nil
	}
	if s, ok := r.synthetic[preset][typeName]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s in %s/%s", ErrUnknownType, typeName, fork, preset)
}

// Forks returns the fork names the registry has catalogs for, in activation
// order.
func (r *Registry) Forks() []string {
	out := make([]string, len(forkBuilders))
	for i, b := range forkBuilders {
		out[i] = b.fork
	}
	return out
}

// syntheticCatalog holds types the rewards suites serialize that no fork's
// schema set defines. Deltas is a pair of parallel per-validator lists.
func syntheticCatalog(p Preset) Catalog {
	return Catalog{
		"Deltas": Container("Deltas",
			F("rewards", List(p.ValidatorRegistryLimit, Uint64())),
			F("penalties", List(p.ValidatorRegistryLimit, Uint64())),
		),
	}
}
