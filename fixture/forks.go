package fixture

import (
	"github.com/BurntSushi/toml"
)

// DefaultForkConfigPath is where the fork activation descriptor lives
// relative to the working directory.
const DefaultForkConfigPath = "configs/forks.toml"

// ForkHistory maps each fork to its immediate predecessor. An empty history
// is valid: every predecessor lookup simply misses and callers fall back to
// the declared fork.
type ForkHistory struct {
	parent map[string]string
}

type forkConfig struct {
	Order []string `toml:"order"`
}

// LoadForkHistory reads the fork activation order from a TOML descriptor.
// Predecessor resolution is optional for most test categories, so any read
// or parse failure degrades to an empty history rather than an error.
func LoadForkHistory(path string) ForkHistory {
	var cfg forkConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return ForkHistory{}
	}
	return NewForkHistory(cfg.Order)
}

// NewForkHistory builds a history from fork names in activation order.
func NewForkHistory(order []string) ForkHistory {
	parent := make(map[string]string, len(order))
	for i := 1; i < len(order); i++ {
		parent[order[i]] = order[i-1]
	}
	return ForkHistory{parent: parent}
}

// PredecessorOf returns the fork activated immediately before the given one.
// The earliest fork, and any fork the descriptor does not know, has none.
func (h ForkHistory) PredecessorOf(fork string) (string, bool) {
	prev, ok := h.parent[fork]
	return prev, ok
}
