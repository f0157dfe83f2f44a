// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package networks

import (
	"fmt"
	"strconv"

	"github.com/tidwall/btree"
)

// Network is a named entry of the registry.
type Network struct {
	Name    string
	ChainID uint64

	// ListValued marks the test networks whose name side historically held
	// the chain id wrapped in a single-element list. Lookups treat it as a
	// plain id, the flag only records the quirk.
	ListValued bool
}

// Chain is a chain id known to the system, with or without a network name.
type Chain struct {
	Label string
	ID    uint64
}

// Registry is an immutable bidirectional mapping between network names and
// chain ids. The zero value is empty; use New or Default.
type Registry struct {
	byName map[string]Network
	byID   btree.Map[uint64, Network]
	chains btree.Map[uint64, string]
}

// New builds a registry. Every network's chain id is also added to the set of
// known chains.
func New(nets []Network, chains []Chain) (*Registry, error) {
	r := &Registry{byName: make(map[string]Network, len(nets))}
	for _, n := range nets {
		if _, ok := r.byName[n.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, n.Name)
		}
		if _, ok := r.byID.Get(n.ChainID); ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateChainID, n.ChainID)
		}
		r.byName[n.Name] = n
		r.byID.Set(n.ChainID, n)
		r.chains.Set(n.ChainID, n.Name)
	}
	for _, c := range chains {
		if _, ok := r.chains.Get(c.ID); ok {
			continue
		}
		r.chains.Set(c.ID, c.Label)
	}
	return r, nil
}

// ChainID returns the chain id registered for name.
func (r *Registry) ChainID(name string) (uint64, bool) {
	n, ok := r.byName[name]
	return n.ChainID, ok
}

// Name returns the canonical network name for chainID.
func (r *Registry) Name(chainID uint64) (string, bool) {
	n, ok := r.byID.Get(chainID)
	return n.Name, ok
}

// Lookup returns the full entry for name.
func (r *Registry) Lookup(name string) (Network, error) {
	n, ok := r.byName[name]
	if !ok {
		return Network{}, fmt.Errorf("%w `%s`", ErrUnknownNetwork, name)
	}
	return n, nil
}

// Has reports whether name is a key of the name table.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Resolve maps a numeric chain id to its canonical name. Anything else,
// including ids without a name, is returned verbatim.
func (r *Registry) Resolve(input string) string {
	id, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		return input
	}
	if name, ok := r.Name(id); ok {
		return name
	}
	return input
}

// Networks returns the named networks in chain id order.
func (r *Registry) Networks() []Network {
	out := make([]Network, 0, r.byID.Len())
	r.byID.Scan(func(_ uint64, n Network) bool {
		out = append(out, n)
		return true
	})
	return out
}

// KnownChainIDs returns every chain id known to the registry in ascending
// order, named or not.
func (r *Registry) KnownChainIDs() []uint64 {
	out := make([]uint64, 0, r.chains.Len())
	r.chains.Scan(func(id uint64, _ string) bool {
		out = append(out, id)
		return true
	})
	return out
}

// Label returns the upstream label of a known chain id.
func (r *Registry) Label(chainID uint64) (string, bool) {
	return r.chains.Get(chainID)
}

// Asymmetric returns the names whose entries are list valued.
func (r *Registry) Asymmetric() []string {
	var out []string
	for _, n := range r.Networks() {
		if n.ListValued {
			out = append(out, n.Name)
		}
	}
	return out
}
