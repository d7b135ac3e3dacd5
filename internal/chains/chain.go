// Package chains provides the catalogue of EVM networks that seiconf can
// emit connection and explorer settings for.
package chains

import (
	"fmt"

	"github.com/pendergraft/seiconf/internal/validation"
)

// Network describes one EVM network and its block explorer
type Network struct {
	Name        string // "sei_pacific_1"
	DisplayName string // "Sei Pacific-1 (mainnet)"
	RPCURL      string
	ChainID     int
	Explorer    Explorer
}

// Explorer holds the verification API and browser endpoints of a block explorer
type Explorer struct {
	APIURL     string
	BrowserURL string
}

// Validate checks the network's fields
func (n Network) Validate() error {
	if err := validation.ValidateNetworkName(n.Name); err != nil {
		return err
	}
	if err := validation.ValidateChainID(n.ChainID); err != nil {
		return fmt.Errorf("%s: %w", n.Name, err)
	}
	if err := validation.ValidateEndpointURL(n.RPCURL); err != nil {
		return fmt.Errorf("%s rpc: %w", n.Name, err)
	}
	if err := validation.ValidateEndpointURL(n.Explorer.APIURL); err != nil {
		return fmt.Errorf("%s explorer api: %w", n.Name, err)
	}
	if err := validation.ValidateEndpointURL(n.Explorer.BrowserURL); err != nil {
		return fmt.Errorf("%s explorer browser: %w", n.Name, err)
	}
	return nil
}

// Registry holds networks keyed by name, in registration order
type Registry struct {
	order    []string
	networks map[string]Network
	chainIDs map[int]string
}

// NewRegistry creates an empty network registry
func NewRegistry() *Registry {
	return &Registry{
		networks: make(map[string]Network),
		chainIDs: make(map[int]string),
	}
}

// Register adds a network to the registry.
// Names and chain IDs must both be unique.
func (r *Registry) Register(n Network) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if _, ok := r.networks[n.Name]; ok {
		return fmt.Errorf("network %s already registered", n.Name)
	}
	if other, ok := r.chainIDs[n.ChainID]; ok {
		return fmt.Errorf("chain ID %d of %s already used by %s", n.ChainID, n.Name, other)
	}
	r.order = append(r.order, n.Name)
	r.networks[n.Name] = n
	r.chainIDs[n.ChainID] = n.Name
	return nil
}

// Get retrieves a network by name
func (r *Registry) Get(name string) (Network, bool) {
	n, ok := r.networks[name]
	return n, ok
}

// List returns all registered networks in registration order
func (r *Registry) List() []Network {
	networks := make([]Network, 0, len(r.order))
	for _, name := range r.order {
		networks = append(networks, r.networks[name])
	}
	return networks
}

// Names returns the registered network names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered networks
func (r *Registry) Len() int {
	return len(r.order)
}
