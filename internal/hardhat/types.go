// Package hardhat defines the configuration shape consumed by the Hardhat
// build tool and its verification plugin.
package hardhat

// GasAuto lets the node estimate gas and gas price
const GasAuto = "auto"

// UserConfig is the root configuration object.
// Networks and Etherscan are omitted entirely when nil.
type UserConfig struct {
	Solidity  SolidityConfig           `json:"solidity" yaml:"solidity" toml:"solidity"`
	Networks  map[string]NetworkConfig `json:"networks,omitempty" yaml:"networks,omitempty" toml:"networks,omitempty"`
	Etherscan *EtherscanConfig         `json:"etherscan,omitempty" yaml:"etherscan,omitempty" toml:"etherscan,omitempty"`
}

// SolidityConfig lists the compilers used for contract sources
type SolidityConfig struct {
	Compilers []SolcConfig `json:"compilers" yaml:"compilers" toml:"compilers"`
}

// SolcConfig describes one solc compiler
type SolcConfig struct {
	Version  string       `json:"version" yaml:"version" toml:"version"`
	Settings SolcSettings `json:"settings" yaml:"settings" toml:"settings"`
}

// SolcSettings holds compiler settings
type SolcSettings struct {
	Optimizer Optimizer `json:"optimizer" yaml:"optimizer" toml:"optimizer"`
}

// Optimizer holds optimizer settings
type Optimizer struct {
	Enabled bool `json:"enabled" yaml:"enabled" toml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs" toml:"runs"`
}

// NetworkConfig is an HTTP network entry.
// Gas and GasPrice hold either GasAuto or a fixed number.
type NetworkConfig struct {
	URL      string   `json:"url" yaml:"url" toml:"url"`
	ChainID  int      `json:"chainId" yaml:"chainId" toml:"chainId"`
	Accounts []string `json:"accounts" yaml:"accounts" toml:"accounts"`
	Gas      any      `json:"gas" yaml:"gas" toml:"gas"`
	GasPrice any      `json:"gasPrice" yaml:"gasPrice" toml:"gasPrice"`
}

// EtherscanConfig configures contract verification against block explorers
type EtherscanConfig struct {
	APIKey       map[string]string `json:"apiKey" yaml:"apiKey" toml:"apiKey"`
	CustomChains []CustomChain     `json:"customChains" yaml:"customChains" toml:"customChains"`
}

// CustomChain registers an explorer for a chain the plugin does not know
type CustomChain struct {
	Network string    `json:"network" yaml:"network" toml:"network"`
	ChainID int       `json:"chainId" yaml:"chainId" toml:"chainId"`
	URLs    ChainURLs `json:"urls" yaml:"urls" toml:"urls"`
}

// ChainURLs holds the explorer endpoints of a custom chain
type ChainURLs struct {
	APIURL     string `json:"apiURL" yaml:"apiURL" toml:"apiURL"`
	BrowserURL string `json:"browserURL" yaml:"browserURL" toml:"browserURL"`
}
