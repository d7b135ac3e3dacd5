package assembler

import (
	"github.com/pendergraft/seiconf/internal/hardhat"
)

// UserConfig converts the assembled value into the build tool's shape
func (c *AssembledConfig) UserConfig() *hardhat.UserConfig {
	out := &hardhat.UserConfig{
		Solidity: hardhat.SolidityConfig{
			Compilers: []hardhat.SolcConfig{{
				Version: c.Compiler.Version,
				Settings: hardhat.SolcSettings{
					Optimizer: hardhat.Optimizer{
						Enabled: c.Compiler.Optimizer.Enabled,
						Runs:    c.Compiler.Optimizer.Runs,
					},
				},
			}},
		},
	}

	if c.HasNetworks() {
		out.Networks = make(map[string]hardhat.NetworkConfig, len(c.Networks))
		for _, n := range c.Networks {
			out.Networks[n.Name] = hardhat.NetworkConfig{
				URL:      n.RPCURL,
				ChainID:  n.ChainID,
				Accounts: []string{string(n.SigningCredential)},
				Gas:      n.Gas.hardhatValue(),
				GasPrice: n.GasPrice.hardhatValue(),
			}
		}
	}

	if c.HasVerification() {
		es := &hardhat.EtherscanConfig{
			APIKey:       make(map[string]string, len(c.Verification)),
			CustomChains: make([]hardhat.CustomChain, 0, len(c.Verification)),
		}
		for _, v := range c.Verification {
			es.APIKey[v.NetworkName] = string(v.APIKey)
			es.CustomChains = append(es.CustomChains, hardhat.CustomChain{
				Network: v.NetworkName,
				ChainID: v.ChainID,
				URLs: hardhat.ChainURLs{
					APIURL:     v.APIURL,
					BrowserURL: v.ExplorerURL,
				},
			})
		}
		out.Etherscan = es
	}

	return out
}

func (g GasSetting) hardhatValue() any {
	if g.Mode == GasModeFixed {
		return g.Value
	}
	return hardhat.GasAuto
}
