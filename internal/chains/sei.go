package chains

// Sei EVM network names
const (
	SeiArctic1   = "sei_arctic_1"
	SeiAtlantic2 = "sei_atlantic_2"
	SeiPacific1  = "sei_pacific_1"
)

const seitraceBrowserURL = "https://seitrace.com"

var seiNetworks = []Network{
	{
		Name:        SeiArctic1,
		DisplayName: "Sei Arctic-1 (devnet)",
		RPCURL:      "https://evm-rpc-arctic-1.sei-apis.com/",
		ChainID:     713715,
		Explorer: Explorer{
			APIURL:     "https://seitrace.com/arctic-1/api",
			BrowserURL: seitraceBrowserURL,
		},
	},
	{
		Name:        SeiAtlantic2,
		DisplayName: "Sei Atlantic-2 (testnet)",
		RPCURL:      "https://evm-rpc-testnet.sei-apis.com/",
		ChainID:     1328,
		Explorer: Explorer{
			APIURL:     "https://seitrace.com/atlantic-2/api",
			BrowserURL: seitraceBrowserURL,
		},
	},
	{
		Name:        SeiPacific1,
		DisplayName: "Sei Pacific-1 (mainnet)",
		RPCURL:      "https://evm-rpc.sei-apis.com/",
		ChainID:     1329,
		Explorer: Explorer{
			APIURL:     "https://seitrace.com/pacific-1/api",
			BrowserURL: seitraceBrowserURL,
		},
	},
}

// SeiRegistry returns a registry holding the Sei arctic, atlantic and pacific
// networks, in that order.
func SeiRegistry() *Registry {
	r := NewRegistry()
	for _, n := range seiNetworks {
		if err := r.Register(n); err != nil {
			panic("chains: invalid built-in network: " + err.Error())
		}
	}
	return r
}
