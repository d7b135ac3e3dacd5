package chains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validNetwork(name string, chainID int) Network {
	return Network{
		Name:    name,
		RPCURL:  "https://rpc.example.com/",
		ChainID: chainID,
		Explorer: Explorer{
			APIURL:     "https://explorer.example.com/api",
			BrowserURL: "https://explorer.example.com",
		},
	}
}

func TestSeiRegistry(t *testing.T) {
	r := SeiRegistry()

	assert.Equal(t, []string{SeiArctic1, SeiAtlantic2, SeiPacific1}, r.Names())
	assert.Equal(t, 3, r.Len())

	tests := []struct {
		name       string
		rpcURL     string
		chainID    int
		apiURL     string
		browserURL string
	}{
		{SeiArctic1, "https://evm-rpc-arctic-1.sei-apis.com/", 713715, "https://seitrace.com/arctic-1/api", "https://seitrace.com"},
		{SeiAtlantic2, "https://evm-rpc-testnet.sei-apis.com/", 1328, "https://seitrace.com/atlantic-2/api", "https://seitrace.com"},
		{SeiPacific1, "https://evm-rpc.sei-apis.com/", 1329, "https://seitrace.com/pacific-1/api", "https://seitrace.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := r.Get(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.rpcURL, n.RPCURL)
			assert.Equal(t, tt.chainID, n.ChainID)
			assert.Equal(t, tt.apiURL, n.Explorer.APIURL)
			assert.Equal(t, tt.browserURL, n.Explorer.BrowserURL)
		})
	}
}

func TestRegistryRegister(t *testing.T) {
	t.Run("duplicate name", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(validNetwork("local", 31337)))
		err := r.Register(validNetwork("local", 31338))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("duplicate chain ID", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(validNetwork("local", 31337)))
		err := r.Register(validNetwork("other", 31337))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already used by local")
	})

	t.Run("invalid network rejected", func(t *testing.T) {
		r := NewRegistry()
		n := validNetwork("local", 31337)
		n.RPCURL = "http://localhost:8545"
		assert.Error(t, r.Register(n))
		assert.Equal(t, 0, r.Len())
	})

	t.Run("zero chain ID rejected", func(t *testing.T) {
		r := NewRegistry()
		assert.Error(t, r.Register(validNetwork("local", 0)))
	})
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(validNetwork("zeta", 3)))
	require.NoError(t, r.Register(validNetwork("alpha", 1)))

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "zeta", list[0].Name)
	assert.Equal(t, "alpha", list[1].Name)

	_, ok := r.Get("missing")
	assert.False(t, ok)
}

func TestRegistryNamesIsCopy(t *testing.T) {
	r := SeiRegistry()
	names := r.Names()
	names[0] = "mutated"
	assert.Equal(t, SeiArctic1, r.Names()[0])
}
