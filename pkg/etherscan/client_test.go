package etherscan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, body string, check func(url.Values)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r.URL.Query())
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_GetContractCreation(t *testing.T) {
	address := common.HexToAddress("0x6b175474e89094c44da98b954eedeac495271d0f")

	t.Run("returns creation records", func(t *testing.T) {
		srv := newTestServer(t, `{"status":"1","message":"OK","result":[{
			"contractAddress":"0x6b175474e89094c44da98b954eedeac495271d0f",
			"contractCreator":"0xb5b06a16621616875a6c2637948bf98ea57c58fa",
			"txHash":"0xb95343413e459a0f97461812111254163ae53467855c0d73e0f1e7c5b8442fa3"}]}`,
			func(q url.Values) {
				assert.Equal(t, "contract", q.Get("module"))
				assert.Equal(t, "getcontractcreation", q.Get("action"))
				assert.Equal(t, address.Hex(), q.Get("contractaddresses"))
				assert.Equal(t, "1", q.Get("chainid"))
				assert.Equal(t, "secret", q.Get("apikey"))
			})

		creations, err := NewClient(srv.URL, "secret").GetContractCreation(context.Background(), 1, address)

		require.NoError(t, err)
		require.Len(t, creations, 1)
		assert.Equal(t, address, creations[0].ContractAddress)
		assert.Equal(t, common.HexToAddress("0xb5b06a16621616875a6c2637948bf98ea57c58fa"), creations[0].ContractCreator)
		assert.Equal(t, common.HexToHash("0xb95343413e459a0f97461812111254163ae53467855c0d73e0f1e7c5b8442fa3"), creations[0].TxHash)
	})

	t.Run("no data is an empty result", func(t *testing.T) {
		srv := newTestServer(t, `{"status":"0","message":"No data found","result":[]}`, nil)

		creations, err := NewClient(srv.URL, "").GetContractCreation(context.Background(), 1, address)

		require.NoError(t, err)
		assert.Empty(t, creations)
	})

	t.Run("api errors carry the result message", func(t *testing.T) {
		srv := newTestServer(t, `{"status":"0","message":"NOTOK","result":"Invalid API Key"}`, nil)

		_, err := NewClient(srv.URL, "bad").GetContractCreation(context.Background(), 1, address)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid API Key")
	})

	t.Run("http errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, "").GetContractCreation(context.Background(), 1, address)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("chain id is omitted when unknown", func(t *testing.T) {
		srv := newTestServer(t, `{"status":"0","message":"No data found","result":[]}`, func(q url.Values) {
			assert.False(t, q.Has("chainid"))
			assert.False(t, q.Has("apikey"))
		})

		_, err := NewClient(srv.URL, "").GetContractCreation(context.Background(), 0, address)
		require.NoError(t, err)
	})
}

func TestClient_GetSourceCode(t *testing.T) {
	address := common.HexToAddress("0x6b175474e89094c44da98b954eedeac495271d0f")
	srv := newTestServer(t, `{"status":"1","message":"OK","result":[
		{"SourceCode":"contract A {}","ABI":"[]","ContractName":"A"},
		{"SourceCode":"","ABI":"Contract source code not verified","ContractName":""}]}`,
		func(q url.Values) {
			assert.Equal(t, "getsourcecode", q.Get("action"))
			assert.Equal(t, address.Hex(), q.Get("address"))
		})

	sources, err := NewClient(srv.URL, "").GetSourceCode(context.Background(), 10, address)

	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "A", sources[0].ContractName)
	assert.True(t, sources[0].IsVerified())
	assert.False(t, sources[1].IsVerified())
}

func TestNewClient_DefaultURL(t *testing.T) {
	assert.Equal(t, DefaultAPIURL, NewClient("", "").APIURL())
}
