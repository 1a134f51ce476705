package config

// FoundryConfig represents the parts of foundry.toml used to resolve networks
type FoundryConfig struct {
	RpcEndpoints map[string]string          `toml:"rpc_endpoints"`
	Etherscan    map[string]EtherscanConfig `toml:"etherscan,omitempty"`
}

// EtherscanConfig represents Etherscan configuration for a network
// This matches Foundry's expected structure
type EtherscanConfig struct {
	Key   string `toml:"key,omitempty"`
	URL   string `toml:"url,omitempty"`
	Chain any    `toml:"chain,omitempty"` // chain id or name
}
