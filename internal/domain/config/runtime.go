package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and adapters and contains all resolved settings
type RuntimeConfig struct {
	// ProjectRoot is the Foundry project the command runs in, empty outside of one
	ProjectRoot string

	// Network settings
	Network  *Network
	Explorer *Explorer

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Resolved foundry.toml, nil outside of a Foundry project
	FoundryConfig *FoundryConfig
}

// Network represents the chain the provider talks to
type Network struct {
	// Name is the foundry.toml rpc_endpoints key, empty when an URL was given directly
	Name    string `json:"name,omitempty"`
	RPCURL  string `json:"rpcUrl"`
	ChainID uint64 `json:"chainId,omitempty"` // 0 means ask the node
}

// Explorer represents an Etherscan compatible API endpoint
type Explorer struct {
	APIURL string `json:"apiUrl"`
	APIKey string `json:"-"`
}
