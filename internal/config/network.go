package config

import (
	"fmt"
	"strings"

	"github.com/trebuchet-org/creation-code/internal/domain/config"
)

// DefaultRPCURL is used when neither a flag, a network nor ETH_RPC_URL is given
const DefaultRPCURL = "http://localhost:8545"

// NetworkResolver resolves network names and RPC aliases against foundry.toml
type NetworkResolver struct {
	foundryConfig *config.FoundryConfig
}

// NewNetworkResolver creates a new network resolver. foundryConfig may be nil
// outside of a Foundry project.
func NewNetworkResolver(foundryConfig *config.FoundryConfig) *NetworkResolver {
	return &NetworkResolver{foundryConfig: foundryConfig}
}

// NetworkOptions are the raw connection settings from flags and environment
type NetworkOptions struct {
	RPCURL      string
	Network     string
	Chain       string
	ExplorerURL string
	APIKey      string
}

// Resolve turns connection options into a network and an explorer configuration.
// Explicit options win over foundry.toml entries of the selected network.
func (r *NetworkResolver) Resolve(opts NetworkOptions) (*config.Network, *config.Explorer, error) {
	network := &config.Network{Name: opts.Network, RPCURL: opts.RPCURL}

	// An --rpc-url without a scheme is an alias into [rpc_endpoints], as in forge/cast
	if network.RPCURL != "" && !strings.Contains(network.RPCURL, "://") {
		if endpoint, ok := r.rpcEndpoint(network.RPCURL); ok {
			if network.Name == "" {
				network.Name = network.RPCURL
			}
			network.RPCURL = endpoint
		}
	}

	if network.RPCURL == "" && network.Name != "" {
		endpoint, ok := r.rpcEndpoint(network.Name)
		if !ok {
			return nil, nil, fmt.Errorf("network '%s' not found in foundry.toml [rpc_endpoints]", network.Name)
		}
		network.RPCURL = endpoint
	}
	if network.RPCURL == "" {
		network.RPCURL = DefaultRPCURL
	}

	etherscan := r.etherscanConfig(network.Name)

	chainID, err := ParseChain(opts.Chain)
	if err != nil {
		return nil, nil, err
	}
	if chainID == 0 {
		chainID, err = chainFromTOML(etherscan.Chain)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid chain for [etherscan.%s]: %w", network.Name, err)
		}
	}
	network.ChainID = chainID

	explorer := &config.Explorer{
		APIURL: firstNonEmpty(opts.ExplorerURL, etherscan.URL),
		APIKey: firstNonEmpty(opts.APIKey, etherscan.Key),
	}

	return network, explorer, nil
}

func (r *NetworkResolver) rpcEndpoint(name string) (string, bool) {
	if r.foundryConfig == nil || name == "" {
		return "", false
	}
	endpoint, ok := r.foundryConfig.RpcEndpoints[name]
	return endpoint, ok
}

func (r *NetworkResolver) etherscanConfig(name string) config.EtherscanConfig {
	if r.foundryConfig == nil || name == "" {
		return config.EtherscanConfig{}
	}
	return r.foundryConfig.Etherscan[name]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
