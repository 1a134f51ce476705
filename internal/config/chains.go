package config

import (
	"fmt"
	"strconv"
	"strings"
)

// chainIDs maps the chain names accepted by --chain to chain ids
var chainIDs = map[string]uint64{
	"mainnet":          1,
	"ethereum":         1,
	"sepolia":          11155111,
	"holesky":          17000,
	"polygon":          137,
	"polygon-amoy":     80002,
	"arbitrum":         42161,
	"arbitrum-sepolia": 421614,
	"optimism":         10,
	"optimism-sepolia": 11155420,
	"base":             8453,
	"base-sepolia":     84532,
	"avalanche":        43114,
	"avalanche-fuji":   43113,
	"bsc":              56,
	"bsc-testnet":      97,
	"gnosis":           100,
	"celo":             42220,
	"linea":            59144,
	"scroll":           534352,
	"zksync":           324,
	"local":            31337,
	"anvil":            31337,
}

// ParseChain resolves a chain name or numeric id to a chain id
func ParseChain(chain string) (uint64, error) {
	chain = strings.ToLower(strings.TrimSpace(chain))
	if chain == "" {
		return 0, nil
	}

	if id, err := strconv.ParseUint(chain, 10, 64); err == nil {
		return id, nil
	}
	if id, ok := chainIDs[chain]; ok {
		return id, nil
	}
	return 0, fmt.Errorf("unknown chain %q", chain)
}

// chainFromTOML converts the chain value of a foundry.toml [etherscan] entry
func chainFromTOML(value any) (uint64, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("invalid chain id %d", v)
		}
		return uint64(v), nil
	case string:
		return ParseChain(v)
	default:
		return 0, fmt.Errorf("invalid chain value %v", value)
	}
}
