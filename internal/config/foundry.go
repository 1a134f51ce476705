package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/creation-code/internal/domain/config"
)

// FoundryTOML represents the raw foundry.toml structure
type FoundryTOML struct {
	RpcEndpoints map[string]string         `toml:"rpc_endpoints"`
	Etherscan    map[string]map[string]any `toml:"etherscan"`
}

// loadFoundryConfig loads and parses foundry.toml, expanding ${VAR} references
// with the environment after loading the project's .env files.
func loadFoundryConfig(projectRoot string) (*config.FoundryConfig, error) {
	// Load .env files first for variable expansion
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	var raw FoundryTOML

	if _, err := toml.DecodeFile(foundryPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	cfg := &config.FoundryConfig{
		RpcEndpoints: make(map[string]string),
		Etherscan:    make(map[string]config.EtherscanConfig),
	}

	for name, url := range raw.RpcEndpoints {
		cfg.RpcEndpoints[name] = os.ExpandEnv(url)
	}

	for network, ethConfig := range raw.Etherscan {
		ec := config.EtherscanConfig{}
		if url, ok := ethConfig["url"].(string); ok {
			ec.URL = os.ExpandEnv(url)
		}
		if key, ok := ethConfig["key"].(string); ok {
			ec.Key = os.ExpandEnv(key)
		}
		if chain, ok := ethConfig["chain"]; ok {
			ec.Chain = chain
		}
		cfg.Etherscan[network] = ec
	}

	return cfg, nil
}
