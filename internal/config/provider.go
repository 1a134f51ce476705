package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/creation-code/internal/domain/config"
)

// ErrNoProject is returned by FindProjectRoot outside of a Foundry project
var ErrNoProject = errors.New("not in a Foundry project (foundry.toml not found)")

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	cfg := &config.RuntimeConfig{
		ProjectRoot:    v.GetString("project_root"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
	}

	// foundry.toml is optional, it only supplies aliases and explorer settings
	if cfg.ProjectRoot != "" {
		foundryConfig, err := loadFoundryConfig(cfg.ProjectRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to load foundry config: %w", err)
		}
		cfg.FoundryConfig = foundryConfig
	}

	resolver := NewNetworkResolver(cfg.FoundryConfig)
	network, explorer, err := resolver.Resolve(NetworkOptions{
		RPCURL:      v.GetString("rpc_url"),
		Network:     v.GetString("network"),
		Chain:       v.GetString("chain"),
		ExplorerURL: v.GetString("explorer_url"),
		APIKey:      v.GetString("etherscan_api_key"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network: %w", err)
	}
	cfg.Network = network
	cfg.Explorer = explorer

	return cfg, nil
}

// FindProjectRoot walks up from dir to find foundry.toml
func FindProjectRoot(dir string) (string, error) {
	for {
		foundryToml := filepath.Join(dir, "foundry.toml")
		if _, err := os.Stat(foundryToml); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding foundry.toml
			return "", ErrNoProject
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance. Flags are bound by their
// dashed names with dashes turned into underscores, so --rpc-url is read as rpc_url.
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("CREATION_CODE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Foundry's own variables, as cast reads them
	_ = v.BindEnv("rpc_url", "CREATION_CODE_RPC_URL", "ETH_RPC_URL")
	_ = v.BindEnv("etherscan_api_key", "CREATION_CODE_ETHERSCAN_API_KEY", "ETHERSCAN_API_KEY")
	_ = v.BindEnv("chain", "CREATION_CODE_CHAIN", "CHAIN")

	// Set defaults
	v.SetDefault("timeout", "2m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("json", false)
	v.SetDefault("project_root", projectRoot)

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})

	return v
}
