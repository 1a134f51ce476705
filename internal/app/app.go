package app

import (
	"github.com/trebuchet-org/creation-code/internal/adapters/blockchain"
	"github.com/trebuchet-org/creation-code/internal/domain/config"
	"github.com/trebuchet-org/creation-code/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	GetCreationCode *usecase.GetCreationCode

	// Adapters used directly by the command
	Disassembler usecase.Disassembler
	Provider     *blockchain.ProviderAdapter
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	getCreationCode *usecase.GetCreationCode,
	disassembler usecase.Disassembler,
	provider *blockchain.ProviderAdapter,
) (*App, error) {
	return &App{
		Config:          cfg,
		GetCreationCode: getCreationCode,
		Disassembler:    disassembler,
		Provider:        provider,
	}, nil
}

// Close releases the node connection
func (a *App) Close() {
	if a.Provider != nil {
		a.Provider.Close()
	}
}
