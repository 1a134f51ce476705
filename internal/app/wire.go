//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/creation-code/internal/adapters"
	"github.com/trebuchet-org/creation-code/internal/config"
	"github.com/trebuchet-org/creation-code/internal/logging"
	"github.com/trebuchet-org/creation-code/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewLocateCreationCode,
		usecase.NewSplitConstructorArgs,
		usecase.NewGetCreationCode,

		// App
		NewApp,
	)
	return nil, nil
}
