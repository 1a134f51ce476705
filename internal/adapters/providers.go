package adapters

import (
	"os"

	"github.com/google/wire"
	"github.com/mattn/go-isatty"
	"github.com/trebuchet-org/creation-code/internal/adapters/blockchain"
	"github.com/trebuchet-org/creation-code/internal/adapters/disasm"
	"github.com/trebuchet-org/creation-code/internal/adapters/explorer"
	"github.com/trebuchet-org/creation-code/internal/adapters/progress"
	"github.com/trebuchet-org/creation-code/internal/domain/config"
	"github.com/trebuchet-org/creation-code/internal/usecase"
)

// ProvideProgressSink shows a spinner on interactive terminals only
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.JSON || cfg.NonInteractive || !isatty.IsTerminal(os.Stderr.Fd()) {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerSink(os.Stderr)
}

// BlockchainSet provides node-backed implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewProviderAdapter,
	wire.Bind(new(usecase.ChainProvider), new(*blockchain.ProviderAdapter)),
	wire.Bind(new(usecase.ChainIDReader), new(*blockchain.ProviderAdapter)),
)

// ExplorerSet provides block explorer implementations
var ExplorerSet = wire.NewSet(
	explorer.NewEtherscanAdapter,
	wire.Bind(new(usecase.Explorer), new(*explorer.EtherscanAdapter)),
)

// DisasmSet provides the EVM disassembler
var DisasmSet = wire.NewSet(
	disasm.NewDisassembler,
	wire.Bind(new(usecase.Disassembler), new(*disasm.Disassembler)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ProvideProgressSink,

	BlockchainSet,
	ExplorerSet,
	DisasmSet,
)
