package blockchain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/trebuchet-org/creation-code/internal/domain"
	"github.com/trebuchet-org/creation-code/internal/domain/config"
	"github.com/trebuchet-org/creation-code/internal/usecase"
)

// ProviderAdapter implements the ChainProvider interface over JSON-RPC
type ProviderAdapter struct {
	rpcURL  string
	chainID uint64

	rpcClient *rpc.Client
	client    *ethclient.Client
	log       *slog.Logger
}

// NewProviderAdapter creates a new chain provider adapter. The connection is
// opened on first use.
func NewProviderAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *ProviderAdapter {
	p := &ProviderAdapter{log: log.With("component", "ProviderAdapter")}
	if cfg.Network != nil {
		p.rpcURL = cfg.Network.RPCURL
		p.chainID = cfg.Network.ChainID
	}
	return p
}

// NewProviderAdapterFromClient wraps an already connected RPC client
func NewProviderAdapterFromClient(client *rpc.Client, log *slog.Logger) *ProviderAdapter {
	return &ProviderAdapter{
		rpcClient: client,
		client:    ethclient.NewClient(client),
		log:       log.With("component", "ProviderAdapter"),
	}
}

// Connect establishes connection to the node and checks its chain id
func (p *ProviderAdapter) Connect(ctx context.Context) error {
	if p.rpcClient != nil {
		return nil
	}
	if p.rpcURL == "" {
		return fmt.Errorf("no RPC URL configured")
	}

	p.log.Debug("connecting to node", "rpc", p.rpcURL)
	rpcClient, err := rpc.DialContext(ctx, p.rpcURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC: %w", err)
	}
	client := ethclient.NewClient(rpcClient)

	if p.chainID != 0 {
		// Verify chain ID matches
		networkChainID, err := client.ChainID(ctx)
		if err != nil {
			rpcClient.Close()
			return fmt.Errorf("failed to get chain ID: %w", err)
		}
		if networkChainID.Uint64() != p.chainID {
			rpcClient.Close()
			return fmt.Errorf("chain ID mismatch: expected %d, got %d", p.chainID, networkChainID.Uint64())
		}
	}

	p.rpcClient = rpcClient
	p.client = client
	return nil
}

// Close releases the RPC connection. A later call connects again.
func (p *ProviderAdapter) Close() {
	if p.rpcClient != nil {
		p.rpcClient.Close()
		p.rpcClient = nil
		p.client = nil
	}
}

// Connected reports whether a node connection is open
func (p *ProviderAdapter) Connected() bool {
	return p.rpcClient != nil
}

// ChainID returns the configured chain id, or asks the node when none was configured
func (p *ProviderAdapter) ChainID(ctx context.Context) (uint64, error) {
	if p.chainID != 0 {
		return p.chainID, nil
	}
	if err := p.Connect(ctx); err != nil {
		return 0, err
	}
	id, err := p.client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	p.chainID = id.Uint64()
	return p.chainID, nil
}

// TransactionByHash returns the transaction, or nil when the node does not know it
func (p *ProviderAdapter) TransactionByHash(ctx context.Context, hash common.Hash) (*domain.TransactionRecord, error) {
	if err := p.Connect(ctx); err != nil {
		return nil, err
	}

	// Decoded by hand rather than with ethclient so transaction types unknown
	// to go-ethereum (L2 deposits and the like) still work
	var tx *rpcTransaction
	if err := p.rpcClient.CallContext(ctx, &tx, "eth_getTransactionByHash", hash); err != nil {
		return nil, fmt.Errorf("eth_getTransactionByHash failed: %w", err)
	}
	if tx == nil {
		return nil, nil
	}
	if tx.Hash == (common.Hash{}) {
		tx.Hash = hash
	}
	return tx.toDomain(), nil
}

// TraceTransaction returns the parity-style traces of a transaction
func (p *ProviderAdapter) TraceTransaction(ctx context.Context, hash common.Hash) ([]domain.TraceEntry, error) {
	if err := p.Connect(ctx); err != nil {
		return nil, err
	}

	var raw []rpcTrace
	if err := p.rpcClient.CallContext(ctx, &raw, "trace_transaction", hash); err != nil {
		return nil, fmt.Errorf("trace_transaction failed: %w", err)
	}
	p.log.Debug("fetched traces", "tx", hash, "count", len(raw))

	traces := make([]domain.TraceEntry, 0, len(raw))
	for i := range raw {
		entry, err := raw[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("trace %d: %w", i, err)
		}
		traces = append(traces, entry)
	}
	return traces, nil
}

// Ensure the adapter implements the interfaces
var (
	_ usecase.ChainProvider = (*ProviderAdapter)(nil)
	_ usecase.ChainIDReader = (*ProviderAdapter)(nil)
)
