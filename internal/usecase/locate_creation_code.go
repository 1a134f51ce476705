package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/creation-code/internal/domain"
)

// LocateCreationCode resolves the creation bytecode of a deployed contract
type LocateCreationCode struct {
	explorer Explorer
	provider ChainProvider
	progress ProgressSink
	log      *slog.Logger
}

// NewLocateCreationCode creates a new creation code locator
func NewLocateCreationCode(
	explorer Explorer,
	provider ChainProvider,
	progress ProgressSink,
	log *slog.Logger,
) *LocateCreationCode {
	return &LocateCreationCode{
		explorer: explorer,
		provider: provider,
		progress: progress,
		log:      log.With("component", "LocateCreationCode"),
	}
}

// LocatedCode is creation bytecode together with where it was found
type LocatedCode struct {
	Bytecode []byte
	Source   domain.CreationSource
	TxHash   common.Hash
}

// Locate finds the creation transaction of address and extracts its creation bytecode.
// Contracts deployed by a top-level transaction return its input as is; contracts
// deployed from inside a call are recovered from the transaction traces.
func (l *LocateCreationCode) Locate(ctx context.Context, address common.Address) (*LocatedCode, error) {
	creation, err := l.explorer.CreationData(ctx, address)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, domain.NewCollaboratorError("failed to fetch contract creation data", address, common.Hash{}, err)
	}
	if creation == nil {
		return nil, domain.NewNotFoundError("no contract creation data", address, common.Hash{})
	}

	txHash := creation.TransactionHash
	l.log.Debug("found creation transaction", "address", address, "tx", txHash)

	tx, err := l.provider.TransactionByHash(ctx, txHash)
	if err != nil {
		return nil, domain.NewCollaboratorError("failed to fetch creation transaction", address, txHash, err)
	}
	if tx == nil {
		return nil, domain.NewNotFoundError("could not find creation tx data", address, txHash)
	}

	if tx.IsContractCreation() {
		return &LocatedCode{
			Bytecode: tx.Input,
			Source:   domain.SourceTransaction,
			TxHash:   txHash,
		}, nil
	}

	// Deployed through a factory or create2: the init code only shows up in traces
	l.log.Debug("creation transaction is a call, scanning traces", "to", tx.To, "tx", txHash)
	l.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageTracing,
		Message: "Tracing " + txHash.Hex(),
		Spinner: true,
	})

	traces, err := l.provider.TraceTransaction(ctx, txHash)
	if err != nil {
		return nil, domain.NewCollaboratorError("could not fetch traces for transaction", address, txHash, err)
	}

	init, err := ScanCreationTraces(traces, address)
	if err != nil {
		var ce *domain.CreationError
		if errors.As(err, &ce) {
			ce.TxHash = txHash
		}
		return nil, err
	}

	return &LocatedCode{
		Bytecode: init,
		Source:   domain.SourceTrace,
		TxHash:   txHash,
	}, nil
}
