package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/creation-code/internal/domain"
)

type mockExplorer struct {
	creationFunc  func(context.Context, common.Address) (*domain.CreationRecord, error)
	abiFunc       func(context.Context, common.Address) ([]domain.ABIRecord, error)
	creationCalls int
	abiCalls      int
}

func (m *mockExplorer) CreationData(ctx context.Context, address common.Address) (*domain.CreationRecord, error) {
	m.creationCalls++
	if m.creationFunc != nil {
		return m.creationFunc(ctx, address)
	}
	return nil, domain.NewNotFoundError("no contract creation data", address, common.Hash{})
}

func (m *mockExplorer) ABI(ctx context.Context, address common.Address) ([]domain.ABIRecord, error) {
	m.abiCalls++
	if m.abiFunc != nil {
		return m.abiFunc(ctx, address)
	}
	return nil, nil
}

type mockProvider struct {
	txs        map[common.Hash]*domain.TransactionRecord
	traces     map[common.Hash][]domain.TraceEntry
	txErr      error
	traceErr   error
	traceCalls int
}

func (m *mockProvider) TransactionByHash(_ context.Context, hash common.Hash) (*domain.TransactionRecord, error) {
	if m.txErr != nil {
		return nil, m.txErr
	}
	return m.txs[hash], nil
}

func (m *mockProvider) TraceTransaction(_ context.Context, hash common.Hash) ([]domain.TraceEntry, error) {
	m.traceCalls++
	if m.traceErr != nil {
		return nil, m.traceErr
	}
	return m.traces[hash], nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func creationAt(hash common.Hash) func(context.Context, common.Address) (*domain.CreationRecord, error) {
	return func(_ context.Context, address common.Address) (*domain.CreationRecord, error) {
		return &domain.CreationRecord{ContractAddress: address, TransactionHash: hash}, nil
	}
}

func abis(records ...domain.ABIRecord) func(context.Context, common.Address) ([]domain.ABIRecord, error) {
	return func(context.Context, common.Address) ([]domain.ABIRecord, error) {
		return records, nil
	}
}

// constructorWith builds a constructor signature with n uint256 parameters
func constructorWith(n int) *domain.ConstructorSignature {
	uint256, err := abi.NewType("uint256", "", nil)
	if err != nil {
		panic(err)
	}
	inputs := make(abi.Arguments, n)
	for i := range inputs {
		inputs[i] = abi.Argument{Type: uint256}
	}
	return &domain.ConstructorSignature{Inputs: inputs}
}

func createTrace(init []byte, address common.Address) domain.TraceEntry {
	return domain.TraceEntry{
		Action: domain.CreateAction{Init: init},
		Result: domain.CreateOutput{Address: address},
	}
}

func patternBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
