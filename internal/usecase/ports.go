package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/creation-code/internal/domain"
)

// Explorer is a block explorer that indexes contract creations and verified ABIs
type Explorer interface {
	// CreationData returns the creation record of a contract, or an error
	// matching domain.ErrNotFound when the explorer does not know the address.
	CreationData(ctx context.Context, address common.Address) (*domain.CreationRecord, error)
	// ABI returns every ABI candidate for the address, in explorer order.
	ABI(ctx context.Context, address common.Address) ([]domain.ABIRecord, error)
}

// ChainProvider reads transactions and execution traces from a node
type ChainProvider interface {
	// TransactionByHash returns nil without error when the node has no such transaction
	TransactionByHash(ctx context.Context, hash common.Hash) (*domain.TransactionRecord, error)
	// TraceTransaction returns the parity-style traces of a transaction in execution order
	TraceTransaction(ctx context.Context, hash common.Hash) ([]domain.TraceEntry, error)
}

// ChainIDReader reports the chain id of the connected node
type ChainIDReader interface {
	ChainID(ctx context.Context) (uint64, error)
}

// Disassembler renders bytecode as an opcode listing
type Disassembler interface {
	Disassemble(code []byte) string
}

// Progress tracking interfaces

// ExecutionStage represents a stage in the creation code lookup
type ExecutionStage string

const (
	StageLocating  ExecutionStage = "Locating"
	StageTracing   ExecutionStage = "Tracing"
	StageSplitting ExecutionStage = "Splitting"
	StageCompleted ExecutionStage = "Completed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   ExecutionStage
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
