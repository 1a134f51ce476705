package domain

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// CreationRecord is what a block explorer knows about how a contract was created
type CreationRecord struct {
	ContractAddress common.Address
	Creator         common.Address
	TransactionHash common.Hash
}

// TransactionRecord is the subset of a transaction needed to recover creation code.
// To is nil for a top-level contract creation transaction.
type TransactionRecord struct {
	Hash  common.Hash
	To    *common.Address
	Input []byte
}

// IsContractCreation reports whether the transaction deployed code directly
func (t *TransactionRecord) IsContractCreation() bool {
	return t.To == nil
}

// CreationSource tells where the creation bytecode was read from
type CreationSource string

const (
	// SourceTransaction means the bytecode is the input of a top-level creation transaction
	SourceTransaction CreationSource = "transaction"
	// SourceTrace means the bytecode is the init code of a nested create found in traces
	SourceTrace CreationSource = "trace"
)

// ConstructorSignature is the ordered list of constructor parameters
type ConstructorSignature struct {
	Inputs abi.Arguments
}

// ABIRecord is one ABI candidate returned by an explorer for an address
type ABIRecord struct {
	ContractName string
	// Constructor is nil when the contract declares no constructor
	Constructor *ConstructorSignature
}

// ArgsMode selects which part of the creation bytecode is returned
type ArgsMode int

const (
	// Passthrough returns the creation bytecode unchanged
	Passthrough ArgsMode = iota
	// WithoutArgs strips the trailing constructor arguments
	WithoutArgs
	// OnlyArgs returns only the trailing constructor arguments
	OnlyArgs
)

func (m ArgsMode) String() string {
	switch m {
	case Passthrough:
		return "passthrough"
	case WithoutArgs:
		return "without-args"
	case OnlyArgs:
		return "only-args"
	default:
		return "unknown"
	}
}
