package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TraceAction is what a trace entry requested. Implemented by CreateAction,
// CallAction and UnknownAction.
type TraceAction interface {
	traceAction()
}

// TraceResult is what a trace entry produced. Implemented by CreateOutput and
// CallOutput. A nil TraceResult means the operation failed or had no output.
type TraceResult interface {
	traceResult()
}

// TraceEntry is a single parity-style trace of a nested EVM operation
type TraceEntry struct {
	Action TraceAction
	Result TraceResult
	// TraceAddress is the position of the entry in the call tree
	TraceAddress []uint64
}

// CreateAction is a CREATE or CREATE2 request
type CreateAction struct {
	From         common.Address
	Value        *big.Int
	Gas          uint64
	Init         []byte
	CreationType string
}

// CallAction is any call-like request (call, delegatecall, staticcall, callcode)
type CallAction struct {
	From     common.Address
	To       common.Address
	CallType string
	Input    []byte
}

// UnknownAction covers trace types that are irrelevant here (suicide, reward)
type UnknownAction struct {
	Type string
}

// CreateOutput is the result of a successful create
type CreateOutput struct {
	Address common.Address
	Code    []byte
	GasUsed uint64
}

// CallOutput is the result of a successful call
type CallOutput struct {
	Output  []byte
	GasUsed uint64
}

func (CreateAction) traceAction()  {}
func (CallAction) traceAction()    {}
func (UnknownAction) traceAction() {}

func (CreateOutput) traceResult() {}
func (CallOutput) traceResult()   {}
