package blockchain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/creation-code/internal/domain"
)

// rpcTransaction is the part of eth_getTransactionByHash we read
type rpcTransaction struct {
	Hash  common.Hash     `json:"hash"`
	To    *common.Address `json:"to"`
	Input hexutil.Bytes   `json:"input"`
}

// rpcTrace is a parity-style entry returned by trace_transaction
type rpcTrace struct {
	Type         string          `json:"type"`
	Action       json.RawMessage `json:"action"`
	Result       json.RawMessage `json:"result"`
	TraceAddress []uint64        `json:"traceAddress"`
	Error        string          `json:"error,omitempty"`
}

type rpcCreateAction struct {
	From           common.Address `json:"from"`
	Value          *hexutil.Big   `json:"value"`
	Gas            hexutil.Uint64 `json:"gas"`
	Init           hexutil.Bytes  `json:"init"`
	CreationMethod string         `json:"creationMethod,omitempty"`
}

type rpcCallAction struct {
	From     common.Address `json:"from"`
	To       common.Address `json:"to"`
	CallType string         `json:"callType"`
	Input    hexutil.Bytes  `json:"input"`
}

type rpcCreateResult struct {
	Address common.Address `json:"address"`
	Code    hexutil.Bytes  `json:"code"`
	GasUsed hexutil.Uint64 `json:"gasUsed"`
}

type rpcCallResult struct {
	Output  hexutil.Bytes  `json:"output"`
	GasUsed hexutil.Uint64 `json:"gasUsed"`
}

func (tx *rpcTransaction) toDomain() *domain.TransactionRecord {
	return &domain.TransactionRecord{
		Hash:  tx.Hash,
		To:    tx.To,
		Input: tx.Input,
	}
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// toDomain converts a raw trace. Results are dropped for failed operations.
func (t *rpcTrace) toDomain() (domain.TraceEntry, error) {
	entry := domain.TraceEntry{TraceAddress: t.TraceAddress}

	switch t.Type {
	case "create":
		var action rpcCreateAction
		if err := json.Unmarshal(t.Action, &action); err != nil {
			return entry, fmt.Errorf("invalid create action: %w", err)
		}
		entry.Action = domain.CreateAction{
			From:         action.From,
			Value:        action.Value.ToInt(),
			Gas:          uint64(action.Gas),
			Init:         action.Init,
			CreationType: action.CreationMethod,
		}
		if isNull(t.Result) || t.Error != "" {
			return entry, nil
		}
		var result rpcCreateResult
		if err := json.Unmarshal(t.Result, &result); err != nil {
			return entry, fmt.Errorf("invalid create result: %w", err)
		}
		entry.Result = domain.CreateOutput{
			Address: result.Address,
			Code:    result.Code,
			GasUsed: uint64(result.GasUsed),
		}

	case "call":
		var action rpcCallAction
		if err := json.Unmarshal(t.Action, &action); err != nil {
			return entry, fmt.Errorf("invalid call action: %w", err)
		}
		entry.Action = domain.CallAction{
			From:     action.From,
			To:       action.To,
			CallType: action.CallType,
			Input:    action.Input,
		}
		if isNull(t.Result) || t.Error != "" {
			return entry, nil
		}
		var result rpcCallResult
		if err := json.Unmarshal(t.Result, &result); err != nil {
			return entry, fmt.Errorf("invalid call result: %w", err)
		}
		entry.Result = domain.CallOutput{
			Output:  result.Output,
			GasUsed: uint64(result.GasUsed),
		}

	default:
		entry.Action = domain.UnknownAction{Type: t.Type}
	}

	return entry, nil
}
