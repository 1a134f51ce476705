package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Error kinds. Every error returned by the creation code use cases matches
// exactly one of these with errors.Is.
var (
	// ErrUsage is returned for conflicting or invalid options, before any I/O
	ErrUsage = errors.New("usage error")

	// ErrNotFound is returned when a creation record, transaction or creation trace is missing
	ErrNotFound = errors.New("not found")

	// ErrAbi is the parent kind of every ABI related failure
	ErrAbi = errors.New("abi error")

	// ErrAbiNotFound is returned when the explorer has no ABI for the address
	ErrAbiNotFound = fmt.Errorf("%w: no ABI found", ErrAbi)

	// ErrNoConstructor is returned when only-args is requested but the ABI has no constructor
	ErrNoConstructor = fmt.Errorf("%w: no constructor found", ErrAbi)

	// ErrNoConstructorArgs is returned when only-args is requested but the constructor takes no parameters
	ErrNoConstructorArgs = fmt.Errorf("%w: no constructor arguments found", ErrAbi)

	// ErrMalformedBytecode is returned when the constructor argument window is larger than the bytecode
	ErrMalformedBytecode = errors.New("malformed bytecode")

	// ErrCollaborator wraps failures of the explorer or the chain provider
	ErrCollaborator = errors.New("collaborator error")
)

// CreationError carries the kind of a failure together with the address and
// transaction it relates to.
type CreationError struct {
	Kind    error
	Op      string
	Address common.Address
	TxHash  common.Hash
	Err     error
}

func (e *CreationError) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
	} else {
		b.WriteString(e.Kind.Error())
	}

	var ctx []string
	if e.Address != (common.Address{}) {
		ctx = append(ctx, "address "+e.Address.Hex())
	}
	if e.TxHash != (common.Hash{}) {
		ctx = append(ctx, "tx "+e.TxHash.Hex())
	}
	if len(ctx) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(ctx, ", "))
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the underlying cause to errors.Is / errors.As
func (e *CreationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewUsageError reports invalid options
func NewUsageError(message string) error {
	return &CreationError{Kind: ErrUsage, Op: message}
}

// NewNotFoundError reports a missing record
func NewNotFoundError(message string, address common.Address, txHash common.Hash) error {
	return &CreationError{Kind: ErrNotFound, Op: message, Address: address, TxHash: txHash}
}

// NewAbiError reports one of the ErrAbi kinds for an address
func NewAbiError(kind error, address common.Address) error {
	return &CreationError{Kind: kind, Address: address}
}

// NewMalformedBytecodeError reports an argument window that does not fit the bytecode
func NewMalformedBytecodeError(address common.Address, argsSize, length int) error {
	return &CreationError{
		Kind:    ErrMalformedBytecode,
		Op:      fmt.Sprintf("constructor arguments need %d bytes but bytecode is only %d bytes", argsSize, length),
		Address: address,
	}
}

// NewCollaboratorError wraps an explorer or provider failure with its context
func NewCollaboratorError(op string, address common.Address, txHash common.Hash, err error) error {
	return &CreationError{Kind: ErrCollaborator, Op: op, Address: address, TxHash: txHash, Err: err}
}
