package usecase

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/creation-code/internal/domain"
)

// wordSize is the ABI encoding slot size. Every constructor parameter is
// assumed to take exactly one word, which only holds for static types: dynamic
// types (bytes, string, arrays) are not measured.
const wordSize = 32

// ParseArgsMode turns the --without-args / --only-args flags into a mode
func ParseArgsMode(withoutArgs, onlyArgs bool) (domain.ArgsMode, error) {
	switch {
	case withoutArgs && onlyArgs:
		return domain.Passthrough, domain.NewUsageError("--without-args and --only-args are mutually exclusive")
	case withoutArgs:
		return domain.WithoutArgs, nil
	case onlyArgs:
		return domain.OnlyArgs, nil
	default:
		return domain.Passthrough, nil
	}
}

// ConstructorArgsSize is the size of the constructor argument window for a signature
func ConstructorArgsSize(sig *domain.ConstructorSignature) int {
	if sig == nil {
		return 0
	}
	return wordSize * len(sig.Inputs)
}

// SplitConstructorArgs separates creation bytecode from its trailing constructor arguments
type SplitConstructorArgs struct {
	explorer Explorer
	log      *slog.Logger
}

// NewSplitConstructorArgs creates a new constructor argument splitter
func NewSplitConstructorArgs(explorer Explorer, log *slog.Logger) *SplitConstructorArgs {
	return &SplitConstructorArgs{
		explorer: explorer,
		log:      log.With("component", "SplitConstructorArgs"),
	}
}

// Split returns the part of bytecode selected by mode. Passthrough never
// touches the explorer. The first ABI candidate the explorer returns is used.
func (s *SplitConstructorArgs) Split(ctx context.Context, bytecode []byte, address common.Address, mode domain.ArgsMode) ([]byte, error) {
	if mode == domain.Passthrough {
		return bytecode, nil
	}

	abis, err := s.explorer.ABI(ctx, address)
	if err != nil {
		return nil, domain.NewCollaboratorError("failed to fetch ABI", address, common.Hash{}, err)
	}
	if len(abis) == 0 {
		return nil, domain.NewAbiError(domain.ErrAbiNotFound, address)
	}
	if len(abis) > 1 {
		s.log.Debug("explorer returned several ABIs, using the first", "count", len(abis), "contract", abis[0].ContractName)
	}
	selected := abis[0]

	if selected.Constructor == nil {
		if mode == domain.OnlyArgs {
			return nil, domain.NewAbiError(domain.ErrNoConstructor, address)
		}
		return bytecode, nil
	}

	if len(selected.Constructor.Inputs) == 0 {
		if mode == domain.OnlyArgs {
			return nil, domain.NewAbiError(domain.ErrNoConstructorArgs, address)
		}
		return bytecode, nil
	}

	argsSize := ConstructorArgsSize(selected.Constructor)
	if argsSize > len(bytecode) {
		return nil, domain.NewMalformedBytecodeError(address, argsSize, len(bytecode))
	}
	split := len(bytecode) - argsSize

	switch mode {
	case domain.WithoutArgs:
		return common.CopyBytes(bytecode[:split]), nil
	case domain.OnlyArgs:
		return common.CopyBytes(bytecode[split:]), nil
	default:
		return nil, domain.NewUsageError("unknown constructor arguments mode " + mode.String())
	}
}
