package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/creation-code/internal/domain"
)

// GetCreationCode recovers the creation bytecode of a contract and optionally
// strips or isolates its constructor arguments.
type GetCreationCode struct {
	locator  *LocateCreationCode
	splitter *SplitConstructorArgs
	progress ProgressSink
}

// NewGetCreationCode creates a new get creation code use case
func NewGetCreationCode(
	locator *LocateCreationCode,
	splitter *SplitConstructorArgs,
	progress ProgressSink,
) *GetCreationCode {
	return &GetCreationCode{
		locator:  locator,
		splitter: splitter,
		progress: progress,
	}
}

// GetCreationCodeParams contains parameters for fetching creation code
type GetCreationCodeParams struct {
	Address     common.Address
	WithoutArgs bool
	OnlyArgs    bool
}

// CreationCodeResult contains the recovered bytecode
type CreationCodeResult struct {
	Address  common.Address
	Mode     domain.ArgsMode
	Source   domain.CreationSource
	TxHash   common.Hash
	Bytecode []byte
}

// Run executes the lookup
func (uc *GetCreationCode) Run(ctx context.Context, params GetCreationCodeParams) (*CreationCodeResult, error) {
	mode, err := ParseArgsMode(params.WithoutArgs, params.OnlyArgs)
	if err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageLocating,
		Message: fmt.Sprintf("Locating creation transaction of %s", params.Address.Hex()),
		Spinner: true,
	})

	located, err := uc.locator.Locate(ctx, params.Address)
	if err != nil {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return nil, err
	}

	if mode != domain.Passthrough {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   StageSplitting,
			Message: "Fetching ABI to find constructor arguments",
			Spinner: true,
		})
	}

	bytecode, err := uc.splitter.Split(ctx, located.Bytecode, params.Address, mode)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	if err != nil {
		return nil, err
	}

	return &CreationCodeResult{
		Address:  params.Address,
		Mode:     mode,
		Source:   located.Source,
		TxHash:   located.TxHash,
		Bytecode: bytecode,
	}, nil
}
