package usecase

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/creation-code/internal/domain"
)

// ScanCreationTraces returns the init code of the create that deployed target.
//
// Traces are walked in the order given. Every create whose output address is
// target replaces the previous match, so when the same address is created more
// than once in a transaction the last creation wins.
func ScanCreationTraces(traces []domain.TraceEntry, target common.Address) ([]byte, error) {
	var (
		init  []byte
		found bool
	)
	for _, trace := range traces {
		output, ok := trace.Result.(domain.CreateOutput)
		if !ok || output.Address != target {
			continue
		}
		action, ok := trace.Action.(domain.CreateAction)
		if !ok {
			continue
		}
		init = action.Init
		found = true
	}

	if !found {
		return nil, domain.NewNotFoundError("could not find contract creation trace", target, common.Hash{})
	}
	return init, nil
}
