package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/creation-code/internal/domain"
	"github.com/trebuchet-org/creation-code/internal/domain/config"
	"github.com/trebuchet-org/creation-code/internal/usecase"
	"github.com/trebuchet-org/creation-code/pkg/etherscan"
)

// EtherscanAdapter implements usecase.Explorer on top of an Etherscan compatible API
type EtherscanAdapter struct {
	client   *etherscan.Client
	chainID  uint64
	chainIDs usecase.ChainIDReader
	log      *slog.Logger
}

// NewEtherscanAdapter creates an explorer adapter from the runtime configuration.
// When the network has no configured chain id it is read from chainIDs on first use.
func NewEtherscanAdapter(cfg *config.RuntimeConfig, chainIDs usecase.ChainIDReader, log *slog.Logger) *EtherscanAdapter {
	var apiURL, apiKey string
	if cfg.Explorer != nil {
		apiURL = cfg.Explorer.APIURL
		apiKey = cfg.Explorer.APIKey
	}
	var chainID uint64
	if cfg.Network != nil {
		chainID = cfg.Network.ChainID
	}

	return &EtherscanAdapter{
		client:   etherscan.NewClient(apiURL, apiKey),
		chainID:  chainID,
		chainIDs: chainIDs,
		log:      log.With("component", "EtherscanAdapter"),
	}
}

// CreationData returns the creation transaction of address
func (a *EtherscanAdapter) CreationData(ctx context.Context, address common.Address) (*domain.CreationRecord, error) {
	chainID, err := a.resolveChainID(ctx)
	if err != nil {
		return nil, err
	}

	a.log.Debug("fetching contract creation", "address", address, "chain", chainID, "api", a.client.APIURL())
	creations, err := a.client.GetContractCreation(ctx, chainID, address)
	if err != nil {
		return nil, err
	}

	creation, ok := lo.Find(creations, func(c etherscan.ContractCreation) bool {
		return c.ContractAddress == address
	})
	if !ok {
		return nil, domain.NewNotFoundError("explorer has no creation record", address, common.Hash{})
	}

	return &domain.CreationRecord{
		ContractAddress: creation.ContractAddress,
		Creator:         creation.ContractCreator,
		TransactionHash: creation.TxHash,
	}, nil
}

// ABI returns the verified ABIs the explorer holds for address, in explorer order
func (a *EtherscanAdapter) ABI(ctx context.Context, address common.Address) ([]domain.ABIRecord, error) {
	chainID, err := a.resolveChainID(ctx)
	if err != nil {
		return nil, err
	}

	a.log.Debug("fetching contract ABI", "address", address, "chain", chainID)
	sources, err := a.client.GetSourceCode(ctx, chainID, address)
	if err != nil {
		return nil, err
	}

	verified := lo.Filter(sources, func(s etherscan.SourceCode, _ int) bool {
		return s.IsVerified()
	})

	records := make([]domain.ABIRecord, 0, len(verified))
	for _, source := range verified {
		record, err := ParseABIRecord(source.ContractName, source.ABI)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ABI of %s: %w", source.ContractName, err)
		}
		records = append(records, *record)
	}
	return records, nil
}

type abiEntry struct {
	Type string `json:"type"`
}

// ParseABIRecord parses a JSON ABI into an ABIRecord. The constructor is nil
// when the ABI has no constructor entry at all.
func ParseABIRecord(name, abiJSON string) (*domain.ABIRecord, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, err
	}

	// abi.ABI keeps a zero Method when no constructor is declared, so look at the raw entries
	var entries []abiEntry
	if err := json.Unmarshal([]byte(abiJSON), &entries); err != nil {
		return nil, err
	}
	hasConstructor := lo.ContainsBy(entries, func(e abiEntry) bool {
		return e.Type == "constructor"
	})

	record := &domain.ABIRecord{ContractName: name}
	if hasConstructor {
		record.Constructor = &domain.ConstructorSignature{Inputs: parsed.Constructor.Inputs}
	}
	return record, nil
}

func (a *EtherscanAdapter) resolveChainID(ctx context.Context) (uint64, error) {
	if a.chainID != 0 || a.chainIDs == nil {
		return a.chainID, nil
	}
	chainID, err := a.chainIDs.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to determine chain id for explorer requests: %w", err)
	}
	a.chainID = chainID
	return chainID, nil
}

// Ensure the adapter implements the interface
var _ usecase.Explorer = (*EtherscanAdapter)(nil)
