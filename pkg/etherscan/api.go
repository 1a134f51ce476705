package etherscan

import (
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultAPIURL is the Etherscan multichain endpoint; the chain is selected with chainid
const DefaultAPIURL = "https://api.etherscan.io/v2/api"

// notVerifiedABI is the ABI field value Etherscan returns for unverified contracts
const notVerifiedABI = "Contract source code not verified"

// Response is the envelope every Etherscan API call returns
type Response struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// OK reports whether the call succeeded
func (r *Response) OK() bool {
	return r.Status == "1"
}

// NoData reports whether the call failed only because nothing matched the query
func (r *Response) NoData() bool {
	msg := strings.ToLower(r.Message)
	return strings.HasPrefix(msg, "no data found") || strings.HasPrefix(msg, "no records found")
}

// ResultString returns the result when the API put an error message there
func (r *Response) ResultString() string {
	var s string
	if err := json.Unmarshal(r.Result, &s); err != nil {
		return ""
	}
	return s
}

// ContractCreation is an item of the getcontractcreation result
type ContractCreation struct {
	ContractAddress common.Address `json:"contractAddress"`
	ContractCreator common.Address `json:"contractCreator"`
	TxHash          common.Hash    `json:"txHash"`
	BlockNumber     string         `json:"blockNumber,omitempty"`
}

// SourceCode is an item of the getsourcecode result
type SourceCode struct {
	SourceCode           string `json:"SourceCode"`
	ABI                  string `json:"ABI"`
	ContractName         string `json:"ContractName"`
	CompilerVersion      string `json:"CompilerVersion"`
	ConstructorArguments string `json:"ConstructorArguments"`
	Proxy                string `json:"Proxy"`
	Implementation       string `json:"Implementation"`
}

// IsVerified reports whether the item carries a usable ABI
func (s *SourceCode) IsVerified() bool {
	return s.ABI != "" && s.ABI != notVerifiedABI
}
