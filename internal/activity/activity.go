// Package activity defines the account activity model shared by the explorer
// client, the fetch orchestrator and the ledger generator.
//
// Every string field holds the value exactly as reported by the block explorer.
// Values are never parsed into floating point numbers; amounts stay decimal
// strings until the ledger converts them with arbitrary precision arithmetic.
package activity

// NativeTransfer is a transfer of the chain's native asset.
//
// Value, GasUsed and GasPrice are base-10 integers in wei. Timestamp is the
// block time in unix seconds. IsError is "1" when the transaction reverted.
type NativeTransfer struct {
	Hash            string `json:"hash"`
	BlockNumber     string `json:"blockNumber"`
	Timestamp       string `json:"timeStamp"`
	From            string `json:"from"`
	To              string `json:"to"`
	ContractAddress string `json:"contractAddress,omitempty"`
	Value           string `json:"value"`
	GasUsed         string `json:"gasUsed"`
	GasPrice        string `json:"gasPrice"`
	IsError         string `json:"isError"`
}

// Failed reports whether the explorer flagged the transaction as reverted.
func (t NativeTransfer) Failed() bool {
	return t.IsError == "1"
}

// TokenTransfer is a single ERC-20 transfer event. A transaction hash can
// carry several of them.
//
// Value is the raw integer amount, to be scaled by TokenDecimal.
type TokenTransfer struct {
	Hash            string `json:"hash"`
	BlockNumber     string `json:"blockNumber"`
	Timestamp       string `json:"timeStamp"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	ContractAddress string `json:"contractAddress"`
	TokenName       string `json:"tokenName"`
	TokenSymbol     string `json:"tokenSymbol"`
	TokenDecimal    string `json:"tokenDecimal"`
}

// AddressDataset is the activity fetched for one address. It is replaced
// wholesale when the address is fetched again.
type AddressDataset struct {
	Address         string           `json:"address"`
	Nickname        string           `json:"nickname,omitempty"`
	NativeTransfers []NativeTransfer `json:"nativeTransfers"`
	TokenTransfers  []TokenTransfer  `json:"tokenTransfers"`
}

// FailureRecord describes an address whose fetch did not succeed.
type FailureRecord struct {
	Address  string `json:"address"`
	Nickname string `json:"nickname,omitempty"`
	Error    string `json:"error"`
}

// Stats summarizes a fetch session.
type Stats struct {
	Addresses          int `json:"addresses"`
	NativeTransfers    int `json:"nativeTransfers"`
	TokenTransfers     int `json:"tokenTransfers"`
	FailedTransactions int `json:"failedTransactions"`
	FailedAddresses    int `json:"failedAddresses"`
}
