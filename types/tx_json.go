package types

import (
	"encoding/json"

	"github.com/anyswap/ethtransaction/common"
)

type txJSON struct {
	Nonce    string          `json:"nonce"`
	GasPrice string          `json:"gasPrice"`
	Gas      string          `json:"gas"`
	To       *common.Address `json:"to"`
	Value    string          `json:"value"`
	Input    string          `json:"input"`
}

// MarshalJSON marshals as JSON, integers in decimal and input in 0x hex.
func (tx *Transaction) MarshalJSON() ([]byte, error) {
	enc := txJSON{
		Nonce:    common.Uint256ToDecimal(tx.data.AccountNonce),
		GasPrice: common.Uint256ToDecimal(tx.data.Price),
		Gas:      common.Uint256ToDecimal(tx.data.GasLimit),
		To:       tx.data.Recipient.To(),
		Value:    common.Uint256ToDecimal(tx.data.Amount),
		Input:    "0x" + common.ToHex(tx.data.Payload),
	}
	return json.Marshal(&enc)
}

// Pretty returns indented JSON of the transaction.
func (tx *Transaction) Pretty() string {
	bs, _ := json.MarshalIndent(tx, "", "  ")
	return string(bs)
}
