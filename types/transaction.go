package types

import (
	"github.com/anyswap/ethtransaction/common"
	"github.com/holiman/uint256"
)

// Transaction is an unsigned legacy Ethereum transaction.
// It is immutable once created.
type Transaction struct {
	data txdata
}

// NewTransaction new tx calling the account at to
func NewTransaction(nonce *uint256.Int, to common.Address, amount, gasLimit, gasPrice *uint256.Int, data []byte) *Transaction {
	return newTransaction(nonce, CallAction(to), amount, gasLimit, gasPrice, data)
}

// NewContractCreation new contract creation
func NewContractCreation(nonce, amount, gasLimit, gasPrice *uint256.Int, data []byte) *Transaction {
	return newTransaction(nonce, CreateAction(), amount, gasLimit, gasPrice, data)
}

// NewTransactionWithAction new tx with an explicit action
func NewTransactionWithAction(nonce, gasPrice, gasLimit *uint256.Int, action Action, amount *uint256.Int, data []byte) *Transaction {
	return newTransaction(nonce, action, amount, gasLimit, gasPrice, data)
}

func newTransaction(nonce *uint256.Int, action Action, amount, gasLimit, gasPrice *uint256.Int, data []byte) *Transaction {
	d := txdata{
		AccountNonce: copyUint256(nonce),
		Price:        copyUint256(gasPrice),
		GasLimit:     copyUint256(gasLimit),
		Recipient:    Action{to: action.To()},
		Amount:       copyUint256(amount),
		Payload:      []byte{},
	}
	if len(data) > 0 {
		d.Payload = common.CopyBytes(data)
	}
	return &Transaction{data: d}
}

func copyUint256(i *uint256.Int) *uint256.Int {
	if i == nil {
		return new(uint256.Int)
	}
	return new(uint256.Int).Set(i)
}

// Nonce returns the account nonce of the transaction.
func (tx *Transaction) Nonce() *uint256.Int { return new(uint256.Int).Set(tx.data.AccountNonce) }

// GasPrice returns the gas price of the transaction.
func (tx *Transaction) GasPrice() *uint256.Int { return new(uint256.Int).Set(tx.data.Price) }

// Gas returns the gas limit of the transaction.
func (tx *Transaction) Gas() *uint256.Int { return new(uint256.Int).Set(tx.data.GasLimit) }

// Action returns the call or create action of the transaction.
func (tx *Transaction) Action() Action { return Action{to: tx.data.Recipient.To()} }

// To returns the recipient address of the transaction.
// It returns nil if the transaction is a contract creation.
func (tx *Transaction) To() *common.Address { return tx.data.Recipient.To() }

// Value returns the ether amount of the transaction.
func (tx *Transaction) Value() *uint256.Int { return new(uint256.Int).Set(tx.data.Amount) }

// Data returns the input data of the transaction.
func (tx *Transaction) Data() []byte { return common.CopyBytes(tx.data.Payload) }
