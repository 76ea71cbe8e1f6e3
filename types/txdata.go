package types

import (
	"github.com/anyswap/ethtransaction/common"
	"github.com/holiman/uint256"
)

type txdata struct {
	AccountNonce *uint256.Int
	Price        *uint256.Int
	GasLimit     *uint256.Int
	Recipient    Action
	Amount       *uint256.Int
	Payload      []byte
}

// Action is the target of a transaction, either a call to an existing
// account or a contract creation. The zero value is a contract creation.
type Action struct {
	to *common.Address
}

// CallAction returns an action calling the account at to.
func CallAction(to common.Address) Action {
	return Action{to: &to}
}

// CreateAction returns a contract creation action.
func CreateAction() Action {
	return Action{}
}

// IsCreate reports whether the action deploys a contract.
func (a Action) IsCreate() bool {
	return a.to == nil
}

// To returns a copy of the recipient address, or nil for contract creation.
func (a Action) To() *common.Address {
	if a.to == nil {
		return nil
	}
	cpy := *a.to
	return &cpy
}

// Bytes returns the RLP field contents of the action: the 20 address
// bytes for a call, empty for contract creation.
func (a Action) Bytes() []byte {
	if a.to == nil {
		return nil
	}
	return a.to.Bytes()
}

func (a Action) String() string {
	if a.to == nil {
		return "create"
	}
	return "call " + a.to.Hex()
}
