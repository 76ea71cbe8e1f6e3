package types

import (
	"github.com/anyswap/ethtransaction/common"
	"github.com/holiman/uint256"
)

// BuildTxArgs holds the textual transaction fields.
// A nil To means contract creation, a nil Value means zero.
type BuildTxArgs struct {
	To       *string
	Nonce    string
	Value    *string
	Gas      string
	GasPrice string
	Input    string
}

// BuildTransaction parses args into a transaction.
// It stops at and returns the first invalid field.
func BuildTransaction(args *BuildTxArgs) (*Transaction, error) {
	action := CreateAction()
	if args.To != nil {
		to, err := common.ParseAddress(*args.To)
		if err != nil {
			return nil, &FieldError{Field: FieldTo, Err: err}
		}
		action = CallAction(to)
	}

	value := new(uint256.Int)
	if args.Value != nil {
		var err error
		if value, err = common.ParseUint256(*args.Value); err != nil {
			return nil, &FieldError{Field: FieldValue, Err: err}
		}
	}

	gas, err := common.ParseUint256(args.Gas)
	if err != nil {
		return nil, &FieldError{Field: FieldGas, Err: err}
	}
	gasPrice, err := common.ParseUint256(args.GasPrice)
	if err != nil {
		return nil, &FieldError{Field: FieldGasPrice, Err: err}
	}
	nonce, err := common.ParseUint256(args.Nonce)
	if err != nil {
		return nil, &FieldError{Field: FieldNonce, Err: err}
	}
	input, err := common.ParseHexBytes(args.Input)
	if err != nil {
		return nil, &FieldError{Field: FieldCalldata, Err: err}
	}

	return newTransaction(nonce, action, value, gas, gasPrice, input), nil
}

// EncodeUnsigned builds the transaction described by args and returns its
// canonical RLP encoding.
func EncodeUnsigned(args *BuildTxArgs) ([]byte, error) {
	tx, err := BuildTransaction(args)
	if err != nil {
		return nil, err
	}
	return tx.UnsignedBytes(), nil
}
