package types

import "fmt"

// names of the transaction fields as given on the command line
const (
	FieldTo       = "--to"
	FieldValue    = "--value"
	FieldGas      = "--gas"
	FieldGasPrice = "--gasprice"
	FieldNonce    = "--nonce"
	FieldCalldata = "calldata"
)

// FieldError indicates a transaction field could not be parsed.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
