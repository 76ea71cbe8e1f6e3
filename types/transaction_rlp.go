package types

import (
	"io"

	"github.com/anyswap/ethtransaction/tools/rlp"
)

// EncodeRLP implements rlp.Encoder, it writes the unsigned transaction
// list [nonce, gasPrice, gas, to, value, data].
func (tx *Transaction) EncodeRLP(w io.Writer) error {
	buf := rlp.NewEncoderBuffer()
	tx.encodeUnsigned(buf)
	_, err := buf.WriteTo(w)
	return err
}

// UnsignedBytes returns the canonical RLP encoding of the unsigned transaction.
func (tx *Transaction) UnsignedBytes() []byte {
	buf := rlp.NewEncoderBuffer()
	tx.encodeUnsigned(buf)
	return buf.ToBytes()
}

// Size returns the encoded size of the unsigned transaction.
func (tx *Transaction) Size() int {
	return len(tx.UnsignedBytes())
}

func (tx *Transaction) encodeUnsigned(w *rlp.EncoderBuffer) {
	list := w.List()
	w.WriteUint256(tx.data.AccountNonce)
	w.WriteUint256(tx.data.Price)
	w.WriteUint256(tx.data.GasLimit)
	// addresses are fixed width and never shortened like integers
	w.WriteBytes(tx.data.Recipient.Bytes())
	w.WriteUint256(tx.data.Amount)
	w.WriteBytes(tx.data.Payload)
	w.ListEnd(list)
}
