package common

import (
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// AddressLength is the expected length of the address
const AddressLength = ethcommon.AddressLength

// Address represents the 20 byte address of an Ethereum account.
type Address = ethcommon.Address

// ParseAddress parses a hex string of exactly 40 hex digits into an address.
// The "0x" prefix is optional.
func ParseAddress(str string) (Address, error) {
	if !ethcommon.IsHexAddress(str) {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, str)
	}
	return ethcommon.HexToAddress(str), nil
}

// ParseHexBytes decodes an even length hex string into bytes.
// The "0x" prefix is optional, and an empty string decodes to empty bytes.
func ParseHexBytes(str string) ([]byte, error) {
	str = trim0xPrefix(str)
	if str == "" {
		return []byte{}, nil
	}
	res, err := hexutil.Decode("0x" + str)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return res, nil
}

// ToHex returns the lower case hex encoding of b without "0x" prefix.
func ToHex(b []byte) string {
	return ethcommon.Bytes2Hex(b)
}

// CopyBytes returns an exact copy of the provided bytes.
func CopyBytes(b []byte) []byte {
	return ethcommon.CopyBytes(b)
}

func has0xPrefix(str string) bool {
	return len(str) >= 2 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X')
}

func trim0xPrefix(str string) string {
	if has0xPrefix(str) {
		return str[2:]
	}
	return str
}
