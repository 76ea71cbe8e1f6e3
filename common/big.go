package common

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Common 256 bit integers often used
var (
	Uint256Zero = uint256.NewInt(0)
	Uint256Ten  = uint256.NewInt(10)

	MaxUint256 = new(uint256.Int).SetAllOne()
)

// ParseUint256 parses a decimal string of ASCII digits into a 256 bit
// unsigned integer. Signs, whitespace and separators are rejected.
// Leading zeros are allowed.
func ParseUint256(str string) (*uint256.Int, error) {
	if str == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidInteger)
	}
	var (
		res      = new(uint256.Int)
		digit    = new(uint256.Int)
		overflow bool
	)
	for i := 0; i < len(str); i++ {
		c := str[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrInvalidInteger, c, i)
		}
		if _, overflow = res.MulOverflow(res, Uint256Ten); overflow {
			return nil, errIntegerOverflow(str)
		}
		digit.SetUint64(uint64(c - '0'))
		if _, overflow = res.AddOverflow(res, digit); overflow {
			return nil, errIntegerOverflow(str)
		}
	}
	return res, nil
}

// MustParseUint256 is ParseUint256 but panics on error.
func MustParseUint256(str string) *uint256.Int {
	res, err := ParseUint256(str)
	if err != nil {
		panic(err)
	}
	return res
}

// Uint256ToDecimal returns the decimal text of i, nil is rendered as "0".
func Uint256ToDecimal(i *uint256.Int) string {
	if i == nil {
		return "0"
	}
	return i.ToBig().String()
}

func errIntegerOverflow(str string) error {
	return &overflowError{text: str}
}

// overflowError matches both ErrInvalidInteger and ErrIntegerOverflow.
type overflowError struct {
	text string
}

func (e *overflowError) Error() string {
	return fmt.Sprintf("%v: %s exceeds 256 bits", ErrIntegerOverflow, e.text)
}

func (e *overflowError) Is(target error) bool {
	return target == ErrInvalidInteger || target == ErrIntegerOverflow
}
