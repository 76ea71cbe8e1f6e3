package types

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/anyswap/ethtransaction/common"
	ethrlp "github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

type encodeTest struct {
	name string
	args BuildTxArgs
	want string
}

var (
	zeroAddress = "0x0000000000000000000000000000000000000000"

	encodeTests = []encodeTest{
		{
			"call zero address",
			BuildTxArgs{To: strPtr(zeroAddress), Nonce: "0", GasPrice: "1", Gas: "2", Value: strPtr("0")},
			"da800102940000000000000000000000000000000000000000" + "8080",
		},
		{
			"call zero address default value",
			BuildTxArgs{To: strPtr(zeroAddress), Nonce: "0", GasPrice: "1", Gas: "2"},
			"da800102940000000000000000000000000000000000000000" + "8080",
		},
		{
			"contract creation",
			BuildTxArgs{Nonce: "0", GasPrice: "1", Gas: "2"},
			"c6800102808080",
		},
		{
			"transfer",
			BuildTxArgs{
				To:       strPtr("0x3535353535353535353535353535353535353535"),
				Nonce:    "9",
				GasPrice: "20000000000",
				Gas:      "21000",
				Value:    strPtr("1000000000000000000"),
			},
			"e9098504a817c800825208943535353535353535353535353535353535353535880de0b6b3a764000080",
		},
		{
			"erc20 transfer calldata",
			BuildTxArgs{
				To:       strPtr("dac17f958d2ee523a2206206994597c13d831ec7"),
				Nonce:    "128",
				GasPrice: "1",
				Gas:      "60000",
				Input:    "0xa9059cbb0000000000000000000000003535353535353535353535353535353535353535000000000000000000000000000000000000000000000000000000000000000a",
			},
			"f862818001" + "82ea60" + "94dac17f958d2ee523a2206206994597c13d831ec7" + "80" + "b844" +
				"a9059cbb0000000000000000000000003535353535353535353535353535353535353535000000000000000000000000000000000000000000000000000000000000000a",
		},
	}
)

func TestEncodeUnsigned(t *testing.T) {
	for _, test := range encodeTests {
		t.Run(test.name, func(t *testing.T) {
			args := test.args
			res, err := EncodeUnsigned(&args)
			require.NoError(t, err)
			assert.Equal(t, test.want, common.ToHex(res))
		})
	}
}

func TestEncodeUnsignedVectorLength(t *testing.T) {
	res, err := EncodeUnsigned(&BuildTxArgs{To: strPtr(zeroAddress), Nonce: "0", GasPrice: "1", Gas: "2"})
	require.NoError(t, err)
	// 1 byte list header + 26 bytes payload
	assert.Len(t, res, 27)
	assert.Equal(t, byte(0xc0+26), res[0])

	creation, err := EncodeUnsigned(&BuildTxArgs{Nonce: "0", GasPrice: "1", Gas: "2"})
	require.NoError(t, err)
	assert.Len(t, creation, 7)
}

func TestEncodeMatchesGoEthereum(t *testing.T) {
	for _, test := range encodeTests {
		args := test.args
		tx, err := BuildTransaction(&args)
		require.NoError(t, err)

		want, err := ethrlp.EncodeToBytes([]interface{}{
			tx.Nonce().ToBig(),
			tx.GasPrice().ToBig(),
			tx.Gas().ToBig(),
			tx.To(),
			tx.Value().ToBig(),
			tx.Data(),
		})
		require.NoError(t, err)
		assert.Equal(t, want, tx.UnsignedBytes(), test.name)

		// EncodeRLP is picked up by go-ethereum as rlp.Encoder
		viaEncoder, err := ethrlp.EncodeToBytes(tx)
		require.NoError(t, err)
		assert.Equal(t, want, viaEncoder, test.name)
	}
}

func TestEncodeDecodeFields(t *testing.T) {
	to := common.Address{0x11, 0x22}
	data := bytes.Repeat([]byte{0xab}, 300)
	tx := NewTransaction(uint256.NewInt(7), to, uint256.NewInt(1e18), uint256.NewInt(100000), uint256.NewInt(128), data)

	content, rest, err := ethrlp.SplitList(tx.UnsignedBytes())
	require.NoError(t, err)
	assert.Empty(t, rest)

	var fields [][]byte
	for len(content) > 0 {
		var field []byte
		field, content, err = ethrlp.SplitString(content)
		require.NoError(t, err)
		fields = append(fields, field)
	}
	require.Len(t, fields, 6)
	assert.Equal(t, []byte{0x07}, fields[0])
	assert.Equal(t, []byte{0x80}, fields[1])
	assert.Equal(t, big.NewInt(100000).Bytes(), fields[2])
	assert.Equal(t, to.Bytes(), fields[3])
	assert.Equal(t, uint256.NewInt(1e18).Bytes(), fields[4])
	assert.Equal(t, data, fields[5])
	assert.Equal(t, len(tx.UnsignedBytes()), tx.Size())
}

func TestCanonicalIntegers(t *testing.T) {
	tests := []struct {
		nonce string
		want  string
	}{
		{"0", "80"},
		{"1", "01"},
		{"127", "7f"},
		{"128", "8180"},
		{"0000128", "8180"},
		{"256", "820100"},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639935", "a0" + strings.Repeat("ff", 32)},
	}
	for _, test := range tests {
		tx, err := BuildTransaction(&BuildTxArgs{Nonce: test.nonce, GasPrice: "0", Gas: "0"})
		require.NoError(t, err)
		content, _, err := ethrlp.SplitList(tx.UnsignedBytes())
		require.NoError(t, err)
		// nonce is the first item
		assert.True(t, strings.HasPrefix(common.ToHex(content), test.want), "nonce %s", test.nonce)
		assert.Equal(t, test.want+"8080808080", common.ToHex(content), "nonce %s", test.nonce)
	}
}

func TestCreateContributesEmptyString(t *testing.T) {
	for _, input := range []string{"", "00", "6080604052"} {
		tx, err := BuildTransaction(&BuildTxArgs{Nonce: "5", GasPrice: "3", Gas: "1000000", Value: strPtr("42"), Input: input})
		require.NoError(t, err)
		assert.True(t, tx.Action().IsCreate())
		assert.Nil(t, tx.To())

		content, _, err := ethrlp.SplitList(tx.UnsignedBytes())
		require.NoError(t, err)
		// the action follows nonce, gas price and gas
		prefix := []byte{0x05, 0x03, 0x83, 0x0f, 0x42, 0x40}
		require.True(t, bytes.HasPrefix(content, prefix))
		assert.Equal(t, byte(0x80), content[len(prefix)])
	}
}

func TestEncodeIdempotent(t *testing.T) {
	args := encodeTests[4].args
	tx, err := BuildTransaction(&args)
	require.NoError(t, err)

	first := tx.UnsignedBytes()
	second := tx.UnsignedBytes()
	assert.Equal(t, first, second)

	var buf bytes.Buffer
	require.NoError(t, tx.EncodeRLP(&buf))
	assert.Equal(t, first, buf.Bytes())

	again, err := EncodeUnsigned(&args)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestEncodeRLPWriterError(t *testing.T) {
	tx := NewContractCreation(nil, nil, nil, nil, nil)
	assert.EqualError(t, tx.EncodeRLP(failingWriter{}), "write failed")
}

func TestBuildTransactionErrors(t *testing.T) {
	valid := func() BuildTxArgs {
		return BuildTxArgs{To: strPtr(zeroAddress), Nonce: "0", GasPrice: "1", Gas: "2", Value: strPtr("0")}
	}
	tests := []struct {
		name   string
		modify func(*BuildTxArgs)
		field  string
		cause  error
		msg    string
	}{
		{"short address", func(a *BuildTxArgs) { a.To = strPtr("0xabcd") }, FieldTo, common.ErrInvalidAddress,
			`invalid --to: invalid address: "0xabcd"`},
		{"empty address", func(a *BuildTxArgs) { a.To = strPtr("") }, FieldTo, common.ErrInvalidAddress, ""},
		{"bad nonce", func(a *BuildTxArgs) { a.Nonce = "12a" }, FieldNonce, common.ErrInvalidInteger,
			`invalid --nonce: invalid integer: unexpected character 'a' at offset 2`},
		{"missing nonce text", func(a *BuildTxArgs) { a.Nonce = "" }, FieldNonce, common.ErrInvalidInteger, ""},
		{"negative value", func(a *BuildTxArgs) { a.Value = strPtr("-1") }, FieldValue, common.ErrInvalidInteger, ""},
		{"gas overflow", func(a *BuildTxArgs) {
			a.Gas = "115792089237316195423570985008687907853269984665640564039457584007913129639936"
		}, FieldGas, common.ErrIntegerOverflow, ""},
		{"hex gas price", func(a *BuildTxArgs) { a.GasPrice = "0x01" }, FieldGasPrice, common.ErrInvalidInteger, ""},
		{"odd calldata", func(a *BuildTxArgs) { a.Input = "abc" }, FieldCalldata, common.ErrInvalidHex, ""},
		{"non hex calldata", func(a *BuildTxArgs) { a.Input = "zz" }, FieldCalldata, common.ErrInvalidHex, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			args := valid()
			test.modify(&args)
			tx, err := BuildTransaction(&args)
			require.Error(t, err)
			assert.Nil(t, tx)

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, test.field, fieldErr.Field)
			assert.True(t, errors.Is(err, test.cause), "err %v", err)
			if test.msg != "" {
				assert.EqualError(t, err, test.msg)
			}

			res, err := EncodeUnsigned(&args)
			assert.Error(t, err)
			assert.Nil(t, res)
		})
	}
}

func TestBuildTransactionFailsFast(t *testing.T) {
	args := BuildTxArgs{To: strPtr("0xabcd"), Nonce: "x", GasPrice: "y", Gas: "z", Value: strPtr("v"), Input: "abc"}
	order := []string{FieldTo, FieldValue, FieldGas, FieldGasPrice, FieldNonce, FieldCalldata}
	fixes := []func(*BuildTxArgs){
		func(a *BuildTxArgs) { a.To = nil },
		func(a *BuildTxArgs) { a.Value = nil },
		func(a *BuildTxArgs) { a.Gas = "1" },
		func(a *BuildTxArgs) { a.GasPrice = "1" },
		func(a *BuildTxArgs) { a.Nonce = "1" },
		func(a *BuildTxArgs) { a.Input = "" },
	}
	for i, field := range order {
		_, err := BuildTransaction(&args)
		var fieldErr *FieldError
		require.True(t, errors.As(err, &fieldErr), "step %d", i)
		assert.Equal(t, field, fieldErr.Field)
		fixes[i](&args)
	}
	tx, err := BuildTransaction(&args)
	require.NoError(t, err)
	assert.True(t, tx.Action().IsCreate())
}

func TestTransactionIsImmutable(t *testing.T) {
	nonce := uint256.NewInt(1)
	data := []byte{0x01, 0x02}
	to := common.Address{0x01}
	tx := NewTransaction(nonce, to, uint256.NewInt(2), uint256.NewInt(3), uint256.NewInt(4), data)
	want := tx.UnsignedBytes()

	nonce.SetUint64(100)
	data[0] = 0xff
	tx.Nonce().SetUint64(200)
	tx.Data()[1] = 0xff
	tx.To()[0] = 0xff
	tx.Value().SetUint64(300)
	tx.Gas().SetUint64(300)
	tx.GasPrice().SetUint64(300)

	assert.Equal(t, want, tx.UnsignedBytes())
	assert.Equal(t, uint256.NewInt(1), tx.Nonce())
	assert.Equal(t, []byte{0x01, 0x02}, tx.Data())
	assert.Equal(t, &to, tx.To())
}

func TestAction(t *testing.T) {
	var zero Action
	assert.True(t, zero.IsCreate())
	assert.True(t, CreateAction().IsCreate())
	assert.Nil(t, CreateAction().To())
	assert.Empty(t, CreateAction().Bytes())
	assert.Equal(t, "create", CreateAction().String())

	addr := common.Address{0xde, 0xad}
	call := CallAction(addr)
	assert.False(t, call.IsCreate())
	assert.Equal(t, &addr, call.To())
	assert.Equal(t, addr.Bytes(), call.Bytes())
	assert.Equal(t, "call "+addr.Hex(), call.String())

	// zero address is still a call and keeps all 20 bytes
	zeroCall := CallAction(common.Address{})
	assert.False(t, zeroCall.IsCreate())
	assert.Len(t, zeroCall.Bytes(), common.AddressLength)

	tx := NewTransactionWithAction(nil, nil, nil, zeroCall, nil, nil)
	assert.Equal(t, "da808080940000000000000000000000000000000000000000"+"8080", common.ToHex(tx.UnsignedBytes()))
}

func TestTransactionJSON(t *testing.T) {
	args := encodeTests[3].args
	tx, err := BuildTransaction(&args)
	require.NoError(t, err)
	want := `{"nonce":"9","gasPrice":"20000000000","gas":"21000",` +
		`"to":"0x3535353535353535353535353535353535353535","value":"1000000000000000000","input":"0x"}`
	bs, err := tx.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, want, string(bs))
	assert.JSONEq(t, want, tx.Pretty())

	creation := NewContractCreation(nil, nil, nil, nil, []byte{0x60})
	assert.Contains(t, creation.Pretty(), `"to": null`)
	assert.Contains(t, creation.Pretty(), `"input": "0x60"`)
}
