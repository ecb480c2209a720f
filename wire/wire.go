package wire

import (
	"bytes"
	"encoding/json"

	amino "github.com/tendermint/go-amino"
	cryptoAmino "github.com/tendermint/tendermint/crypto/encoding/amino"
)

// Codec is the amino codec every store value and query response goes through.
type Codec = amino.Codec

func NewCodec() *Codec {
	return amino.NewCodec()
}

// RegisterCrypto registers the key types addresses are derived from.
func RegisterCrypto(cdc *Codec) {
	cryptoAmino.RegisterAmino(cdc)
}

// MarshalJSONIndent is cdc.MarshalJSON with two-space indentation, the shape of
// every query response.
func MarshalJSONIndent(cdc *Codec, obj interface{}) ([]byte, error) {
	bz, err := cdc.MarshalJSON(obj)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err = json.Indent(&out, bz, "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
