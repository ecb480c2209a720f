package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func TestLayoutWriter(t *testing.T) {
	addr := sdk.AccAddress([]byte{1, 2, 3})
	bz := NewLayoutWriter(0).
		PutIdentity(addr).
		PutMint("UA").
		PutUint8(10).
		PutUint16(30).
		PutUint64(1).
		PutInt64(-1).
		PutBool(true).
		PutString("hi", 4).
		Bytes()

	require.Len(t, bz, 32+32+1+2+8+8+1+4+4)
	require.Equal(t, []byte{1, 2, 3, 0}, bz[:4])
	require.Equal(t, byte('U'), bz[32])
	require.Equal(t, byte(10), bz[64])
	require.Equal(t, []byte{30, 0}, bz[65:67])
	require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, bz[67:75])
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, bz[75:83])
	require.Equal(t, byte(1), bz[83])
	require.Equal(t, []byte{2, 0, 0, 0, 'h', 'i', 0, 0}, bz[84:])
}
