// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hashing

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/edtubbs/dogecoin/lib/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewHMACSHA512(t *testing.T) {
	t.Parallel()

	// RFC 4231 test case 1
	mac := NewHMACSHA512(bytes.Repeat([]byte{0x0b}, 20))
	_, err := mac.Write([]byte("Hi There"))
	require.NoError(t, err)

	expected := common.MustHexToBytes("0x87aa7cdea5ef619d4ff0b4241a1d6cb02379f4e2ce4ec2787ad0b30545e17cde" +
		"daa833b7d6b8a702038b274eaea3f4e4be9d914eeb61f1702e696c203a126854")
	assert.Equal(t, expected, mac.Sum(nil))
}

func Test_BIP32Hash_hardenedChild(t *testing.T) {
	t.Parallel()

	// BIP32 test vector 1, chain m -> m/0H
	chainCode := common.MustHexToHash("0x873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508")
	parentKey := common.MustHexToHash("0xe8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35")
	expectedChainCode := common.MustHexToHash("0x47fdacbd0f1097043b78c63c20c34ef4ed9a111d980047ad16282c7ae6236141")
	expectedChildKey := common.MustHexToHash("0xedb2e14f9ee77d26dd93b4ecede8d16ed408ce149b6cd80b0715a2d911a0afea")

	key := [32]byte(parentKey)
	out := BIP32Hash(chainCode, 0x80000000, 0x00, &key)

	assert.Equal(t, expectedChainCode, out.Right())

	// child key = IL + parent key mod n
	curveOrder, ok := new(big.Int).SetString(
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)
	require.True(t, ok)
	il := out.Left()
	childKey := new(big.Int).Add(new(big.Int).SetBytes(il[:]), new(big.Int).SetBytes(parentKey[:]))
	childKey.Mod(childKey, curveOrder)

	var childKeyBytes [32]byte
	childKey.FillBytes(childKeyBytes[:])
	assert.Equal(t, expectedChildKey, common.Hash(childKeyBytes))
}

func Test_BIP32Hash_childIndexIsBigEndian(t *testing.T) {
	t.Parallel()

	var chainCode common.Hash
	var data [32]byte

	a := BIP32Hash(chainCode, 1, 0x02, &data)
	b := BIP32Hash(chainCode, 1<<24, 0x02, &data)

	mac := NewHMACSHA512(chainCode[:])
	msg := append([]byte{0x02}, data[:]...)
	msg = append(msg, 0x00, 0x00, 0x00, 0x01)
	_, _ = mac.Write(msg)

	assert.Equal(t, mac.Sum(nil), a[:])
	assert.NotEqual(t, a, b)
}
