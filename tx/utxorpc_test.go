// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tx

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBech32Addr encodes raw address bytes as a bech32 test address
func testBech32Addr(t *testing.T, addrBytes []byte) string {
	t.Helper()
	convData, err := bech32.ConvertBits(addrBytes, 8, 5, true)
	require.NoError(t, err)
	encoded, err := bech32.Encode("addr_test", convData)
	require.NoError(t, err)
	return encoded
}

func TestUtxoUtxorpc(t *testing.T) {
	utxo := Utxo{
		TxHash:      "abcd1234",
		OutputIndex: 2,
		Amount:      1000000,
		Coin:        CoinLovelace,
	}
	txInput, err := utxo.Utxorpc()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xab, 0xcd, 0x12, 0x34}, txInput.TxHash)
	assert.Equal(t, uint32(2), txInput.OutputIndex)
}

func TestUtxosUtxorpcDedup(t *testing.T) {
	// two coin records on the same physical output yield one input
	utxos := []Utxo{
		{TxHash: "aa", OutputIndex: 0, Amount: 10, Coin: CoinLovelace},
		{TxHash: "aa", OutputIndex: 0, Amount: 5, Coin: testCoinToken},
		{TxHash: "bb", OutputIndex: 1, Amount: 20, Coin: CoinLovelace},
	}
	txInputs, err := UtxosUtxorpc(utxos)
	require.NoError(t, err)
	require.Len(t, txInputs, 2)
	assert.Equal(t, []byte{0xaa}, txInputs[0].TxHash)
	assert.Equal(t, []byte{0xbb}, txInputs[1].TxHash)
}

func TestUtxosUtxorpcBadHash(t *testing.T) {
	_, err := UtxosUtxorpc([]Utxo{
		{TxHash: "not-hex", OutputIndex: 0, Coin: CoinLovelace},
	})
	assert.Error(t, err)
}

func TestTxOutsUtxorpc(t *testing.T) {
	addr1Bytes := bytes.Repeat([]byte{0x01}, 29)
	addr2Bytes := bytes.Repeat([]byte{0x02}, 29)
	addr1 := testBech32Addr(t, addr1Bytes)
	addr2 := testBech32Addr(t, addr2Bytes)

	txouts := []TxOut{
		{Address: addr1, Amount: NewAmount(2000000)},
		{Address: addr1, Amount: NewAmount(7), Coin: testCoinToken},
		{Address: addr2, Amount: NewAmount(5000000)},
	}
	txOutputs, err := TxOutsUtxorpc(txouts)
	require.NoError(t, err)
	require.Len(t, txOutputs, 2)

	assert.Equal(t, addr1Bytes, txOutputs[0].Address)
	assert.Equal(t, uint64(2000000), txOutputs[0].Coin)
	require.Len(t, txOutputs[0].Assets, 1)
	require.Len(t, txOutputs[0].Assets[0].Assets, 1)
	assert.Equal(
		t,
		uint64(7),
		txOutputs[0].Assets[0].Assets[0].OutputCoin,
	)
	assert.Equal(
		t,
		[]byte("furnisha29hn"),
		txOutputs[0].Assets[0].Assets[0].Name,
	)

	assert.Equal(t, addr2Bytes, txOutputs[1].Address)
	assert.Equal(t, uint64(5000000), txOutputs[1].Coin)
	assert.Empty(t, txOutputs[1].Assets)
}

func TestTxOutsUtxorpcDatumHash(t *testing.T) {
	addr := testBech32Addr(t, bytes.Repeat([]byte{0x03}, 29))
	txOutputs, err := TxOutsUtxorpc([]TxOut{
		{
			Address:   addr,
			Amount:    NewAmount(1000000),
			DatumHash: "cafe01",
		},
	})
	require.NoError(t, err)
	require.Len(t, txOutputs, 1)
	require.NotNil(t, txOutputs[0].Datum)
	assert.Equal(t, []byte{0xca, 0xfe, 0x01}, txOutputs[0].Datum.Hash)
}

func TestTxOutsUtxorpcUnresolved(t *testing.T) {
	addr := testBech32Addr(t, bytes.Repeat([]byte{0x04}, 29))
	_, err := TxOutsUtxorpc([]TxOut{
		{Address: addr, Amount: AmountAllRemaining()},
	})
	assert.Error(t, err)
}

func TestDecodeAddress(t *testing.T) {
	addrBytes := bytes.Repeat([]byte{0x05}, 29)
	addr := testBech32Addr(t, addrBytes)
	decoded, err := DecodeAddress(addr)
	require.NoError(t, err)
	assert.Equal(t, addrBytes, decoded)
	assert.True(t, ValidAddress(addr))
	assert.False(t, ValidAddress(""))
	assert.False(t, ValidAddress("addr_test1qqqqqq"))
}
