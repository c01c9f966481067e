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

package selection

import (
	"testing"

	"github.com/blinklabs-io/txbuilder/tx"
	"github.com/stretchr/testify/assert"
)

func TestSelectInputsBaseCoin(t *testing.T) {
	inputs := map[tx.Coin][]tx.Utxo{
		tx.CoinLovelace: {
			{TxHash: "aa", OutputIndex: 0, Amount: 500, Coin: tx.CoinLovelace},
			{TxHash: "bb", OutputIndex: 0, Amount: 500, Coin: tx.CoinLovelace},
			{TxHash: "cc", OutputIndex: 0, Amount: 500, Coin: tx.CoinLovelace},
		},
	}
	outputs := map[tx.Coin][]tx.TxOut{
		tx.CoinLovelace: {
			{Address: "addr1", Amount: tx.NewAmount(600)},
		},
	}
	selected := SelectInputs(SelectParams{
		Inputs:  inputs,
		Outputs: outputs,
		Fee:     10,
	})
	// 600 + 10 fee needs two of the 500-lovelace outputs
	assert.Len(t, selected, 2)
	assert.Contains(t, selected, tx.UtxoID("aa#0"))
	assert.Contains(t, selected, tx.UtxoID("bb#0"))
}

func TestSelectInputsFeeAlwaysNeedsInput(t *testing.T) {
	inputs := map[tx.Coin][]tx.Utxo{
		tx.CoinLovelace: {
			{TxHash: "aa", OutputIndex: 0, Amount: 500, Coin: tx.CoinLovelace},
		},
	}
	outputs := map[tx.Coin][]tx.TxOut{
		tx.CoinLovelace: {
			{Address: "addr1", Amount: tx.NewAmount(100)},
		},
	}
	// withdrawals cover the outputs, but the fee still needs an input
	selected := SelectInputs(SelectParams{
		Inputs:  inputs,
		Outputs: outputs,
		Withdrawals: []tx.Withdrawal{
			{Address: "stake1", Amount: tx.NewAmount(100000)},
		},
		Fee: 10,
	})
	assert.Len(t, selected, 1)
}

func TestSelectInputsAllRemaining(t *testing.T) {
	inputs := map[tx.Coin][]tx.Utxo{
		tx.CoinLovelace: {
			{TxHash: "aa", OutputIndex: 0, Amount: 500, Coin: tx.CoinLovelace},
			{TxHash: "bb", OutputIndex: 0, Amount: 500, Coin: tx.CoinLovelace},
			{TxHash: "cc", OutputIndex: 0, Amount: 500, Coin: tx.CoinLovelace},
		},
	}
	outputs := map[tx.Coin][]tx.TxOut{
		tx.CoinLovelace: {
			{Address: "addr1", Amount: tx.AmountAllRemaining()},
		},
	}
	// an AllRemaining output takes every input of its coin
	selected := SelectInputs(SelectParams{
		Inputs:  inputs,
		Outputs: outputs,
	})
	assert.Len(t, selected, 3)
}

func TestSelectInputsBurnCoversTransfer(t *testing.T) {
	inputs := map[tx.Coin][]tx.Utxo{
		testToken: {
			{TxHash: "aa", OutputIndex: 0, Amount: 60, Coin: testToken},
			{TxHash: "bb", OutputIndex: 0, Amount: 60, Coin: testToken},
		},
	}
	outputs := map[tx.Coin][]tx.TxOut{
		testToken: {
			{Address: "addr1", Amount: tx.NewAmount(20), Coin: testToken},
		},
	}
	mint := map[tx.Coin][]tx.TxOut{
		testToken: {
			// burning 50 does not reduce the inputs needed for the
			// 20-token transfer below zero
			{Address: "addr1", Amount: tx.NewAmount(-50), Coin: testToken},
		},
	}
	selected := SelectInputs(SelectParams{
		Inputs:  inputs,
		Outputs: outputs,
		Mint:    mint,
	})
	// burn -50 raises the needed amount to 20-(-50) = 70
	assert.Len(t, selected, 2)
}

func TestSelectInputsMintCoversOutput(t *testing.T) {
	inputs := map[tx.Coin][]tx.Utxo{
		testToken: {
			{TxHash: "aa", OutputIndex: 0, Amount: 60, Coin: testToken},
		},
	}
	outputs := map[tx.Coin][]tx.TxOut{
		testToken: {
			{Address: "addr1", Amount: tx.NewAmount(20), Coin: testToken},
		},
	}
	mint := map[tx.Coin][]tx.TxOut{
		testToken: {
			{Address: "addr1", Amount: tx.NewAmount(100), Coin: testToken},
		},
	}
	// minting covers the transfer entirely; no token inputs needed
	selected := SelectInputs(SelectParams{
		Inputs:  inputs,
		Outputs: outputs,
		Mint:    mint,
	})
	assert.Empty(t, selected)
}

func TestCoinUnionOrder(t *testing.T) {
	inputs := map[tx.Coin][]tx.Utxo{
		"ffff.00":       nil,
		tx.CoinLovelace: nil,
		"aaaa.00":       nil,
	}
	outputs := map[tx.Coin][]tx.TxOut{
		"cccc.00": nil,
	}
	coins := coinUnion(inputs, outputs, nil)
	assert.Equal(
		t,
		[]tx.Coin{tx.CoinLovelace, "aaaa.00", "cccc.00", "ffff.00"},
		coins,
	)
}
