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
	"sort"

	"github.com/blinklabs-io/txbuilder/tx"
)

// SelectParams carries the per-coin groupings and transaction-level values
// needed to select covering inputs
type SelectParams struct {
	// Inputs are the available UTxOs grouped by coin
	Inputs map[tx.Coin][]tx.Utxo
	// Outputs are the requested outputs grouped by coin
	Outputs map[tx.Coin][]tx.TxOut
	// Mint are the mint/burn instructions grouped by coin
	Mint map[tx.Coin][]tx.TxOut
	// Withdrawals must already be resolved (no AllRemaining amounts)
	Withdrawals    []tx.Withdrawal
	Fee            int64
	Deposit        int64
	MinChangeValue int64
}

// SelectInputs chooses the physical outputs needed to satisfy all requested
// outputs, mint/burn instructions, the fee and the deposit. It returns the
// identities of the selected outputs; the caller re-expands each identity to
// the full set of coin records it holds.
//
// For a coin with an AllRemaining output every available input of that coin
// is selected. Otherwise a greedy collection runs over the coin's inputs in
// their given order until the funds needed are covered
func SelectInputs(params SelectParams) map[tx.UtxoID]struct{} {
	utxoIds := map[tx.UtxoID]struct{}{}

	for _, coin := range coinUnion(params.Inputs, params.Outputs, params.Mint) {
		coinTxIns := params.Inputs[coin]
		coinTxOuts := params.Outputs[coin]

		if hasAllRemaining(coinTxOuts) {
			for _, rec := range coinTxIns {
				utxoIds[rec.ID()] = struct{}{}
			}
			continue
		}

		totalOutputAmount := tx.TxOutTotal(coinTxOuts)

		var inputFundsNeeded int64
		if coin.IsLovelace() {
			// the fee always needs an input, even when withdrawals
			// would cover everything else
			txFee := max(params.Fee, 1)
			fundsNeeded := totalOutputAmount + txFee + params.Deposit
			totalWithdrawals := tx.WithdrawalTotal(params.Withdrawals)
			inputFundsNeeded = max(fundsNeeded-totalWithdrawals, txFee)
		} else {
			// burning may cover part or all of a token transfer, so
			// collect enough to satisfy both together
			totalMintedAmount := tx.TxOutTotal(params.Mint[coin])
			inputFundsNeeded = max(totalOutputAmount-totalMintedAmount, 0)
		}

		collected := collectAmount(
			coinTxIns,
			inputFundsNeeded,
			params.MinChangeValue,
		)
		for _, rec := range collected {
			utxoIds[rec.ID()] = struct{}{}
		}
	}

	return utxoIds
}

// hasAllRemaining returns whether any of the outputs requests all remaining
// funds of its coin
func hasAllRemaining(txouts []tx.TxOut) bool {
	for _, txout := range txouts {
		if txout.Amount.IsAllRemaining() {
			return true
		}
	}
	return false
}

// coinUnion returns every coin present in any of the given groupings. The
// result is ordered with lovelace first and the remaining coins sorted, so
// selection and balancing behave deterministically
func coinUnion(
	inputs map[tx.Coin][]tx.Utxo,
	outputs map[tx.Coin][]tx.TxOut,
	mint map[tx.Coin][]tx.TxOut,
) []tx.Coin {
	coinSet := map[tx.Coin]struct{}{}
	for coin := range inputs {
		coinSet[coin] = struct{}{}
	}
	for coin := range outputs {
		coinSet[coin] = struct{}{}
	}
	for coin := range mint {
		coinSet[coin] = struct{}{}
	}
	var coins []tx.Coin
	for coin := range coinSet {
		if coin.IsLovelace() {
			continue
		}
		coins = append(coins, coin)
	}
	sort.Slice(coins, func(i, j int) bool {
		return coins[i] < coins[j]
	})
	if _, ok := coinSet[tx.CoinLovelace]; ok {
		coins = append([]tx.Coin{tx.CoinLovelace}, coins...)
	}
	return coins
}
