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
	"github.com/blinklabs-io/txbuilder/tx"
)

// collectAmount accumulates UTxOs, in the given order, until their combined
// amount reaches the target. For the base coin the effective target is
// amount+minChangeValue so that any change clears the dust floor, except
// that collection stops as soon as the running total exactly equals the
// requested amount (zero change is always acceptable). Non-base coins
// ignore minChangeValue. The caller owns the consumption order; the list is
// never re-sorted
func collectAmount(
	utxos []tx.Utxo,
	amount int64,
	minChangeValue int64,
) []tx.Utxo {
	var collected []tx.Utxo
	var collectedAmount int64
	amountPlusChange := amount
	if len(utxos) > 0 && utxos[0].Coin.IsLovelace() {
		amountPlusChange = amount + minChangeValue
	}
	for _, utxo := range utxos {
		if collectedAmount == amount {
			break
		}
		if collectedAmount >= amountPlusChange {
			break
		}
		collected = append(collected, utxo)
		collectedAmount += utxo.Amount
	}
	return collected
}
