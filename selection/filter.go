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

// UtxosWithCoins returns the UTxO records needed to cover the requested
// coins. Spending a physical output spends every coin it holds, so for each
// output identity holding at least one requested coin the full record group
// is returned, at the position of its first qualifying appearance. Each
// identity contributes its group at most once
func UtxosWithCoins(addressUtxos []tx.Utxo, coins []tx.Coin) []tx.Utxo {
	coinSet := make(map[tx.Coin]struct{}, len(coins))
	for _, coin := range coins {
		coinSet[coin] = struct{}{}
	}
	utxosById := tx.GroupUtxosByID(addressUtxos)

	var txIns []tx.Utxo
	seenIds := map[tx.UtxoID]struct{}{}
	for _, rec := range addressUtxos {
		if _, wanted := coinSet[rec.Coin]; !wanted {
			continue
		}
		if _, seen := seenIds[rec.ID()]; seen {
			continue
		}
		seenIds[rec.ID()] = struct{}{}
		txIns = append(txIns, utxosById[rec.ID()]...)
	}
	return txIns
}
