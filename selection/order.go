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

// Ordering arranges a coin's available UTxOs before greedy collection
// consumes them. The collector itself never re-sorts, so the ordering fully
// determines which inputs get picked
type Ordering func(utxos []tx.Utxo) []tx.Utxo

// OrderAsQueried keeps the ledger-query order. This is the default and
// matches the historical behavior, at the cost of selection results
// depending on whatever order the query returned
func OrderAsQueried(utxos []tx.Utxo) []tx.Utxo {
	return utxos
}

// OrderLargestFirst consumes the largest UTxOs first, minimizing the number
// of inputs
func OrderLargestFirst(utxos []tx.Utxo) []tx.Utxo {
	ordered := make([]tx.Utxo, len(utxos))
	copy(ordered, utxos)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Amount > ordered[j].Amount
	})
	return ordered
}

// OrderSmallestFirst consumes the smallest UTxOs first, sweeping up dust at
// the cost of more inputs
func OrderSmallestFirst(utxos []tx.Utxo) []tx.Utxo {
	ordered := make([]tx.Utxo, len(utxos))
	copy(ordered, utxos)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Amount < ordered[j].Amount
	})
	return ordered
}
