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
	"fmt"
)

// UtxoID identifies a physical transaction output as "hash#index". A single
// physical output holding multiple coin types appears as multiple Utxo
// records sharing one UtxoID
type UtxoID string

// NewUtxoID builds a UtxoID from a transaction hash and output index
func NewUtxoID(txHash string, outputIndex uint32) UtxoID {
	return UtxoID(fmt.Sprintf("%s#%d", txHash, outputIndex))
}

// Utxo is a single-coin view of an unspent transaction output as returned by
// a ledger query. Records are never mutated after decoding
type Utxo struct {
	TxHash      string `json:"txHash"`
	OutputIndex uint32 `json:"outputIndex"`
	Address     string `json:"address"`
	Amount      int64  `json:"amount"`
	Coin        Coin   `json:"coin"`
	// DecodedCoin is the human-readable "policyId.assetName" form of the
	// coin, present only when the asset name hex-decodes to valid UTF-8.
	// It has no bearing on coin equality or selection
	DecodedCoin string `json:"decodedCoin,omitempty"`
	// Fingerprint is the CIP-14 form of an asset coin, for display only
	Fingerprint string `json:"fingerprint,omitempty"`
	DatumHash   string `json:"datumHash,omitempty"`
}

// ID returns the physical output identity of the record
func (u Utxo) ID() UtxoID {
	return NewUtxoID(u.TxHash, u.OutputIndex)
}

func (u Utxo) String() string {
	return fmt.Sprintf("%s:%s:%d", u.ID(), u.Coin, u.Amount)
}

// GroupUtxosByCoin partitions UTxO records by coin, preserving record order
// within each coin's bucket
func GroupUtxosByCoin(utxos []Utxo) map[Coin][]Utxo {
	groups := map[Coin][]Utxo{}
	for _, utxo := range utxos {
		groups[utxo.Coin] = append(groups[utxo.Coin], utxo)
	}
	return groups
}

// GroupUtxosByID partitions UTxO records by physical output identity,
// preserving record order within each identity's bucket. This is how the
// "one physical output, many coins" relationship is recovered
func GroupUtxosByID(utxos []Utxo) map[UtxoID][]Utxo {
	groups := map[UtxoID][]Utxo{}
	for _, utxo := range utxos {
		groups[utxo.ID()] = append(groups[utxo.ID()], utxo)
	}
	return groups
}

// UtxoTotal returns the combined amount of the given records
func UtxoTotal(utxos []Utxo) int64 {
	var total int64
	for _, utxo := range utxos {
		total += utxo.Amount
	}
	return total
}
