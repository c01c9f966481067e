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

// TxOut is a desired transaction output: an amount of a single coin sent to
// an address, with optional datum and reference-script attachments. The
// datum fields are mutually exclusive; at most one may be set.
//
// TxOut also doubles as a mint/burn instruction, in which case the amount is
// the (possibly negative) supply adjustment and AllRemaining is invalid
type TxOut struct {
	Address string `json:"address"`
	Amount  Amount `json:"amount"`
	// Coin defaults to lovelace when empty
	Coin Coin `json:"coin,omitempty"`

	DatumHash         string `json:"datumHash,omitempty"`
	DatumHashFile     string `json:"datumHashFile,omitempty"`
	DatumHashCborFile string `json:"datumHashCborFile,omitempty"`
	DatumHashValue    string `json:"datumHashValue,omitempty"`

	InlineDatumFile     string `json:"inlineDatumFile,omitempty"`
	InlineDatumCborFile string `json:"inlineDatumCborFile,omitempty"`
	InlineDatumValue    string `json:"inlineDatumValue,omitempty"`

	ReferenceScriptFile string `json:"referenceScriptFile,omitempty"`
}

// NormalCoin returns the output's coin with the empty value normalized to
// lovelace
func (t TxOut) NormalCoin() Coin {
	if t.Coin == "" {
		return CoinLovelace
	}
	return t.Coin
}

// DatumSource returns the first datum field that is set. Outputs sharing a
// datum source and address may be joined into a single physical output
func (t TxOut) DatumSource() string {
	for _, src := range []string{
		t.DatumHash,
		t.DatumHashFile,
		t.DatumHashCborFile,
		t.DatumHashValue,
		t.InlineDatumFile,
		t.InlineDatumCborFile,
		t.InlineDatumValue,
	} {
		if src != "" {
			return src
		}
	}
	return ""
}

// GroupTxOutsByCoin partitions outputs by coin, preserving output order
// within each coin's bucket. Empty coins group under lovelace
func GroupTxOutsByCoin(txouts []TxOut) map[Coin][]TxOut {
	groups := map[Coin][]TxOut{}
	for _, txout := range txouts {
		coin := txout.NormalCoin()
		groups[coin] = append(groups[coin], txout)
	}
	return groups
}

// TxOutTotal returns the combined exact amount of the given outputs.
// AllRemaining amounts contribute zero
func TxOutTotal(txouts []TxOut) int64 {
	var total int64
	for _, txout := range txouts {
		total += txout.Amount.Int64()
	}
	return total
}
