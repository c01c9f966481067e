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

package cardanocli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/blinklabs-io/txbuilder/tx"
)

// utxoEntry is the per-output value of a `query utxo` JSON result
type utxoEntry struct {
	Address string `json:"address"`
	// Value maps "lovelace" or a policy ID to the amounts held
	Value map[string]json.RawMessage `json:"value"`
	// The datum hash has appeared under both keys across cardano-cli
	// versions
	Data      json.RawMessage `json:"data"`
	DatumHash string          `json:"datumhash"`
}

// DecodeUtxos parses a `cardano-cli query utxo` JSON result, keyed by
// "hash#index", into per-coin UTxO records in the order the query returned
// them. A physical output holding N coins yields N records sharing one
// identity. When coins are given, only records of those coins are returned
// (after full parsing, so identities stay intact for later re-expansion)
func DecodeUtxos(
	data []byte,
	address string,
	coins ...tx.Coin,
) ([]tx.Utxo, error) {
	// decode via token walk to preserve the query's output order, which
	// callers rely on as the default input-consumption order
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode utxo result: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("unexpected utxo result shape")
	}

	var utxos []tx.Utxo
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode utxo result: %w", err)
		}
		utxoRec, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected utxo key %v", tok)
		}
		var entry utxoEntry
		if err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf(
				"decode utxo %s: %w",
				utxoRec,
				err,
			)
		}
		entryUtxos, err := decodeUtxoEntry(utxoRec, entry, address)
		if err != nil {
			return nil, err
		}
		utxos = append(utxos, entryUtxos...)
	}

	if len(coins) > 0 {
		coinSet := make(map[tx.Coin]struct{}, len(coins))
		for _, coin := range coins {
			coinSet[coin] = struct{}{}
		}
		var filtered []tx.Utxo
		for _, utxo := range utxos {
			if _, ok := coinSet[utxo.Coin]; ok {
				filtered = append(filtered, utxo)
			}
		}
		return filtered, nil
	}

	return utxos, nil
}

func decodeUtxoEntry(
	utxoRec string,
	entry utxoEntry,
	address string,
) ([]tx.Utxo, error) {
	utxoHash, utxoIxRaw, found := strings.Cut(utxoRec, "#")
	if !found {
		return nil, fmt.Errorf("malformed utxo key %q", utxoRec)
	}
	utxoIx, err := strconv.ParseUint(utxoIxRaw, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("malformed utxo index %q: %w", utxoRec, err)
	}

	utxoAddress := entry.Address
	if address != "" {
		utxoAddress = address
	}
	datumHash := entry.DatumHash
	if datumHash == "" && len(entry.Data) > 0 {
		// older versions report the hash as a plain string under "data"
		_ = json.Unmarshal(entry.Data, &datumHash)
	}

	var utxos []tx.Utxo
	for _, policyId := range policyOrder(entry.Value) {
		coinData := entry.Value[policyId]
		if tx.Coin(policyId).IsLovelace() {
			var amount int64
			if err := json.Unmarshal(coinData, &amount); err != nil {
				return nil, fmt.Errorf(
					"decode lovelace amount for %s: %w",
					utxoRec,
					err,
				)
			}
			utxos = append(utxos, tx.Utxo{
				TxHash:      utxoHash,
				// #nosec G115 -- parsed with a 32-bit size limit
				OutputIndex: uint32(utxoIx),
				Address:     utxoAddress,
				Amount:      amount,
				Coin:        tx.CoinLovelace,
				DatumHash:   datumHash,
			})
			continue
		}

		assets, err := decodeAssetAmounts(coinData)
		if err != nil {
			return nil, fmt.Errorf(
				"decode assets for %s policy %s: %w",
				utxoRec,
				policyId,
				err,
			)
		}
		for _, asset := range assets {
			coin := tx.Coin(policyId)
			if asset.NameHex != "" {
				coin = tx.Coin(policyId + "." + asset.NameHex)
			}
			decodedCoin := ""
			if asset.NameHex == "" {
				decodedCoin = policyId
			} else if name := coin.AssetName(); name != "" {
				decodedCoin = policyId + "." + name
			}
			// display only, like DecodedCoin
			fingerprint, _ := coin.Fingerprint()
			utxos = append(utxos, tx.Utxo{
				TxHash: utxoHash,
				// #nosec G115 -- parsed with a 32-bit size limit
				OutputIndex: uint32(utxoIx),
				Address:     utxoAddress,
				Amount:      asset.Amount,
				Coin:        coin,
				DecodedCoin: decodedCoin,
				Fingerprint: fingerprint,
				DatumHash:   datumHash,
			})
		}
	}
	return utxos, nil
}

// policyOrder returns the value's keys with lovelace first and policies
// sorted, since JSON object order is not observable through a Go map
func policyOrder(value map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(value))
	for key := range value {
		if tx.Coin(key).IsLovelace() {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for key := range value {
		if tx.Coin(key).IsLovelace() {
			keys = append([]string{key}, keys...)
			break
		}
	}
	return keys
}

type assetAmount struct {
	NameHex string
	Amount  int64
}

// decodeAssetAmounts accepts the two shapes cardano-cli has used for
// per-asset amounts: a name-keyed object in older versions and a list of
// [name, amount] pairs in current ones. Both normalize to the same internal
// representation
func decodeAssetAmounts(data []byte) ([]assetAmount, error) {
	var keyed map[string]int64
	if err := json.Unmarshal(data, &keyed); err == nil {
		names := make([]string, 0, len(keyed))
		for name := range keyed {
			names = append(names, name)
		}
		sort.Strings(names)
		assets := make([]assetAmount, 0, len(names))
		for _, name := range names {
			assets = append(assets, assetAmount{
				NameHex: name,
				Amount:  keyed[name],
			})
		}
		return assets, nil
	}

	var pairs [][2]json.RawMessage
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, err
	}
	assets := make([]assetAmount, 0, len(pairs))
	for _, pair := range pairs {
		var name string
		if err := json.Unmarshal(pair[0], &name); err != nil {
			return nil, err
		}
		var amount int64
		if err := json.Unmarshal(pair[1], &amount); err != nil {
			return nil, err
		}
		assets = append(assets, assetAmount{
			NameHex: name,
			Amount:  amount,
		})
	}
	return assets, nil
}
