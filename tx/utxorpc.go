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
	"encoding/hex"
	"fmt"

	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

// Utxorpc converts the record's physical output identity to a utxorpc
// transaction input
func (u Utxo) Utxorpc() (*utxorpc.TxInput, error) {
	txHashBytes, err := hex.DecodeString(u.TxHash)
	if err != nil {
		return nil, fmt.Errorf("decode tx hash %q: %w", u.TxHash, err)
	}
	return &utxorpc.TxInput{
		TxHash:      txHashBytes,
		OutputIndex: u.OutputIndex,
	}, nil
}

// UtxosUtxorpc converts a list of UTxO records to utxorpc transaction
// inputs, deduplicated by physical output identity in first-appearance order
func UtxosUtxorpc(utxos []Utxo) ([]*utxorpc.TxInput, error) {
	var ret []*utxorpc.TxInput
	seenIds := map[UtxoID]struct{}{}
	for _, utxo := range utxos {
		if _, ok := seenIds[utxo.ID()]; ok {
			continue
		}
		seenIds[utxo.ID()] = struct{}{}
		txInput, err := utxo.Utxorpc()
		if err != nil {
			return nil, err
		}
		ret = append(ret, txInput)
	}
	return ret, nil
}

// TxOutsUtxorpc converts balanced outputs to utxorpc transaction outputs.
// Per-coin records sharing an address are merged into one physical output
// with the lovelace amount in Coin and native assets grouped by policy ID.
// All amounts must be resolved and non-negative
func TxOutsUtxorpc(txouts []TxOut) ([]*utxorpc.TxOutput, error) {
	var addrOrder []string
	byAddr := map[string][]TxOut{}
	for _, txout := range txouts {
		if txout.Amount.IsAllRemaining() {
			return nil, fmt.Errorf(
				"unresolved all-remaining amount for address %s",
				txout.Address,
			)
		}
		if txout.Amount.Int64() < 0 {
			return nil, fmt.Errorf(
				"negative amount for address %s",
				txout.Address,
			)
		}
		if _, ok := byAddr[txout.Address]; !ok {
			addrOrder = append(addrOrder, txout.Address)
		}
		byAddr[txout.Address] = append(byAddr[txout.Address], txout)
	}
	var ret []*utxorpc.TxOutput
	for _, addr := range addrOrder {
		addrBytes, err := DecodeAddress(addr)
		if err != nil {
			return nil, fmt.Errorf("decode address %q: %w", addr, err)
		}
		txOutput := &utxorpc.TxOutput{
			Address: addrBytes,
		}
		var policyOrder []string
		assetsByPolicy := map[string]*utxorpc.Multiasset{}
		for _, txout := range byAddr[addr] {
			if txout.DatumHash != "" && txOutput.Datum == nil {
				datumHashBytes, err := hex.DecodeString(
					txout.DatumHash,
				)
				if err != nil {
					return nil, fmt.Errorf(
						"decode datum hash: %w",
						err,
					)
				}
				txOutput.Datum = &utxorpc.Datum{
					Hash: datumHashBytes,
				}
			}
			coin := txout.NormalCoin()
			if coin.IsLovelace() {
				txOutput.Coin += uint64(txout.Amount.Int64())
				continue
			}
			policyId := coin.PolicyId()
			policyIdBytes, err := hex.DecodeString(policyId)
			if err != nil {
				return nil, fmt.Errorf(
					"decode policy ID %q: %w",
					policyId,
					err,
				)
			}
			assetName, err := hex.DecodeString(coin.AssetNameHex())
			if err != nil {
				return nil, fmt.Errorf(
					"decode asset name for %q: %w",
					coin,
					err,
				)
			}
			ma, ok := assetsByPolicy[policyId]
			if !ok {
				ma = &utxorpc.Multiasset{
					PolicyId: policyIdBytes,
				}
				assetsByPolicy[policyId] = ma
				policyOrder = append(policyOrder, policyId)
			}
			ma.Assets = append(
				ma.Assets,
				&utxorpc.Asset{
					Name:       assetName,
					OutputCoin: uint64(txout.Amount.Int64()),
				},
			)
		}
		for _, policyId := range policyOrder {
			txOutput.Assets = append(
				txOutput.Assets,
				assetsByPolicy[policyId],
			)
		}
		ret = append(ret, txOutput)
	}
	return ret, nil
}
