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
	"fmt"
	"strings"

	"github.com/blinklabs-io/txbuilder/tx"
)

// TxInArgs serializes inputs as `--tx-in hash#index` argument pairs,
// deduplicated by physical output identity in first-appearance order
func TxInArgs(txIns []tx.Utxo) []string {
	var args []string
	seenIds := map[tx.UtxoID]struct{}{}
	for _, txIn := range txIns {
		if _, ok := seenIds[txIn.ID()]; ok {
			continue
		}
		seenIds[txIn.ID()] = struct{}{}
		args = append(args, "--tx-in", string(txIn.ID()))
	}
	return args
}

// TxOutArgs serializes balanced outputs as `--tx-out` arguments. With join
// set, outputs sharing a datum source and address are merged into a single
// `--tx-out ADDRESS+AMOUNT[+"AMOUNT COIN"...]` argument the way a single
// physical output carries multiple coins; otherwise each record gets its own
// argument. Datum and reference-script flags are appended per emitted output
func TxOutArgs(txouts []tx.TxOut, join bool) []string {
	if join {
		return joinTxOutArgs(txouts)
	}
	return listTxOutArgs(txouts)
}

func listTxOutArgs(txouts []tx.TxOut) []string {
	var args []string
	for _, txout := range txouts {
		args = append(
			args,
			"--tx-out",
			fmt.Sprintf("%s+%s", txout.Address, txOutAmount(txout)),
		)
		args = append(args, txOutDatumArgs(txout)...)
	}
	return args
}

func joinTxOutArgs(txouts []tx.TxOut) []string {
	// aggregate outputs by datum source and address, preserving the order
	// in which each datum source and address first appears
	var datumOrder []string
	byDatum := map[string]map[string][]tx.TxOut{}
	addrOrder := map[string][]string{}
	for _, txout := range txouts {
		datumSrc := txout.DatumSource()
		if _, ok := byDatum[datumSrc]; !ok {
			datumOrder = append(datumOrder, datumSrc)
			byDatum[datumSrc] = map[string][]tx.TxOut{}
		}
		byAddr := byDatum[datumSrc]
		if _, ok := byAddr[txout.Address]; !ok {
			addrOrder[datumSrc] = append(
				addrOrder[datumSrc],
				txout.Address,
			)
		}
		byAddr[txout.Address] = append(byAddr[txout.Address], txout)
	}

	var args []string
	for _, datumSrc := range datumOrder {
		for _, addr := range addrOrder[datumSrc] {
			recs := byDatum[datumSrc][addr]
			amounts := make([]string, 0, len(recs))
			for _, rec := range recs {
				amounts = append(amounts, txOutAmount(rec))
			}
			args = append(
				args,
				"--tx-out",
				fmt.Sprintf(
					"%s+%s",
					addr,
					strings.Join(amounts, "+"),
				),
			)
			args = append(args, txOutDatumArgs(recs[0])...)
		}
	}
	return args
}

func txOutAmount(txout tx.TxOut) string {
	if txout.NormalCoin().IsLovelace() {
		return txout.Amount.String()
	}
	return fmt.Sprintf("%s %s", txout.Amount, txout.Coin)
}

// txOutDatumArgs returns the datum and reference-script flags for an
// output. The datum fields are mutually exclusive, so only the first one
// set is emitted
func txOutDatumArgs(txout tx.TxOut) []string {
	var args []string
	switch {
	case txout.DatumHash != "":
		args = append(args, "--tx-out-datum-hash", txout.DatumHash)
	case txout.DatumHashFile != "":
		args = append(
			args,
			"--tx-out-datum-hash-file",
			txout.DatumHashFile,
		)
	case txout.DatumHashCborFile != "":
		args = append(
			args,
			"--tx-out-datum-hash-cbor-file",
			txout.DatumHashCborFile,
		)
	case txout.DatumHashValue != "":
		args = append(
			args,
			"--tx-out-datum-hash-value",
			txout.DatumHashValue,
		)
	case txout.InlineDatumFile != "":
		args = append(
			args,
			"--tx-out-inline-datum-file",
			txout.InlineDatumFile,
		)
	case txout.InlineDatumCborFile != "":
		args = append(
			args,
			"--tx-out-inline-datum-cbor-file",
			txout.InlineDatumCborFile,
		)
	case txout.InlineDatumValue != "":
		args = append(
			args,
			"--tx-out-inline-datum-value",
			txout.InlineDatumValue,
		)
	}
	if txout.ReferenceScriptFile != "" {
		args = append(
			args,
			"--tx-out-reference-script-file",
			txout.ReferenceScriptFile,
		)
	}
	return args
}
