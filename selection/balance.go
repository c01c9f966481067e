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
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/txbuilder/tx"
	"github.com/jinzhu/copier"
)

// BalanceParams carries the selected inputs, requested outputs and
// transaction-level values needed to balance a transaction
type BalanceParams struct {
	// SrcAddress receives change when no AllRemaining output overrides it
	SrcAddress string
	// TxOuts are the requested outputs in their original order
	TxOuts []tx.TxOut
	// Inputs are the selected UTxOs grouped by coin
	Inputs map[tx.Coin][]tx.Utxo
	// Outputs are the requested outputs grouped by coin
	Outputs map[tx.Coin][]tx.TxOut
	// Mint are the mint/burn instructions grouped by coin
	Mint map[tx.Coin][]tx.TxOut
	// Withdrawals must already be resolved (no AllRemaining amounts)
	Withdrawals []tx.Withdrawal
	Fee         int64
	Deposit     int64
	// LovelaceBalanced skips base-coin balancing when change is computed
	// elsewhere, e.g. by `cardano-cli transaction build`
	LovelaceBalanced bool
	Logger           *slog.Logger
}

// BalanceOutputs appends a change output for every coin whose selected
// inputs (plus withdrawals and minted amounts) exceed its requested outputs
// (plus fee and deposit for the base coin). An AllRemaining output redirects
// the coin's change to its address; requesting AllRemaining for the same
// coin more than once is an error. Negative change produces a warning and no
// output. Outputs with non-positive or unresolved amounts are filtered from
// the result
func BalanceOutputs(
	params BalanceParams,
) ([]tx.TxOut, []tx.Warning, error) {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// work on a deep copy so the caller's outputs are never mutated
	var balanced []tx.TxOut
	if err := copier.Copy(&balanced, &params.TxOuts); err != nil {
		return nil, nil, fmt.Errorf("copy outputs: %w", err)
	}

	var warnings []tx.Warning
	for _, coin := range coinUnion(params.Inputs, params.Outputs, params.Mint) {
		coinTxIns := params.Inputs[coin]
		coinTxOuts := params.Outputs[coin]

		changeAddress, err := changeTarget(coin, coinTxOuts)
		if err != nil {
			return nil, nil, err
		}
		if changeAddress == "" {
			changeAddress = params.SrcAddress
		}

		totalInputAmount := tx.UtxoTotal(coinTxIns)
		totalOutputAmount := tx.TxOutTotal(coinTxOuts)

		var change int64
		switch {
		case coin.IsLovelace() && params.LovelaceBalanced:
			// balancing is delegated to the external build command

		case coin.IsLovelace():
			txFee := max(params.Fee, 0)
			totalWithdrawals := tx.WithdrawalTotal(params.Withdrawals)
			fundsAvailable := totalInputAmount + totalWithdrawals
			fundsNeeded := totalOutputAmount + txFee + params.Deposit
			change = fundsAvailable - fundsNeeded
			if change < 0 {
				logger.Error(
					"not enough funds to make the transaction",
					"available", fundsAvailable,
					"needed", fundsNeeded,
				)
				warnings = append(warnings, tx.Warning{
					Code:      tx.WarningInsufficientFunds,
					Coin:      tx.CoinLovelace,
					Available: fundsAvailable,
					Needed:    fundsNeeded,
					Message:   "not enough funds to make the transaction",
				})
			}

		default:
			totalMintedAmount := tx.TxOutTotal(params.Mint[coin])
			fundsAvailable := totalInputAmount + totalMintedAmount
			change = fundsAvailable - totalOutputAmount
			if change < 0 {
				logger.Error(
					"insufficient amount of coin",
					"coin", coin.String(),
					"available", fundsAvailable,
					"needed", totalOutputAmount,
				)
				warnings = append(warnings, tx.Warning{
					Code:      tx.WarningInsufficientFunds,
					Coin:      coin,
					Available: fundsAvailable,
					Needed:    totalOutputAmount,
					Message:   "insufficient amount of coin",
				})
			}
		}

		if change > 0 {
			balanced = append(balanced, tx.TxOut{
				Address: changeAddress,
				Amount:  tx.NewAmount(change),
				Coin:    coin,
			})
		}
	}

	// drop residual AllRemaining placeholders and non-positive amounts
	// (token burns and zero change)
	var filtered []tx.TxOut
	for _, txout := range balanced {
		if txout.Amount.IsAllRemaining() {
			continue
		}
		if txout.Amount.Int64() <= 0 {
			continue
		}
		filtered = append(filtered, txout)
	}

	return filtered, warnings, nil
}

// changeTarget returns the change address requested by a coin's single
// AllRemaining output, if any. More than one AllRemaining output for the
// same coin is an error
func changeTarget(coin tx.Coin, txouts []tx.TxOut) (string, error) {
	var changeAddress string
	var count int
	for _, txout := range txouts {
		if !txout.Amount.IsAllRemaining() {
			continue
		}
		count++
		if count > 1 {
			return "", fmt.Errorf(
				"%w: coin %s",
				ErrMultipleChangeTargets,
				coin,
			)
		}
		changeAddress = txout.Address
	}
	return changeAddress, nil
}

// CheckChangeTargets validates that no coin requests all remaining funds to
// more than one address. It is run before any selection so the error
// surfaces early
func CheckChangeTargets(outputs map[tx.Coin][]tx.TxOut) error {
	for coin, txouts := range outputs {
		if _, err := changeTarget(coin, txouts); err != nil {
			return err
		}
	}
	return nil
}
