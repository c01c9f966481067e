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

package txbuilder

import (
	"log/slog"

	"github.com/blinklabs-io/txbuilder/selection"
	"github.com/blinklabs-io/txbuilder/tx"
)

// BuilderOptionFunc is a function that modifies the Builder config
type BuilderOptionFunc func(*Builder)

// WithTxIns specifies explicit input UTxOs. When provided, automatic input
// selection is skipped and the inputs are used verbatim
func WithTxIns(txIns []tx.Utxo) BuilderOptionFunc {
	return func(b *Builder) {
		b.txIns = txIns
	}
}

// WithTxOuts specifies the desired transaction outputs
func WithTxOuts(txOuts []tx.TxOut) BuilderOptionFunc {
	return func(b *Builder) {
		b.txOuts = txOuts
	}
}

// WithFee specifies the transaction fee
func WithFee(fee int64) BuilderOptionFunc {
	return func(b *Builder) {
		b.fee = fee
	}
}

// WithDeposit specifies the protocol deposit. If not provided, the deposit
// is resolved from the transaction files via the resolver
func WithDeposit(deposit int64) BuilderOptionFunc {
	return func(b *Builder) {
		b.deposit = &deposit
	}
}

// WithTxFiles specifies the files accompanying the transaction, used for
// deposit resolution
func WithTxFiles(txFiles tx.TxFiles) BuilderOptionFunc {
	return func(b *Builder) {
		b.txFiles = txFiles
	}
}

// WithWithdrawals specifies reward withdrawals
func WithWithdrawals(withdrawals []tx.Withdrawal) BuilderOptionFunc {
	return func(b *Builder) {
		b.withdrawals = withdrawals
	}
}

// WithScriptWithdrawals specifies script-authorized reward withdrawals
func WithScriptWithdrawals(
	scriptWithdrawals []tx.ScriptWithdrawal,
) BuilderOptionFunc {
	return func(b *Builder) {
		b.scriptWithdrawals = scriptWithdrawals
	}
}

// WithMint specifies mint/burn instructions
func WithMint(mint []tx.TxOut) BuilderOptionFunc {
	return func(b *Builder) {
		b.mint = mint
	}
}

// WithLovelaceBalanced specifies that base-coin balancing is done elsewhere
// (by the `transaction build` command) and should be skipped here
func WithLovelaceBalanced(lovelaceBalanced bool) BuilderOptionFunc {
	return func(b *Builder) {
		b.lovelaceBalanced = lovelaceBalanced
	}
}

// WithMinChangeValue specifies the dust floor for base-coin change. Input
// selection over-collects so that any change is at least this amount
func WithMinChangeValue(minChangeValue int64) BuilderOptionFunc {
	return func(b *Builder) {
		b.minChangeValue = minChangeValue
	}
}

// WithOrdering specifies how a coin's available UTxOs are arranged before
// greedy collection. The default keeps the ledger-query order
func WithOrdering(ordering selection.Ordering) BuilderOptionFunc {
	return func(b *Builder) {
		b.ordering = ordering
	}
}

// WithLogger specifies the logger. The default logger is used if none is
// provided
func WithLogger(logger *slog.Logger) BuilderOptionFunc {
	return func(b *Builder) {
		b.logger = logger
	}
}
