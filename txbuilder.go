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

// Package txbuilder assembles well-formed transaction input/output sets for
// the Cardano ledger. Given available UTxOs, desired payments, mint/burn
// instructions, reward withdrawals, a fee and a deposit, it selects a
// covering set of inputs per coin and computes the change outputs needed to
// balance the transaction. Ledger state (UTxO snapshots, reward balances,
// deposits) is obtained through the Resolver contract; the cardanocli
// package provides an implementation backed by a local node
package txbuilder

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/blinklabs-io/txbuilder/selection"
	"github.com/blinklabs-io/txbuilder/tx"
)

// Resolver provides the external ledger lookups needed during assembly.
// Implementations perform one-shot blocking calls; retry and timeout policy
// belongs to the caller
type Resolver interface {
	// Utxos returns the address's current unspent-output snapshot
	Utxos(ctx context.Context, address string) ([]tx.Utxo, error)
	// StakeAddressInfo returns the reward balance of a stake address
	StakeAddressInfo(
		ctx context.Context,
		address string,
	) (tx.StakeAddressInfo, error)
	// TxDeposit returns the protocol deposit implied by the
	// transaction's certificate files
	TxDeposit(ctx context.Context, files tx.TxFiles) (int64, error)
}

// TxPlan is an assembled transaction: the chosen inputs, the balanced
// outputs and the resolved withdrawals, along with any non-fatal warnings
// found on the way. A plan with warnings is still returned so the caller
// can decide whether to proceed and let the node do final validation
type TxPlan struct {
	Inputs            []tx.Utxo             `json:"inputs"`
	Outputs           []tx.TxOut            `json:"outputs"`
	Withdrawals       []tx.Withdrawal       `json:"withdrawals,omitempty"`
	ScriptWithdrawals []tx.ScriptWithdrawal `json:"scriptWithdrawals,omitempty"`
	Fee               int64                 `json:"fee"`
	Deposit           int64                 `json:"deposit"`
	Warnings          []tx.Warning          `json:"warnings,omitempty"`
}

// Builder assembles transaction plans for a source address
type Builder struct {
	srcAddress        string
	resolver          Resolver
	txIns             []tx.Utxo
	txOuts            []tx.TxOut
	fee               int64
	deposit           *int64
	txFiles           tx.TxFiles
	withdrawals       []tx.Withdrawal
	scriptWithdrawals []tx.ScriptWithdrawal
	mint              []tx.TxOut
	lovelaceBalanced  bool
	minChangeValue    int64
	ordering          selection.Ordering
	logger            *slog.Logger
}

// New returns a Builder for the given source address with the provided
// options applied. The source address funds the transaction when no
// explicit inputs are given and receives change unless an output redirects
// it. The resolver may be nil when explicit inputs, resolved withdrawals
// and an explicit deposit make lookups unnecessary
func New(
	srcAddress string,
	resolver Resolver,
	opts ...BuilderOptionFunc,
) *Builder {
	b := &Builder{
		srcAddress: srcAddress,
		resolver:   resolver,
		ordering:   selection.OrderAsQueried,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Assemble determines the transaction's inputs and balanced outputs.
//
// Explicit inputs are trusted verbatim. Otherwise the source address's UTxO
// snapshot is filtered to the coins the transaction touches and a greedy
// per-coin selection picks the physical outputs needed to cover all
// requested outputs, the fee and the deposit. Balancing then appends change
// outputs per coin. Insufficient funds, empty input sets and missing coin
// coverage are reported as warnings on the returned plan; requesting all
// remaining funds of one coin to multiple addresses is a fatal error, as
// are failed ledger lookups
func (b *Builder) Assemble(ctx context.Context) (*TxPlan, error) {
	if b.srcAddress == "" {
		return nil, ErrNoSrcAddress
	}
	for _, mintOut := range b.mint {
		if mintOut.Amount.IsAllRemaining() {
			return nil, fmt.Errorf(
				"%w: coin %s",
				ErrInvalidMintAmount,
				mintOut.NormalCoin(),
			)
		}
	}

	txOutsPassedDb := tx.GroupTxOutsByCoin(b.txOuts)
	txOutsMintDb := tx.GroupTxOutsByCoin(b.mint)

	// requesting all remaining funds of a coin to more than one address
	// must fail before any selection or balancing runs
	if err := selection.CheckChangeTargets(txOutsPassedDb); err != nil {
		return nil, err
	}

	withdrawals, scriptWithdrawals, allWithdrawals, err :=
		b.resolveAllWithdrawals(ctx)
	if err != nil {
		return nil, err
	}

	// all coins the transaction touches; the base coin always needs
	// inputs to fund the fee
	outCoinsAll := []tx.Coin{tx.CoinLovelace}
	for coin := range txOutsPassedDb {
		if !coin.IsLovelace() {
			outCoinsAll = append(outCoinsAll, coin)
		}
	}
	for coin := range txOutsMintDb {
		if !coin.IsLovelace() {
			if _, ok := txOutsPassedDb[coin]; !ok {
				outCoinsAll = append(outCoinsAll, coin)
			}
		}
	}

	txInsAll := b.txIns
	if len(txInsAll) == 0 {
		if b.resolver == nil {
			return nil, fmt.Errorf(
				"%w: cannot query UTxOs",
				ErrNoResolver,
			)
		}
		addressUtxos, err := b.resolver.Utxos(ctx, b.srcAddress)
		if err != nil {
			return nil, fmt.Errorf("query UTxOs: %w", err)
		}
		txInsAll = selection.UtxosWithCoins(addressUtxos, outCoinsAll)
	}
	txInsDbAll := tx.GroupUtxosByCoin(txInsAll)

	deposit, err := b.resolveDeposit(ctx)
	if err != nil {
		return nil, err
	}

	var warnings []tx.Warning
	if len(txInsAll) == 0 {
		b.logger.Error("no input UTxO")
		warnings = append(warnings, tx.Warning{
			Code:    tx.WarningNoInputs,
			Message: "no input UTxO",
		})
	} else {
		// the base coin and all output coins, except those minted by
		// this transaction, need to be present in the inputs; the base
		// coin is always required since the fee needs funding
		coverageCoins := []tx.Coin{tx.CoinLovelace}
		for coin := range txOutsPassedDb {
			if !coin.IsLovelace() {
				coverageCoins = append(coverageCoins, coin)
			}
		}
		sort.Slice(coverageCoins[1:], func(i, j int) bool {
			return coverageCoins[i+1] < coverageCoins[j+1]
		})
		for _, coin := range coverageCoins {
			if _, minted := txOutsMintDb[coin]; minted {
				continue
			}
			if _, ok := txInsDbAll[coin]; !ok {
				b.logger.Error(
					"not all output coins are present in input UTxO",
					"coin", coin.String(),
				)
				warnings = append(warnings, tx.Warning{
					Code:    tx.WarningMissingCoinCoverage,
					Coin:    coin,
					Message: "output coin not present in input UTxO",
				})
			}
		}
	}

	txInsFiltered := txInsAll
	txInsDbFiltered := txInsDbAll
	if len(b.txIns) == 0 {
		// arrange each coin's available inputs, then pick the
		// physical outputs needed to cover all requested funds
		ordering := b.ordering
		if ordering == nil {
			ordering = selection.OrderAsQueried
		}
		ordered := make(map[tx.Coin][]tx.Utxo, len(txInsDbAll))
		for coin, coinTxIns := range txInsDbAll {
			ordered[coin] = ordering(coinTxIns)
		}
		selectedIds := selection.SelectInputs(selection.SelectParams{
			Inputs:         ordered,
			Outputs:        txOutsPassedDb,
			Mint:           txOutsMintDb,
			Withdrawals:    allWithdrawals,
			Fee:            b.fee,
			Deposit:        deposit,
			MinChangeValue: b.minChangeValue,
		})
		// re-expand each selected identity to every coin record it
		// holds, preserving snapshot order
		txInsById := tx.GroupUtxosByID(txInsAll)
		txInsFiltered = nil
		seenIds := map[tx.UtxoID]struct{}{}
		for _, rec := range txInsAll {
			if _, selected := selectedIds[rec.ID()]; !selected {
				continue
			}
			if _, seen := seenIds[rec.ID()]; seen {
				continue
			}
			seenIds[rec.ID()] = struct{}{}
			txInsFiltered = append(
				txInsFiltered,
				txInsById[rec.ID()]...,
			)
		}
		txInsDbFiltered = tx.GroupUtxosByCoin(txInsFiltered)
	}

	if len(txInsFiltered) == 0 {
		b.logger.Error("cannot build transaction, empty input set")
		warnings = append(warnings, tx.Warning{
			Code:    tx.WarningEmptySelection,
			Message: "cannot build transaction, empty input set",
		})
	}

	txOutsBalanced, balanceWarnings, err := selection.BalanceOutputs(
		selection.BalanceParams{
			SrcAddress:       b.srcAddress,
			TxOuts:           b.txOuts,
			Inputs:           txInsDbFiltered,
			Outputs:          txOutsPassedDb,
			Mint:             txOutsMintDb,
			Withdrawals:      allWithdrawals,
			Fee:              b.fee,
			Deposit:          deposit,
			LovelaceBalanced: b.lovelaceBalanced,
			Logger:           b.logger,
		},
	)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, balanceWarnings...)

	return &TxPlan{
		Inputs:            txInsFiltered,
		Outputs:           txOutsBalanced,
		Withdrawals:       withdrawals,
		ScriptWithdrawals: scriptWithdrawals,
		Fee:               b.fee,
		Deposit:           deposit,
		Warnings:          warnings,
	}, nil
}

// resolveAllWithdrawals resolves plain and script withdrawals and returns
// them along with their combined list, which selection and balancing
// consume
func (b *Builder) resolveAllWithdrawals(
	ctx context.Context,
) ([]tx.Withdrawal, []tx.ScriptWithdrawal, []tx.Withdrawal, error) {
	withdrawals, err := b.resolveWithdrawals(ctx, b.withdrawals)
	if err != nil {
		return nil, nil, nil, err
	}
	var scriptWithdrawals []tx.ScriptWithdrawal
	for _, sw := range b.scriptWithdrawals {
		resolved, err := b.resolveWithdrawals(
			ctx,
			[]tx.Withdrawal{sw.Withdrawal},
		)
		if err != nil {
			return nil, nil, nil, err
		}
		sw.Withdrawal = resolved[0]
		scriptWithdrawals = append(scriptWithdrawals, sw)
	}
	allWithdrawals := make(
		[]tx.Withdrawal,
		0,
		len(withdrawals)+len(scriptWithdrawals),
	)
	allWithdrawals = append(allWithdrawals, withdrawals...)
	for _, sw := range scriptWithdrawals {
		allWithdrawals = append(allWithdrawals, sw.Withdrawal)
	}
	return withdrawals, scriptWithdrawals, allWithdrawals, nil
}

// resolveWithdrawals replaces AllRemaining withdrawal amounts with the
// stake address's current reward balance. A failed balance lookup fails the
// whole resolution
func (b *Builder) resolveWithdrawals(
	ctx context.Context,
	withdrawals []tx.Withdrawal,
) ([]tx.Withdrawal, error) {
	var resolved []tx.Withdrawal
	for _, withdrawal := range withdrawals {
		if !withdrawal.Amount.IsAllRemaining() {
			resolved = append(resolved, withdrawal)
			continue
		}
		if b.resolver == nil {
			return nil, fmt.Errorf(
				"%w: cannot resolve withdrawal for %s",
				ErrNoResolver,
				withdrawal.Address,
			)
		}
		info, err := b.resolver.StakeAddressInfo(
			ctx,
			withdrawal.Address,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"resolve withdrawal for %s: %w",
				withdrawal.Address,
				err,
			)
		}
		resolved = append(resolved, tx.Withdrawal{
			Address: withdrawal.Address,
			Amount:  tx.NewAmount(info.RewardAccountBalance),
		})
	}
	return resolved, nil
}

// resolveDeposit returns the explicit deposit or resolves it from the
// transaction files
func (b *Builder) resolveDeposit(ctx context.Context) (int64, error) {
	if b.deposit != nil {
		return *b.deposit, nil
	}
	if b.resolver == nil {
		if len(b.txFiles.CertificateFiles) > 0 {
			return 0, fmt.Errorf(
				"%w: cannot resolve deposit",
				ErrNoResolver,
			)
		}
		return 0, nil
	}
	deposit, err := b.resolver.TxDeposit(ctx, b.txFiles)
	if err != nil {
		return 0, fmt.Errorf("resolve deposit: %w", err)
	}
	return deposit, nil
}
