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
	"context"
	"testing"

	"github.com/blinklabs-io/txbuilder/internal/test"
	"github.com/blinklabs-io/txbuilder/selection"
	"github.com/blinklabs-io/txbuilder/tx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSrcAddress = "addr_test1src"
	testToken      = tx.Coin("29a8fb8318718bd756124f0c144f56d4b4579dc5edf2dd42d669ac61.6675726e697368613239686e")
)

func testResolver(utxos []tx.Utxo) *StaticResolver {
	return &StaticResolver{
		UtxosByAddress: map[string][]tx.Utxo{
			testSrcAddress: utxos,
		},
	}
}

func TestAssemble(t *testing.T) {
	resolver := testResolver([]tx.Utxo{
		test.LovelaceUtxo("aa", 0, testSrcAddress, 1000),
		test.LovelaceUtxo("bb", 0, testSrcAddress, 500),
	})
	builder := New(
		testSrcAddress,
		resolver,
		WithTxOuts([]tx.TxOut{
			{Address: "addr_test1dst", Amount: tx.NewAmount(300)},
		}),
		WithFee(10),
	)
	plan, err := builder.Assemble(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plan.Warnings)
	// the first 1000-lovelace output covers 300 + 10 fee on its own
	require.Len(t, plan.Inputs, 1)
	assert.Equal(t, tx.UtxoID("aa#0"), plan.Inputs[0].ID())
	require.Len(t, plan.Outputs, 2)
	assert.Equal(t, "addr_test1dst", plan.Outputs[0].Address)
	assert.Equal(t, int64(300), plan.Outputs[0].Amount.Int64())
	assert.Equal(t, testSrcAddress, plan.Outputs[1].Address)
	assert.Equal(t, int64(690), plan.Outputs[1].Amount.Int64())
	assert.Equal(t, int64(10), plan.Fee)
}

func TestAssembleExplicitInputs(t *testing.T) {
	// explicit inputs are trusted verbatim, even when they cannot cover
	// the outputs
	txIns := []tx.Utxo{
		test.LovelaceUtxo("aa", 0, testSrcAddress, 100),
	}
	builder := New(
		testSrcAddress,
		nil,
		WithTxIns(txIns),
		WithTxOuts([]tx.TxOut{
			{Address: "addr_test1dst", Amount: tx.NewAmount(300)},
		}),
		WithFee(10),
	)
	plan, err := builder.Assemble(context.Background())
	require.NoError(t, err)
	require.Len(t, plan.Inputs, 1)
	assert.Equal(t, tx.UtxoID("aa#0"), plan.Inputs[0].ID())
	// 100 available against 310 needed
	require.Len(t, plan.Warnings, 1)
	assert.Equal(t, tx.WarningInsufficientFunds, plan.Warnings[0].Code)
}

func TestAssembleTokenTransfer(t *testing.T) {
	resolver := testResolver([]tx.Utxo{
		test.LovelaceUtxo("aa", 0, testSrcAddress, 5000000),
		test.LovelaceUtxo("bb", 0, testSrcAddress, 2000000),
		test.AssetUtxo("bb", 0, testSrcAddress, 100, testToken),
	})
	builder := New(
		testSrcAddress,
		resolver,
		WithTxOuts([]tx.TxOut{
			{Address: "addr_test1dst", Amount: tx.NewAmount(20), Coin: testToken},
		}),
		WithFee(10),
	)
	plan, err := builder.Assemble(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plan.Warnings)
	// spending bb#0 for its tokens brings its lovelace along, which also
	// covers the fee
	inputIds := map[tx.UtxoID]int{}
	for _, rec := range plan.Inputs {
		inputIds[rec.ID()]++
	}
	assert.Equal(t, 2, inputIds[tx.UtxoID("bb#0")])
	// change: 80 tokens and the leftover lovelace
	var tokenChange, lovelaceChange int64
	for _, txout := range plan.Outputs {
		if txout.Address != testSrcAddress {
			continue
		}
		if txout.Coin == testToken {
			tokenChange = txout.Amount.Int64()
		} else {
			lovelaceChange = txout.Amount.Int64()
		}
	}
	assert.Equal(t, int64(80), tokenChange)
	assert.Greater(t, lovelaceChange, int64(0))
}

func TestAssembleWithdrawalResolution(t *testing.T) {
	resolver := testResolver([]tx.Utxo{
		test.LovelaceUtxo("aa", 0, testSrcAddress, 1000),
	})
	resolver.StakeInfo = map[string]tx.StakeAddressInfo{
		"stake_test1rew": {
			Address:              "stake_test1rew",
			RewardAccountBalance: 500,
		},
	}
	builder := New(
		testSrcAddress,
		resolver,
		WithWithdrawals([]tx.Withdrawal{
			{Address: "stake_test1rew", Amount: tx.AmountAllRemaining()},
		}),
		WithFee(10),
	)
	plan, err := builder.Assemble(context.Background())
	require.NoError(t, err)
	require.Len(t, plan.Withdrawals, 1)
	assert.Equal(t, int64(500), plan.Withdrawals[0].Amount.Int64())
	// change: 1000 + 500 - 10 fee
	require.Len(t, plan.Outputs, 1)
	assert.Equal(t, int64(1490), plan.Outputs[0].Amount.Int64())
}

func TestAssembleWithdrawalUnknownStakeAddress(t *testing.T) {
	resolver := testResolver([]tx.Utxo{
		test.LovelaceUtxo("aa", 0, testSrcAddress, 1000),
	})
	builder := New(
		testSrcAddress,
		resolver,
		WithWithdrawals([]tx.Withdrawal{
			{Address: "stake_test1rew", Amount: tx.AmountAllRemaining()},
		}),
	)
	_, err := builder.Assemble(context.Background())
	assert.Error(t, err)
}

func TestAssembleScriptWithdrawals(t *testing.T) {
	resolver := testResolver([]tx.Utxo{
		test.LovelaceUtxo("aa", 0, testSrcAddress, 1000),
	})
	resolver.StakeInfo = map[string]tx.StakeAddressInfo{
		"stake_test1rew": {
			Address:              "stake_test1rew",
			RewardAccountBalance: 200,
		},
	}
	builder := New(
		testSrcAddress,
		resolver,
		WithScriptWithdrawals([]tx.ScriptWithdrawal{
			{
				Withdrawal: tx.Withdrawal{
					Address: "stake_test1rew",
					Amount:  tx.AmountAllRemaining(),
				},
				ScriptFile: "withdraw.plutus",
			},
		}),
		WithFee(10),
	)
	plan, err := builder.Assemble(context.Background())
	require.NoError(t, err)
	require.Len(t, plan.ScriptWithdrawals, 1)
	assert.Equal(
		t,
		int64(200),
		plan.ScriptWithdrawals[0].Withdrawal.Amount.Int64(),
	)
	assert.Equal(t, "withdraw.plutus", plan.ScriptWithdrawals[0].ScriptFile)
	// script withdrawals fund balancing like plain ones
	require.Len(t, plan.Outputs, 1)
	assert.Equal(t, int64(1190), plan.Outputs[0].Amount.Int64())
}

func TestAssembleErrors(t *testing.T) {
	t.Run("no source address", func(t *testing.T) {
		builder := New("", nil)
		_, err := builder.Assemble(context.Background())
		assert.ErrorIs(t, err, ErrNoSrcAddress)
	})

	t.Run("no resolver", func(t *testing.T) {
		builder := New(testSrcAddress, nil)
		_, err := builder.Assemble(context.Background())
		assert.ErrorIs(t, err, ErrNoResolver)
	})

	t.Run("all-remaining mint", func(t *testing.T) {
		builder := New(
			testSrcAddress,
			testResolver(nil),
			WithMint([]tx.TxOut{
				{
					Address: testSrcAddress,
					Amount:  tx.AmountAllRemaining(),
					Coin:    testToken,
				},
			}),
		)
		_, err := builder.Assemble(context.Background())
		assert.ErrorIs(t, err, ErrInvalidMintAmount)
	})

	t.Run("multiple change targets", func(t *testing.T) {
		builder := New(
			testSrcAddress,
			testResolver(nil),
			WithTxOuts([]tx.TxOut{
				{Address: "addr1", Amount: tx.AmountAllRemaining()},
				{Address: "addr2", Amount: tx.AmountAllRemaining()},
			}),
		)
		_, err := builder.Assemble(context.Background())
		assert.ErrorIs(t, err, selection.ErrMultipleChangeTargets)
	})
}

func TestAssembleWarnings(t *testing.T) {
	t.Run("no inputs", func(t *testing.T) {
		builder := New(
			testSrcAddress,
			testResolver(nil),
			WithTxOuts([]tx.TxOut{
				{Address: "addr1", Amount: tx.NewAmount(100)},
			}),
		)
		plan, err := builder.Assemble(context.Background())
		require.NoError(t, err)
		codes := warningCodes(plan.Warnings)
		assert.Contains(t, codes, tx.WarningNoInputs)
		assert.Contains(t, codes, tx.WarningEmptySelection)
	})

	t.Run("missing coin coverage", func(t *testing.T) {
		resolver := testResolver([]tx.Utxo{
			test.LovelaceUtxo("aa", 0, testSrcAddress, 1000),
		})
		builder := New(
			testSrcAddress,
			resolver,
			WithTxOuts([]tx.TxOut{
				{Address: "addr1", Amount: tx.NewAmount(5), Coin: testToken},
			}),
			WithFee(10),
		)
		plan, err := builder.Assemble(context.Background())
		require.NoError(t, err)
		codes := warningCodes(plan.Warnings)
		assert.Contains(t, codes, tx.WarningMissingCoinCoverage)
	})

	t.Run("token-only inputs leave the fee unfunded", func(t *testing.T) {
		// the base coin needs coverage even when no output asks for
		// it, since the fee always draws on base-coin inputs
		builder := New(
			testSrcAddress,
			nil,
			WithTxIns([]tx.Utxo{
				test.AssetUtxo("aa", 0, testSrcAddress, 100, testToken),
			}),
			WithTxOuts([]tx.TxOut{
				{Address: "addr1", Amount: tx.NewAmount(5), Coin: testToken},
			}),
			WithFee(10),
		)
		plan, err := builder.Assemble(context.Background())
		require.NoError(t, err)
		var coverage []tx.Warning
		for _, warning := range plan.Warnings {
			if warning.Code == tx.WarningMissingCoinCoverage {
				coverage = append(coverage, warning)
			}
		}
		require.Len(t, coverage, 1)
		assert.Equal(t, tx.CoinLovelace, coverage[0].Coin)
	})

	t.Run("minted coin needs no coverage", func(t *testing.T) {
		resolver := testResolver([]tx.Utxo{
			test.LovelaceUtxo("aa", 0, testSrcAddress, 1000),
		})
		builder := New(
			testSrcAddress,
			resolver,
			WithTxOuts([]tx.TxOut{
				{Address: "addr1", Amount: tx.NewAmount(5), Coin: testToken},
			}),
			WithMint([]tx.TxOut{
				{Address: "addr1", Amount: tx.NewAmount(5), Coin: testToken},
			}),
			WithFee(10),
		)
		plan, err := builder.Assemble(context.Background())
		require.NoError(t, err)
		codes := warningCodes(plan.Warnings)
		assert.NotContains(t, codes, tx.WarningMissingCoinCoverage)
	})
}

func TestAssembleDeposit(t *testing.T) {
	resolver := testResolver([]tx.Utxo{
		test.LovelaceUtxo("aa", 0, testSrcAddress, 1000),
	})
	resolver.Deposit = 400
	builder := New(
		testSrcAddress,
		resolver,
		WithTxFiles(tx.TxFiles{
			CertificateFiles: []string{"stake.cert"},
		}),
		WithFee(10),
	)
	plan, err := builder.Assemble(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(400), plan.Deposit)
	// change: 1000 - 10 fee - 400 deposit
	require.Len(t, plan.Outputs, 1)
	assert.Equal(t, int64(590), plan.Outputs[0].Amount.Int64())
}

func TestAssembleExplicitDeposit(t *testing.T) {
	resolver := testResolver([]tx.Utxo{
		test.LovelaceUtxo("aa", 0, testSrcAddress, 1000),
	})
	resolver.Deposit = 400
	builder := New(
		testSrcAddress,
		resolver,
		WithTxFiles(tx.TxFiles{
			CertificateFiles: []string{"stake.cert"},
		}),
		WithDeposit(100),
		WithFee(10),
	)
	plan, err := builder.Assemble(context.Background())
	require.NoError(t, err)
	// the explicit deposit wins over resolution
	assert.Equal(t, int64(100), plan.Deposit)
}

func TestAssembleOrdering(t *testing.T) {
	resolver := testResolver([]tx.Utxo{
		test.LovelaceUtxo("aa", 0, testSrcAddress, 100),
		test.LovelaceUtxo("bb", 0, testSrcAddress, 5000),
	})
	builder := New(
		testSrcAddress,
		resolver,
		WithTxOuts([]tx.TxOut{
			{Address: "addr1", Amount: tx.NewAmount(300)},
		}),
		WithFee(10),
		WithOrdering(selection.OrderLargestFirst),
	)
	plan, err := builder.Assemble(context.Background())
	require.NoError(t, err)
	// largest-first picks the 5000-lovelace output over two small ones
	require.Len(t, plan.Inputs, 1)
	assert.Equal(t, tx.UtxoID("bb#0"), plan.Inputs[0].ID())
}

func warningCodes(warnings []tx.Warning) []tx.WarningCode {
	codes := make([]tx.WarningCode, 0, len(warnings))
	for _, warning := range warnings {
		codes = append(codes, warning.Code)
	}
	return codes
}
