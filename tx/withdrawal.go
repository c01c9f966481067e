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

// Withdrawal moves accumulated rewards from a stake address into the
// transaction's spendable funds. An AllRemaining amount requests the full
// reward balance and must be resolved before selection
type Withdrawal struct {
	Address string `json:"address"`
	Amount  Amount `json:"amount"`
}

// ExecutionUnits is the execution budget attached to a script
type ExecutionUnits struct {
	Memory uint64 `json:"memory"`
	Steps  uint64 `json:"steps"`
}

// ScriptWithdrawal is a reward withdrawal authorized by a script rather than
// a stake key. The wrapped withdrawal follows the same AllRemaining
// resolution rule as a plain one
type ScriptWithdrawal struct {
	Withdrawal     Withdrawal      `json:"withdrawal"`
	ScriptFile     string          `json:"scriptFile,omitempty"`
	RedeemerFile   string          `json:"redeemerFile,omitempty"`
	RedeemerValue  string          `json:"redeemerValue,omitempty"`
	ExecutionUnits *ExecutionUnits `json:"executionUnits,omitempty"`
}

// StakeAddressInfo is the registration state of a stake address as reported
// by the ledger, including the withdrawable reward balance
type StakeAddressInfo struct {
	Address              string `json:"address"`
	Delegation           string `json:"delegation,omitempty"`
	RewardAccountBalance int64  `json:"rewardAccountBalance"`
}

// WithdrawalTotal returns the combined exact amount of the given
// withdrawals. AllRemaining amounts contribute zero, so callers must resolve
// withdrawals before summing them
func WithdrawalTotal(withdrawals []Withdrawal) int64 {
	var total int64
	for _, withdrawal := range withdrawals {
		total += withdrawal.Amount.Int64()
	}
	return total
}
