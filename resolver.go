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
	"fmt"

	"github.com/blinklabs-io/txbuilder/tx"
)

// StaticResolver serves ledger lookups from in-memory data. It is useful
// for tests and for offline assembly from a previously captured UTxO
// snapshot
type StaticResolver struct {
	UtxosByAddress map[string][]tx.Utxo
	StakeInfo      map[string]tx.StakeAddressInfo
	Deposit        int64
}

// Utxos returns the address's configured UTxO set. An unknown address
// returns an empty set, matching a node query for an unfunded address
func (r *StaticResolver) Utxos(
	_ context.Context,
	address string,
) ([]tx.Utxo, error) {
	return r.UtxosByAddress[address], nil
}

// StakeAddressInfo returns the configured stake address info. An unknown
// address is an error, matching an unregistered stake address
func (r *StaticResolver) StakeAddressInfo(
	_ context.Context,
	address string,
) (tx.StakeAddressInfo, error) {
	info, ok := r.StakeInfo[address]
	if !ok {
		return tx.StakeAddressInfo{}, fmt.Errorf(
			"no stake address info for %s",
			address,
		)
	}
	return info, nil
}

// TxDeposit returns the configured deposit when certificate files are
// present and zero otherwise
func (r *StaticResolver) TxDeposit(
	_ context.Context,
	files tx.TxFiles,
) (int64, error) {
	if len(files.CertificateFiles) == 0 {
		return 0, nil
	}
	return r.Deposit, nil
}

var _ Resolver = (*StaticResolver)(nil)
