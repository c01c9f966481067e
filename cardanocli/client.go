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
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/blinklabs-io/txbuilder"
	"github.com/blinklabs-io/txbuilder/tx"
)

var _ txbuilder.Resolver = (*Client)(nil)

// Client resolves ledger state by querying a local node through cardano-cli.
// It implements the txbuilder.Resolver contract
type Client struct {
	runner *Runner
}

// NewClient returns a Client backed by a Runner with the provided options
// applied
func NewClient(opts ...RunnerOptionFunc) *Client {
	return &Client{
		runner: NewRunner(opts...),
	}
}

// Utxos returns the address's current UTxO snapshot
func (c *Client) Utxos(
	ctx context.Context,
	address string,
) ([]tx.Utxo, error) {
	args := append(
		[]string{
			"query",
			"utxo",
			"--address",
			address,
			"--out-file",
			"/dev/stdout",
		},
		c.runner.NetworkArgs()...,
	)
	output, err := c.runner.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return DecodeUtxos(output, address)
}

// StakeAddressInfo returns the registration info and reward balance of a
// stake address
func (c *Client) StakeAddressInfo(
	ctx context.Context,
	address string,
) (tx.StakeAddressInfo, error) {
	args := append(
		[]string{
			"query",
			"stake-address-info",
			"--address",
			address,
			"--out-file",
			"/dev/stdout",
		},
		c.runner.NetworkArgs()...,
	)
	output, err := c.runner.Run(ctx, args...)
	if err != nil {
		return tx.StakeAddressInfo{}, err
	}
	var infos []tx.StakeAddressInfo
	if err := json.Unmarshal(output, &infos); err != nil {
		return tx.StakeAddressInfo{}, fmt.Errorf(
			"decode stake address info: %w",
			err,
		)
	}
	if len(infos) == 0 {
		return tx.StakeAddressInfo{}, fmt.Errorf(
			"no stake address info for %s",
			address,
		)
	}
	return infos[0], nil
}

// protocolParams is the subset of protocol parameters needed for deposit
// calculation
type protocolParams struct {
	StakeAddressDeposit int64 `json:"stakeAddressDeposit"`
	StakePoolDeposit    int64 `json:"stakePoolDeposit"`
}

// certEnvelope is the cardano-cli text envelope wrapper around a
// certificate file
type certEnvelope struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// TxDeposit returns the protocol deposit implied by the transaction's
// certificate files: one stake-address deposit per stake registration and
// one pool deposit per pool registration. Deregistrations return deposits
// rather than requiring them, so they contribute nothing
func (c *Client) TxDeposit(
	ctx context.Context,
	files tx.TxFiles,
) (int64, error) {
	if len(files.CertificateFiles) == 0 {
		return 0, nil
	}

	args := append(
		[]string{
			"query",
			"protocol-parameters",
			"--out-file",
			"/dev/stdout",
		},
		c.runner.NetworkArgs()...,
	)
	output, err := c.runner.Run(ctx, args...)
	if err != nil {
		return 0, err
	}
	var pparams protocolParams
	if err := json.Unmarshal(output, &pparams); err != nil {
		return 0, fmt.Errorf("decode protocol parameters: %w", err)
	}

	var deposit int64
	for _, certFile := range files.CertificateFiles {
		certData, err := os.ReadFile(certFile)
		if err != nil {
			return 0, fmt.Errorf(
				"read certificate %s: %w",
				certFile,
				err,
			)
		}
		var envelope certEnvelope
		if err := json.Unmarshal(certData, &envelope); err != nil {
			return 0, fmt.Errorf(
				"decode certificate %s: %w",
				certFile,
				err,
			)
		}
		kind := strings.ToLower(
			envelope.Type + " " + envelope.Description,
		)
		switch {
		case strings.Contains(kind, "deregistration"):
			// deposit refund, no funding needed
		case strings.Contains(kind, "pool registration"):
			deposit += pparams.StakePoolDeposit
		case strings.Contains(kind, "registration"):
			deposit += pparams.StakeAddressDeposit
		}
	}
	return deposit, nil
}
