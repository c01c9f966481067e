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

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/blinklabs-io/txbuilder"
	"github.com/blinklabs-io/txbuilder/cardanocli"
	"github.com/blinklabs-io/txbuilder/tx"
)

type cmdFlags struct {
	flagset        *flag.FlagSet
	srcAddress     string
	txOutsFile     string
	utxosFile      string
	fee            int64
	deposit        int64
	minChangeValue int64
	join           bool
	jsonOutput     bool
	binPath        string
	socket         string
	networkMagic   int
	mainnet        bool
}

func newCmdFlags() *cmdFlags {
	f := &cmdFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.srcAddress,
		"src-address",
		"",
		"source address funding the transaction and receiving change",
	)
	f.flagset.StringVar(
		&f.txOutsFile,
		"tx-outs",
		"",
		"JSON file with the desired transaction outputs",
	)
	f.flagset.StringVar(
		&f.utxosFile,
		"utxos",
		"",
		"JSON UTxO snapshot file (cardano-cli query utxo format); assembles offline instead of querying a node",
	)
	f.flagset.Int64Var(&f.fee, "fee", 0, "transaction fee in lovelace")
	f.flagset.Int64Var(
		&f.deposit,
		"deposit",
		0,
		"protocol deposit in lovelace",
	)
	f.flagset.Int64Var(
		&f.minChangeValue,
		"min-change-value",
		0,
		"dust floor for base-coin change",
	)
	f.flagset.BoolVar(
		&f.join,
		"join",
		false,
		"join outputs to the same address into a single --tx-out",
	)
	f.flagset.BoolVar(
		&f.jsonOutput,
		"json",
		false,
		"print the assembled plan as JSON instead of cardano-cli arguments",
	)
	f.flagset.StringVar(
		&f.binPath,
		"binary",
		"cardano-cli",
		"cardano-cli binary to run for node queries",
	)
	f.flagset.StringVar(
		&f.socket,
		"socket",
		"",
		"UNIX socket path of the node to query",
	)
	f.flagset.IntVar(
		&f.networkMagic,
		"network-magic",
		0,
		"specifies network magic value",
	)
	f.flagset.BoolVar(
		&f.mainnet,
		"mainnet",
		false,
		"query mainnet. this overrides the -network-magic option",
	)
	return f
}

func (f *cmdFlags) parse() {
	if err := f.flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if f.srcAddress == "" {
		fmt.Printf("-src-address is required\n")
		os.Exit(1)
	}
	if !tx.ValidAddress(f.srcAddress) {
		fmt.Printf("invalid src-address: %s\n", f.srcAddress)
		os.Exit(1)
	}
}

func (f *cmdFlags) resolver() txbuilder.Resolver {
	if f.utxosFile != "" {
		data, err := os.ReadFile(f.utxosFile)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		utxos, err := cardanocli.DecodeUtxos(data, f.srcAddress)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		return &txbuilder.StaticResolver{
			UtxosByAddress: map[string][]tx.Utxo{
				f.srcAddress: utxos,
			},
		}
	}
	opts := []cardanocli.RunnerOptionFunc{
		cardanocli.WithBinPath(f.binPath),
		cardanocli.WithSocketPath(f.socket),
	}
	if f.mainnet {
		opts = append(opts, cardanocli.WithMainnet())
	} else {
		opts = append(
			opts,
			cardanocli.WithNetworkMagic(uint32(f.networkMagic)),
		)
	}
	return cardanocli.NewClient(opts...)
}

func main() {
	f := newCmdFlags()
	f.parse()

	var txOuts []tx.TxOut
	if f.txOutsFile != "" {
		data, err := os.ReadFile(f.txOutsFile)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		if err := json.Unmarshal(data, &txOuts); err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	}

	builder := txbuilder.New(
		f.srcAddress,
		f.resolver(),
		txbuilder.WithTxOuts(txOuts),
		txbuilder.WithFee(f.fee),
		txbuilder.WithDeposit(f.deposit),
		txbuilder.WithMinChangeValue(f.minChangeValue),
	)
	plan, err := builder.Assemble(context.Background())
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	for _, warning := range plan.Warnings {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", warning.String())
	}

	if f.jsonOutput {
		output, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s\n", output)
		return
	}
	args := cardanocli.TxInArgs(plan.Inputs)
	args = append(args, cardanocli.TxOutArgs(plan.Outputs, f.join)...)
	fmt.Printf("%s\n", strings.Join(args, " "))
}
