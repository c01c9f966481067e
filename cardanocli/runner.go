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
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
)

const defaultBinPath = "cardano-cli"

// Runner executes cardano-cli commands. Calls are one-shot and blocking;
// retry and timeout policy belongs to the caller via the context
type Runner struct {
	binPath      string
	socketPath   string
	networkMagic uint32
	mainnet      bool
	logger       *slog.Logger
}

// RunnerOptionFunc is a function that modifies the Runner config
type RunnerOptionFunc func(*Runner)

// WithBinPath specifies the cardano-cli binary to run. The default is
// `cardano-cli` from PATH
func WithBinPath(binPath string) RunnerOptionFunc {
	return func(r *Runner) {
		r.binPath = binPath
	}
}

// WithSocketPath specifies the node socket path, exported to the child
// process as CARDANO_NODE_SOCKET_PATH
func WithSocketPath(socketPath string) RunnerOptionFunc {
	return func(r *Runner) {
		r.socketPath = socketPath
	}
}

// WithNetworkMagic specifies the testnet magic for network selection
func WithNetworkMagic(networkMagic uint32) RunnerOptionFunc {
	return func(r *Runner) {
		r.networkMagic = networkMagic
		r.mainnet = false
	}
}

// WithMainnet selects mainnet for network selection
func WithMainnet() RunnerOptionFunc {
	return func(r *Runner) {
		r.mainnet = true
	}
}

// WithLogger specifies the logger. The default logger is used if none is
// provided
func WithLogger(logger *slog.Logger) RunnerOptionFunc {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner returns a Runner with the provided options applied
func NewRunner(opts ...RunnerOptionFunc) *Runner {
	r := &Runner{
		binPath: defaultBinPath,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NetworkArgs returns the network selection arguments shared by query
// commands
func (r *Runner) NetworkArgs() []string {
	if r.mainnet {
		return []string{"--mainnet"}
	}
	return []string{
		"--testnet-magic",
		strconv.FormatUint(uint64(r.networkMagic), 10),
	}
}

// Run executes cardano-cli with the given arguments and returns its
// standard output. A non-zero exit wraps the command's standard error
func (r *Runner) Run(ctx context.Context, args ...string) ([]byte, error) {
	r.logger.Debug(
		"running cardano-cli",
		"component", "cardanocli",
		"args", args,
	)
	cmd := exec.CommandContext(ctx, r.binPath, args...)
	cmd.Env = append(os.Environ(), "CARDANO_NODE_SOCKET_PATH="+r.socketPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf(
			"cardano-cli %v: %w: %s",
			args,
			err,
			bytes.TrimSpace(stderr.Bytes()),
		)
	}
	return stdout.Bytes(), nil
}
