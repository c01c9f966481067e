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
	"errors"
)

var (
	// ErrNoResolver is returned when an operation needs a ledger lookup
	// (UTxO snapshot, reward balance or deposit) but no resolver was
	// provided
	ErrNoResolver = errors.New("no resolver configured")

	// ErrInvalidMintAmount is returned when a mint/burn instruction
	// requests all remaining funds, which only outputs may do
	ErrInvalidMintAmount = errors.New(
		"mint amount cannot request all remaining funds",
	)

	// ErrNoSrcAddress is returned when no source address was provided
	ErrNoSrcAddress = errors.New("source address cannot be empty")
)
