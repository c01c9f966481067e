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

import (
	"fmt"
)

// WarningCode classifies assembly warnings
type WarningCode string

const (
	// WarningInsufficientFunds means the available inputs of a coin don't
	// cover the funds needed
	WarningInsufficientFunds WarningCode = "insufficient-funds"
	// WarningNoInputs means no input UTxOs were available at all
	WarningNoInputs WarningCode = "no-inputs"
	// WarningMissingCoinCoverage means an output coin that is not being
	// minted is absent from the inputs
	WarningMissingCoinCoverage WarningCode = "missing-coin-coverage"
	// WarningEmptySelection means input selection produced an empty set
	WarningEmptySelection WarningCode = "empty-selection"
)

// Warning reports a non-fatal problem found while assembling a transaction
// plan. The plan is still returned so the caller can decide whether to treat
// the condition as fatal or defer validation to the node
type Warning struct {
	Code      WarningCode `json:"code"`
	Coin      Coin        `json:"coin,omitempty"`
	Available int64       `json:"available,omitempty"`
	Needed    int64       `json:"needed,omitempty"`
	Message   string      `json:"message"`
}

func (w Warning) String() string {
	if w.Coin != "" {
		return fmt.Sprintf("%s (%s): %s", w.Code, w.Coin, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}
