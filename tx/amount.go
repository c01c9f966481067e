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
	"strconv"
)

// allRemainingJson is the legacy wire encoding for AllRemaining amounts,
// retained for compatibility with clusterlib-style transaction plans
const allRemainingJson = -1

// Amount is an output or withdrawal amount. It is either an exact value in
// the coin's minor unit or the AllRemaining marker, which requests all
// remaining funds of the coin. Exact values may be negative only for
// mint/burn instructions
type Amount struct {
	value        int64
	allRemaining bool
}

// NewAmount returns an exact amount
func NewAmount(value int64) Amount {
	return Amount{value: value}
}

// AmountAllRemaining returns the amount marker that requests all remaining
// funds of a coin
func AmountAllRemaining() Amount {
	return Amount{allRemaining: true}
}

// IsAllRemaining returns whether the amount requests all remaining funds
func (a Amount) IsAllRemaining() bool {
	return a.allRemaining
}

// Int64 returns the exact value. It is zero for AllRemaining amounts
func (a Amount) Int64() int64 {
	if a.allRemaining {
		return 0
	}
	return a.value
}

func (a Amount) String() string {
	if a.allRemaining {
		return "all"
	}
	return strconv.FormatInt(a.value, 10)
}

// MarshalJSON encodes exact amounts as plain integers and AllRemaining as -1
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.allRemaining {
		return []byte(strconv.Itoa(allRemainingJson)), nil
	}
	return []byte(strconv.FormatInt(a.value, 10)), nil
}

// UnmarshalJSON decodes a plain integer, mapping the legacy -1 marker to
// AllRemaining
func (a *Amount) UnmarshalJSON(data []byte) error {
	value, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	if value == allRemainingJson {
		*a = AmountAllRemaining()
		return nil
	}
	*a = NewAmount(value)
	return nil
}
