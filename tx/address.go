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
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// DecodeAddress returns the raw bytes of a Cardano address string. Mixed
// case means a base58-encoded Byron address; everything else is treated as
// bech32 (Shelley payment and stake addresses)
func DecodeAddress(addr string) ([]byte, error) {
	if addr == "" {
		return nil, errors.New("empty address")
	}
	if strings.ToLower(addr) != addr {
		decoded := base58.Decode(addr)
		if len(decoded) == 0 {
			return nil, errors.New("invalid base58 address")
		}
		return decoded, nil
	}
	_, data, err := bech32.DecodeNoLimit(addr)
	if err != nil {
		return nil, err
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

// ValidAddress returns whether the given address string decodes cleanly
func ValidAddress(addr string) bool {
	_, err := DecodeAddress(addr)
	return err == nil
}
