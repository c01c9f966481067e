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
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

// CoinLovelace identifies the base coin (ADA, in lovelace). Every other coin
// is a native asset identified by its policy ID, optionally followed by a
// dot and the hex-encoded asset name
const CoinLovelace Coin = "lovelace"

// Coin identifies a coin type within transaction inputs and outputs. Coins
// compare by exact string equality
type Coin string

// NewAssetCoin builds a Coin from a policy ID and a raw asset name. An empty
// asset name yields the bare policy ID
func NewAssetCoin(policyId string, assetName []byte) Coin {
	if len(assetName) == 0 {
		return Coin(policyId)
	}
	return Coin(policyId + "." + hex.EncodeToString(assetName))
}

func (c Coin) String() string {
	return string(c)
}

// IsLovelace returns whether the coin is the base coin. An empty coin value
// is treated as lovelace, matching the behavior of output records that don't
// name a coin
func (c Coin) IsLovelace() bool {
	return c == CoinLovelace || c == ""
}

// PolicyId returns the policy ID portion of an asset coin
func (c Coin) PolicyId() string {
	policyId, _, _ := strings.Cut(string(c), ".")
	return policyId
}

// AssetNameHex returns the hex-encoded asset name portion of an asset coin,
// which is empty for coins with an empty asset name
func (c Coin) AssetNameHex() string {
	_, assetName, _ := strings.Cut(string(c), ".")
	return assetName
}

// AssetName returns the decoded asset name, or an empty string when the name
// is not valid hex-encoded UTF-8. The decoded form is for display only and
// is never used for coin equality
func (c Coin) AssetName() string {
	assetNameHex := c.AssetNameHex()
	if assetNameHex == "" {
		return ""
	}
	decoded, err := hex.DecodeString(assetNameHex)
	if err != nil {
		return ""
	}
	if !utf8.Valid(decoded) {
		return ""
	}
	return string(decoded)
}

// Fingerprint returns the CIP-14 asset fingerprint (bech32 with the "asset"
// prefix over the blake2b-160 hash of policy ID and asset name)
func (c Coin) Fingerprint() (string, error) {
	if c.IsLovelace() {
		return "", fmt.Errorf("no fingerprint for base coin")
	}
	policyIdBytes, err := hex.DecodeString(c.PolicyId())
	if err != nil {
		return "", fmt.Errorf("decode policy ID: %w", err)
	}
	assetNameBytes, err := hex.DecodeString(c.AssetNameHex())
	if err != nil {
		return "", fmt.Errorf("decode asset name: %w", err)
	}
	tmpHash, err := blake2b.New(20, nil)
	if err != nil {
		return "", err
	}
	tmpHash.Write(policyIdBytes)
	tmpHash.Write(assetNameBytes)
	convData, err := bech32.ConvertBits(tmpHash.Sum(nil), 8, 5, true)
	if err != nil {
		return "", err
	}
	encoded, err := bech32.Encode("asset", convData)
	if err != nil {
		return "", err
	}
	return encoded, nil
}
