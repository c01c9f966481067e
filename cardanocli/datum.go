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
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// DatumHash returns the hex-encoded blake2b-256 hash of the given datum
// value encoded as CBOR
func DatumHash(datum any) (string, error) {
	cborData, err := cbor.Marshal(datum)
	if err != nil {
		return "", fmt.Errorf("encode datum: %w", err)
	}
	return DatumHashFromCbor(cborData)
}

// DatumHashFromCbor returns the hex-encoded blake2b-256 hash of an
// already-encoded datum
func DatumHashFromCbor(cborData []byte) (string, error) {
	if err := cbor.Wellformed(cborData); err != nil {
		return "", fmt.Errorf("malformed datum CBOR: %w", err)
	}
	hash := blake2b.Sum256(cborData)
	return hex.EncodeToString(hash[:]), nil
}

// DatumHashFromJson returns the hex-encoded blake2b-256 hash of a
// JSON-encoded datum value, re-encoded as CBOR the way cardano-cli hashes
// `--tx-out-datum-hash-value` arguments
func DatumHashFromJson(jsonData []byte) (string, error) {
	var datum any
	if err := json.Unmarshal(jsonData, &datum); err != nil {
		return "", fmt.Errorf("decode datum JSON: %w", err)
	}
	return DatumHash(datum)
}
