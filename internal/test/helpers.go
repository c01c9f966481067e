package test

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/txbuilder/tx"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// LovelaceUtxo builds a base-coin UTxO record for tests
func LovelaceUtxo(txHash string, outputIndex uint32, address string, amount int64) tx.Utxo {
	return tx.Utxo{
		TxHash:      txHash,
		OutputIndex: outputIndex,
		Address:     address,
		Amount:      amount,
		Coin:        tx.CoinLovelace,
	}
}

// AssetUtxo builds a token UTxO record for tests
func AssetUtxo(txHash string, outputIndex uint32, address string, amount int64, coin tx.Coin) tx.Utxo {
	return tx.Utxo{
		TxHash:      txHash,
		OutputIndex: outputIndex,
		Address:     address,
		Amount:      amount,
		Coin:        coin,
	}
}
