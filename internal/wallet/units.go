package wallet

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// EtherDecimals is the number of wei decimals in one ether.
const EtherDecimals = 18

// ToWei converts an ether amount to wei, truncating below one wei.
func ToWei(eth decimal.Decimal) *big.Int {
	return eth.Shift(EtherDecimals).Truncate(0).BigInt()
}

// FromWei converts wei to ether.
func FromWei(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -EtherDecimals)
}
