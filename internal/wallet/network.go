package wallet

import (
	"fmt"

	"github.com/MKhiriev/unibrain/internal/config"
)

// Currency is the native currency of a network.
type Currency struct {
	Name     string
	Symbol   string
	Decimals int
}

// Network is the data a wallet needs to register and use a chain.
type Network struct {
	ChainID        int64
	Name           string
	RPCURL         string
	ExplorerURL    string
	NativeCurrency Currency
}

// HexChainID renders the chain id the way wallets expect it, e.g. 0x2105.
func (n Network) HexChainID() string {
	return fmt.Sprintf("0x%x", n.ChainID)
}

var ether = Currency{Name: "Ether", Symbol: "ETH", Decimals: 18}

// BaseMainnet is the network the marketplace settles on.
func BaseMainnet() Network {
	return Network{
		ChainID:        config.BaseMainnetChainID,
		Name:           config.BaseMainnetName,
		RPCURL:         config.BaseMainnetRPCURL,
		ExplorerURL:    config.BaseMainnetExplorerURL,
		NativeCurrency: ether,
	}
}

// NetworkFromConfig builds the target network from the chain settings.
func NetworkFromConfig(cfg config.Chain) Network {
	return Network{
		ChainID:        cfg.ID,
		Name:           cfg.Name,
		RPCURL:         cfg.RPCURL,
		ExplorerURL:    cfg.ExplorerURL,
		NativeCurrency: ether,
	}
}

// TxURL links a transaction on the network's explorer.
func (n Network) TxURL(hash string) string {
	if n.ExplorerURL == "" {
		return ""
	}
	base := n.ExplorerURL
	if base[len(base)-1] != '/' {
		base += "/"
	}
	return base + "tx/" + hash
}
