package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/unibrain/internal/app"
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

// bidStep is both the smallest offer and the left/right increment.
var bidStep = decimal.RequireFromString("0.01")

type galleryModel struct {
	items    []models.NFT
	idx      int
	mine     bool
	source   store.Source
	fallback bool
	loading  bool
	// bid is the offer signed with b; zero means bidStep.
	bid decimal.Decimal
}

func (gm galleryModel) bidAmount() decimal.Decimal {
	if gm.bid.LessThan(bidStep) {
		return bidStep
	}
	return gm.bid
}

func (m appModel) updateGallery(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up), key.Matches(keyMsg, keys.down):
		m.gallery.idx = moveIndex(keyMsg, m.gallery.idx, len(m.gallery.items))
	case key.Matches(keyMsg, keys.tab):
		mine := !m.gallery.mine
		if mine && !m.requireWallet() {
			m.showErrorf(app.MsgConnectWalletFirst)
			return m, nil
		}
		m.gallery.loading = true
		m.gallery.idx = 0
		return m, m.cmdLoadNFTs(mine)
	case key.Matches(keyMsg, keys.refresh):
		m.gallery.loading = true
		return m, m.cmdLoadNFTs(m.gallery.mine)
	case key.Matches(keyMsg, keys.right):
		m.gallery.bid = m.gallery.bidAmount().Add(bidStep)
	case key.Matches(keyMsg, keys.left):
		m.gallery.bid = m.gallery.bidAmount().Sub(bidStep)
	case key.Matches(keyMsg, keys.bid):
		if len(m.gallery.items) == 0 || m.busy {
			return m, nil
		}
		if !m.requireWallet() {
			m.showErrorf(app.MsgConnectWalletFirst)
			return m, nil
		}
		m.busy = true
		nft := m.gallery.items[m.gallery.idx]
		return m, m.cmdSignBid(valueOrNA(nft.Name), m.gallery.bidAmount())
	}

	return m, nil
}

func (gm galleryModel) View() string {
	title := "Galleria NFT: tutti"
	if gm.mine {
		title = "Galleria NFT: i miei"
	}
	if gm.fallback {
		title += " (copia locale)"
	}

	var b strings.Builder
	switch {
	case gm.loading:
		b.WriteString("Caricamento...")
	case len(gm.items) == 0:
		b.WriteString("Nessun NFT")
	default:
		for i, nft := range gm.items {
			b.WriteString(fmt.Sprintf("%s#%-8s %-36s %s\n",
				cursor(i == gm.idx),
				fitText(nft.TokenID, 8),
				fitText(valueOrNA(nft.Name), 36),
				shortAddress(nft.OwnerWallet),
			))
		}
		nft := gm.items[gm.idx]
		b.WriteString("\n")
		b.WriteString(fitText(nft.Description, 240))
		for _, attr := range nft.Attributes {
			b.WriteString(fmt.Sprintf("\n%s: %v", attr.TraitType, attr.Value))
		}
	}

	hotkeys := fmt.Sprintf("↑/↓ scegli  tab tutti/miei  r aggiorna  ←/→ importo  b offerta %s", formatETH(gm.bidAmount()))
	return renderPage(title, b.String(), hotkeys)
}
