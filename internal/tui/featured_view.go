package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/unibrain/internal/app"
	"github.com/MKhiriev/unibrain/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type featuredModel struct {
	items   []models.FeaturedNote
	idx     int
	loading bool
}

func (m appModel) updateFeatured(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up), key.Matches(keyMsg, keys.down):
		m.featured.idx = moveIndex(keyMsg, m.featured.idx, len(m.featured.items))
	case key.Matches(keyMsg, keys.refresh):
		m.featured.loading = true
		return m, m.cmdLoadFeatured()
	case key.Matches(keyMsg, keys.copy):
		if len(m.featured.items) == 0 {
			return m, nil
		}
		return m, cmdCopy(m.featured.items[m.featured.idx].URL)
	case key.Matches(keyMsg, keys.enter):
		if len(m.featured.items) == 0 || m.busy {
			return m, nil
		}
		if !m.requireWallet() {
			m.showErrorf(app.MsgConnectWalletFirst)
			return m, nil
		}
		m.busy = true
		return m, m.cmdQuickBuy(m.featured.items[m.featured.idx])
	}

	return m, nil
}

func (fm featuredModel) View() string {
	var b strings.Builder
	switch {
	case fm.loading:
		b.WriteString("Caricamento...")
	case len(fm.items) == 0:
		b.WriteString("Nessun appunto in evidenza")
	default:
		for i, note := range fm.items {
			b.WriteString(fmt.Sprintf("%s%-40s %-12s %s\n",
				cursor(i == fm.idx),
				fitText(note.Title, 40),
				formatETH(note.PriceETH),
				note.CreatedAt.Format("02/01/2006"),
			))
		}
	}

	return renderPage("Appunti in evidenza", b.String(), "↑/↓ scegli  enter compra subito  c copia link  r aggiorna")
}
