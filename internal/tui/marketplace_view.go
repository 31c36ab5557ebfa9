package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/unibrain/internal/app"
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type marketplaceModel struct {
	items      []models.Document
	idx        int
	source     store.Source
	fallback   bool
	loading    bool
	lastTxHash string
}

func (mm marketplaceModel) selected() (models.Document, bool) {
	if mm.idx < 0 || mm.idx >= len(mm.items) {
		return models.Document{}, false
	}
	return mm.items[mm.idx], true
}

func (m appModel) updateMarketplace(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up), key.Matches(keyMsg, keys.down):
		m.market.idx = moveIndex(keyMsg, m.market.idx, len(m.market.items))
	case key.Matches(keyMsg, keys.refresh):
		m.market.loading = true
		return m, m.cmdLoadDocuments()
	case key.Matches(keyMsg, keys.copy):
		if m.market.lastTxHash == "" {
			return m, nil
		}
		return m, cmdCopy(m.market.lastTxHash)
	case key.Matches(keyMsg, keys.enter):
		doc, ok := m.market.selected()
		if !ok || m.busy {
			return m, nil
		}
		if !m.requireWallet() {
			m.showErrorf(app.MsgConnectWalletFirst)
			return m, nil
		}
		if doc.IsFree {
			m.busy = true
			return m, m.cmdDownload(doc)
		}
		m.busy = true
		clearCmd := m.setStatus("Conferma il pagamento nel wallet...")
		return m, tea.Batch(clearCmd, m.cmdPurchase(doc))
	case key.Matches(keyMsg, keys.download):
		doc, ok := m.market.selected()
		if !ok || m.busy {
			return m, nil
		}
		if !doc.IsFree {
			m.showErrorf(app.MsgPurchaseRequired)
			return m, nil
		}
		if !m.requireWallet() {
			m.showErrorf(app.MsgConnectWalletFirst)
			return m, nil
		}
		m.busy = true
		return m, m.cmdDownload(doc)
	}

	return m, nil
}

func (mm marketplaceModel) View() string {
	title := "Marketplace appunti"
	if mm.source != "" {
		title += fmt.Sprintf(" [%s]", mm.source)
	}
	if mm.fallback {
		title += " (copia locale)"
	}

	var b strings.Builder
	switch {
	case mm.loading:
		b.WriteString("Caricamento...")
	case len(mm.items) == 0:
		b.WriteString("Nessun documento pubblicato")
	default:
		for i, doc := range mm.items {
			price := formatETH(doc.PriceETH)
			if doc.IsFree {
				price = freeStyle.Render("Gratis")
			}
			line := fmt.Sprintf("%s%-36s %-16s %s",
				cursor(i == mm.idx),
				fitText(doc.Title, 36),
				fitText(valueOrNA(doc.Subject), 16),
				price,
			)
			b.WriteString(line)
			b.WriteString("\n")
		}
		if doc, ok := mm.selected(); ok {
			b.WriteString("\n")
			b.WriteString(renderDocumentDetails(doc))
		}
	}

	return renderPage(title, b.String(), "↑/↓ scegli  enter acquista  d scarica gratis  r aggiorna  c copia tx")
}

func renderDocumentDetails(doc models.Document) string {
	lines := []string{
		"Università: " + valueOrNA(doc.University),
		"Corso: " + valueOrNA(doc.Course),
		"Docente: " + valueOrNA(doc.Professor),
		fmt.Sprintf("Download: %d  Acquisti: %d", doc.DownloadsCount, doc.PurchasesCount),
	}
	if len(doc.Tags) > 0 {
		lines = append(lines, "Tag: "+strings.Join(doc.Tags, ", "))
	}
	if summary := summaryText(doc.AISummary); summary != "" {
		lines = append(lines, "", fitText(summary, 240))
	}
	return strings.Join(lines, "\n")
}

// summaryText returns the summary sentence of a stored summary. Values that
// are not JSON are shown as they are.
func summaryText(stored string) string {
	var summary models.DocumentSummary
	if err := json.Unmarshal([]byte(stored), &summary); err != nil {
		return stored
	}
	return summary.Summary
}
