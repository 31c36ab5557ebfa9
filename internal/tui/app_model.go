package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/unibrain/internal/app"
	"github.com/MKhiriev/unibrain/internal/service"
	"github.com/MKhiriev/unibrain/internal/wallet"
	"github.com/MKhiriev/unibrain/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

type screen int

const (
	screenMarketplace screen = iota
	screenGallery
	screenUpload
	screenFeatured
)

var screenTitles = map[screen]string{
	screenMarketplace: "Marketplace",
	screenGallery:     "NFT",
	screenUpload:      "Pubblica",
	screenFeatured:    "In evidenza",
}

const statusTTL = 3 * time.Second

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	network   wallet.Network
	buildInfo models.AppBuildInfo

	currentScreen screen

	market   marketplaceModel
	gallery  galleryModel
	upload   uploadModel
	featured featuredModel

	status        string
	busy          bool
	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, network wallet.Network, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:       ctx,
		services:  services,
		network:   network,
		buildInfo: buildInfo,
		market:    marketplaceModel{loading: true},
		upload:    newUploadModel(services.MarketplaceService.Subjects()),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdRestore(), m.cmdLoadDocuments())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.currentScreen != screenUpload {
			if next, cmd, handled := m.updateGlobalKeys(msg); handled {
				return next, cmd
			}
		}

	case sessionMsg:
		m.busy = false
		if msg.err != nil {
			m.showErrorf(service.UserMessage(msg.err))
			return m, nil
		}
		if msg.user != nil {
			clearCmd := m.setStatus("Wallet connesso: " + shortAddress(msg.user.WalletAddress))
			return m, clearCmd
		}
		return m, nil

	case loggedOutMsg:
		if msg.err != nil {
			m.showErrorf(service.UserMessage(msg.err))
			return m, nil
		}
		m.gallery.mine = false
		clearCmd := m.setStatus("Wallet disconnesso")
		return m, clearCmd

	case resyncMsg:
		return m, tea.Batch(m.cmdLoadDocuments(), m.cmdLoadNFTs(m.gallery.mine))

	case documentsLoadedMsg:
		m.market.loading = false
		if msg.err != nil {
			m.showErrorf(service.UserMessage(msg.err))
			return m, nil
		}
		m.market.items = msg.items
		m.market.source = msg.source
		m.market.fallback = msg.fallback
		m.market.idx = clampIndex(m.market.idx, len(m.market.items))
		return m, nil

	case nftsLoadedMsg:
		m.gallery.loading = false
		if msg.err != nil {
			m.showErrorf(service.UserMessage(msg.err))
			return m, nil
		}
		m.gallery.items = msg.items
		m.gallery.mine = msg.mine
		m.gallery.source = msg.source
		m.gallery.fallback = msg.fallback
		m.gallery.idx = clampIndex(m.gallery.idx, len(m.gallery.items))
		return m, nil

	case featuredLoadedMsg:
		m.featured.loading = false
		if msg.err != nil {
			m.showErrorf(service.UserMessage(msg.err))
			return m, nil
		}
		m.featured.items = msg.items
		m.featured.idx = clampIndex(m.featured.idx, len(m.featured.items))
		return m, nil

	case paymentDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.showErrorf(service.UserMessage(msg.err))
			return m, nil
		}
		if !msg.result.Success {
			m.showErrorf(paymentFailure(msg.result))
			return m, nil
		}
		m.market.lastTxHash = msg.result.TransactionHash
		clearCmd := m.setStatus(app.MsgPaymentSent + " tx " + shortAddress(msg.result.TransactionHash))
		return m, tea.Batch(clearCmd, m.cmdLoadDocuments())

	case downloadDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.showErrorf(service.UserMessage(msg.err))
			return m, nil
		}
		clearCmd := m.setStatus(app.MsgDownloadRecorded)
		return m, tea.Batch(clearCmd, m.cmdLoadDocuments())

	case publishedMsg:
		m.upload.submitting = false
		if msg.err != nil {
			m.showErrorf(service.UserMessage(msg.err))
			return m, nil
		}
		m.upload = newUploadModel(m.services.MarketplaceService.Subjects())
		m.currentScreen = screenMarketplace
		clearCmd := m.setStatus(app.MsgPublishSucceeded)
		return m, tea.Batch(clearCmd, m.cmdLoadDocuments())

	case bidSignedMsg:
		m.busy = false
		if msg.err != nil {
			m.showErrorf(service.UserMessage(msg.err))
			return m, nil
		}
		clearCmd := m.setStatus(fmt.Sprintf("%s: %s per %q, firma %s",
			app.MsgBidSigned, formatETH(msg.bid.AmountETH), msg.bid.Title, shortAddress(msg.bid.Signature)))
		return m, clearCmd

	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		clearCmd := m.setStatus("Copiato!")
		return m, clearCmd

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenMarketplace:
		return m.updateMarketplace(msg)
	case screenGallery:
		return m.updateGallery(msg)
	case screenUpload:
		return m.updateUpload(msg)
	case screenFeatured:
		return m.updateFeatured(msg)
	}

	return m, nil
}

// updateGlobalKeys handles the keys shared by every list screen.
func (m appModel) updateGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit, true
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil, true
	case key.Matches(msg, keys.connect):
		if m.busy {
			return m, nil, true
		}
		m.busy = true
		return m, m.cmdLogin(), true
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout(), true
	case key.Matches(msg, keys.marketplace):
		m.currentScreen = screenMarketplace
		return m, nil, true
	case key.Matches(msg, keys.gallery):
		m.currentScreen = screenGallery
		m.gallery.loading = true
		return m, m.cmdLoadNFTs(m.gallery.mine), true
	case key.Matches(msg, keys.upload):
		m.currentScreen = screenUpload
		return m, nil, true
	case key.Matches(msg, keys.featured):
		m.currentScreen = screenFeatured
		m.featured.loading = true
		return m, m.cmdLoadFeatured(), true
	}
	return m, nil, false
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenMarketplace:
		body = m.market.View()
	case screenGallery:
		body = m.gallery.View()
	case screenUpload:
		body = m.upload.View(m.services.MarketplaceService.NFTProbability(m.upload.request()))
	case screenFeatured:
		body = m.featured.View()
	}

	out := m.renderHeader() + "\n\n" + body
	if m.status != "" {
		out += "\n\n" + statusStyle.Render(m.status)
	}
	if m.showError {
		out += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(out)
}

func (m appModel) renderHeader() string {
	walletText := "wallet non connesso"
	if m.services.SessionService.IsAuthenticated() {
		walletText = shortAddress(m.services.SessionService.Wallet())
	}

	info := fmt.Sprintf("UniBrain · %s · %s · %s (%d)",
		walletText,
		m.services.MarketplaceService.Mode(),
		m.network.Name,
		m.network.ChainID,
	)

	tabs := make([]string, 0, len(screenTitles))
	for s := screenMarketplace; s <= screenFeatured; s++ {
		label := fmt.Sprintf("%d %s", int(s)+1, screenTitles[s])
		if s == m.currentScreen {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, inactiveTab.Render(label))
		}
	}

	return headerStyle.Render(info) + "\n" + strings.Join(tabs, "  ")
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// setStatus shows status and returns the command clearing it. It must run
// before m is returned.
func (m *appModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m appModel) requireWallet() bool {
	return m.services.SessionService.IsAuthenticated()
}

func paymentFailure(result models.PaymentResult) string {
	if result.Error != "" {
		return result.Error
	}
	return app.MsgPurchaseCancelled
}

func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func moveIndex(msg tea.KeyMsg, idx, n int) int {
	switch {
	case key.Matches(msg, keys.up):
		if idx > 0 {
			idx--
		}
	case key.Matches(msg, keys.down):
		if idx < n-1 {
			idx++
		}
	}
	return idx
}

// ── commands ─────────────────────────────────

func (m appModel) cmdRestore() tea.Cmd {
	return func() tea.Msg {
		ok, err := m.services.SessionService.Restore(m.ctx)
		if err != nil || !ok {
			return sessionMsg{err: err}
		}
		return sessionMsg{user: m.services.SessionService.CurrentUser()}
	}
}

func (m appModel) cmdLogin() tea.Cmd {
	return func() tea.Msg {
		user, err := m.services.SessionService.Login(m.ctx)
		if err != nil {
			return sessionMsg{err: err}
		}
		return sessionMsg{user: &user}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.services.SessionService.Logout(m.ctx)}
	}
}

func (m appModel) cmdLoadDocuments() tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.MarketplaceService.GetDocuments(m.ctx, models.Page{})
		return documentsLoadedMsg{items: result.Value, source: result.Source, fallback: result.Fallback, err: err}
	}
}

func (m appModel) cmdLoadNFTs(mine bool) tea.Cmd {
	return func() tea.Msg {
		if mine {
			result, err := m.services.NFTService.GetUserNFTs(m.ctx, m.services.SessionService.Wallet())
			return nftsLoadedMsg{items: result.Value, mine: true, source: result.Source, fallback: result.Fallback, err: err}
		}
		result, err := m.services.NFTService.GetAllNFTs(m.ctx, models.Page{})
		return nftsLoadedMsg{items: result.Value, source: result.Source, fallback: result.Fallback, err: err}
	}
}

func (m appModel) cmdLoadFeatured() tea.Cmd {
	return func() tea.Msg {
		notes, err := m.services.MarketplaceService.FeaturedNotes(m.ctx)
		return featuredLoadedMsg{items: notes, err: err}
	}
}

func (m appModel) cmdPurchase(doc models.Document) tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.PaymentService.PurchaseDocument(m.ctx, doc, m.services.SessionService.Wallet())
		return paymentDoneMsg{result: result, err: err}
	}
}

func (m appModel) cmdQuickBuy(note models.FeaturedNote) tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.PaymentService.QuickBuy(m.ctx, note, m.services.SessionService.Wallet())
		return paymentDoneMsg{result: result, err: err}
	}
}

func (m appModel) cmdDownload(doc models.Document) tea.Cmd {
	return func() tea.Msg {
		return downloadDoneMsg{err: m.services.PaymentService.DownloadForFree(m.ctx, doc.ID, m.services.SessionService.Wallet())}
	}
}

func (m appModel) cmdPublish(req models.PublishRequest) tea.Cmd {
	return func() tea.Msg {
		doc, err := m.services.MarketplaceService.PublishDocument(m.ctx, req)
		return publishedMsg{doc: doc, err: err}
	}
}

func (m appModel) cmdSignBid(title string, amount decimal.Decimal) tea.Cmd {
	return func() tea.Msg {
		bid, err := m.services.SessionService.SignBid(m.ctx, title, amount)
		return bidSignedMsg{bid: bid, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
