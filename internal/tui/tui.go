// Package tui is the terminal view of the marketplace: a header with the
// wallet, the storage mode and the network, and four screens (marketplace,
// NFT gallery, publish form, featured notes). It holds no business rules;
// every action is delegated to the client services.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/service"
	"github.com/MKhiriev/unibrain/internal/wallet"
	"github.com/MKhiriev/unibrain/models"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrUserQuit = errors.New("user quit")

	errNoServices = errors.New("tui has no services")
)

type TUI struct {
	services  *service.ClientServices
	network   wallet.Network
	buildInfo models.AppBuildInfo
	events    <-chan wallet.Event
	logger    *logger.Logger
}

// New builds the view. events may be nil when the provider emits none.
func New(services *service.ClientServices, network wallet.Network, buildInfo models.AppBuildInfo, events <-chan wallet.Event, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	return &TUI{
		services:  services,
		network:   network,
		buildInfo: buildInfo,
		events:    events,
		logger:    logger,
	}, nil
}

// Run blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newAppModel(ctx, t.services, t.network, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.services.SessionService.OnResync(func(context.Context) {
		program.Send(resyncMsg{})
	})
	if t.events != nil {
		go t.services.SessionService.Watch(ctx, t.events)
	}

	finalModel, err := program.Run()
	if err != nil && ctx.Err() != nil {
		// interrupted from outside
		return nil
	}
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal program stopped")
		return err
	}

	if result, ok := finalModel.(appModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
