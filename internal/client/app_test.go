package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/tui"
	"github.com/MKhiriev/unibrain/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUI struct {
	err     error
	started bool
	workers []string
	seen    *[]string
}

func (u *stubUI) Run(context.Context) error {
	u.started = true
	if u.seen != nil {
		u.workers = append(u.workers, *u.seen...)
	}
	return u.err
}

type stubWorker struct {
	name string
	err  error
	seen *[]string
}

func (w stubWorker) Run(context.Context) error {
	*w.seen = append(*w.seen, w.name)
	return w.err
}

func TestNewApp_NoUI(t *testing.T) {
	_, err := NewApp(nil, nil, logger.Nop())

	assert.ErrorIs(t, err, errNoUI)
}

func TestRunContext_UserQuitIsNotAnError(t *testing.T) {
	var seen []string
	ui := &stubUI{err: tui.ErrUserQuit, seen: &seen}
	closed := 0
	app, err := NewApp(ui, workers.NewWorkers(stubWorker{name: "nft", seen: &seen}), logger.Nop(),
		func() error { closed++; return nil },
	)
	require.NoError(t, err)

	err = app.RunContext(context.Background())

	require.NoError(t, err)
	assert.True(t, ui.started)
	assert.Equal(t, []string{"nft"}, ui.workers, "workers start before the ui")
	assert.Equal(t, 1, closed)
}

func TestRunContext_WorkerFailureSkipsUI(t *testing.T) {
	var seen []string
	ui := &stubUI{}
	boom := errors.New("boom")
	app, err := NewApp(ui, workers.NewWorkers(stubWorker{name: "nft", err: boom, seen: &seen}), logger.Nop())
	require.NoError(t, err)

	err = app.RunContext(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.False(t, ui.started)
}

func TestRunContext_JoinsCloseErrors(t *testing.T) {
	uiErr := errors.New("terminal lost")
	closeErr := errors.New("close failed")
	app, err := NewApp(&stubUI{err: uiErr}, nil, logger.Nop(), func() error { return closeErr })
	require.NoError(t, err)

	err = app.RunContext(context.Background())

	assert.ErrorIs(t, err, uiErr)
	assert.ErrorIs(t, err, closeErr)
}
