package service

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var miniAppCfg = config.App{
	Name:          "UniBrain",
	URL:           "https://unibrain.app/",
	SplashBgColor: "#ffffff",
}

func TestMiniApp_Frame(t *testing.T) {
	svc := NewMiniAppService(miniAppCfg, logger.Nop())

	frame := svc.Frame(context.Background())

	assert.Equal(t, models.FrameResponse{
		Type:  "frame",
		Image: "https://unibrain.app/hero.png",
		Buttons: []models.FrameButton{
			{Label: "Launch App", Action: "launch_frame", Target: "https://unibrain.app"},
		},
	}, frame)
}

func TestMiniApp_FrameUsesConfiguredHero(t *testing.T) {
	cfg := miniAppCfg
	cfg.HeroImage = "https://cdn.example.com/hero.jpg"
	svc := NewMiniAppService(cfg, logger.Nop())

	assert.Equal(t, cfg.HeroImage, svc.Frame(context.Background()).Image)
}

func TestMiniApp_Compose(t *testing.T) {
	svc := NewMiniAppService(miniAppCfg, logger.Nop())
	ctx := context.Background()

	meta := svc.ComposeMetadata(ctx)
	assert.Equal(t, "composer", meta.Type)
	assert.Equal(t, "UniBrain", meta.Name)
	assert.Equal(t, "post", meta.Action.Type)

	form := svc.ComposeForm(ctx)
	assert.Equal(t, models.ComposerForm{Type: "form", Title: "Unibrain", URL: "https://unibrain.app"}, form)
}

func TestMiniApp_Manifest(t *testing.T) {
	svc := NewMiniAppService(miniAppCfg, logger.Nop())

	manifest := svc.Manifest(context.Background())

	assert.Equal(t, "1", manifest.Frame.Version)
	assert.Equal(t, "UniBrain", manifest.Frame.Name)
	assert.Equal(t, "https://unibrain.app", manifest.Frame.HomeURL)
	assert.Equal(t, "https://unibrain.app/hero.png", manifest.Frame.ImageURL)
	assert.Equal(t, "https://unibrain.app/splash.png", manifest.Frame.SplashImageURL)
	assert.Equal(t, "#ffffff", manifest.Frame.SplashBackgroundColor)
}

func TestMiniApp_Ready(t *testing.T) {
	svc := NewMiniAppService(miniAppCfg, logger.Nop())
	ctx := context.Background()

	without := svc.Ready(ctx, models.MiniAppContext{})
	assert.True(t, without.Ready)
	assert.False(t, without.ShareEnabled)

	with := svc.Ready(ctx, models.MiniAppContext{
		Capabilities: []string{"wallet", CapabilityShare},
		User:         &models.MiniAppUser{FID: 42},
	})
	assert.True(t, with.ShareEnabled)
}

func TestMiniApp_Share(t *testing.T) {
	svc := NewMiniAppService(miniAppCfg, logger.Nop())
	ctx := context.Background()

	_, err := svc.Share(ctx, models.ShareRequest{Text: "Appunti"})
	assert.ErrorIs(t, err, ErrShareNotSupported)

	_, err = svc.Share(ctx, models.ShareRequest{Text: "  ", Capabilities: []string{CapabilityShare}})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	intent, err := svc.Share(ctx, models.ShareRequest{
		Text:         "Appunti di Analisi",
		Embeds:       []string{"https://unibrain.app/doc/1"},
		Capabilities: []string{CapabilityShare},
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(intent.URL, ShareComposeURL+"?"))

	parsed, err := url.Parse(intent.URL)
	require.NoError(t, err)
	assert.Equal(t, "Appunti di Analisi", parsed.Query().Get("text"))
	assert.Equal(t, []string{"https://unibrain.app/doc/1"}, parsed.Query()["embeds[]"])
}
