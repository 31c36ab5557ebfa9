package service

import (
	"context"
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/models"
)

const (
	// CapabilityShare is the host capability required to compose casts.
	CapabilityShare = "share_extension"

	// ShareComposeURL is the compose page opened by share intents.
	ShareComposeURL = "https://warpcast.com/~/compose"

	// FormTitle is the title of the composer form.
	FormTitle = "Unibrain"

	manifestVersion = "1"
	launchLabel     = "Launch App"
	launchAction    = "launch_frame"
)

// miniAppService builds the documents served to the mini-app host from the
// application settings.
type miniAppService struct {
	app    config.App
	logger *logger.Logger
}

func NewMiniAppService(cfg config.App, logger *logger.Logger) MiniAppService {
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	return &miniAppService{app: cfg, logger: logger}
}

func (m *miniAppService) Frame(_ context.Context) models.FrameResponse {
	return models.FrameResponse{
		Type:  "frame",
		Image: m.app.HeroImageURL(),
		Buttons: []models.FrameButton{
			{Label: launchLabel, Action: launchAction, Target: m.app.URL},
		},
	}
}

func (m *miniAppService) ComposeMetadata(_ context.Context) models.ComposerActionMetadata {
	return models.ComposerActionMetadata{
		Type:        "composer",
		Name:        m.app.Name,
		Icon:        "book",
		Description: "Condividi appunti universitari dal marketplace " + m.app.Name,
		AboutURL:    m.app.URL,
		ImageURL:    m.app.HeroImageURL(),
		Action:      models.ComposerAction{Type: "post"},
	}
}

func (m *miniAppService) ComposeForm(_ context.Context) models.ComposerForm {
	return models.ComposerForm{Type: "form", Title: FormTitle, URL: m.app.URL}
}

func (m *miniAppService) Manifest(_ context.Context) models.MiniAppManifest {
	return models.MiniAppManifest{
		Frame: models.MiniAppFrame{
			Version:               manifestVersion,
			Name:                  m.app.Name,
			HomeURL:               m.app.URL,
			IconURL:               m.app.URL + "/icon.png",
			ImageURL:              m.app.HeroImageURL(),
			ButtonTitle:           "Open",
			SplashImageURL:        m.app.SplashImageURL(),
			SplashBackgroundColor: m.app.SplashBgColor,
		},
	}
}

func (m *miniAppService) Ready(ctx context.Context, hostCtx models.MiniAppContext) models.MiniAppReady {
	event := logger.FromContext(ctx).Info().Str("func", "*miniAppService.Ready").Strs("capabilities", hostCtx.Capabilities)
	if hostCtx.User != nil {
		event = event.Int64("fid", hostCtx.User.FID)
	}
	event.Msg("mini-app ready")

	return models.MiniAppReady{
		Ready:        true,
		ShareEnabled: slices.Contains(hostCtx.Capabilities, CapabilityShare),
	}
}

// Share builds a compose intent. Hosts without the share capability get
// ErrShareNotSupported.
func (m *miniAppService) Share(_ context.Context, req models.ShareRequest) (models.ShareIntent, error) {
	if !slices.Contains(req.Capabilities, CapabilityShare) {
		return models.ShareIntent{}, ErrShareNotSupported
	}
	if strings.TrimSpace(req.Text) == "" {
		return models.ShareIntent{}, ErrInvalidDataProvided
	}

	query := url.Values{}
	query.Set("text", req.Text)
	for _, embed := range req.Embeds {
		query.Add("embeds[]", embed)
	}

	return models.ShareIntent{URL: ShareComposeURL + "?" + query.Encode()}, nil
}
