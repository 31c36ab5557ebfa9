package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/unibrain/internal/service"
	"github.com/MKhiriev/unibrain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFrame(t *testing.T) {
	h, m := newTestHandler(t)
	m.miniApp.EXPECT().Frame(gomock.Any()).Return(models.FrameResponse{
		Type:    "frame",
		Image:   "https://unibrain.app/hero.png",
		Buttons: []models.FrameButton{{Label: "Launch App", Action: "launch_frame", Target: "https://unibrain.app"}},
	})

	rec := serve(h, http.MethodPost, "/api/frame", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"type":"frame",
		"image":"https://unibrain.app/hero.png",
		"buttons":[{"label":"Launch App","action":"launch_frame","target":"https://unibrain.app"}]
	}`, rec.Body.String())
}

func TestCompose(t *testing.T) {
	h, m := newTestHandler(t)
	m.miniApp.EXPECT().ComposeMetadata(gomock.Any()).Return(models.ComposerActionMetadata{Type: "composer", Name: "UniBrain"})
	m.miniApp.EXPECT().ComposeForm(gomock.Any()).Return(models.ComposerForm{Type: "form", Title: "Unibrain", URL: "https://unibrain.app"})

	get := serve(h, http.MethodGet, "/api/compose", "")
	post := serve(h, http.MethodPost, "/api/compose", "")

	require.Equal(t, http.StatusOK, get.Code)
	assert.Contains(t, get.Body.String(), `"type":"composer"`)
	require.Equal(t, http.StatusOK, post.Code)
	assert.JSONEq(t, `{"type":"form","title":"Unibrain","url":"https://unibrain.app"}`, post.Body.String())
}

func TestManifest(t *testing.T) {
	h, m := newTestHandler(t)
	m.miniApp.EXPECT().Manifest(gomock.Any()).Return(models.MiniAppManifest{
		Frame: models.MiniAppFrame{Version: "1", Name: "UniBrain", SplashBackgroundColor: "#ffffff"},
	})

	rec := serve(h, http.MethodGet, "/.well-known/farcaster.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"splashBackgroundColor":"#ffffff"`)
}

func TestMiniAppReady(t *testing.T) {
	h, m := newTestHandler(t)
	m.miniApp.EXPECT().
		Ready(gomock.Any(), models.MiniAppContext{Capabilities: []string{service.CapabilityShare}}).
		Return(models.MiniAppReady{Ready: true, ShareEnabled: true})

	rec := serve(h, http.MethodPost, "/api/miniapp/ready", `{"capabilities":["`+service.CapabilityShare+`"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ready":true,"share_enabled":true}`, rec.Body.String())
}

func TestMiniAppReady_EmptyBody(t *testing.T) {
	h, m := newTestHandler(t)
	m.miniApp.EXPECT().Ready(gomock.Any(), models.MiniAppContext{}).Return(models.MiniAppReady{Ready: true})

	rec := serve(h, http.MethodPost, "/api/miniapp/ready", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestShare(t *testing.T) {
	h, m := newTestHandler(t)
	m.miniApp.EXPECT().Share(gomock.Any(), gomock.Any()).Return(models.ShareIntent{URL: service.ShareComposeURL + "?text=Appunti"}, nil)

	rec := serve(h, http.MethodPost, "/api/share", `{"text":"Appunti","capabilities":["`+service.CapabilityShare+`"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "text=Appunti")
}

func TestShare_NotSupported(t *testing.T) {
	h, m := newTestHandler(t)
	m.miniApp.EXPECT().Share(gomock.Any(), gomock.Any()).Return(models.ShareIntent{}, service.ErrShareNotSupported)

	rec := serve(h, http.MethodPost, "/api/share", `{"text":"Appunti"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
