package models

// FrameButton is a button of a Farcaster frame.
type FrameButton struct {
	Label  string `json:"label"`
	Action string `json:"action"`
	Target string `json:"target"`
}

// FrameResponse answers a frame POST.
type FrameResponse struct {
	Type    string        `json:"type"`
	Image   string        `json:"image"`
	Buttons []FrameButton `json:"buttons"`
}

// ComposerActionMetadata describes the composer action to the host.
type ComposerActionMetadata struct {
	Type        string         `json:"type"`
	Name        string         `json:"name"`
	Icon        string         `json:"icon"`
	Description string         `json:"description"`
	AboutURL    string         `json:"aboutUrl"`
	ImageURL    string         `json:"imageUrl"`
	Action      ComposerAction `json:"action"`
}

// ComposerAction is the action type of a composer action.
type ComposerAction struct {
	Type string `json:"type"`
}

// ComposerForm is returned when the composer action is triggered.
type ComposerForm struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// MiniAppManifest is served at /.well-known/farcaster.json.
type MiniAppManifest struct {
	Frame MiniAppFrame `json:"frame"`
}

// MiniAppFrame is the frame section of the manifest.
type MiniAppFrame struct {
	Version               string `json:"version"`
	Name                  string `json:"name"`
	HomeURL               string `json:"homeUrl"`
	IconURL               string `json:"iconUrl"`
	ImageURL              string `json:"imageUrl"`
	ButtonTitle           string `json:"buttonTitle"`
	SplashImageURL        string `json:"splashImageUrl"`
	SplashBackgroundColor string `json:"splashBackgroundColor"`
}

// MiniAppContext is what the host reports when the mini-app becomes ready.
type MiniAppContext struct {
	Capabilities []string       `json:"capabilities"`
	User         *MiniAppUser   `json:"user,omitempty"`
	Client       map[string]any `json:"client,omitempty"`
}

// MiniAppUser is the host account that opened the mini-app.
type MiniAppUser struct {
	FID         int64  `json:"fid"`
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	PFPURL      string `json:"pfpUrl,omitempty"`
}

// MiniAppReady is the answer to a ready notification.
type MiniAppReady struct {
	Ready        bool `json:"ready"`
	ShareEnabled bool `json:"share_enabled"`
}

// ShareRequest asks for a cast to be composed.
type ShareRequest struct {
	Text         string   `json:"text"`
	Embeds       []string `json:"embeds"`
	Capabilities []string `json:"capabilities"`
}

// ShareIntent is a compose URL the host opens.
type ShareIntent struct {
	URL string `json:"url"`
}
