package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that the first non-zero value is kept
// and later sources only fill the gaps.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "env"}},
		&StructuredConfig{App: App{Version: "file", TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// TestBuild_RejectsMalformedContract verifies shared validation.
func TestBuild_RejectsMalformedContract(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Chain: Chain{NFTContractAddress: "0xnope"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidChainConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":       "env-version",
		"STORAGE_LOCAL_DSN": "env.db",
	})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env.db", b.configs[0].Storage.Local.DSN)
	assert.NoError(t, b.err)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_LoadsFile verifies that a dotenv file feeds the env source.
func TestWithDotEnv_LoadsFile(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_NAME=FromDotEnv\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Cleanup(func() { _ = os.Unsetenv("APP_NAME") })

	b := newConfigBuilder().withDotEnv().withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "FromDotEnv", b.configs[0].App.Name)
}

// TestWithDotEnv_MissingExplicitFile verifies that a named but absent file
// is reported.
func TestWithDotEnv_MissingExplicitFile(t *testing.T) {
	t.Setenv("ENV_FILE", "/nonexistent/.env")

	b := newConfigBuilder().withDotEnv()

	assert.Error(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ParsesArgs verifies that flags are mapped into the config.
func TestWithFlags_ParsesArgs(t *testing.T) {
	b := newTestBuilder("-a", "127.0.0.1:9000", "-d", "flags.db", "-chain-id", "84532", "-token-duration", "2h")
	b.withFlags()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	got := b.configs[0]
	assert.Equal(t, "127.0.0.1:9000", got.Server.HTTPAddress)
	assert.Equal(t, "flags.db", got.Storage.Local.DSN)
	assert.Equal(t, int64(84532), got.Chain.ID)
	assert.Equal(t, 2*time.Hour, got.App.TokenDuration)
}

// TestWithFlags_InvalidAddress verifies that a malformed -a value is an error.
func TestWithFlags_InvalidAddress(t *testing.T) {
	b := newTestBuilder("-a", "not-an-address")
	b.withFlags()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_NoOp_WhenNoPathSet verifies that withFile does nothing when
// no config has a FilePath.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithFile_AppendsJSON verifies that a valid JSON file is parsed and
// appended.
func TestWithFile_AppendsJSON(t *testing.T) {
	payload := FileConfig{}
	payload.App.Version = "json-version"
	payload.Server.RequestTimeout = Duration(5 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, 5*time.Second, b.configs[1].Server.RequestTimeout)
}

// TestWithFile_AppendsYAML verifies that .yaml files are decoded as YAML.
func TestWithFile_AppendsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "app:\n  name: YamlBrain\n  token_duration: 90m\nworkers:\n  concurrency: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "YamlBrain", b.configs[1].App.Name)
	assert.Equal(t, 90*time.Minute, b.configs[1].App.TokenDuration)
	assert.Equal(t, 4, b.configs[1].Workers.Concurrency)
}

// TestWithFile_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: "/nonexistent/config.json"})
	b.withFile()

	assert.Error(t, b.err)
}

// TestWithFile_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithFile_SetsError_WhenMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b.withFile()

	assert.Error(t, b.err)
}

// ── defaults and views ────────────────────────────────────────────────────────

// TestWithDefaults_FillsGaps verifies that defaults never override a value
// provided by an earlier source.
func TestWithDefaults_FillsGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{Name: "Custom"}})

	cfg, err := b.withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, "Custom", cfg.App.Name)
	assert.Equal(t, "http://localhost:5173", cfg.App.URL)
	assert.Equal(t, int64(BaseMainnetChainID), cfg.Chain.ID)
	assert.Equal(t, ZeroAddress, cfg.Chain.NFTContractAddress)
	assert.Equal(t, "gpt-3.5-turbo", cfg.AI.Model)
}

func TestClientView_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(c *ClientConfig) {}},
		{name: "in-memory dsn", mutate: func(c *ClientConfig) { c.Storage.Local.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing rpc", mutate: func(c *ClientConfig) { c.Chain.RPCURL = "" }, wantErr: ErrInvalidChainConfigs},
		{name: "missing name", mutate: func(c *ClientConfig) { c.App.Name = "" }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaultConfig().ClientView()
			tt.mutate(c)

			err := c.validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerView_RequiresSignKey(t *testing.T) {
	c := defaultConfig().ServerView()
	assert.ErrorIs(t, c.validate(), ErrInvalidAppConfigs)

	c.App.TokenSignKey = "secret"
	assert.NoError(t, c.validate())
}

func TestApp_ImageURLs(t *testing.T) {
	app := App{URL: "https://unibrain.app"}
	assert.Equal(t, "https://unibrain.app/hero.png", app.HeroImageURL())
	assert.Equal(t, "https://unibrain.app/splash.png", app.SplashImageURL())

	app.HeroImage = "https://cdn/hero.jpg"
	assert.Equal(t, "https://cdn/hero.jpg", app.HeroImageURL())
}
