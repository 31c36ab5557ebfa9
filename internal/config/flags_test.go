package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name string
		addr NetAddress
		want string
	}{
		{name: "empty", addr: NetAddress{}, want: ""},
		{name: "localhost", addr: NetAddress{Host: "localhost", Port: 8080}, want: "localhost:8080"},
		{name: "ip", addr: NetAddress{Host: "127.0.0.1", Port: 9000}, want: "127.0.0.1:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "0.0.0.0:80", want: NetAddress{Host: "0.0.0.0", Port: 80}},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port too big", input: "localhost:70000", wantErr: true},
		{name: "bad host", input: "example:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "/etc/unibrain.yaml", "-redis", "localhost:6379"})

	require.NoError(t, err)
	assert.Equal(t, "/etc/unibrain.yaml", cfg.FilePath)
	assert.Equal(t, "localhost:6379", cfg.Workers.RedisAddr)
	assert.Empty(t, cfg.Server.HTTPAddress)
}
