package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Window(t *testing.T) {
	tests := []struct {
		name      string
		page      Page
		n         int
		wantStart int
		wantEnd   int
	}{
		{name: "defaults", page: Page{}, n: 50, wantStart: 0, wantEnd: 20},
		{name: "offset inside", page: Page{Limit: 2, Offset: 1}, n: 3, wantStart: 1, wantEnd: 3},
		{name: "offset past end", page: Page{Limit: 5, Offset: 10}, n: 3, wantStart: 3, wantEnd: 3},
		{name: "negative offset", page: Page{Limit: 5, Offset: -4}, n: 3, wantStart: 0, wantEnd: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.page.Window(tt.n)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestUserPatch_ApplyLeavesNilFields(t *testing.T) {
	// Arrange
	u := User{Username: "user_abcdef", Bio: "old"}
	bio := "new"

	// Act
	UserPatch{Bio: &bio}.Apply(&u)

	// Assert
	assert.Equal(t, "user_abcdef", u.Username)
	assert.Equal(t, "new", u.Bio)
}

func TestDocument_PriceIsJSONNumber(t *testing.T) {
	// Arrange
	doc := Document{PriceETH: decimal.RequireFromString("0.01")}

	// Act
	data, err := json.Marshal(doc)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, string(data), `"price_eth":0.01`)
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "2026-10-01", " ")

	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "1.4.0 (N/A, 2026-10-01)", info.String())

	var zero AppBuildInfo
	assert.Equal(t, "N/A", zero.BuildVersion())
}
