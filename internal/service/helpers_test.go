package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	buyerWallet  = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
	sellerWallet = "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"
)

// newTestAdapter returns a local mode adapter over a temp SQLite file and a
// temp files directory.
func newTestAdapter(t *testing.T) *store.Adapter {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()
	dir := t.TempDir()

	db, err := store.NewConnectSQLite(ctx, config.LocalStorage{DSN: filepath.Join(dir, "local.db")}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	kv := store.NewLocalKeyValue(db, log)
	local, err := store.NewLocalStore(ctx, kv, log)
	require.NoError(t, err)

	files, err := store.NewLocalObjectStore(filepath.Join(dir, "files"))
	require.NoError(t, err)

	return store.NewAdapter(config.RemoteStorage{}, local, kv, log, store.WithFiles(files, nil))
}

// newSellerDocument stores a seller profile and a paid document owned by it.
func newSellerDocument(t *testing.T, a *store.Adapter, price string) models.Document {
	t.Helper()
	ctx := context.Background()

	seller, err := a.CreateUser(ctx, models.User{WalletAddress: sellerWallet, Username: store.DefaultUsername(sellerWallet)})
	require.NoError(t, err)

	p := decimal.RequireFromString(price)
	doc, err := a.CreateDocument(ctx, models.Document{
		Title:      "Algebra Lineare",
		Subject:    "Matematica",
		University: "Università di Bologna",
		PriceETH:   p,
		IsFree:     p.IsZero(),
		UserID:     seller.Value.ID,
	})
	require.NoError(t, err)

	return doc.Value
}
