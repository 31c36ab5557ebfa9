package store

// Queries against the local key-value table.
const (
	getLocalValue = `SELECT value FROM local_storage WHERE key = ?;`

	setLocalValue = `INSERT INTO local_storage (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`

	deleteLocalValue = `DELETE FROM local_storage WHERE key = ?;`
)

// Tables of the hosted backend.
const (
	tableUsers        = "users"
	tableDocuments    = "documents"
	tableTransactions = "transactions"
	tableNFTs         = "nfts"
	tableDownloads    = "downloads"
)
