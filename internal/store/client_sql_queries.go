package store

const (
	getKV = `SELECT value FROM kv WHERE key = ?;`

	putKV = `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`

	deleteKV = `DELETE FROM kv WHERE key = ?;`

	// insertSeedLog leaves an existing (seed, date) row untouched.
	insertSeedLog = `INSERT INTO seed_logs (seed_client_id, date, status) VALUES (?, ?, ?)
		ON CONFLICT (seed_client_id, date) DO NOTHING;`

	findSeedLog = `SELECT id FROM seed_logs WHERE seed_client_id = ? AND date = ?;`

	listSeedLogs = `SELECT id, seed_client_id, date, status, created_at
		FROM seed_logs WHERE seed_client_id = ? ORDER BY date;`

	deleteSeedLogs = `DELETE FROM seed_logs WHERE seed_client_id = ?;`
)
