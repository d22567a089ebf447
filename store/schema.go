package store

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	game_name TEXT NOT NULL,
	buy_in REAL NOT NULL,
	cash_out REAL NOT NULL,
	stakes TEXT NOT NULL,
	gain_loss REAL NOT NULL
);
`
