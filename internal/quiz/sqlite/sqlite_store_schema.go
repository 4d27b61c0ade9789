package sqlite

import (
	"context"
)

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS questions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		content TEXT NOT NULL,
		score INTEGER NOT NULL,
		type TEXT NOT NULL,
		point TEXT NOT NULL,
		course TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		answer TEXT NOT NULL,
		selected_last_three_years BOOLEAN NOT NULL
	);`)
	return err
}
