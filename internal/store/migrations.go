package store

func (s *Store) runMigrations() error {
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS stores (
		namespace VARCHAR NOT NULL PRIMARY KEY,
		data TEXT NOT NULL
	)`,
}
