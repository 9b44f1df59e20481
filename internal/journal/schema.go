package journal

type migration struct {
	version int
	up      []string
}

var migrations = []migration{
	{
		version: 1,
		up: []string{
			`CREATE TABLE schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,

			`CREATE TABLE operations (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				op TEXT NOT NULL,
				source_path TEXT NOT NULL,
				target_path TEXT,
				detail TEXT,
				bytes_freed INTEGER DEFAULT 0,
				recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,

			`CREATE INDEX idx_operations_op ON operations(op)`,
			`CREATE INDEX idx_operations_recorded ON operations(recorded_at)`,

			`INSERT INTO schema_version (version) VALUES (1)`,
		},
	},
}

// migrate applies any pending schema migrations.
func (j *Journal) migrate() error {
	var currentVersion int
	err := j.db.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&currentVersion)
	if err != nil {
		// schema_version doesn't exist yet - fresh database
		currentVersion = 0
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}

		tx, err := j.db.Begin()
		if err != nil {
			return err
		}

		for _, stmt := range m.up {
			if _, err := tx.Exec(stmt); err != nil {
				tx.Rollback()
				return err
			}
		}

		// each migration records its own version row
		if err := tx.Commit(); err != nil {
			return err
		}
	}

	return nil
}
