package migrate

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("close db: %v", closeErr)
		}
	})
	return db
}

func TestRun_AppliesSchema(t *testing.T) {
	db := openTestDB(t)

	if err := Run(db); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// The readings table must exist and accept an insert afterwards.
	_, err := db.Exec(`INSERT INTO temperature_readings (temperature, location, timestamp) VALUES (21.5, 'strehlgasse', 1000)`)
	if err != nil {
		t.Fatalf("insert after migration: %v", err)
	}

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if n == 0 {
		t.Error("schema_migrations is empty; want at least one applied migration")
	}
}

func TestRun_Idempotent(t *testing.T) {
	db := openTestDB(t)

	if err := Run(db); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	var first int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&first); err != nil {
		t.Fatalf("count migrations: %v", err)
	}

	if err := Run(db); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	var second int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&second); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if first != second {
		t.Errorf("migration count changed on rerun: %d -> %d", first, second)
	}
}

func TestParseMigrationFilename(t *testing.T) {
	tests := []struct {
		filename string
		version  string
		name     string
		ok       bool
	}{
		{filename: "0001_schema.sql", version: "0001", name: "schema", ok: true},
		{filename: "0002_add_index.sql", version: "0002", name: "add_index", ok: true},
		{filename: "schema.sql", ok: false},
		{filename: "001_short.sql", ok: false},
		{filename: "0001_schema.txt", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			version, name, ok := parseMigrationFilename(tt.filename)
			if ok != tt.ok {
				t.Fatalf("ok = %v; want %v", ok, tt.ok)
			}
			if version != tt.version || name != tt.name {
				t.Errorf("got %q/%q; want %q/%q", version, name, tt.version, tt.name)
			}
		})
	}
}
