package db

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/terraincognita07/steadfast/internal/models"
	embeddedmigrations "github.com/terraincognita07/steadfast/migrations"
	"gorm.io/gorm"
)

func TestOpenSQLiteAppliesEmbeddedMigrationsOnCleanDatabase(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "steadfast-clean.db"))

	for _, table := range []string{"users", "habits", "triggers", "daily_logs"} {
		if !database.Migrator().HasTable(table) {
			t.Fatalf("expected table %s to exist", table)
		}
	}
	assertColumnExists(t, database, "users", "must_change_password")
	assertAllEmbeddedMigrationsApplied(t, database)
}

func TestOpenSQLiteUpgradesDatabaseWithoutMigrationHistory(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "steadfast-legacy.db")
	seedSchemaWithoutHistory(t, databasePath, "001_init.sql", "002_users_must_change_password.sql")

	database := openSQLiteForTest(t, databasePath)

	assertColumnExists(t, database, "users", "must_change_password")
	assertAllEmbeddedMigrationsApplied(t, database)

	var user struct {
		Username           string `gorm:"column:username"`
		MustChangePassword bool   `gorm:"column:must_change_password"`
	}
	if err := database.Table("users").
		Select("username", "must_change_password").
		Where("username = ?", "legacy").
		First(&user).Error; err != nil {
		t.Fatalf("load legacy user: %v", err)
	}
	if user.MustChangePassword {
		t.Fatal("expected must_change_password default to be false")
	}
}

func TestOpenSQLiteMigrationBootstrapIsIdempotent(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "steadfast-idempotent.db")

	firstOpen, err := OpenSQLite(databasePath, nil)
	if err != nil {
		t.Fatalf("first open sqlite: %v", err)
	}
	firstRecords, err := ListAppliedMigrations(firstOpen)
	if err != nil {
		t.Fatalf("list first records: %v", err)
	}
	firstSQLDB, err := firstOpen.DB()
	if err != nil {
		t.Fatalf("first open sql db: %v", err)
	}
	if err := firstSQLDB.Close(); err != nil {
		t.Fatalf("close first sql db: %v", err)
	}

	secondOpen := openSQLiteForTest(t, databasePath)
	secondRecords, err := ListAppliedMigrations(secondOpen)
	if err != nil {
		t.Fatalf("list second records: %v", err)
	}

	if !reflect.DeepEqual(firstRecords, secondRecords) {
		t.Fatalf("expected migration records to remain unchanged between boots, before=%v after=%v", firstRecords, secondRecords)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(Config{Driver: "oracle"}); err == nil {
		t.Fatal("expected unknown driver to fail")
	}
}

func TestNormalizeDriver(t *testing.T) {
	tests := map[string]string{
		"":           DriverSQLite,
		"SQLite3":    DriverSQLite,
		" postgres ": DriverPostgres,
		"pg":         DriverPostgres,
		"mysql":      "mysql",
	}
	for raw, want := range tests {
		if got := NormalizeDriver(raw); got != want {
			t.Fatalf("NormalizeDriver(%q) = %q, want %q", raw, got, want)
		}
	}
}

func openSQLiteForTest(t *testing.T, databasePath string) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(databasePath, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func seedSchemaWithoutHistory(t *testing.T, databasePath string, files ...string) {
	t.Helper()

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)", databasePath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open legacy sqlite: %v", err)
	}

	for _, name := range files {
		body, err := fs.ReadFile(embeddedmigrations.Files, name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		for _, statement := range splitSQLStatements(string(body)) {
			if err := database.Exec(statement).Error; err != nil {
				t.Fatalf("apply %s: %v", name, err)
			}
		}
	}

	if err := database.Exec(
		`INSERT INTO users(username, password_hash, created_at) VALUES (?, ?, ?)`,
		"legacy",
		"hash",
		time.Now().UTC(),
	).Error; err != nil {
		t.Fatalf("insert legacy user: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("legacy sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close legacy sql db: %v", err)
	}
}

func assertColumnExists(t *testing.T, database *gorm.DB, table string, column string) {
	t.Helper()

	exists, err := tableColumnExists(database, table, column)
	if err != nil {
		t.Fatalf("inspect %s.%s: %v", table, column, err)
	}
	if !exists {
		t.Fatalf("expected column %s.%s to exist", table, column)
	}
}

func assertAllEmbeddedMigrationsApplied(t *testing.T, database *gorm.DB) {
	t.Helper()

	files, err := newMigrationRunner(database).load()
	if err != nil {
		t.Fatalf("load embedded migrations: %v", err)
	}
	records, err := ListAppliedMigrations(database)
	if err != nil {
		t.Fatalf("list applied migrations: %v", err)
	}
	if len(records) != len(files) {
		t.Fatalf("expected %d applied migrations, got %d (%v)", len(files), len(records), records)
	}
	for index, file := range files {
		if records[index].Version != file.Version {
			t.Fatalf("expected migration %s at position %d, got %s", file.Version, index, records[index].Version)
		}
	}
}

func createUserForTest(t *testing.T, database *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{Username: username, PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	if err := NewUserRepository(database).Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}
