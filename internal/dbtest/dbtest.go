// Package dbtest abre bancos sqlite em memória, já migrados, para testes.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/client-registry/internal/config"
	dbpkg "github.com/BruksfildServices01/client-registry/internal/db"
)

// Open devolve um banco isolado por chamada, fechado no fim do teste.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		AppEnv:   "test",
		DBDriver: config.DriverSQLite,
		DBUrl:    fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", uuid.NewString()),
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = dbpkg.Close(db) })

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
