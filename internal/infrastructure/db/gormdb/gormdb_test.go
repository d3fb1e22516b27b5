package gormdb

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/GitPiyusha/flask-microblog/internal/domain/entities"
)

// newTestDB opens a fresh in-memory sqlite database per test. The named
// shared cache keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	t.Helper()

	user := entities.NewUser(username, username+"@example.com")
	require.NoError(t, user.SetPassword("cat"))

	validated, err := entities.NewValidatedUser(user)
	require.NoError(t, err)

	created, err := NewUserRepository(db).Create(context.Background(), validated)
	require.NoError(t, err)
	require.NotZero(t, created.Id)
	return created
}
