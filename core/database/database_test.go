package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "reference",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestLoadTable(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"ISIN", "Symbol", "ABN"}).
		AddRow("AU000000BHP4", "BHP", []byte("49004028077")).
		AddRow("AU000000CBA7", "CBA", nil)
	mock.ExpectQuery("SELECT .* FROM `MasterCompany`").WillReturnRows(rows)

	tbl, err := LoadTable(context.Background(), db, "MasterCompany")
	require.NoError(t, err)

	assert.Equal(t, "MasterCompany", tbl.Name)
	assert.Equal(t, []string{"ISIN", "Symbol", "ABN"}, tbl.Schema.Names())
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "49004028077", tbl.Rows[0].Get("ABN"))
	assert.Equal(t, "", tbl.Rows[1].Get("ABN"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadTable_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT .* FROM `MasterCompany`").WillReturnError(assert.AnError)

	_, err := LoadTable(context.Background(), db, "MasterCompany")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query MasterCompany")
}

func TestLoadTable_NilDB(t *testing.T) {
	_, err := LoadTable(context.Background(), nil, "MasterCompany")
	assert.Error(t, err)
}
