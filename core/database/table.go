package database

import (
	"context"
	"fmt"

	"master-reference/core/table"
	"master-reference/core/utils"

	"gorm.io/gorm"
)

// LoadTable reads every row of a SQL table into a table.Table.
// Column order follows the result set; NULL values become "".
func LoadTable(ctx context.Context, db *gorm.DB, tableName string) (*table.Table, error) {
	if db == nil {
		return nil, fmt.Errorf("no database connection for table %s", tableName)
	}

	dbRows, err := db.WithContext(ctx).Table(tableName).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", tableName, err)
	}
	defer dbRows.Close()

	columns, err := dbRows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns of %s: %w", tableName, err)
	}

	t := &table.Table{Name: tableName, Schema: table.NewSchema(columns)}
	for dbRows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := dbRows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", tableName, err)
		}

		record := make([]string, len(columns))
		for i, v := range values {
			record[i] = utils.ToString(v)
		}
		t.Rows = append(t.Rows, table.NewRow(t.Schema, record))
	}
	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", tableName, err)
	}

	return t, nil
}
