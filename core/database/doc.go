// Package database handles database connections and table loading.
//
// It provides a wrapper around GORM to configure MySQL connections from the
// application's configuration, so a reference dataset can be read straight from a
// SQL table instead of an exported file.
//
// # Connect
//
// Connect opens and pings a pooled MySQL connection with connection, read and
// write timeouts taken from the configuration.
//
// # LoadTable
//
// LoadTable reads a whole table into the shared tabular model. Every value is
// converted to its text form so database and file sources merge the same way.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	t, err := database.LoadTable(ctx, db, "MasterCompany")
package database
