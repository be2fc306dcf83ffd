package zombiezen

import (
	"embed"
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// sqlFiles embeds all SQL scripts from the sql/ subdirectory.
//
//go:embed sql/*.sql
var sqlFiles embed.FS

// createSchema executes the embedded schema script on a connection. It
// runs on every connection of the pool; the script is idempotent.
func createSchema(conn *sqlite.Conn) error {
	script, err := sqlFiles.ReadFile("sql/labels.sql")
	if err != nil {
		return fmt.Errorf("failed to read embedded sql file: %w", err)
	}

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("failed to execute schema script: %w", err)
	}

	return nil
}
