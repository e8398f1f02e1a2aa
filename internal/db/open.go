package db

import (
	"database/sql"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names.
const (
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

//go:embed schema_*.sql
var schemas embed.FS

// Open connects to the database and checks it is reachable.
func Open(driver, dsn string) (*sql.DB, error) {
	if _, err := schemaFile(driver); err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(time.Hour)
	if driver == DriverSQLite {
		// one writer at a time; also keeps a :memory: database on one connection
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

func schemaFile(driver string) (string, error) {
	switch driver {
	case DriverMySQL:
		return "schema_mysql.sql", nil
	case DriverSQLite:
		return "schema_sqlite.sql", nil
	case DriverPostgres:
		return "schema_postgres.sql", nil
	}
	return "", fmt.Errorf("unsupported database driver %q", driver)
}

// statements splits a schema file on ';'. The schema files hold no string
// literals, so a plain split is enough.
func statements(driver string) ([]string, error) {
	name, err := schemaFile(driver)
	if err != nil {
		return nil, err
	}
	raw, err := schemas.ReadFile(name)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, s := range strings.Split(string(raw), ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// rebind rewrites '?' placeholders to '$n' for PostgreSQL.
func rebind(driver, query string) string {
	if driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
