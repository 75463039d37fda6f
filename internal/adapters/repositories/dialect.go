package repositories

import (
	"strconv"
	"strings"
)

// SQL flavour of the underlying database.
// Queries are written with "?" placeholders and rebound per dialect.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Return the dialect matching a database/sql driver name.
func DialectFor(driver string) Dialect {
	if driver == "pgx" || driver == "postgres" {
		return DialectPostgres
	}
	return DialectSQLite
}

// Bind rewrites "?" placeholders into "$n" for Postgres.
func (d Dialect) Bind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
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
