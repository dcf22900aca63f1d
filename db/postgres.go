package db

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// Connect opens the snapshot archive database. The connection is handed
// to its owner rather than held in a package global, so the API process
// controls its lifecycle.
func Connect(connStr string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(25)
	conn.SetConnMaxLifetime(5 * time.Minute)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}
