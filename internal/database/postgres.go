package database

import (
	"database/sql"
)

type PgChatterboxRepository struct {
	conn *sql.DB
}

func NewPgChatterboxRepository(dsn string) (*PgChatterboxRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &PgChatterboxRepository{conn: db}, nil
}

func (db *PgChatterboxRepository) Ping() error {
	return db.conn.Ping()
}

func (db *PgChatterboxRepository) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}
