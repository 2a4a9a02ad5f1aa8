//go:build database

package host

import (
	"bytes"
	"context"
	"log"
	"sync"
	"time"

	"github.com/Solenox/halfgammon"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const databaseSchema = `
CREATE TABLE game (
	id      serial PRIMARY KEY,
	uuid    text NOT NULL,
	started bigint NOT NULL,
	ended   bigint NOT NULL,
	winner  text NOT NULL,
	state   text NOT NULL,
	replay  text NOT NULL DEFAULT ''
);
`

var (
	db     *pgx.Conn
	dbLock = &sync.Mutex{}
)

func connectDB(dataSource string) error {
	var err error
	db, err = pgx.Connect(context.Background(), dataSource)
	return err
}

func begin() (pgx.Tx, error) {
	tx, err := db.Begin(context.Background())
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(context.Background(), "SET SCHEMA 'halfgammon'")
	if err != nil {
		tx.Rollback(context.Background())
		return nil, err
	}
	return tx, nil
}

func testDBConnection() error {
	_, err := db.Exec(context.Background(), "SELECT 1=1")
	return err
}

func initDB() error {
	_, err := db.Exec(context.Background(), "CREATE SCHEMA IF NOT EXISTS halfgammon")
	if err != nil {
		return err
	}

	tx, err := begin()
	if err != nil {
		return err
	}
	defer tx.Commit(context.Background())

	var result int
	err = tx.QueryRow(context.Background(), "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = 'halfgammon' AND table_name = 'game'").Scan(&result)
	if err != nil {
		return err
	} else if result > 0 {
		return nil // Database has been initialized.
	}

	_, err = tx.Exec(context.Background(), databaseSchema)
	if err != nil {
		return err
	}
	log.Println("Initialized database schema")
	return nil
}

func recordGameResult(id uuid.UUID, started time.Time, ended time.Time, winner halfgammon.Player, state halfgammon.State, replay [][]byte) error {
	dbLock.Lock()
	defer dbLock.Unlock()

	if db == nil || started.IsZero() || winner == halfgammon.PlayerNone {
		return nil
	}

	tx, err := begin()
	if err != nil {
		return err
	}
	defer tx.Commit(context.Background())

	_, err = tx.Exec(context.Background(), "INSERT INTO game (uuid, started, ended, winner, state, replay) VALUES ($1, $2, $3, $4, $5, $6)", id.String(), started.Unix(), ended.Unix(), winner.String(), state.String(), bytes.Join(replay, []byte("\n")))
	return err
}
