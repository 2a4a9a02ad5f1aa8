//go:build database

package host

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Solenox/halfgammon"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestRecordGameResult requires a scratch Postgres database, given by
// HALFGAMMON_TEST_DB.
func TestRecordGameResult(t *testing.T) {
	dataSource := os.Getenv("HALFGAMMON_TEST_DB")
	if dataSource == "" {
		t.Skip("HALFGAMMON_TEST_DB is not set")
	}

	require.NoError(t, connectDB(dataSource))
	require.NoError(t, testDBConnection())
	require.NoError(t, initDB())
	require.NoError(t, initDB())

	id := uuid.New()
	started := time.Now().Add(-time.Minute)
	state := halfgammon.NewBoard().State()
	replay := [][]byte{[]byte("x r 3 m 1/4")}
	require.NoError(t, recordGameResult(id, started, time.Now(), halfgammon.PlayerX, state, replay))

	tx, err := begin()
	require.NoError(t, err)
	defer tx.Rollback(context.Background())

	var winner, saved, savedReplay string
	err = tx.QueryRow(context.Background(), "SELECT winner, state, replay FROM game WHERE uuid = $1", id.String()).Scan(&winner, &saved, &savedReplay)
	require.NoError(t, err)
	require.Equal(t, "x", winner)
	require.Equal(t, state.String(), saved)
	require.Equal(t, "x r 3 m 1/4", savedReplay)
}
