package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "ledger.db"), log.Default())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func TestCreateAndLookupPlayer(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreatePlayer(ctx, "Andrew", "McSparron", 250)
	require.NoError(t, err)

	found, err := s.LookupPlayerID(ctx, "Andrew", "McSparron")
	require.NoError(t, err)
	assert.Equal(t, id, found)

	info, err := s.PlayerInfo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Andrew McSparron", info.Name)
	assert.Equal(t, 250, info.Balance)
	assert.NotZero(t, info.AccountID)
}

func TestLookupUnknownPlayer(t *testing.T) {
	s := newTestStore(t)

	_, err := s.LookupPlayerID(context.Background(), "No", "Body")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestCreateDuplicatePlayer(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreatePlayer(ctx, "Andrew", "McSparron", 250)
	require.NoError(t, err)

	_, err = s.CreatePlayer(ctx, "Andrew", "McSparron", 250)
	assert.ErrorIs(t, err, ErrPlayerExists)
}

func TestUpdateBalance(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreatePlayer(ctx, "Andrew", "McSparron", 250)
	require.NoError(t, err)
	info, err := s.PlayerInfo(ctx, id)
	require.NoError(t, err)

	require.NoError(t, s.UpdateBalance(ctx, info.AccountID, 300))

	info, err = s.PlayerInfo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 300, info.Balance)
}

func TestUpdateBalanceUnknownAccount(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateBalance(context.Background(), 999, 300)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreatePlayer(ctx, "Andrew", "McSparron", 250)
	require.NoError(t, err)

	_, err = s.PasswordHash(ctx, id)
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	require.NoError(t, s.SetPasswordHash(ctx, id, "aaaa"))
	hash, err := s.PasswordHash(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "aaaa", hash)

	// Setting again replaces the stored hash.
	require.NoError(t, s.SetPasswordHash(ctx, id, "bbbb"))
	hash, err = s.PasswordHash(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "bbbb", hash)
}

func TestAddBankruptcy(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreatePlayer(ctx, "Andrew", "McSparron", 250)
	require.NoError(t, err)

	require.NoError(t, s.AddBankruptcy(ctx, id))
	require.NoError(t, s.AddBankruptcy(ctx, id))

	var count int
	require.NoError(t, s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM Bankruptcies WHERE player_id = ?`, id).Scan(&count))
	assert.Equal(t, 2, count)
}

func TestSchemaSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.db")
	ctx := context.Background()

	s, err := Open(path, log.Default())
	require.NoError(t, err)
	id, err := s.CreatePlayer(ctx, "Andrew", "McSparron", 250)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path, log.Default())
	require.NoError(t, err)
	defer s.Close()

	info, err := s.PlayerInfo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 250, info.Balance)
}
