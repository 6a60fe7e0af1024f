// Package store is the SQLite-backed player ledger: player identities,
// bank account balances, password hashes and bankruptcy events.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

var (
	// ErrPlayerNotFound is returned when a lookup matches no player
	ErrPlayerNotFound = errors.New("player not found in database")

	// ErrPlayerExists is returned when creating a player that is already
	// on record. It is distinguished from other constraint violations.
	ErrPlayerExists = errors.New("player already exists in database")
)

const schema = `
CREATE TABLE IF NOT EXISTS Players (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	player_first_name TEXT NOT NULL,
	player_last_name TEXT NOT NULL,
	player_full_name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS BankAccounts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	player_id INTEGER NOT NULL UNIQUE REFERENCES Players(id),
	account_balance INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS PlayerHashes (
	player_id INTEGER NOT NULL UNIQUE REFERENCES Players(id),
	hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS Bankruptcies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	player_id INTEGER NOT NULL REFERENCES Players(id),
	recorded_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

// PlayerInfo is the ledger view of one player
type PlayerInfo struct {
	PlayerID  int64
	Name      string
	AccountID int64
	Balance   int
}

// Store wraps the SQLite connection for the player ledger
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// Open opens (creating if needed) the ledger database at path and ensures
// the schema exists.
func Open(path string, logger *log.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger database: %w", err)
	}
	s := &Store{db: db, logger: logger.WithPrefix("store")}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize ledger schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// LookupPlayerID finds a player by first and last name. Not finding one is
// ErrPlayerNotFound, which callers use to start the create-player flow.
func (s *Store) LookupPlayerID(ctx context.Context, first, last string) (int64, error) {
	full := strings.TrimSpace(first + " " + last)
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM Players WHERE player_full_name = ?`, full).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("player %q: %w", full, ErrPlayerNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("look up player %q: %w", full, err)
	}
	return id, nil
}

// CreatePlayer inserts a new player and their bank account with the given
// opening balance. A duplicate name is ErrPlayerExists.
func (s *Store) CreatePlayer(ctx context.Context, first, last string, openingBalance int) (int64, error) {
	full := strings.TrimSpace(first + " " + last)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin create player: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO Players (player_first_name, player_last_name, player_full_name) VALUES (?, ?, ?)`,
		first, last, full)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, fmt.Errorf("player %q: %w", full, ErrPlayerExists)
		}
		return 0, fmt.Errorf("insert player %q: %w", full, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert player %q: %w", full, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO BankAccounts (player_id, account_balance) VALUES (?, ?)`,
		id, openingBalance); err != nil {
		return 0, fmt.Errorf("open bank account for %q: %w", full, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create player: %w", err)
	}
	s.logger.Info("New player added to ledger", "name", full, "id", id, "balance", openingBalance)
	return id, nil
}

// PlayerInfo returns the player's name and bank account state
func (s *Store) PlayerInfo(ctx context.Context, playerID int64) (*PlayerInfo, error) {
	info := &PlayerInfo{PlayerID: playerID}
	err := s.db.QueryRowContext(ctx,
		`SELECT p.player_full_name, b.id, b.account_balance
		 FROM Players p JOIN BankAccounts b ON b.player_id = p.id
		 WHERE p.id = ?`, playerID).
		Scan(&info.Name, &info.AccountID, &info.Balance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("player id %d: %w", playerID, ErrPlayerNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("look up player id %d: %w", playerID, err)
	}
	return info, nil
}

// UpdateBalance writes a new balance for the given bank account. Together
// with AddBankruptcy it satisfies the bank's Ledger interface.
func (s *Store) UpdateBalance(ctx context.Context, accountID int64, balance int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE BankAccounts SET account_balance = ? WHERE id = ?`, balance, accountID)
	if err != nil {
		return fmt.Errorf("update account %d: %w", accountID, err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("account %d: %w", accountID, ErrPlayerNotFound)
	}
	s.logger.Debug("Updated account balance", "account", accountID, "balance", balance)
	return nil
}

// PasswordHash fetches the stored password hash for a player
func (s *Store) PasswordHash(ctx context.Context, playerID int64) (string, error) {
	var hash string
	err := s.db.QueryRowContext(ctx,
		`SELECT hash FROM PlayerHashes WHERE player_id = ?`, playerID).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("player id %d: %w", playerID, ErrPlayerNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("look up hash for player %d: %w", playerID, err)
	}
	return hash, nil
}

// SetPasswordHash stores or replaces a player's password hash
func (s *Store) SetPasswordHash(ctx context.Context, playerID int64, hash string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO PlayerHashes (player_id, hash) VALUES (?, ?)
		 ON CONFLICT(player_id) DO UPDATE SET hash = excluded.hash`, playerID, hash)
	if err != nil {
		return fmt.Errorf("set hash for player %d: %w", playerID, err)
	}
	return nil
}

// AddBankruptcy records a bankruptcy event for the player
func (s *Store) AddBankruptcy(ctx context.Context, playerID int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO Bankruptcies (player_id) VALUES (?)`, playerID)
	if err != nil {
		return fmt.Errorf("record bankruptcy for player %d: %w", playerID, err)
	}
	s.logger.Info("Recorded bankruptcy", "player", playerID)
	return nil
}
