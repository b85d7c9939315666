package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/brig/internal/domain"
)

const playerColumns = `id, name, operator, x, y, z, deaths, joined_at`

// AddPlayer creates a player at the spawn point.
func (s *Store) AddPlayer(name string) (domain.Player, error) {
	p := domain.Player{
		ID:       uuid.New(),
		Name:     name,
		X:        domain.SpawnX,
		Y:        domain.SpawnY,
		Z:        domain.SpawnZ,
		JoinedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO players (`+playerColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID.String(), p.Name, p.Operator, p.X, p.Y, p.Z, p.Deaths, p.JoinedAt.Format(timeLayout),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.Player{}, fmt.Errorf("%w: %s", domain.ErrPlayerExists, name)
		}
		return domain.Player{}, err
	}

	return p, nil
}

// RemovePlayer deletes a player and its inventory.
func (s *Store) RemovePlayer(id uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM inventory WHERE player_id = ?`, id.String()); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM players WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	if err := requireAffected(res); err != nil {
		return err
	}

	return tx.Commit()
}

// PlayerByName looks a player up by case-insensitive name.
func (s *Store) PlayerByName(name string) (domain.Player, error) {
	row := s.db.QueryRow(`SELECT `+playerColumns+` FROM players WHERE name = ?`, name)
	return scanPlayer(row)
}

// PlayerByID looks a player up by id.
func (s *Store) PlayerByID(id uuid.UUID) (domain.Player, error) {
	row := s.db.QueryRow(`SELECT `+playerColumns+` FROM players WHERE id = ?`, id.String())
	return scanPlayer(row)
}

// Players returns all players ordered by name.
func (s *Store) Players() ([]domain.Player, error) {
	rows, err := s.db.Query(`SELECT ` + playerColumns + ` FROM players ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SetOperator grants or revokes operator status.
func (s *Store) SetOperator(id uuid.UUID, operator bool) error {
	res, err := s.db.Exec(`UPDATE players SET operator = ? WHERE id = ?`, operator, id.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// MovePlayer sets a player's position.
func (s *Store) MovePlayer(id uuid.UUID, x, y, z float64) error {
	res, err := s.db.Exec(`UPDATE players SET x = ?, y = ?, z = ? WHERE id = ?`, x, y, z, id.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// KillPlayer clears the inventory, counts the death and respawns the player.
func (s *Store) KillPlayer(id uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(
		`UPDATE players SET deaths = deaths + 1, x = ?, y = ?, z = ? WHERE id = ?`,
		domain.SpawnX, domain.SpawnY, domain.SpawnZ, id.String(),
	)
	if err != nil {
		return err
	}
	if err := requireAffected(res); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM inventory WHERE player_id = ?`, id.String()); err != nil {
		return err
	}

	return tx.Commit()
}

// GiveItem adds count items and returns the new stack size.
func (s *Store) GiveItem(id uuid.UUID, item string, count int) (int, error) {
	if count <= 0 {
		return 0, fmt.Errorf("give: count must be positive, got %d", count)
	}
	if _, err := s.PlayerByID(id); err != nil {
		return 0, err
	}

	item = strings.ToLower(item)
	var total int
	err := s.db.QueryRow(
		`INSERT INTO inventory (player_id, item, count) VALUES (?, ?, ?)
		 ON CONFLICT(player_id, item) DO UPDATE SET count = count + excluded.count
		 RETURNING count`,
		id.String(), item, count,
	).Scan(&total)
	return total, err
}

// Inventory returns a player's items ordered by item name.
func (s *Store) Inventory(id uuid.UUID) ([]domain.InventoryItem, error) {
	rows, err := s.db.Query(
		`SELECT item, count FROM inventory WHERE player_id = ? ORDER BY item`, id.String(),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.InventoryItem
	for rows.Next() {
		it := domain.InventoryItem{PlayerID: id}
		if err := rows.Scan(&it.Item, &it.Count); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (domain.Player, error) {
	var (
		p      domain.Player
		id     string
		joined string
	)

	err := row.Scan(&id, &p.Name, &p.Operator, &p.X, &p.Y, &p.Z, &p.Deaths, &joined)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Player{}, domain.ErrPlayerNotFound
	}
	if err != nil {
		return domain.Player{}, err
	}

	if p.ID, err = uuid.Parse(id); err != nil {
		return domain.Player{}, fmt.Errorf("player %q: %w", p.Name, err)
	}
	if p.JoinedAt, err = time.Parse(timeLayout, joined); err != nil {
		return domain.Player{}, fmt.Errorf("player %q: %w", p.Name, err)
	}

	return p, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}
