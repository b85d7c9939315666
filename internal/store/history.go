package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/footprint-tools/brig/internal/domain"
)

// Record appends a history entry. A zero ID or timestamp is filled in.
func (s *Store) Record(entry domain.HistoryEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.At.IsZero() {
		entry.At = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO history (id, line, source, success, result, error, at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID.String(),
		entry.Line,
		entry.Source,
		entry.Success,
		entry.Result,
		entry.Error,
		entry.At.UTC().Format(timeLayout),
	)
	return err
}

// History returns entries matching filter, newest first.
func (s *Store) History(filter domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.Source != "" {
		clauses = append(clauses, "source = ?")
		args = append(args, filter.Source)
	}

	if filter.Since != nil {
		clauses = append(clauses, "at >= ?")
		args = append(args, filter.Since.UTC().Format(timeLayout))
	}

	query := `SELECT id, line, source, success, result, error, at FROM history`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY at DESC, rowid DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.HistoryEntry
	for rows.Next() {
		var (
			e  domain.HistoryEntry
			id string
			at string
		)
		if err := rows.Scan(&id, &e.Line, &e.Source, &e.Success, &e.Result, &e.Error, &at); err != nil {
			return nil, err
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		if e.At, err = time.Parse(timeLayout, at); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// ClearHistory deletes all entries.
func (s *Store) ClearHistory() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM history`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
