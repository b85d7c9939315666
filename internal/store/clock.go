package store

import "github.com/footprint-tools/brig/internal/domain"

// Clock returns the world clock.
func (s *Store) Clock() (domain.WorldClock, error) {
	var c domain.WorldClock
	err := s.db.QueryRow(`SELECT day_time, game_time FROM world_clock WHERE id = 1`).Scan(&c.DayTime, &c.GameTime)
	return c, err
}

// SetDayTime sets the day time, leaving game time untouched.
func (s *Store) SetDayTime(ticks int64) (domain.WorldClock, error) {
	var c domain.WorldClock
	err := s.db.QueryRow(
		`UPDATE world_clock SET day_time = ? WHERE id = 1 RETURNING day_time, game_time`, ticks,
	).Scan(&c.DayTime, &c.GameTime)
	return c, err
}

// AddTime advances both counters.
func (s *Store) AddTime(ticks int64) (domain.WorldClock, error) {
	var c domain.WorldClock
	err := s.db.QueryRow(
		`UPDATE world_clock SET day_time = day_time + ?, game_time = game_time + ? WHERE id = 1
		 RETURNING day_time, game_time`, ticks, ticks,
	).Scan(&c.DayTime, &c.GameTime)
	return c, err
}
