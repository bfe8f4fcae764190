package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Workout represents one finished tracking run stored in the database.
type Workout struct {
	ID        string
	Exercise  string
	Reps      int
	StartedAt time.Time
	EndedAt   time.Time
	CreatedAt time.Time
}

// WorkoutRepository provides CRUD operations for workouts.
type WorkoutRepository struct {
	db *sql.DB
}

// Workouts returns the workout repository for this store.
func (s *Store) Workouts() *WorkoutRepository {
	return &WorkoutRepository{db: s.db}
}

// Create inserts a new workout into the database.
func (r *WorkoutRepository) Create(w *Workout) error {
	w.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO workouts (id, exercise, reps, started_at, ended_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		w.ID, w.Exercise, w.Reps, w.StartedAt, w.EndedAt, w.CreatedAt,
	)
	return err
}

// GetByID retrieves a workout by its ID.
func (r *WorkoutRepository) GetByID(id string) (*Workout, error) {
	w := &Workout{}

	err := r.db.QueryRow(
		`SELECT id, exercise, reps, started_at, ended_at, created_at
		 FROM workouts WHERE id = ?`,
		id,
	).Scan(&w.ID, &w.Exercise, &w.Reps, &w.StartedAt, &w.EndedAt, &w.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return w, nil
}

// List retrieves all workouts, most recent first.
func (r *WorkoutRepository) List() ([]*Workout, error) {
	rows, err := r.db.Query(
		`SELECT id, exercise, reps, started_at, ended_at, created_at
		 FROM workouts ORDER BY started_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []*Workout
	for rows.Next() {
		w := &Workout{}
		if err := rows.Scan(&w.ID, &w.Exercise, &w.Reps, &w.StartedAt, &w.EndedAt, &w.CreatedAt); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

// ListByExercise retrieves workouts for a single exercise, most recent first.
func (r *WorkoutRepository) ListByExercise(exercise string) ([]*Workout, error) {
	rows, err := r.db.Query(
		`SELECT id, exercise, reps, started_at, ended_at, created_at
		 FROM workouts WHERE exercise = ? ORDER BY started_at DESC`,
		exercise,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []*Workout
	for rows.Next() {
		w := &Workout{}
		if err := rows.Scan(&w.ID, &w.Exercise, &w.Reps, &w.StartedAt, &w.EndedAt, &w.CreatedAt); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

// TotalReps returns the lifetime rep count per exercise.
func (r *WorkoutRepository) TotalReps() (map[string]int, error) {
	rows, err := r.db.Query(
		`SELECT exercise, SUM(reps) FROM workouts GROUP BY exercise`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var exercise string
		var reps int
		if err := rows.Scan(&exercise, &reps); err != nil {
			return nil, err
		}
		totals[exercise] = reps
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}

// Delete removes a workout by ID. Returns ErrNotFound if no row matched.
func (r *WorkoutRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
