package births

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/psyperinat/psycost/internal/database"
)

// Repository reads and seeds the territories table.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a births repository over db.
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "births").Logger(),
	}
}

// Get returns the territory called name.
func (r *Repository) Get(ctx context.Context, name string) (*Territory, error) {
	var (
		t     Territory
		level string
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT name, level, births FROM territories WHERE name = ?", name,
	).Scan(&t.Name, &level, &t.Births)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrTerritoryNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get territory %s: %w", name, err)
	}
	t.Level = Level(level)
	return &t, nil
}

// BirthsFor returns the births count of the territory called name.
func (r *Repository) BirthsFor(ctx context.Context, name string) (float64, error) {
	t, err := r.Get(ctx, name)
	if err != nil {
		return 0, err
	}
	return float64(t.Births), nil
}

// List returns the territories of one level, largest first.
// An empty level lists every territory.
func (r *Repository) List(ctx context.Context, level Level) ([]Territory, error) {
	query := "SELECT name, level, births FROM territories"
	var args []interface{}
	if level != "" {
		query += " WHERE level = ?"
		args = append(args, string(level))
	}
	query += " ORDER BY births DESC, name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list territories: %w", err)
	}
	defer rows.Close()

	territories := make([]Territory, 0)
	for rows.Next() {
		var (
			t  Territory
			lv string
		)
		if err := rows.Scan(&t.Name, &lv, &t.Births); err != nil {
			return nil, fmt.Errorf("failed to scan territory: %w", err)
		}
		t.Level = Level(lv)
		territories = append(territories, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating territories: %w", err)
	}

	return territories, nil
}

// Seed loads territories from CSV (columns name, level, births, with a header
// row) in a single transaction. Existing rows with the same name are replaced.
// It returns the number of territories written.
func (r *Repository) Seed(ctx context.Context, src io.Reader) (int, error) {
	territories, err := ParseCSV(src)
	if err != nil {
		return 0, err
	}

	now := time.Now().Unix()
	err = database.WithTransaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, upsertSQL)
		if err != nil {
			return fmt.Errorf("failed to prepare territory upsert: %w", err)
		}
		defer stmt.Close()

		for _, t := range territories {
			if _, err := stmt.ExecContext(ctx, t.Name, string(t.Level), t.Births, now); err != nil {
				return fmt.Errorf("failed to seed territory %s: %w", t.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	r.log.Info().Int("territories", len(territories)).Msg("Seeded births lookup")
	return len(territories), nil
}

const upsertSQL = `
	INSERT INTO territories (name, level, births, updated_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET
		level = excluded.level,
		births = excluded.births,
		updated_at = excluded.updated_at
`

// ParseCSV reads territories from CSV with a name,level,births header.
func ParseCSV(src io.Reader) ([]Territory, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = 3

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read births header: %w", err)
	}
	want := []string{"name", "level", "births"}
	for i, col := range want {
		if strings.ToLower(strings.TrimSpace(header[i])) != col {
			return nil, fmt.Errorf("births header column %d is %q, want %q", i+1, header[i], col)
		}
	}

	var out []Territory
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("births line %d: %w", line, err)
		}

		n, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("births line %d: invalid births count %q", line, record[2])
		}
		t := Territory{
			Name:   strings.TrimSpace(record[0]),
			Level:  Level(strings.ToLower(strings.TrimSpace(record[1]))),
			Births: n,
		}
		if err := validate(t); err != nil {
			return nil, fmt.Errorf("births line %d: %w", line, err)
		}
		out = append(out, t)
	}

	return out, nil
}

func validate(t Territory) error {
	if t.Name == "" {
		return fmt.Errorf("territory name is required")
	}
	if !t.Level.Valid() {
		return fmt.Errorf("territory %s has unknown level %q", t.Name, t.Level)
	}
	if t.Births < 0 {
		return fmt.Errorf("territory %s has negative births count %d", t.Name, t.Births)
	}
	return nil
}
