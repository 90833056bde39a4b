package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"railbook/internal/dto"

	_ "modernc.org/sqlite"
)

// Archive writes booking graph snapshots into SQLite tables for offline
// inspection. It is never read back into the in-memory stores.
type Archive struct {
	db *sql.DB
}

// Open opens or creates the archive at dbPath. ":memory:" gives a private
// in-memory database.
func Open(dbPath string) (*Archive, error) {
	dsn := dbPath
	if dbPath != ":memory:" {
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a second pooled connection to :memory: would see an empty database
	db.SetMaxOpenConns(1)

	archive := &Archive{db: db}
	if err := archive.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return archive, nil
}

// Close closes the database
func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		first_name TEXT NOT NULL,
		middle_name TEXT,
		last_name TEXT NOT NULL,
		date_of_birth DATETIME,
		gender TEXT,
		email TEXT NOT NULL,
		phone_number TEXT,
		password_hash TEXT
	);

	CREATE TABLE IF NOT EXISTS stations (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		phone TEXT
	);

	CREATE TABLE IF NOT EXISTS trains (
		id INTEGER PRIMARY KEY,
		seat_count INTEGER NOT NULL,
		model TEXT
	);

	CREATE TABLE IF NOT EXISTS economies (
		id INTEGER PRIMARY KEY,
		fare_class TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS age_groups (
		id INTEGER PRIMARY KEY,
		type_name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS discounts (
		id INTEGER PRIMARY KEY,
		type_name TEXT NOT NULL,
		percent REAL NOT NULL,
		start_at DATETIME,
		end_at DATETIME
	);

	CREATE TABLE IF NOT EXISTS tickets (
		id INTEGER PRIMARY KEY,
		reference TEXT,
		depart_date_booking DATETIME,
		return_date_booking DATETIME,
		registration_date_ticket DATETIME,
		return_date_ticket DATETIME,
		price REAL NOT NULL,
		user_id INTEGER,
		start_station_id INTEGER,
		end_station_id INTEGER,
		train_id INTEGER,
		economy_id INTEGER,
		age_group_id INTEGER
	);

	CREATE TABLE IF NOT EXISTS ticket_discounts (
		ticket_id INTEGER NOT NULL,
		discount_id INTEGER NOT NULL,
		PRIMARY KEY (ticket_id, discount_id)
	);

	CREATE TABLE IF NOT EXISTS metadata (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_tickets_start ON tickets(start_station_id);
	CREATE INDEX IF NOT EXISTS idx_tickets_end ON tickets(end_station_id);
	CREATE INDEX IF NOT EXISTS idx_ticket_discounts_discount ON ticket_discounts(discount_id);
	`

	_, err := a.db.Exec(schema)
	return err
}

// archiveTables lists every entity table in delete order
var archiveTables = []string{
	"ticket_discounts", "tickets", "users", "stations", "trains",
	"economies", "age_groups", "discounts",
}

// Write replaces the archived graph with snap in one transaction
func (a *Archive) Write(ctx context.Context, snap *dto.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("nil snapshot")
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range archiveTables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, u := range snap.Users {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO users (`+userColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, userInsertArgs(u)...); err != nil {
			return fmt.Errorf("failed to insert user %d: %w", u.ID, err)
		}
	}

	for _, s := range snap.Stations {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO stations (id, name, address, phone) VALUES (?, ?, ?, ?)
		`, s.ID, s.Name, s.Address, stringToNull(s.Phone)); err != nil {
			return fmt.Errorf("failed to insert station %d: %w", s.ID, err)
		}
	}

	for _, tr := range snap.Trains {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO trains (id, seat_count, model) VALUES (?, ?, ?)
		`, tr.ID, tr.SeatCount, stringToNull(tr.Model)); err != nil {
			return fmt.Errorf("failed to insert train %d: %w", tr.ID, err)
		}
	}

	for _, e := range snap.Economies {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO economies (id, fare_class) VALUES (?, ?)
		`, e.ID, e.FareClass); err != nil {
			return fmt.Errorf("failed to insert economy %d: %w", e.ID, err)
		}
	}

	for _, g := range snap.AgeGroups {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO age_groups (id, type_name) VALUES (?, ?)
		`, g.ID, g.TypeName); err != nil {
			return fmt.Errorf("failed to insert age group %d: %w", g.ID, err)
		}
	}

	for _, d := range snap.Discounts {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO discounts (id, type_name, percent, start_at, end_at) VALUES (?, ?, ?, ?, ?)
		`, d.ID, d.TypeName, d.Percent, timePtrToNull(d.StartAt), timePtrToNull(d.EndAt)); err != nil {
			return fmt.Errorf("failed to insert discount %d: %w", d.ID, err)
		}
	}

	for _, t := range snap.Tickets {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO tickets (`+ticketColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, ticketInsertArgs(t)...); err != nil {
			return fmt.Errorf("failed to insert ticket %d: %w", t.ID, err)
		}

		for _, d := range t.Discounts {
			if _, err := tx.ExecContext(ctx, `
				INSERT OR IGNORE INTO ticket_discounts (ticket_id, discount_id) VALUES (?, ?)
			`, t.ID, d.ID); err != nil {
				return fmt.Errorf("failed to link ticket %d to discount %d: %w", t.ID, d.ID, err)
			}
		}
	}

	meta := map[string]string{
		"snapshot_version": snap.Version,
		"exported_at":      snap.ExportedAt.UTC().Format(time.RFC3339),
	}
	for key, value := range meta {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO metadata (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
		`, key, value); err != nil {
			return fmt.Errorf("failed to set metadata %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// Counts returns the number of archived rows per entity table
func (a *Archive) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(archiveTables))
	for _, table := range archiveTables {
		var n int
		if err := a.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}

// Metadata returns the value stored under key, "" when unset
func (a *Archive) Metadata(ctx context.Context, key string) (string, error) {
	var value sql.NullString
	err := a.db.QueryRowContext(ctx, "SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata: %w", err)
	}
	return nullToString(value), nil
}

// Route summarizes the archived tickets between two stations
type Route struct {
	From    string
	To      string
	Tickets int
	Revenue float64
}

// Routes returns one summary per archived station pair, busiest first.
// Tickets missing either station are grouped under empty names.
func (a *Archive) Routes(ctx context.Context) ([]Route, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT s.name, e.name, COUNT(t.id), COALESCE(SUM(t.price), 0)
		FROM tickets t
		LEFT JOIN stations s ON s.id = t.start_station_id
		LEFT JOIN stations e ON e.id = t.end_station_id
		GROUP BY s.name, e.name
		ORDER BY COUNT(t.id) DESC, s.name, e.name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query routes: %w", err)
	}
	defer rows.Close()

	var routes []Route
	for rows.Next() {
		var (
			from, to sql.NullString
			r        Route
		)
		if err := rows.Scan(&from, &to, &r.Tickets, &r.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		r.From = nullToString(from)
		r.To = nullToString(to)
		routes = append(routes, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating routes: %w", err)
	}

	return routes, nil
}
