package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aidanlsb/rolo/internal/model"
	"github.com/aidanlsb/rolo/internal/sqlutil"
)

// SchemaVersion is the SQLite schema version written to the meta table.
const SchemaVersion = 1

const sqliteSchema = `
	PRAGMA journal_mode = WAL;
	PRAGMA synchronous = NORMAL;

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS persons (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		address TEXT NOT NULL,
		priority TEXT NOT NULL DEFAULT 'NONE',
		remark TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '[]', -- JSON array
		archived INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS appointments (
		position INTEGER PRIMARY KEY,
		id TEXT NOT NULL UNIQUE,
		person TEXT NOT NULL,
		start_at TEXT NOT NULL, -- RFC3339
		end_at TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_appointments_person ON appointments(person);
`

// SQLiteStorage stores the book in a SQLite database. Row order is kept
// in a position column.
type SQLiteStorage struct {
	path string
}

// Path implements Storage.
func (s *SQLiteStorage) Path() string { return s.path }

func (s *SQLiteStorage) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return db, nil
}

// Load implements Storage.
func (s *SQLiteStorage) Load() (*model.AddressBook, error) {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return model.NewAddressBook(), nil
	}
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := checkSchemaVersion(db); err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT name, phone, email, address, priority, remark, tags, archived
		FROM persons ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query persons: %w", err)
	}
	persons, err := sqlutil.ScanRows(rows, scanPerson)
	if err != nil {
		return nil, err
	}

	rows, err = db.Query(`SELECT id, person, start_at, end_at, description
		FROM appointments ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query appointments: %w", err)
	}
	appointments, err := sqlutil.ScanRows(rows, scanAppointment)
	if err != nil {
		return nil, err
	}

	var current, archived []model.Person
	for _, p := range persons {
		if p.Archived() {
			archived = append(archived, p)
		} else {
			current = append(current, p)
		}
	}
	return buildBook(current, archived, appointments)
}

func checkSchemaVersion(db *sql.DB) error {
	var raw string
	err := db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v > SchemaVersion {
		return fmt.Errorf("%w: unsupported schema version %q", ErrInvalidData, raw)
	}
	return nil
}

func scanPerson(rows *sql.Rows) (model.Person, error) {
	var rec personRecord
	var tags string
	var archived bool
	if err := rows.Scan(&rec.Name, &rec.Phone, &rec.Email, &rec.Address,
		&rec.Priority, &rec.Remark, &tags, &archived); err != nil {
		return model.Person{}, fmt.Errorf("scan person: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &rec.Tags); err != nil {
		return model.Person{}, fieldError(model.FieldTag, err)
	}
	return rec.toPerson(archived)
}

func scanAppointment(rows *sql.Rows) (model.Appointment, error) {
	var rec appointmentRecord
	var start, end string
	if err := rows.Scan(&rec.ID, &rec.Person, &start, &end, &rec.Description); err != nil {
		return model.Appointment{}, fmt.Errorf("scan appointment: %w", err)
	}
	var err error
	if rec.Start, err = time.Parse(time.RFC3339Nano, start); err != nil {
		return model.Appointment{}, fmt.Errorf("%w: appointment %s start: %v", ErrInvalidData, rec.ID, err)
	}
	if rec.End, err = time.Parse(time.RFC3339Nano, end); err != nil {
		return model.Appointment{}, fmt.Errorf("%w: appointment %s end: %v", ErrInvalidData, rec.ID, err)
	}
	return rec.toAppointment()
}

// Save implements Storage. The previous contents are replaced in one
// transaction.
func (s *SQLiteStorage) Save(book *model.AddressBook) error {
	return withLock(s.path, func() error {
		db, err := s.open()
		if err != nil {
			return err
		}
		defer db.Close()

		return sqlutil.WithTx(db, func(tx *sql.Tx) error {
			if err := sqlutil.ExecAll(tx, `DELETE FROM persons`, `DELETE FROM appointments`); err != nil {
				return err
			}
			if _, err := tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`,
				strconv.Itoa(SchemaVersion)); err != nil {
				return fmt.Errorf("write schema version: %w", err)
			}
			for i, p := range book.Persons() {
				if err := insertPerson(tx, i, p); err != nil {
					return err
				}
			}
			for i, a := range book.Appointments() {
				if _, err := tx.Exec(`INSERT INTO appointments (position, id, person, start_at, end_at, description)
					VALUES (?, ?, ?, ?, ?, ?)`,
					i, a.ID, string(a.Person), a.Start.Format(time.RFC3339Nano), a.End.Format(time.RFC3339Nano), a.Description); err != nil {
					return fmt.Errorf("insert appointment %s: %w", a.ID, err)
				}
			}
			return nil
		})
	})
}

func insertPerson(tx *sql.Tx, position int, p model.Person) error {
	rec := newPersonRecord(p)
	tags, err := json.Marshal(rec.Tags)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO persons (position, name, phone, email, address, priority, remark, tags, archived)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		position, rec.Name, rec.Phone, rec.Email, rec.Address, rec.Priority, rec.Remark, string(tags), p.Archived()); err != nil {
		return fmt.Errorf("insert person %s: %w", rec.Name, err)
	}
	return nil
}
