// Package store persists tasks in a local SQLite file.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nibzard/tasks-go/internal/task"
)

const driverName = "sqlite"

const createTableSQL = `
CREATE TABLE IF NOT EXISTS tasks (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT NOT NULL,
    deadline    TEXT,
    status      TEXT NOT NULL,
    priority    TEXT
)`

// Columns are selected by name so rows map onto task.Task through db tags
// regardless of their physical order in the table.
const selectColumns = "id, description, deadline, status, priority"

// sortColumns maps sortable fields to their columns.
var sortColumns = map[string]string{
	task.FieldDeadline: "deadline",
	task.FieldStatus:   "status",
	task.FieldPriority: "priority",
}

// Store reads and writes tasks in a single SQLite file.
// Each operation opens the file, does its work and closes it again.
type Store struct {
	path string
}

// New returns a store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// StorageUnavailableError reports that the database file could not be
// opened or created.
type StorageUnavailableError struct {
	Path string
	Err  error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable at %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

// open acquires a handle for the duration of one operation.
// Callers must close it.
func (s *Store) open(ctx context.Context) (*sqlx.DB, error) {
	if s.path == "" {
		return nil, &StorageUnavailableError{Path: s.path, Err: errors.New("database path is empty")}
	}
	db, err := sqlx.Open(driverName, fileURI(s.path))
	if err != nil {
		return nil, &StorageUnavailableError{Path: s.path, Err: err}
	}
	// Reading the schema forces SQLite to parse the file header, so a file
	// that is not a database fails here rather than mid-operation.
	var tables int
	if err := db.GetContext(ctx, &tables, "SELECT COUNT(*) FROM sqlite_master"); err != nil {
		db.Close()
		return nil, &StorageUnavailableError{Path: s.path, Err: err}
	}
	return db, nil
}

var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")

// fileURI turns a filesystem path into a SQLite file: URI so that
// characters such as ? and # stay part of the file name instead of
// starting a query string.
func fileURI(path string) string {
	p := filepath.ToSlash(path)
	switch {
	case filepath.VolumeName(path) != "":
		p = "/" + p
	case strings.HasPrefix(p, "//"):
		// An empty authority keeps the leading slashes in the path.
		p = "//" + p
	}
	return "file:" + uriEscaper.Replace(p)
}

// withTx runs fn in a transaction, committing on success and rolling back
// on any error.
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Initialize creates the tasks table if needed and adds the priority column
// to tables created before it existed. It is safe to call on every start.
func (s *Store) Initialize(ctx context.Context) error {
	if dir := filepath.Dir(s.path); s.path != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &StorageUnavailableError{Path: s.path, Err: err}
		}
	}

	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	return withTx(ctx, db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, createTableSQL); err != nil {
			return fmt.Errorf("create tasks table: %w", err)
		}

		var hasPriority int
		err := tx.GetContext(ctx, &hasPriority,
			`SELECT COUNT(*) FROM pragma_table_info('tasks') WHERE name = 'priority'`)
		if err != nil {
			return fmt.Errorf("inspect tasks table: %w", err)
		}
		if hasPriority == 0 {
			if _, err := tx.ExecContext(ctx, `ALTER TABLE tasks ADD COLUMN priority TEXT`); err != nil {
				return fmt.Errorf("add priority column: %w", err)
			}
		}
		return nil
	})
}

// Columns returns the column names of the tasks table in table order.
func (s *Store) Columns(ctx context.Context) ([]string, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var cols []string
	if err := db.SelectContext(ctx, &cols, `SELECT name FROM pragma_table_info('tasks') ORDER BY cid`); err != nil {
		return nil, fmt.Errorf("inspect tasks table: %w", err)
	}
	return cols, nil
}

// Insert stores a new task and returns its id.
func (s *Store) Insert(ctx context.Context, d task.Draft) (int64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	d = d.Normalize()

	db, err := s.open(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	var id int64
	err = withTx(ctx, db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (description, deadline, status, priority) VALUES (?, ?, ?, ?)`,
			d.Description, nullable(d.Deadline), string(d.Status), nullable(d.Priority))
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("read task id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Get returns the task with the given id, or nil if there is none.
func (s *Store) Get(ctx context.Context, id int64) (*task.Task, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var t task.Task
	err = db.GetContext(ctx, &t, `SELECT `+selectColumns+` FROM tasks WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	return &t, nil
}

// List returns every task ordered by id.
func (s *Store) List(ctx context.Context) ([]task.Task, error) {
	return s.selectTasks(ctx, "list tasks", `SELECT `+selectColumns+` FROM tasks ORDER BY id`)
}

// ListByStatus returns the tasks whose status equals status, ordered by id.
func (s *Store) ListByStatus(ctx context.Context, status task.Status) ([]task.Task, error) {
	return s.selectTasks(ctx, "list tasks by status",
		`SELECT `+selectColumns+` FROM tasks WHERE status = ? ORDER BY id`, string(status))
}

// ListOrdered returns all tasks ordered ascending by field, then by id.
// Unset values sort first.
func (s *Store) ListOrdered(ctx context.Context, field string) ([]task.Task, error) {
	column, ok := sortColumns[field]
	if !ok {
		return nil, &task.ValidationError{
			Field: "sort",
			Err:   fmt.Errorf("unknown field %q, must be one of: %s", field, strings.Join(task.SortFields(), ", ")),
		}
	}
	return s.selectTasks(ctx, "list tasks ordered",
		fmt.Sprintf(`SELECT %s FROM tasks ORDER BY %s, id`, selectColumns, column))
}

// ListDueBetween returns tasks with a deadline in [from, to], comparing the
// stored text directly. Tasks without a deadline are excluded.
func (s *Store) ListDueBetween(ctx context.Context, from, to string) ([]task.Task, error) {
	return s.selectTasks(ctx, "list due tasks",
		`SELECT `+selectColumns+` FROM tasks
		 WHERE deadline IS NOT NULL AND deadline >= ? AND deadline <= ?
		 ORDER BY deadline, id`, from, to)
}

func (s *Store) selectTasks(ctx context.Context, op, query string, args ...any) ([]task.Task, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	tasks := []task.Task{}
	if err := db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tasks, nil
}

// Update overwrites the fields set in p. Blank fields are left untouched.
// Updating a missing id is a no-op.
func (s *Store) Update(ctx context.Context, id int64, p task.Patch) error {
	cols := p.Columns()
	if len(cols) == 0 {
		return nil
	}

	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for _, c := range cols {
		sets = append(sets, c.Column+" = ?")
		args = append(args, c.Value)
	}
	args = append(args, id)

	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	return withTx(ctx, db, func(tx *sqlx.Tx) error {
		query := `UPDATE tasks SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update task %d: %w", id, err)
		}
		return nil
	})
}

// Delete removes the task with the given id. Deleting a missing id is a no-op.
func (s *Store) Delete(ctx context.Context, id int64) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	return withTx(ctx, db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete task %d: %w", id, err)
		}
		return nil
	})
}

func nullable(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
