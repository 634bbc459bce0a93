package sqlservice

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/Gobd/apischema"
	"github.com/jmoiron/sqlx"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Store resolves services to id columns of database tables.
type Store struct {
	db *sqlx.DB

	mu       sync.RWMutex
	services map[string]*table
}

var _ apischema.ServiceProvider = (*Store)(nil)

// New returns an empty Store over db.
func New(db *sqlx.DB) *Store {
	return &Store{db: db, services: map[string]*table{}}
}

// Register exposes column of tableName as the service name. Table and column
// must be plain SQL identifiers.
func (s *Store) Register(name, tableName, column string) error {
	if name == "" {
		return fmt.Errorf("service name is required")
	}
	if !identifier.MatchString(tableName) {
		return fmt.Errorf("invalid table name %q", tableName)
	}
	if !identifier.MatchString(column) {
		return fmt.Errorf("invalid column name %q", column)
	}

	t := &table{
		db:    s.db,
		query: fmt.Sprintf("SELECT %s FROM %s WHERE %s IN (?)", column, tableName, column),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[name] = t
	return nil
}

// Service implements [apischema.ServiceProvider].
func (s *Store) Service(name string) (apischema.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.services[name]
	return t, ok
}

type table struct {
	db    *sqlx.DB
	query string
}

// FindIDs implements [apischema.Service].
func (t *table) FindIDs(ctx context.Context, ids []any) ([]any, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(t.query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := t.db.QueryxContext(ctx, t.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ids: %w", err)
	}
	defer rows.Close()

	var found []any
	for rows.Next() {
		cols, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		found = append(found, normalize(cols[0]))
	}
	return found, rows.Err()
}

// normalize turns driver values into the types apischema casts to.
func normalize(v any) any {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case int32:
		return int64(x)
	}
	return v
}
