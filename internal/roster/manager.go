package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/sorteio/api/internal/db"
)

// Manager persists the loose name roster and saved lists
type Manager struct {
	db      *sql.DB
	queries *db.LoggingQueries
}

// NewManager creates a new roster manager
func NewManager(database *sql.DB) *Manager {
	return &Manager{
		db:      database,
		queries: db.NewLoggingQueries(database),
	}
}

// AddName appends a trimmed name to the loose roster
func (m *Manager) AddName(ctx context.Context, value string) (*Name, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, ErrEmptyName
	}

	id := uuid.NewString()
	if err := m.queries.CreateName(ctx, db.CreateNameParams{NameID: id, Value: value}); err != nil {
		return nil, fmt.Errorf("failed to create name: %w", err)
	}

	row, err := m.queries.GetName(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read created name: %w", err)
	}

	log.Debug("Name added", "name_id", id)
	return nameFromRow(row), nil
}

// RemoveName deletes a name from the loose roster
func (m *Manager) RemoveName(ctx context.Context, id string) error {
	affected, err := m.queries.DeleteName(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete name: %w", err)
	}
	if affected == 0 {
		return ErrNameNotFound
	}
	return nil
}

// EditName replaces the value of a name, keeping its position
func (m *Manager) EditName(ctx context.Context, id, value string) (*Name, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, ErrEmptyName
	}

	affected, err := m.queries.UpdateName(ctx, db.UpdateNameParams{NameID: id, Value: value})
	if err != nil {
		return nil, fmt.Errorf("failed to update name: %w", err)
	}
	if affected == 0 {
		return nil, ErrNameNotFound
	}

	row, err := m.queries.GetName(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read updated name: %w", err)
	}
	return nameFromRow(row), nil
}

// ImportNames splits text on commas and newlines and appends every non-blank
// entry to the loose roster in order. It returns the names that were added.
func (m *Manager) ImportNames(ctx context.Context, text string) ([]Name, error) {
	values := SplitNames(text)
	if len(values) == 0 {
		return []Name{}, nil
	}

	var added []Name
	err := m.withTx(ctx, func(q *db.LoggingQueries) error {
		var err error
		added, err = appendNames(ctx, q, values)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Debug("Names imported", "count", len(added))
	return added, nil
}

// ClearNames removes every loose name and reports how many were removed
func (m *Manager) ClearNames(ctx context.Context) (int64, error) {
	removed, err := m.queries.DeleteAllNames(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear names: %w", err)
	}
	return removed, nil
}

// ListNames returns the loose roster in insertion order
func (m *Manager) ListNames(ctx context.Context) ([]Name, error) {
	rows, err := m.queries.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list names: %w", err)
	}

	names := make([]Name, 0, len(rows))
	for _, row := range rows {
		names = append(names, *nameFromRow(row))
	}
	return names, nil
}

// NameValues returns the loose roster values in insertion order
func (m *Manager) NameValues(ctx context.Context) ([]string, error) {
	values, err := m.queries.ListNameValues(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list name values: %w", err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// SaveList snapshots the current loose roster under a title
func (m *Manager) SaveList(ctx context.Context, title string) (*List, error) {
	values, err := m.NameValues(ctx)
	if err != nil {
		return nil, err
	}
	return m.CreateList(ctx, title, values)
}

// CreateList stores a titled list of names. Names are trimmed and blank
// entries dropped.
func (m *Manager) CreateList(ctx context.Context, title string, names []string) (*List, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	id := uuid.NewString()
	err := m.withTx(ctx, func(q *db.LoggingQueries) error {
		if err := q.CreateSavedList(ctx, db.CreateSavedListParams{ListID: id, Title: title}); err != nil {
			return fmt.Errorf("failed to create list: %w", err)
		}
		return storeListNames(ctx, q, id, names)
	})
	if err != nil {
		return nil, err
	}

	log.Debug("List saved", "list_id", id, "title", title)
	return m.GetList(ctx, id)
}

// UpdateList replaces the title and names of a saved list
func (m *Manager) UpdateList(ctx context.Context, id, title string, names []string) (*List, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	err := m.withTx(ctx, func(q *db.LoggingQueries) error {
		affected, err := q.UpdateSavedList(ctx, db.UpdateSavedListParams{ListID: id, Title: title})
		if err != nil {
			return fmt.Errorf("failed to update list: %w", err)
		}
		if affected == 0 {
			return ErrListNotFound
		}

		if err := q.DeleteSavedListNames(ctx, id); err != nil {
			return fmt.Errorf("failed to reset list names: %w", err)
		}
		return storeListNames(ctx, q, id, names)
	})
	if err != nil {
		return nil, err
	}

	return m.GetList(ctx, id)
}

// RemoveList deletes a saved list and its names
func (m *Manager) RemoveList(ctx context.Context, id string) error {
	return m.withTx(ctx, func(q *db.LoggingQueries) error {
		if err := q.DeleteSavedListNames(ctx, id); err != nil {
			return fmt.Errorf("failed to delete list names: %w", err)
		}

		affected, err := q.DeleteSavedList(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete list: %w", err)
		}
		if affected == 0 {
			return ErrListNotFound
		}
		return nil
	})
}

// GetList returns a saved list with its names
func (m *Manager) GetList(ctx context.Context, id string) (*List, error) {
	row, err := m.queries.GetSavedList(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}

	names, err := m.queries.ListSavedListNames(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get list names: %w", err)
	}
	if names == nil {
		names = []string{}
	}

	return &List{
		ID:        row.ListID,
		Title:     row.Title,
		Names:     names,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// ListLists returns every saved list, newest first
func (m *Manager) ListLists(ctx context.Context) ([]ListSummary, error) {
	rows, err := m.queries.ListSavedLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved lists: %w", err)
	}

	lists := make([]ListSummary, 0, len(rows))
	for _, row := range rows {
		count, err := m.queries.CountSavedListNames(ctx, row.ListID)
		if err != nil {
			return nil, fmt.Errorf("failed to count list names: %w", err)
		}
		lists = append(lists, ListSummary{
			ID:        row.ListID,
			Title:     row.Title,
			NameCount: int(count),
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return lists, nil
}

// ListValues returns the names of a saved list
func (m *Manager) ListValues(ctx context.Context, id string) ([]string, error) {
	list, err := m.GetList(ctx, id)
	if err != nil {
		return nil, err
	}
	return list.Names, nil
}

// LoadList appends the names of a saved list to the loose roster
func (m *Manager) LoadList(ctx context.Context, id string) ([]Name, error) {
	var added []Name
	err := m.withTx(ctx, func(q *db.LoggingQueries) error {
		if _, err := q.GetSavedList(ctx, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrListNotFound
			}
			return fmt.Errorf("failed to get list: %w", err)
		}

		values, err := q.ListSavedListNames(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get list names: %w", err)
		}

		added, err = appendNames(ctx, q, values)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Debug("List loaded into roster", "list_id", id, "count", len(added))
	return added, nil
}

// SplitNames splits text on commas and newlines, trims every entry and drops
// blanks.
func SplitNames(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	values := make([]string, 0, len(fields))
	for _, f := range fields {
		if v := strings.TrimSpace(f); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func (m *Manager) withTx(ctx context.Context, fn func(q *db.LoggingQueries) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(m.queries.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func appendNames(ctx context.Context, q *db.LoggingQueries, values []string) ([]Name, error) {
	added := make([]Name, 0, len(values))
	for _, value := range values {
		id := uuid.NewString()
		if err := q.CreateName(ctx, db.CreateNameParams{NameID: id, Value: value}); err != nil {
			return nil, fmt.Errorf("failed to create name: %w", err)
		}

		row, err := q.GetName(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to read created name: %w", err)
		}
		added = append(added, *nameFromRow(row))
	}
	return added, nil
}

func storeListNames(ctx context.Context, q *db.LoggingQueries, id string, names []string) error {
	position := int64(0)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if err := q.AddSavedListName(ctx, db.AddSavedListNameParams{ListID: id, Position: position, Value: name}); err != nil {
			return fmt.Errorf("failed to store list name: %w", err)
		}
		position++
	}
	return nil
}

func nameFromRow(row db.Name) *Name {
	return &Name{
		ID:        row.NameID,
		Value:     row.Value,
		CreatedAt: row.CreatedAt,
	}
}
