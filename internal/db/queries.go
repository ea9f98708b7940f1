package db

import (
	"context"
)

const createName = `
INSERT INTO names (name_id, value) VALUES (?, ?)
`

type CreateNameParams struct {
	NameID string `json:"name_id"`
	Value  string `json:"value"`
}

func (q *Queries) CreateName(ctx context.Context, arg CreateNameParams) error {
	_, err := q.db.ExecContext(ctx, createName, arg.NameID, arg.Value)
	return err
}

const getName = `
SELECT seq, name_id, value, created_at FROM names WHERE name_id = ?
`

func (q *Queries) GetName(ctx context.Context, nameID string) (Name, error) {
	row := q.db.QueryRowContext(ctx, getName, nameID)
	var i Name
	err := row.Scan(
		&i.Seq,
		&i.NameID,
		&i.Value,
		&i.CreatedAt,
	)
	return i, err
}

const listNames = `
SELECT seq, name_id, value, created_at FROM names ORDER BY seq
`

func (q *Queries) ListNames(ctx context.Context) ([]Name, error) {
	rows, err := q.db.QueryContext(ctx, listNames)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Name
	for rows.Next() {
		var i Name
		if err := rows.Scan(
			&i.Seq,
			&i.NameID,
			&i.Value,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listNameValues = `
SELECT value FROM names ORDER BY seq
`

func (q *Queries) ListNameValues(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listNameValues)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		items = append(items, value)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateName = `
UPDATE names SET value = ? WHERE name_id = ?
`

type UpdateNameParams struct {
	Value  string `json:"value"`
	NameID string `json:"name_id"`
}

func (q *Queries) UpdateName(ctx context.Context, arg UpdateNameParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateName, arg.Value, arg.NameID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteName = `
DELETE FROM names WHERE name_id = ?
`

func (q *Queries) DeleteName(ctx context.Context, nameID string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteName, nameID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteAllNames = `
DELETE FROM names
`

func (q *Queries) DeleteAllNames(ctx context.Context) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteAllNames)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const createSavedList = `
INSERT INTO saved_lists (list_id, title) VALUES (?, ?)
`

type CreateSavedListParams struct {
	ListID string `json:"list_id"`
	Title  string `json:"title"`
}

func (q *Queries) CreateSavedList(ctx context.Context, arg CreateSavedListParams) error {
	_, err := q.db.ExecContext(ctx, createSavedList, arg.ListID, arg.Title)
	return err
}

const getSavedList = `
SELECT list_id, title, created_at, updated_at FROM saved_lists WHERE list_id = ?
`

func (q *Queries) GetSavedList(ctx context.Context, listID string) (SavedList, error) {
	row := q.db.QueryRowContext(ctx, getSavedList, listID)
	var i SavedList
	err := row.Scan(
		&i.ListID,
		&i.Title,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listSavedLists = `
SELECT list_id, title, created_at, updated_at FROM saved_lists ORDER BY created_at DESC, rowid DESC
`

func (q *Queries) ListSavedLists(ctx context.Context) ([]SavedList, error) {
	rows, err := q.db.QueryContext(ctx, listSavedLists)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SavedList
	for rows.Next() {
		var i SavedList
		if err := rows.Scan(
			&i.ListID,
			&i.Title,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateSavedList = `
UPDATE saved_lists SET title = ?, updated_at = CURRENT_TIMESTAMP WHERE list_id = ?
`

type UpdateSavedListParams struct {
	Title  string `json:"title"`
	ListID string `json:"list_id"`
}

func (q *Queries) UpdateSavedList(ctx context.Context, arg UpdateSavedListParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateSavedList, arg.Title, arg.ListID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteSavedList = `
DELETE FROM saved_lists WHERE list_id = ?
`

func (q *Queries) DeleteSavedList(ctx context.Context, listID string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteSavedList, listID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const addSavedListName = `
INSERT INTO saved_list_names (list_id, position, value) VALUES (?, ?, ?)
`

type AddSavedListNameParams struct {
	ListID   string `json:"list_id"`
	Position int64  `json:"position"`
	Value    string `json:"value"`
}

func (q *Queries) AddSavedListName(ctx context.Context, arg AddSavedListNameParams) error {
	_, err := q.db.ExecContext(ctx, addSavedListName, arg.ListID, arg.Position, arg.Value)
	return err
}

const listSavedListNames = `
SELECT value FROM saved_list_names WHERE list_id = ? ORDER BY position
`

func (q *Queries) ListSavedListNames(ctx context.Context, listID string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listSavedListNames, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		items = append(items, value)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countSavedListNames = `
SELECT COUNT(*) FROM saved_list_names WHERE list_id = ?
`

func (q *Queries) CountSavedListNames(ctx context.Context, listID string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countSavedListNames, listID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteSavedListNames = `
DELETE FROM saved_list_names WHERE list_id = ?
`

func (q *Queries) DeleteSavedListNames(ctx context.Context, listID string) error {
	_, err := q.db.ExecContext(ctx, deleteSavedListNames, listID)
	return err
}

const getPreference = `
SELECT pref_value FROM preferences WHERE pref_key = ?
`

func (q *Queries) GetPreference(ctx context.Context, prefKey string) (string, error) {
	row := q.db.QueryRowContext(ctx, getPreference, prefKey)
	var value string
	err := row.Scan(&value)
	return value, err
}

const setPreference = `
INSERT INTO preferences (pref_key, pref_value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (pref_key) DO UPDATE SET pref_value = excluded.pref_value, updated_at = CURRENT_TIMESTAMP
`

type SetPreferenceParams struct {
	PrefKey   string `json:"pref_key"`
	PrefValue string `json:"pref_value"`
}

func (q *Queries) SetPreference(ctx context.Context, arg SetPreferenceParams) error {
	_, err := q.db.ExecContext(ctx, setPreference, arg.PrefKey, arg.PrefValue)
	return err
}
