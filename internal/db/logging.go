package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/charmbracelet/log"
)

// LoggingQueries wraps Queries to add debug logging around every statement
type LoggingQueries struct {
	*Queries
}

// NewLoggingQueries creates a new LoggingQueries instance
func NewLoggingQueries(db DBTX) *LoggingQueries {
	return &LoggingQueries{
		Queries: New(db),
	}
}

// WithTx creates a new LoggingQueries bound to a transaction
func (lq *LoggingQueries) WithTx(tx *sql.Tx) *LoggingQueries {
	return &LoggingQueries{
		Queries: lq.Queries.WithTx(tx),
	}
}

func (lq *LoggingQueries) logQuery(queryName string, start time.Time, err error, args ...interface{}) {
	duration := time.Since(start)

	if err != nil && err != sql.ErrNoRows {
		log.Debug("Database query failed",
			"query", queryName,
			"duration", duration,
			"error", err,
			"args", args,
		)
		return
	}
	log.Debug("Database query executed",
		"query", queryName,
		"duration", duration,
		"args", args,
	)
}

// CreateName with logging
func (lq *LoggingQueries) CreateName(ctx context.Context, arg CreateNameParams) error {
	start := time.Now()
	err := lq.Queries.CreateName(ctx, arg)
	lq.logQuery("CreateName", start, err, arg)
	return err
}

// GetName with logging
func (lq *LoggingQueries) GetName(ctx context.Context, nameID string) (Name, error) {
	start := time.Now()
	result, err := lq.Queries.GetName(ctx, nameID)
	lq.logQuery("GetName", start, err, nameID)
	return result, err
}

// ListNames with logging
func (lq *LoggingQueries) ListNames(ctx context.Context) ([]Name, error) {
	start := time.Now()
	result, err := lq.Queries.ListNames(ctx)
	lq.logQuery("ListNames", start, err)

	if err == nil {
		log.Debug("ListNames result", "name_count", len(result))
	}
	return result, err
}

// ListNameValues with logging
func (lq *LoggingQueries) ListNameValues(ctx context.Context) ([]string, error) {
	start := time.Now()
	result, err := lq.Queries.ListNameValues(ctx)
	lq.logQuery("ListNameValues", start, err)
	return result, err
}

// UpdateName with logging
func (lq *LoggingQueries) UpdateName(ctx context.Context, arg UpdateNameParams) (int64, error) {
	start := time.Now()
	result, err := lq.Queries.UpdateName(ctx, arg)
	lq.logQuery("UpdateName", start, err, arg)
	return result, err
}

// DeleteName with logging
func (lq *LoggingQueries) DeleteName(ctx context.Context, nameID string) (int64, error) {
	start := time.Now()
	result, err := lq.Queries.DeleteName(ctx, nameID)
	lq.logQuery("DeleteName", start, err, nameID)
	return result, err
}

// DeleteAllNames with logging
func (lq *LoggingQueries) DeleteAllNames(ctx context.Context) (int64, error) {
	start := time.Now()
	result, err := lq.Queries.DeleteAllNames(ctx)
	lq.logQuery("DeleteAllNames", start, err)

	if err == nil {
		log.Debug("DeleteAllNames result", "removed", result)
	}
	return result, err
}

// CreateSavedList with logging
func (lq *LoggingQueries) CreateSavedList(ctx context.Context, arg CreateSavedListParams) error {
	start := time.Now()
	err := lq.Queries.CreateSavedList(ctx, arg)
	lq.logQuery("CreateSavedList", start, err, arg)
	return err
}

// GetSavedList with logging
func (lq *LoggingQueries) GetSavedList(ctx context.Context, listID string) (SavedList, error) {
	start := time.Now()
	result, err := lq.Queries.GetSavedList(ctx, listID)
	lq.logQuery("GetSavedList", start, err, listID)
	return result, err
}

// ListSavedLists with logging
func (lq *LoggingQueries) ListSavedLists(ctx context.Context) ([]SavedList, error) {
	start := time.Now()
	result, err := lq.Queries.ListSavedLists(ctx)
	lq.logQuery("ListSavedLists", start, err)

	if err == nil {
		log.Debug("ListSavedLists result", "list_count", len(result))
	}
	return result, err
}

// UpdateSavedList with logging
func (lq *LoggingQueries) UpdateSavedList(ctx context.Context, arg UpdateSavedListParams) (int64, error) {
	start := time.Now()
	result, err := lq.Queries.UpdateSavedList(ctx, arg)
	lq.logQuery("UpdateSavedList", start, err, arg)
	return result, err
}

// DeleteSavedList with logging
func (lq *LoggingQueries) DeleteSavedList(ctx context.Context, listID string) (int64, error) {
	start := time.Now()
	result, err := lq.Queries.DeleteSavedList(ctx, listID)
	lq.logQuery("DeleteSavedList", start, err, listID)
	return result, err
}

// AddSavedListName with logging
func (lq *LoggingQueries) AddSavedListName(ctx context.Context, arg AddSavedListNameParams) error {
	start := time.Now()
	err := lq.Queries.AddSavedListName(ctx, arg)
	lq.logQuery("AddSavedListName", start, err, arg)
	return err
}

// ListSavedListNames with logging
func (lq *LoggingQueries) ListSavedListNames(ctx context.Context, listID string) ([]string, error) {
	start := time.Now()
	result, err := lq.Queries.ListSavedListNames(ctx, listID)
	lq.logQuery("ListSavedListNames", start, err, listID)

	if err == nil {
		log.Debug("ListSavedListNames result", "list_id", listID, "name_count", len(result))
	}
	return result, err
}

// CountSavedListNames with logging
func (lq *LoggingQueries) CountSavedListNames(ctx context.Context, listID string) (int64, error) {
	start := time.Now()
	result, err := lq.Queries.CountSavedListNames(ctx, listID)
	lq.logQuery("CountSavedListNames", start, err, listID)
	return result, err
}

// DeleteSavedListNames with logging
func (lq *LoggingQueries) DeleteSavedListNames(ctx context.Context, listID string) error {
	start := time.Now()
	err := lq.Queries.DeleteSavedListNames(ctx, listID)
	lq.logQuery("DeleteSavedListNames", start, err, listID)
	return err
}

// GetPreference with logging
func (lq *LoggingQueries) GetPreference(ctx context.Context, prefKey string) (string, error) {
	start := time.Now()
	result, err := lq.Queries.GetPreference(ctx, prefKey)
	lq.logQuery("GetPreference", start, err, prefKey)
	return result, err
}

// SetPreference with logging
func (lq *LoggingQueries) SetPreference(ctx context.Context, arg SetPreferenceParams) error {
	start := time.Now()
	err := lq.Queries.SetPreference(ctx, arg)
	lq.logQuery("SetPreference", start, err, arg)
	return err
}
