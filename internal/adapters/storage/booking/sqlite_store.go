package booking

import (
	"context"
	"database/sql"
	"time"

	domain "portal/internal/domain/booking"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store using SQLite. Event types and their host rows
// are written together in one transaction.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const eventTypeColumns = `id, tenant_type, tenant_id, name, slug, duration_minutes, buffer_minutes, routing, created_at, updated_at`

// GetByID retrieves an EventType with its hosts.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.EventType, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+eventTypeColumns+` FROM sync_event_type WHERE id = ?`, id)
	e, err := scanEventType(row.Scan)
	if err != nil {
		return domain.EventType{}, err
	}
	e.Hosts, err = s.loadHosts(ctx, e.ID)
	if err != nil {
		return domain.EventType{}, err
	}
	return e, nil
}

// ListByTenant retrieves a tenant's event types with hosts, ordered by name.
// PRE: tenantType and tenantID are non-empty
// POST: Returns event types for the given tenant
func (s *SQLiteStore) ListByTenant(ctx context.Context, tenantType, tenantID string) ([]domain.EventType, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+eventTypeColumns+` FROM sync_event_type WHERE tenant_type = ? AND tenant_id = ? ORDER BY name`,
		tenantType, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.EventType
	for rows.Next() {
		e, err := scanEventType(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Hosts, err = s.loadHosts(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Save persists an EventType and replaces its host rows, transactionally.
// PRE: entity has been validated
// POST: Entity and hosts are persisted
func (s *SQLiteStore) Save(ctx context.Context, e domain.EventType) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sync_event_type (id, tenant_type, tenant_id, name, slug, duration_minutes, buffer_minutes, routing, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, slug=excluded.slug,
		   duration_minutes=excluded.duration_minutes,
		   buffer_minutes=excluded.buffer_minutes, routing=excluded.routing,
		   updated_at=excluded.updated_at`,
		e.ID, e.TenantType, e.TenantID, e.Name, e.Slug, e.DurationMinutes,
		e.BufferMinutes, e.Routing, e.CreatedAt.Format(timeLayout), nullTime(e.UpdatedAt))
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM sync_host WHERE event_type_id = ?`, e.ID); err != nil {
		return err
	}
	for i, h := range e.Hosts {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO sync_host (event_type_id, account_id, weight, priority, position) VALUES (?, ?, ?, ?, ?)`,
			e.ID, h.AccountID, h.Weight, h.Priority, i)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Delete removes an EventType; host rows cascade.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sync_event_type WHERE id = ?`, id)
	return err
}

func (s *SQLiteStore) loadHosts(ctx context.Context, eventTypeID string) ([]domain.Host, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT account_id, weight, priority FROM sync_host WHERE event_type_id = ? ORDER BY position`,
		eventTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hosts []domain.Host
	for rows.Next() {
		var h domain.Host
		if err := rows.Scan(&h.AccountID, &h.Weight, &h.Priority); err != nil {
			return nil, err
		}
		hosts = append(hosts, h)
	}
	return hosts, rows.Err()
}

func scanEventType(scan func(dest ...any) error) (domain.EventType, error) {
	var e domain.EventType
	var updatedAt sql.NullString
	var createdAt string
	err := scan(&e.ID, &e.TenantType, &e.TenantID, &e.Name, &e.Slug,
		&e.DurationMinutes, &e.BufferMinutes, &e.Routing, &createdAt, &updatedAt)
	if err != nil {
		return domain.EventType{}, err
	}
	e.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	if updatedAt.Valid {
		e.UpdatedAt, _ = time.Parse(timeLayout, updatedAt.String)
	}
	return e, nil
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(timeLayout)
}
