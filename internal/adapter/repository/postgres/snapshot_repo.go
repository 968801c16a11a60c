package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gojournal/internal/domain"
	"github.com/iho/gojournal/internal/infrastructure/metrics"
)

// SnapshotRepository implements usecase.SnapshotRepository on PostgreSQL.
// Snapshots live in journal_snapshots with their lines in journal_lines;
// every applied event replaces the lines and adjusts the version in one
// transaction.
type SnapshotRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
	metrics *metrics.Metrics
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(pool *pgxpool.Pool, retrier *Retrier, m *metrics.Metrics) *SnapshotRepository {
	return &SnapshotRepository{
		pool:    pool,
		retrier: retrier,
		metrics: m,
	}
}

// Save applies a journal event to the stored snapshot.
func (r *SnapshotRepository) Save(ctx context.Context, event domain.JournalEvent) (domain.JournalEvent, error) {
	defer r.observe("snapshot_save", time.Now())

	err := r.retrier.Retry(ctx, func() error {
		return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
			return r.apply(ctx, tx, event)
		})
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (r *SnapshotRepository) apply(ctx context.Context, tx pgx.Tx, event domain.JournalEvent) error {
	switch e := event.(type) {
	case domain.Registered:
		_, err := tx.Exec(ctx, `
			INSERT INTO journal_snapshots (id, entry_date, status, version)
			VALUES ($1::uuid, $2, $3, 1)
			ON CONFLICT (id) DO UPDATE
			SET entry_date = EXCLUDED.entry_date, status = EXCLUDED.status, version = 1`,
			e.Header.ID.String(), timeToPgTimestamptz(e.Header.Date), string(domain.StatusRegistered),
		)
		if err != nil {
			return err
		}
		return r.replaceLines(ctx, tx, e.Header.ID, e.Lines)

	case domain.Corrected:
		tag, err := tx.Exec(ctx, `
			UPDATE journal_snapshots
			SET entry_date = $2, status = $3, version = version + 1
			WHERE id = $1::uuid`,
			e.JournalID.String(), timeToPgTimestamptz(e.Header.Date), string(domain.StatusCorrected),
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s", domain.ErrJournalNotFound, e.JournalID)
		}
		return r.replaceLines(ctx, tx, e.JournalID, e.Lines)

	case domain.Approved:
		tag, err := tx.Exec(ctx, `
			UPDATE journal_snapshots
			SET status = $2, version = version + 1
			WHERE id = $1::uuid`,
			e.JournalID.String(), string(domain.StatusApproved),
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s", domain.ErrJournalNotFound, e.JournalID)
		}
		return nil

	default:
		return fmt.Errorf("unknown journal event type %T", event)
	}
}

func (r *SnapshotRepository) replaceLines(ctx context.Context, tx pgx.Tx, id domain.ID[domain.JournalHeader], lines []domain.JournalLine) error {
	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE snapshot_id = $1::uuid`, id.String()); err != nil {
		return err
	}

	for position, line := range lines {
		record := lineToRecord(line)

		_, err := tx.Exec(ctx, `
			INSERT INTO journal_lines
				(snapshot_id, position, account_code, account_name, account_type, side, amount, description)
			VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8)`,
			id.String(), position,
			record.AccountCode, record.AccountName, record.AccountType,
			record.Side, decimalToNumeric(record.Amount), record.Description,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// FindByID returns the snapshot for a journal id.
func (r *SnapshotRepository) FindByID(ctx context.Context, id domain.ID[domain.JournalHeader]) (*domain.JournalSnapshot, error) {
	defer r.observe("snapshot_find", time.Now())

	var (
		date    pgtype.Timestamptz
		status  string
		version int
	)
	err := r.pool.QueryRow(ctx, `
		SELECT entry_date, status, version
		FROM journal_snapshots
		WHERE id = $1::uuid`,
		id.String(),
	).Scan(&date, &status, &version)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrJournalNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	lines, err := r.loadLines(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.JournalSnapshot{
		ID:      id,
		Date:    date.Time,
		Lines:   lines,
		Status:  domain.JournalStatus(status),
		Version: version,
	}, nil
}

func (r *SnapshotRepository) loadLines(ctx context.Context, id domain.ID[domain.JournalHeader]) ([]domain.JournalLine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT account_code, account_name, account_type, side, amount, description
		FROM journal_lines
		WHERE snapshot_id = $1::uuid
		ORDER BY position`,
		id.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLines(rows)
}

// ListAllLines returns every stored line, grouped by entry with entries
// ordered by date descending.
func (r *SnapshotRepository) ListAllLines(ctx context.Context) ([]domain.JournalLine, error) {
	defer r.observe("snapshot_list_lines", time.Now())

	rows, err := r.pool.Query(ctx, `
		SELECT l.account_code, l.account_name, l.account_type, l.side, l.amount, l.description
		FROM journal_lines l
		JOIN journal_snapshots s ON s.id = l.snapshot_id
		ORDER BY s.entry_date DESC, s.id, l.position`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLines(rows)
}

// ListSnapshots returns all snapshots ordered by date descending.
func (r *SnapshotRepository) ListSnapshots(ctx context.Context) ([]*domain.JournalSnapshot, error) {
	defer r.observe("snapshot_list", time.Now())

	rows, err := r.pool.Query(ctx, `
		SELECT id::text, entry_date, status, version
		FROM journal_snapshots
		ORDER BY entry_date DESC, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*domain.JournalSnapshot
	for rows.Next() {
		var (
			rawID   string
			date    pgtype.Timestamptz
			status  string
			version int
		)
		if err := rows.Scan(&rawID, &date, &status, &version); err != nil {
			return nil, err
		}

		id, err := domain.ParseID[domain.JournalHeader](rawID)
		if err != nil {
			return nil, fmt.Errorf("corrupt snapshot id %q: %w", rawID, err)
		}

		snapshots = append(snapshots, &domain.JournalSnapshot{
			ID:      id,
			Date:    date.Time,
			Status:  domain.JournalStatus(status),
			Version: version,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, snapshot := range snapshots {
		lines, err := r.loadLines(ctx, snapshot.ID)
		if err != nil {
			return nil, err
		}
		snapshot.Lines = lines
	}

	return snapshots, nil
}

func scanLines(rows pgx.Rows) ([]domain.JournalLine, error) {
	var lines []domain.JournalLine
	for rows.Next() {
		var (
			record lineRecord
			amount pgtype.Numeric
		)
		err := rows.Scan(
			&record.AccountCode, &record.AccountName, &record.AccountType,
			&record.Side, &amount, &record.Description,
		)
		if err != nil {
			return nil, err
		}
		record.Amount = numericToDecimal(amount)

		line, err := recordToLine(record)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func (r *SnapshotRepository) observe(operation string, start time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.DBQueries.WithLabelValues(operation).Inc()
	r.metrics.DBDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
