package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gojournal/internal/domain"
	"github.com/iho/gojournal/internal/usecase"
)

// Event type discriminators stored alongside the payload.
const (
	eventTypeRegistered = "REGISTERED"
	eventTypeCorrected  = "CORRECTED"
	eventTypeApproved   = "APPROVED"
)

// eventPayload is the JSONB form of a journal event. Approved events carry
// only the journal id; the other two carry the header date and the lines.
type eventPayload struct {
	JournalID string       `json:"journal_id"`
	Date      *time.Time   `json:"date,omitempty"`
	Lines     []lineRecord `json:"lines,omitempty"`
}

// EventLog implements usecase.EventLog on PostgreSQL as an append-only
// journal_events table keyed by ULID.
type EventLog struct {
	pool  *pgxpool.Pool
	idGen usecase.IDGenerator
}

// NewEventLog creates a new EventLog. Event record ids come from idGen.
func NewEventLog(pool *pgxpool.Pool, idGen usecase.IDGenerator) *EventLog {
	return &EventLog{
		pool:  pool,
		idGen: idGen,
	}
}

// Append adds an event to the journal's history.
func (l *EventLog) Append(ctx context.Context, event domain.JournalEvent) error {
	eventType, payload, err := encodeEvent(event)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = l.pool.Exec(ctx, `
		INSERT INTO journal_events (event_id, journal_id, event_type, payload, recorded_at)
		VALUES ($1, $2::uuid, $3, $4, $5)`,
		l.idGen.Generate(), domain.EventJournalID(event).String(), eventType, raw,
		timeToPgTimestamptz(time.Now().UTC()),
	)
	return err
}

// History returns the journal's events in append order.
func (l *EventLog) History(ctx context.Context, id domain.ID[domain.JournalHeader]) ([]usecase.JournalEventRecord, error) {
	rows, err := l.pool.Query(ctx, `
		SELECT event_id, event_type, payload, recorded_at
		FROM journal_events
		WHERE journal_id = $1::uuid
		ORDER BY event_id`,
		id.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []usecase.JournalEventRecord
	for rows.Next() {
		var (
			eventID    string
			eventType  string
			raw        []byte
			recordedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&eventID, &eventType, &raw, &recordedAt); err != nil {
			return nil, err
		}

		var payload eventPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("corrupt event payload %s: %w", eventID, err)
		}

		event, err := decodeEvent(eventType, payload)
		if err != nil {
			return nil, fmt.Errorf("corrupt event %s: %w", eventID, err)
		}

		records = append(records, usecase.JournalEventRecord{
			EventID:    eventID,
			Event:      event,
			RecordedAt: recordedAt.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrJournalNotFound, id)
	}

	return records, nil
}

func encodeEvent(event domain.JournalEvent) (string, eventPayload, error) {
	switch e := event.(type) {
	case domain.Registered:
		return eventTypeRegistered, eventPayload{
			JournalID: e.Header.ID.String(),
			Date:      &e.Header.Date,
			Lines:     encodeLines(e.Lines),
		}, nil
	case domain.Corrected:
		return eventTypeCorrected, eventPayload{
			JournalID: e.JournalID.String(),
			Date:      &e.Header.Date,
			Lines:     encodeLines(e.Lines),
		}, nil
	case domain.Approved:
		return eventTypeApproved, eventPayload{JournalID: e.JournalID.String()}, nil
	default:
		return "", eventPayload{}, fmt.Errorf("unknown journal event type %T", event)
	}
}

func decodeEvent(eventType string, payload eventPayload) (domain.JournalEvent, error) {
	id, err := domain.ParseID[domain.JournalHeader](payload.JournalID)
	if err != nil {
		return nil, fmt.Errorf("journal id %q: %w", payload.JournalID, err)
	}

	switch eventType {
	case eventTypeRegistered:
		lines, err := decodeLines(payload.Lines)
		if err != nil {
			return nil, err
		}
		return domain.Registered{
			Header: domain.JournalHeader{ID: id, Date: dateOf(payload)},
			Lines:  lines,
		}, nil

	case eventTypeCorrected:
		lines, err := decodeLines(payload.Lines)
		if err != nil {
			return nil, err
		}
		return domain.Corrected{
			JournalID: id,
			Header:    domain.JournalHeader{ID: id, Date: dateOf(payload)},
			Lines:     lines,
		}, nil

	case eventTypeApproved:
		return domain.Approved{JournalID: id}, nil

	default:
		return nil, fmt.Errorf("unknown event type %q", eventType)
	}
}

func encodeLines(lines []domain.JournalLine) []lineRecord {
	records := make([]lineRecord, 0, len(lines))
	for _, line := range lines {
		records = append(records, lineToRecord(line))
	}
	return records
}

func decodeLines(records []lineRecord) ([]domain.JournalLine, error) {
	lines := make([]domain.JournalLine, 0, len(records))
	for _, record := range records {
		line, err := recordToLine(record)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func dateOf(payload eventPayload) time.Time {
	if payload.Date == nil {
		return time.Time{}
	}
	return *payload.Date
}
