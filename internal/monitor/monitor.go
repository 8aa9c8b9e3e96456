package monitor

import (
	"context"
	"encoding/json"
	"time"

	"codeberg.org/atelier/server/internal/apperrors"
	"codeberg.org/atelier/server/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store appends classified error records to the error_events monitoring
// table. Each write is an independent row, so no coordination is needed
// between concurrent requests.
type Store struct {
	db          *pgxpool.Pool
	environment string
}

func NewStore(db *pgxpool.Pool, environment string) *Store {
	return &Store{db: db, environment: environment}
}

// Event is one persisted error record, as read back by the admin API.
type Event struct {
	ID        int64          `json:"id"`
	Context   string         `json:"context"`
	Kind      string         `json:"kind"`
	Message   string         `json:"message"`
	Code      string         `json:"code,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	Stack     string         `json:"stack,omitempty"`
	Env       string         `json:"environment"`
	CreatedAt time.Time      `json:"created_at"`
}

const queryInsertEvent = `
	INSERT INTO error_events (context, kind, message, code, request_id, stack, details, environment, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
`

const queryRecentEvents = `
	SELECT id, context, kind, message, code, request_id, COALESCE(stack, ''), details, environment, created_at
	FROM error_events
	ORDER BY created_at DESC
	LIMIT $1
`

// Persist writes one record. Callers treat failures as observability-only;
// this method reports them but the middleware never surfaces them.
func (s *Store) Persist(ctx context.Context, requestContext string, rec *apperrors.Record, stack string) error {
	_, err := s.db.Exec(ctx, queryInsertEvent,
		requestContext,
		string(rec.Kind),
		rec.Message,
		rec.Code,
		rec.RequestID,
		stackValue(stack),
		detailsValue(rec.Details),
		s.environment,
	)

	return storage.TranslateError("monitor.Persist", err)
}

// details is a jsonb column; under the simple query protocol a []byte
// argument is sent as a bytea literal, which jsonb rejects, so the payload
// must go over as text. nil maps to SQL NULL.
func detailsValue(details map[string]any) any {
	if len(details) == 0 {
		return nil
	}

	encoded, err := json.Marshal(details)
	if err != nil {
		return nil
	}

	return string(encoded)
}

func stackValue(stack string) any {
	if stack == "" {
		return nil
	}

	return stack
}

// Recent returns the latest persisted events, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Event, error) {
	rows, err := s.db.Query(ctx, queryRecentEvents, limit)
	if err != nil {
		return nil, storage.TranslateError("monitor.Recent", err)
	}

	defer rows.Close()

	var events []Event

	for rows.Next() {
		var ev Event
		var details []byte

		err := rows.Scan(
			&ev.ID,
			&ev.Context,
			&ev.Kind,
			&ev.Message,
			&ev.Code,
			&ev.RequestID,
			&ev.Stack,
			&details,
			&ev.Env,
			&ev.CreatedAt,
		)
		if err != nil {
			return nil, storage.TranslateError("monitor.Recent", err)
		}

		if len(details) > 0 {
			_ = json.Unmarshal(details, &ev.Details) //nolint:errcheck // malformed details stay empty
		}

		events = append(events, ev)
	}

	return events, storage.TranslateError("monitor.Recent", rows.Err())
}
