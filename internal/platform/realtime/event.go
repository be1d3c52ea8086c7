package realtime

import "encoding/json"

// Op is the change kind carried by a feed event.
type Op string

const (
	OpInsert Op = "INSERT"
	OpUpdate Op = "UPDATE"
	OpDelete Op = "DELETE"
)

// Postgres notification channels the listener subscribes to. The triggers
// installed by the migrations NOTIFY on these with an Event payload.
const (
	ChannelExchange      = "exchange_changes"
	ChannelAnnouncements = "announcement_changes"
)

// Event is one change-feed notification. Row carries the full row JSON on
// insert/update so subscribers can merge incrementally by id instead of
// refetching the whole table.
type Event struct {
	Op    Op              `json:"op"`
	Table string          `json:"table"`
	RowID string          `json:"rowID"`
	Row   json.RawMessage `json:"row,omitempty"`
}

// sensitiveColumns lists row fields that must never reach feed subscribers,
// per source table. The database triggers already strip these; stripping
// again on receipt covers a stale trigger during a rolling migration.
var sensitiveColumns = map[string][]string{
	"members": {"password_hash"},
}

// Redacted returns the event with credential columns removed from the row
// payload. Events for tables without sensitive columns pass through
// unchanged. A row for a sensitive table that cannot be decoded is dropped
// entirely rather than forwarded as-is.
func (e Event) Redacted() Event {
	columns := sensitiveColumns[e.Table]
	if len(columns) == 0 || len(e.Row) == 0 {
		return e
	}

	var row map[string]json.RawMessage
	if err := json.Unmarshal(e.Row, &row); err != nil {
		e.Row = nil
		return e
	}
	for _, column := range columns {
		delete(row, column)
	}

	cleaned, err := json.Marshal(row)
	if err != nil {
		e.Row = nil
		return e
	}
	e.Row = cleaned
	return e
}
