package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/bvkgo/topic"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Listener holds one dedicated database connection on LISTEN and fans the
// incoming notifications out to in-process topics, one per logical domain.
// There is a single listener per process; websocket connections and other
// subscribers attach to the topics, not to the database.
type Listener struct {
	pool   *pgxpool.Pool
	logger *slog.Logger

	exchange      *topic.Topic[Event]
	announcements *topic.Topic[Event]
}

// NewListener creates a feed listener over the given pool.
func NewListener(pool *pgxpool.Pool, logger *slog.Logger) *Listener {
	return &Listener{
		pool:          pool,
		logger:        logger,
		exchange:      topic.New[Event](),
		announcements: topic.New[Event](),
	}
}

// Exchange is the topic carrying rate/ticker/member/settings changes.
func (l *Listener) Exchange() *topic.Topic[Event] {
	return l.exchange
}

// Announcements is the topic carrying announcement inserts and deletes.
func (l *Listener) Announcements() *topic.Topic[Event] {
	return l.announcements
}

// Run listens until ctx is cancelled. Connection failures are logged and
// retried with a flat delay; notifications with malformed payloads are
// dropped with a warning.
func (l *Listener) Run(ctx context.Context) {
	defer l.exchange.Close()
	defer l.announcements.Close()

	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			l.logger.Error("Change feed connection lost, retrying", slog.String("error", err.Error()))
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(3 * time.Second):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	for _, channel := range []string{ChannelExchange, ChannelAnnouncements} {
		if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
			return err
		}
	}
	l.logger.Info("Change feed listener attached")

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}

		var event Event
		if err := json.Unmarshal([]byte(notification.Payload), &event); err != nil {
			l.logger.Warn("Dropping malformed feed payload",
				slog.String("channel", notification.Channel),
				slog.String("error", err.Error()))
			continue
		}
		event = event.Redacted()

		switch notification.Channel {
		case ChannelExchange:
			l.exchange.SendCh() <- event
		case ChannelAnnouncements:
			l.announcements.SendCh() <- event
		default:
			l.logger.Warn("Notification on unknown channel", slog.String("channel", notification.Channel))
		}
	}
}
