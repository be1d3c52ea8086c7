package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portssvc "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/services"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/services"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/dto"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/middleware"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/platform/realtime"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 30 * time.Second
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Cross-origin policy is enforced by the CORS layer on the HTTP side;
	// the upgrade itself accepts any origin the browser allowed through.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsServerMessage is the envelope for every frame pushed to the panel.
type wsServerMessage struct {
	Type          string                     `json:"type"`
	Event         *realtime.Event            `json:"event,omitempty"`
	Announcements *dto.ListAnnouncementsResponse `json:"announcements,omitempty"`
	Notifier      *services.NotifierSnapshot `json:"notifier,omitempty"`
}

// wsClientMessage is what the panel sends back over the socket.
type wsClientMessage struct {
	Action         string `json:"action"`
	AnnouncementID string `json:"announcementID,omitempty"`
}

// RealtimeHandler upgrades panel connections and bridges the change feed to them.
type RealtimeHandler struct {
	services *portssvc.ServiceContainer
	feed     *realtime.Listener
	hub      *realtime.Hub
}

// NewRealtimeHandler creates a new RealtimeHandler.
func NewRealtimeHandler(sc *portssvc.ServiceContainer, feed *realtime.Listener, hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{services: sc, feed: feed, hub: hub}
}

func registerRealtimeRoutes(rg *gin.RouterGroup, sc *portssvc.ServiceContainer, feed *realtime.Listener, hub *realtime.Hub) {
	h := NewRealtimeHandler(sc, feed, hub)
	rg.GET("/ws", h.Serve)
}

// Serve runs one panel connection: it mirrors the viewer's announcements
// into a per-connection store, subscribes to both feed topics, and pushes
// state changes until the socket closes.
func (h *RealtimeHandler) Serve(c *gin.Context) {
	viewer, ok := resolveMember(c, h.services.Auth)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("member_id", viewer.MemberID))

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("Websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	h.hub.Register(conn, viewer.MemberID)
	defer func() {
		h.hub.Unregister(conn)
		_ = conn.Close()
	}()

	// Outbound frames funnel through one channel so the single writer
	// goroutine owns the connection. Timer-driven notifier emits must never
	// block, so a full buffer drops the frame; the next state push wins.
	out := make(chan wsServerMessage, 32)
	trySend := func(msg wsServerMessage) {
		select {
		case out <- msg:
		default:
		}
	}

	notifier := services.NewNotifier(services.WithOnChange(func(snap services.NotifierSnapshot) {
		trySend(wsServerMessage{Type: "notifier", Notifier: &snap})
	}))
	store := services.NewViewerStore(*viewer, h.services.Announcement, notifier)

	ctx := c.Request.Context()
	if err := store.Refresh(ctx); err != nil {
		logger.Error("Initial announcement load failed", slog.String("error", err.Error()))
	}
	sendAnnouncements := func() {
		list := dto.ToListAnnouncementsResponse(store.Announcements())
		trySend(wsServerMessage{Type: "announcements", Announcements: &list})
	}
	sendAnnouncements()

	exchangeSub, exchangeCh, err := h.feed.Exchange().Subscribe(16, false)
	if err != nil {
		logger.Error("Exchange topic subscribe failed", slog.String("error", err.Error()))
		return
	}
	defer exchangeSub.Unsubscribe()

	announcementSub, announcementCh, err := h.feed.Announcements().Subscribe(16, false)
	if err != nil {
		logger.Error("Announcement topic subscribe failed", slog.String("error", err.Error()))
		return
	}
	defer announcementSub.Unsubscribe()

	done := make(chan struct{})

	// Writer: owns every write to the socket, including keepalive pings.
	go func() {
		ticker := time.NewTicker(wsPingPeriod)
		defer ticker.Stop()
		for {
			select {
			case msg, open := <-out:
				if !open {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteJSON(msg); err != nil {
					return
				}
			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	// Feed pump: forwards exchange events verbatim and folds announcement
	// events into the viewer's store before pushing the merged list.
	go func() {
		for {
			select {
			case event, open := <-exchangeCh:
				if !open {
					return
				}
				ev := event
				trySend(wsServerMessage{Type: "exchange", Event: &ev})
			case event, open := <-announcementCh:
				if !open {
					return
				}
				h.applyAnnouncementEvent(store, event, logger)
				sendAnnouncements()
			case <-done:
				return
			}
		}
	}()

	// Reader: read-state mutations ride the socket back; a pong doubles as a
	// presence heartbeat.
	conn.SetReadLimit(4096)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		if err := h.services.Presence.Heartbeat(ctx, viewer.MemberID); err != nil {
			logger.Warn("Heartbeat from websocket failed", slog.String("error", err.Error()))
		}
		return nil
	})

	for {
		var msg wsClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		switch msg.Action {
		case "markRead":
			store.MarkAsRead(ctx, msg.AnnouncementID)
			sendAnnouncements()
		case "markAllRead":
			store.MarkAllAsRead(ctx)
			sendAnnouncements()
		case "dismissFlash":
			notifier.DismissFlash(msg.AnnouncementID)
		default:
			logger.Warn("Unknown websocket action", slog.String("action", msg.Action))
		}
	}
	close(done)
}

// applyAnnouncementEvent folds one feed event into the connection's store.
// Inserts carry the full row, so the merge is incremental by id; only a
// row that fails to decode forces a full refresh.
func (h *RealtimeHandler) applyAnnouncementEvent(store *services.ViewerStore, event realtime.Event, logger *slog.Logger) {
	switch event.Op {
	case realtime.OpInsert:
		var a domain.Announcement
		if err := json.Unmarshal(event.Row, &a); err != nil {
			logger.Warn("Undecodable announcement row, refreshing", slog.String("error", err.Error()))
			if err := store.Refresh(middleware.WithLogger(context.Background(), logger)); err != nil {
				logger.Error("Announcement refresh failed", slog.String("error", err.Error()))
			}
			return
		}
		store.OnInsert(a)
	case realtime.OpDelete:
		store.OnDelete(event.RowID)
	}
}
