package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/pkg/jwt"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/sse"
	timesheetsvc "github.com/bengkelworks/shop-backend-go/internal/service/timesheet"
)

// BoardHandler streams live attendance events to the workshop display board.
type BoardHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type boardHandlerImpl struct {
	hub        *sse.Hub
	jwtService jwt.Service
}

func NewBoardHandler(hub *sse.Hub, jwtService jwt.Service) BoardHandler {
	return &boardHandlerImpl{
		hub:        hub,
		jwtService: jwtService,
	}
}

// Stream implements BoardHandler.
func (h *boardHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// EventSource cannot send custom headers, so the token rides the query
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	employeeID, err := h.jwtService.ValidateBoardToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	events, cleanup := h.hub.Subscribe(timesheetsvc.BoardTopic)
	defer cleanup()

	slog.Info("Board client connected",
		"employee_id", employeeID,
		"clients", h.hub.SubscriberCount(timesheetsvc.BoardTopic))

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"employee_id\":\"%s\"}\n\n", employeeID)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
