package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"google.golang.org/protobuf/encoding/protojson"

	"inspection-hub/go-backend/internal/auth"
	"inspection-hub/go-backend/internal/services"
	"inspection-hub/go-backend/pkg/pb"
)

const (
	MsgTypeWelcome        = "WELCOME"
	MsgTypeFrame          = "FRAME"
	MsgTypeProcessedFrame = "PROCESSED_FRAME"
	MsgTypePing           = "PING"
	MsgTypePong           = "PONG"
	MsgTypeError          = "ERROR"
)

const (
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
	wsWriteWait  = 10 * time.Second
	wsSendBuffer = 256
)

// Frame payloads are protobuf JSON. Field names follow the .proto file
// and unset fields are written out so clients always see every key.
var (
	frameUnmarshal   = protojson.UnmarshalOptions{DiscardUnknown: true}
	processedMarshal = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}
)

// WSMessage is the envelope for every WebSocket message in both directions.
type WSMessage struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	ClientID  string          `json:"client_id,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

type wsClient struct {
	conn     *websocket.Conn
	clientID string
	claims   *auth.Claims
	send     chan WSMessage
	done     chan struct{}
	logger   *slog.Logger
}

// enqueue hands msg to the write pump. It reports false once the writer
// has gone away.
func (c *wsClient) enqueue(msg WSMessage) bool {
	select {
	case c.send <- msg:
		return true
	case <-c.done:
		return false
	}
}

// WSHandler accepts frames over WebSocket and answers them through the
// same FrameProcessor as the gRPC router.
type WSHandler struct {
	processor *services.FrameProcessor
	validator *auth.Validator
	metrics   *services.Metrics
	logger    *slog.Logger
	upgrader  websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]*wsClient
}

func NewWSHandler(processor *services.FrameProcessor, validator *auth.Validator, metrics *services.Metrics, logger *slog.Logger) *WSHandler {
	return &WSHandler{
		processor: processor,
		validator: validator,
		metrics:   metrics,
		logger:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[string]*wsClient),
	}
}

// Clients is the number of connected WebSocket clients.
func (h *WSHandler) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		token = auth.BearerToken(r.Header.Get("Authorization"))
	}
	claims, err := h.validator.Validate(token)
	if err != nil {
		h.logger.Warn("websocket authentication failed", "remote_addr", r.RemoteAddr, "error", err)
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": err.Error()})
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		clientID = uuid.NewString()
	}
	client := &wsClient{
		conn:     conn,
		clientID: clientID,
		claims:   claims,
		send:     make(chan WSMessage, wsSendBuffer),
		done:     make(chan struct{}),
		logger:   h.logger.With("client_id", clientID, "subject", claims.Subject, "transport", "websocket"),
	}

	h.register(client)
	defer h.unregister(client)

	go h.writePump(client)

	welcome, _ := json.Marshal(map[string]any{"message": "connected", "shed_threshold_ms": h.processor.ShedThreshold().Milliseconds()})
	client.enqueue(WSMessage{Type: MsgTypeWelcome, ClientID: clientID, Timestamp: time.Now().Unix(), Payload: welcome})

	h.readPump(r.Context(), client)
}

func (h *WSHandler) register(c *wsClient) {
	h.mu.Lock()
	h.clients[c.clientID] = c
	h.mu.Unlock()
	h.metrics.StreamOpened("websocket")
	c.logger.Info("websocket client connected")
}

func (h *WSHandler) unregister(c *wsClient) {
	h.mu.Lock()
	if h.clients[c.clientID] == c {
		delete(h.clients, c.clientID)
	}
	h.mu.Unlock()
	h.metrics.StreamClosed("websocket")
	c.logger.Info("websocket client disconnected")
}

// readPump owns the connection's read side. Frames are processed one at a
// time so responses leave in the order frames arrived.
func (h *WSHandler) readPump(ctx context.Context, c *wsClient) {
	defer close(c.send)

	c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})

	for {
		var msg WSMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket read failed", "error", err)
			}
			return
		}
		arrived := h.processor.Now()
		c.conn.SetReadDeadline(time.Now().Add(wsPongWait))

		switch msg.Type {
		case MsgTypePing:
			if !c.enqueue(WSMessage{Type: MsgTypePong, ClientID: c.clientID, Timestamp: time.Now().Unix()}) {
				return
			}

		case MsgTypeFrame:
			if c.claims.ExpiredAt(h.validator.Now()) {
				c.logger.Warn("token expired mid-stream")
				c.enqueue(errorMessage(c.clientID, auth.ErrTokenExpired.Error()))
				return
			}

			frame := &pb.Frame{}
			if err := frameUnmarshal.Unmarshal(msg.Payload, frame); err != nil {
				if !c.enqueue(errorMessage(c.clientID, "malformed frame payload")) {
					return
				}
				continue
			}

			out := h.processor.Process(ctx, frame, arrived)
			payload, err := processedMarshal.Marshal(out)
			if err != nil {
				c.logger.Error("encode processed frame", "error", err)
				return
			}
			if !c.enqueue(WSMessage{Type: MsgTypeProcessedFrame, ClientID: c.clientID, Timestamp: time.Now().Unix(), Payload: payload}) {
				return
			}

		default:
			c.logger.Debug("unknown websocket message type", "type", msg.Type)
			if !c.enqueue(errorMessage(c.clientID, "unknown message type "+msg.Type)) {
				return
			}
		}
	}
}

func (h *WSHandler) writePump(c *wsClient) {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		close(c.done)
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Warn("websocket write failed", "error", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// CloseAll tells every client the server is going away and closes the
// connections. Read pumps exit on the resulting errors.
func (h *WSHandler) CloseAll() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	deadline := time.Now().Add(wsWriteWait)
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for _, c := range h.clients {
		c.conn.WriteControl(websocket.CloseMessage, msg, deadline)
		c.conn.Close()
	}
}

func errorMessage(clientID, text string) WSMessage {
	payload, _ := json.Marshal(map[string]string{"error": text})
	return WSMessage{Type: MsgTypeError, ClientID: clientID, Timestamp: time.Now().Unix(), Payload: payload}
}
