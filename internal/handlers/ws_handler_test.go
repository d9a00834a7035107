package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"

	"inspection-hub/go-backend/internal/handlers"
	"inspection-hub/go-backend/internal/testutil"
	"inspection-hub/go-backend/pkg/pb"
)

func newWSServer(t *testing.T, h *hub) (*httptest.Server, *handlers.WSHandler) {
	t.Helper()
	ws := handlers.NewWSHandler(h.processor, h.validator, h.metrics, testutil.Logger())
	srv := httptest.NewServer(handlers.NewOpsMux(handlers.OpsConfig{WebSocket: ws}, testutil.Logger()))
	t.Cleanup(srv.Close)
	return srv, ws
}

func dialWS(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	var welcome handlers.WSMessage
	require.NoError(t, conn.ReadJSON(&welcome))
	require.Equal(t, handlers.MsgTypeWelcome, welcome.Type)
	return conn
}

func sendFrame(t *testing.T, conn *websocket.Conn, frame *pb.Frame) {
	t.Helper()
	payload, err := protojson.Marshal(frame)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(handlers.WSMessage{Type: handlers.MsgTypeFrame, Payload: payload}))
}

func readPayload(t *testing.T, conn *websocket.Conn) json.RawMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg handlers.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, handlers.MsgTypeProcessedFrame, msg.Type)
	return msg.Payload
}

func readProcessed(t *testing.T, conn *websocket.Conn) *pb.ProcessedFrame {
	t.Helper()
	out := &pb.ProcessedFrame{}
	require.NoError(t, protojson.Unmarshal(readPayload(t, conn), out))
	return out
}

func TestWSFramesInOrder(t *testing.T) {
	h := newHub(t)
	h.workers.SetDetections(&pb.Detection{ClassName: "bolt"})
	srv, ws := newWSServer(t, h)
	conn := dialWS(t, srv, testutil.SignToken(t, "device-1", h.clock.Now()))

	stale := h.frame(2, "PL", nil)
	stale.TimestampMs = h.clock.Now().Add(-5 * time.Second).UnixMilli()
	frames := []*pb.Frame{h.frame(1, "", nil), stale, h.frame(3, "PL", nil)}
	for _, f := range frames {
		sendFrame(t, conn, f)
	}

	first := readProcessed(t, conn)
	assert.EqualValues(t, 1, first.SequenceNumber)
	assert.Equal(t, pb.ProcessingStatus_PROCESSING_STATUS_SUCCESS, first.Status)
	assert.Equal(t, frames[0].FrameData, first.ProcessedData)

	second := readProcessed(t, conn)
	assert.EqualValues(t, 2, second.SequenceNumber)
	assert.Equal(t, pb.ProcessingStatus_PROCESSING_STATUS_SKIPPED, second.Status)

	third := readProcessed(t, conn)
	assert.EqualValues(t, 3, third.SequenceNumber)
	assert.Len(t, third.Detections, 1)

	assert.Equal(t, 1, ws.Clients())
	assert.Equal(t, 1, h.metrics.ActiveStreams())
}

func TestWSPayloadUsesProtoFieldNames(t *testing.T) {
	h := newHub(t)
	srv, _ := newWSServer(t, h)
	conn := dialWS(t, srv, testutil.SignToken(t, "device-1", h.clock.Now()))

	sendFrame(t, conn, h.frame(7, "", nil))

	var fields map[string]any
	require.NoError(t, json.Unmarshal(readPayload(t, conn), &fields))
	assert.Equal(t, "cam-A", fields["source_id"])
	assert.Equal(t, "PROCESSING_STATUS_SUCCESS", fields["status"])
	assert.Equal(t, []any{}, fields["detections"])
	assert.Contains(t, fields, "error_message")
}

func TestWSMalformedFrame(t *testing.T) {
	h := newHub(t)
	srv, _ := newWSServer(t, h)
	conn := dialWS(t, srv, testutil.SignToken(t, "device-1", h.clock.Now()))

	require.NoError(t, conn.WriteJSON(handlers.WSMessage{Type: handlers.MsgTypeFrame, Payload: json.RawMessage(`{"timestamp_ms":"soon"}`)}))
	var msg handlers.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, handlers.MsgTypeError, msg.Type)
	assert.Contains(t, string(msg.Payload), "malformed frame payload")
}

func TestWSPingPong(t *testing.T) {
	h := newHub(t)
	srv, _ := newWSServer(t, h)
	conn := dialWS(t, srv, testutil.SignToken(t, "device-1", h.clock.Now()))

	require.NoError(t, conn.WriteJSON(handlers.WSMessage{Type: handlers.MsgTypePing}))
	var msg handlers.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, handlers.MsgTypePong, msg.Type)

	require.NoError(t, conn.WriteJSON(handlers.WSMessage{Type: "BOGUS"}))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, handlers.MsgTypeError, msg.Type)
}

func TestWSRejectsBadToken(t *testing.T) {
	h := newHub(t)
	srv, _ := newWSServer(t, h)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=garbage"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWSBearerHeader(t *testing.T) {
	h := newHub(t)
	srv, _ := newWSServer(t, h)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+testutil.SignToken(t, "device-1", h.clock.Now()))
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", header)
	require.NoError(t, err)
	defer conn.Close()

	var welcome handlers.WSMessage
	require.NoError(t, conn.ReadJSON(&welcome))
	assert.Equal(t, handlers.MsgTypeWelcome, welcome.Type)
}

func TestWSTokenExpiry(t *testing.T) {
	h := newHub(t)
	srv, _ := newWSServer(t, h)
	conn := dialWS(t, srv, testutil.SignToken(t, "device-1", h.clock.Now()))

	h.clock.Advance(2 * time.Hour)
	sendFrame(t, conn, h.frame(1, "", nil))

	var msg handlers.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, handlers.MsgTypeError, msg.Type)

	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}
