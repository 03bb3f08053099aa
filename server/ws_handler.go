package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/shorlabs/shor-go/pkg/shor"
	"github.com/shorlabs/shor-go/pkg/shor/logging"
)

var factorUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type wsEnvelope struct {
	Type  string         `json:"type"`
	Level string         `json:"level,omitempty"`
	Msg   string         `json:"msg,omitempty"`
	Attrs map[string]any `json:"attrs,omitempty"`
	Data  any            `json:"data,omitempty"`
	Error string         `json:"error,omitempty"`
}

// wsFactorHandler upgrades the connection, reads one factorization request,
// and streams per-attempt progress followed by a final result or error.
func wsFactorHandler(c *gin.Context) {
	conn, err := factorUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var req factorRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(wsEnvelope{Type: "error", Error: "invalid request"})
		return
	}

	n, ok := req.parseN()
	if !ok {
		_ = conn.WriteJSON(wsEnvelope{Type: "error", Error: "n must be a decimal integer greater than 3"})
		return
	}

	stream := newWSLogger(conn)
	cfg := req.config()
	cfg.Logger = stream

	res, err := shor.Factor(c.Request.Context(), n, cfg)
	if err != nil {
		stream.writeJSON(wsEnvelope{Type: "error", Error: err.Error()})
		return
	}

	stream.writeJSON(wsEnvelope{Type: "result", Data: gin.H{
		"n":        n.String(),
		"p":        res.P.String(),
		"q":        res.Q.String(),
		"method":   res.Method.String(),
		"attempts": res.Attempts,
	}})
}

// wsLogger adapts a websocket connection to the logging facade so the
// factorization loop's progress events become a message stream.
type wsLogger struct {
	mu    *sync.Mutex // shared across With copies, one writer per frame
	conn  *websocket.Conn
	attrs map[string]any
}

func newWSLogger(conn *websocket.Conn) *wsLogger {
	return &wsLogger{mu: &sync.Mutex{}, conn: conn}
}

func (l *wsLogger) Debug(ctx context.Context, msg string, args ...any) { l.emit("debug", msg, args) }
func (l *wsLogger) Info(ctx context.Context, msg string, args ...any)  { l.emit("info", msg, args) }
func (l *wsLogger) Warn(ctx context.Context, msg string, args ...any)  { l.emit("warn", msg, args) }
func (l *wsLogger) Error(ctx context.Context, msg string, args ...any) { l.emit("error", msg, args) }

func (l *wsLogger) With(args ...any) logging.Logger {
	merged := make(map[string]any, len(l.attrs))
	for k, v := range l.attrs {
		merged[k] = v
	}
	for k, v := range pairsToMap(args) {
		merged[k] = v
	}
	return &wsLogger{mu: l.mu, conn: l.conn, attrs: merged}
}

func (l *wsLogger) emit(level, msg string, args []any) {
	attrs := pairsToMap(args)
	for k, v := range l.attrs {
		if _, present := attrs[k]; !present {
			attrs[k] = v
		}
	}
	l.writeJSON(wsEnvelope{Type: "log", Level: level, Msg: msg, Attrs: attrs})
}

func (l *wsLogger) writeJSON(env wsEnvelope) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.conn.WriteJSON(env)
}

// pairsToMap converts slog-style alternating key/value args; a dangling
// value is kept under "!BADKEY" the way slog does.
func pairsToMap(args []any) map[string]any {
	attrs := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		attrs[key] = args[i+1]
	}
	if len(args)%2 == 1 {
		attrs["!BADKEY"] = args[len(args)-1]
	}
	return attrs
}
