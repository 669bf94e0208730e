package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/docnav/docnav/internal/logging"
	"github.com/docnav/docnav/internal/nav"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// navRequest is the incoming WebSocket message format.
type navRequest struct {
	Type string `json:"type"` // "navigate" or "toggle_menu"
	Path string `json:"path,omitempty"`
}

// navResponse is the outgoing WebSocket message format.
type navResponse struct {
	Type      string     `json:"type"` // "state", "menu" or "error"
	SessionID string     `json:"session_id"`
	MenuOpen  bool       `json:"menu_open"`
	State     *nav.State `json:"state,omitempty"`
	Content   string     `json:"content,omitempty"`
}

// navSession is one connected viewer. Its menu is only touched by the
// connection's read loop.
type navSession struct {
	id   string
	conn *websocket.Conn
	menu nav.Menu
	log  *zap.Logger
}

// handleNavSocket delivers navigation events to the pure navigation
// functions: every "navigate" message recomputes the state from scratch.
func (s *Server) handleNavSocket(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	sess := &navSession{id: uuid.NewString(), conn: conn}
	sess.log = logger.With(zap.String("session_id", sess.id))
	sess.log.Debug("navigation session opened")

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				sess.log.Warn("websocket read", zap.Error(err))
			}
			return
		}

		var req navRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			sess.sendError("invalid message format")
			continue
		}

		switch req.Type {
		case "navigate":
			s.handleNavigate(sess, req.Path)
		case "toggle_menu":
			sess.send(navResponse{Type: "menu", MenuOpen: sess.menu.Toggle()})
		default:
			sess.sendError("unknown message type: " + req.Type)
		}
	}
}

func (s *Server) handleNavigate(sess *navSession, path string) {
	if path == "" {
		sess.sendError("path is required")
		return
	}
	sess.menu.Navigate(path)
	state, ok := s.nav.Resolve(path)
	if !ok {
		sess.sendError("no navigation set serves " + path)
		return
	}
	sess.send(navResponse{Type: "state", MenuOpen: sess.menu.Open(), State: &state})
}

func (sess *navSession) send(resp navResponse) {
	resp.SessionID = sess.id
	if err := sess.conn.WriteJSON(resp); err != nil {
		sess.log.Warn("websocket write", zap.Error(err))
	}
}

func (sess *navSession) sendError(message string) {
	sess.send(navResponse{Type: "error", MenuOpen: sess.menu.Open(), Content: message})
}
