package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/sos-client/internal/entity"
)

const (
	actionSessionGet   = "session:get"
	actionSymbolSelect = "symbol:select"
	actionGameJoin     = "game:join"
	actionGamePlace    = "game:place"
	actionGameCancel   = "game:cancel"
	actionGameForfeit  = "game:forfeit"
	actionNotice       = "session:notice"
	actionError        = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type SelectPayload struct {
	Symbol string `json:"symbol"`
}

// PlacePayload targets a 0-based cell. Symbol falls back to the selected one.
type PlacePayload struct {
	Cell   int    `json:"cell"`
	Symbol string `json:"symbol,omitempty"`
}

type Response struct {
	Action   string              `json:"action"`
	Success  bool                `json:"success"`
	Message  string              `json:"message,omitempty"`
	Selected string              `json:"selected,omitempty"`
	Session  *entity.SessionView `json:"session,omitempty"`
	Notice   *entity.Notice      `json:"notice,omitempty"`
}
