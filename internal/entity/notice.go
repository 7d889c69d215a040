package entity

type NoticeKind string

const (
	NoticeApplied      NoticeKind = "applied"
	NoticeMove         NoticeKind = "move"
	NoticeEnded        NoticeKind = "ended"
	NoticeIgnored      NoticeKind = "ignored"
	NoticeFault        NoticeKind = "fault"
	NoticeResync       NoticeKind = "resync"
	NoticeConnectivity NoticeKind = "connectivity"
)

// Notice tells the presentation layer what a reconciliation step did.
type Notice struct {
	Kind    NoticeKind  `json:"kind"`
	Event   string      `json:"event,omitempty"`
	Message string      `json:"message,omitempty"`
	Session SessionView `json:"session"`
}
