// Package notify carries the transient toast notifications a view raises. A
// notification stores message IDs, the text is produced when it is shown so
// it follows the session language.
package notify

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

type Notification struct {
	Variant   Variant        `json:"variant"`
	TitleID   string         `json:"titleID"`
	MessageID string         `json:"messageID"`
	Data      map[string]any `json:"data,omitempty"`
}

type Notifier interface {
	Notify(n Notification)
}

func Success(messageID string, data map[string]any) Notification {
	return Notification{Variant: VariantDefault, TitleID: "success", MessageID: messageID, Data: data}
}

func Failure(messageID string, data map[string]any) Notification {
	return Notification{Variant: VariantDestructive, TitleID: "error", MessageID: messageID, Data: data}
}

// Queue is a Notifier that buffers notifications until they are drained.
type Queue struct {
	items []Notification
}

func (q *Queue) Notify(n Notification) {
	q.items = append(q.items, n)
}

func (q *Queue) Len() int {
	return len(q.items)
}

func (q *Queue) Drain() []Notification {
	items := q.items
	q.items = nil
	return items
}
