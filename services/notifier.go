package services

import (
	"encoding/json"
	"log"

	"duo-server/usecases"
	"duo-server/ws"
)

// Notifier delivers message events to recipients: straight over the
// websocket when the user is online, otherwise queued as a pending
// notification until their next connection.
type Notifier struct {
	mgr           *ws.Manager
	notifications *usecases.NotificationUseCase
}

func NewNotifier(mgr *ws.Manager, notifications *usecases.NotificationUseCase) *Notifier {
	return &Notifier{mgr: mgr, notifications: notifications}
}

type event struct {
	Type    string      `json:"type"` // note, post
	Payload interface{} `json:"payload"`
}

// Notify records the event and pushes it if the recipient is connected.
// Delivery is best effort; a failed push leaves the notification pending.
func (n *Notifier) Notify(userID uint, kind string, payload interface{}) {
	stored, err := n.notifications.Enqueue(userID, kind, payload)
	if err != nil {
		log.Printf("failed to enqueue %s notification for user %d: %v", kind, userID, err)
		return
	}

	if !n.mgr.IsConnected(userID) {
		return
	}

	b, err := json.Marshal(event{Type: kind, Payload: payload})
	if err != nil {
		log.Printf("failed to encode %s notification: %v", kind, err)
		return
	}

	if err := n.mgr.SendToUser(userID, b); err != nil {
		log.Printf("push to user %d failed, notification stays pending: %v", userID, err)
		return
	}

	if err := n.notifications.MarkSent([]string{stored.ID}); err != nil {
		log.Printf("failed to mark notification %s sent: %v", stored.ID, err)
	}
}

// DeliverPending sends a user's queued notifications, oldest first. Called
// when a websocket connection is established.
func (n *Notifier) DeliverPending(userID uint) {
	pending, err := n.notifications.Pending(userID, 0)
	if err != nil {
		log.Printf("failed to load pending notifications for user %d: %v", userID, err)
		return
	}

	delivered := make([]string, 0, len(pending))
	for _, p := range pending {
		msg, err := json.Marshal(event{Type: p.Kind, Payload: json.RawMessage(p.Payload)})
		if err != nil {
			log.Printf("skipping malformed notification %s: %v", p.ID, err)
			continue
		}
		if err := n.mgr.SendToUser(userID, msg); err != nil {
			// connection dropped mid delivery; the rest stays pending
			break
		}
		delivered = append(delivered, p.ID)
	}

	if err := n.notifications.MarkSent(delivered); err != nil {
		log.Printf("failed to mark notifications sent for user %d: %v", userID, err)
	}
}
