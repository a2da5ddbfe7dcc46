package push

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

// Publisher delivers per-user events to whatever is listening (web frontends
// subscribe through a gateway keyed by user id). A single in-process map of
// connections would break under multiple server processes, so events go
// through NATS instead.
type Publisher interface {
	PublishInviteEvent(userID string, event InviteEvent) error
	Close()
}

type InviteEvent struct {
	InvitationID string    `json:"invitation_id"`
	Refrigerator string    `json:"refrigerator"`
	Inviter      string    `json:"inviter"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type natsPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (Publisher, error) {
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, err
	}
	return &natsPublisher{conn: conn}, nil
}

func (p *natsPublisher) PublishInviteEvent(userID string, event InviteEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.conn.Publish(fmt.Sprintf("invites.user.%s", userID), data)
}

func (p *natsPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}

// noopPublisher keeps invitation flows working when NATS is not configured.
type noopPublisher struct{}

func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishInviteEvent(userID string, event InviteEvent) error {
	log.Printf("invite event for user %s dropped: push disabled", userID)
	return nil
}

func (noopPublisher) Close() {}
