package tracking

import (
	"net/http"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/petsisters/sitter-finder/pkg/messaging"
	"github.com/petsisters/sitter-finder/pkg/types"
)

const trackingTopic messaging.Topic = "tracking"
const trackingPrefix = "petsisters"

// RabbitTracking publishes usage events to RabbitMQ, fire and forget.
type RabbitTracking struct {
	connection *amqp.Connection
}

func NewRabbitTracking(url string) (*RabbitTracking, error) {
	t := &RabbitTracking{}
	if err := t.connect(url); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *RabbitTracking) connect(url string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	t.connection = conn
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return messaging.DefineTopic(ch, trackingPrefix, trackingTopic)
}

func (t *RabbitTracking) Close() error {
	return t.connection.Close()
}

func (t *RabbitTracking) send(data any) error {
	return messaging.Publish(t.connection, trackingPrefix, trackingTopic, data)
}

type BaseEvent struct {
	SessionId string `json:"session_id"`
	Event     uint16 `json:"event"`
}

type SessionEvent struct {
	*BaseEvent
	UserAgent string `json:"user_agent,omitempty"`
	Ip        string `json:"ip,omitempty"`
	Language  string `json:"language,omitempty"`
}

type SearchEvent struct {
	*BaseEvent
	Filters types.FilterState `json:"filters"`
	Hits    int               `json:"hits"`
}

type ProfileViewEvent struct {
	*BaseEvent
	SitterId string `json:"sitter_id"`
}

func (t *RabbitTracking) TrackSession(sessionId string, r *http.Request) error {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}
	return t.send(SessionEvent{
		BaseEvent: &BaseEvent{Event: 0, SessionId: sessionId},
		UserAgent: r.UserAgent(),
		Ip:        ip,
		Language:  r.Header.Get("Accept-Language"),
	})
}

func (t *RabbitTracking) TrackSearch(sessionId string, state types.FilterState, hits int) error {
	return t.send(SearchEvent{
		BaseEvent: &BaseEvent{Event: 1, SessionId: sessionId},
		Filters:   state,
		Hits:      hits,
	})
}

func (t *RabbitTracking) TrackProfileView(sessionId string, sitterId string) error {
	return t.send(ProfileViewEvent{
		BaseEvent: &BaseEvent{Event: 2, SessionId: sessionId},
		SitterId:  sitterId,
	})
}
