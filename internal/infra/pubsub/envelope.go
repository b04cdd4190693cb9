package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"winespa/internal/domain/service"
	"winespa/internal/errors"
)

const (
	attrEventType = "event_type"
	attrAccountID = "account_id"
	attrRoleID    = "role_id"
	attrRequestID = "request_id"
)

const localSubscription = "projects/local/subscriptions/account-events-sub"

// PubSubPushMessage is the body Pub/Sub posts to push subscribers.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// encodeEvent serializes an event with the attributes used for filtering and tracing.
func encodeEvent(event *service.AccountEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{attrEventType: string(event.Type)}
	if event.AccountID != "" {
		attributes[attrAccountID] = event.AccountID
	}
	if event.RoleID != "" {
		attributes[attrRoleID] = event.RoleID
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return data, attributes, nil
}

// orderingKey keeps the events of one account, or one role, in publish order.
func orderingKey(event *service.AccountEvent) string {
	if event.AccountID != "" {
		return "account:" + event.AccountID
	}
	if event.RoleID != "" {
		return "role:" + event.RoleID
	}

	return ""
}

// newPushMessage wraps an event the way a push subscription delivers it.
func newPushMessage(event *service.AccountEvent, publishedAt time.Time) (*PubSubPushMessage, error) {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return nil, err
	}

	msg := &PubSubPushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeEvent extracts the account event carried by a push message.
// The request_id attribute wins over the one in the payload.
func (m *PubSubPushMessage) DecodeEvent() (*service.AccountEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	var event service.AccountEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "message data is not an account event")
	}
	if event.Type == "" {
		return nil, errors.New("account event has no type")
	}

	if requestID := m.Message.Attributes[attrRequestID]; requestID != "" {
		event.RequestID = requestID
	}

	return &event, nil
}
