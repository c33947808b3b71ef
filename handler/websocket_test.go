package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeNotificationClient struct {
	messages [][]byte
	writeErr error
	closed   bool
}

func (f *fakeNotificationClient) WriteMessage(messageType int, data []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.messages = append(f.messages, data)
	return nil
}

func (f *fakeNotificationClient) Close() error {
	f.closed = true
	return nil
}

func resetNotificationClients() {
	notificationMu.Lock()
	notificationClients = make(map[notificationClient]bool)
	notificationMu.Unlock()
}

func TestBroadcastNotificationDeliversOncePerClient(t *testing.T) {
	resetNotificationClients()

	first := &fakeNotificationClient{}
	second := &fakeNotificationClient{}
	registerNotificationClient(first)
	registerNotificationClient(second)

	broadcastNotification([]byte(`{"type":"order"}`))
	broadcastNotification([]byte(`{"type":"stock"}`))

	assert.Len(t, first.messages, 2, "each client sees each message exactly once")
	assert.Len(t, second.messages, 2)
}

func TestBroadcastNotificationDropsFailingClient(t *testing.T) {
	resetNotificationClients()

	healthy := &fakeNotificationClient{}
	broken := &fakeNotificationClient{writeErr: errors.New("connection reset")}
	registerNotificationClient(healthy)
	registerNotificationClient(broken)

	broadcastNotification([]byte(`{"type":"order"}`))
	assert.True(t, broken.closed)

	notificationMu.Lock()
	_, stillRegistered := notificationClients[broken]
	notificationMu.Unlock()
	assert.False(t, stillRegistered)

	broadcastNotification([]byte(`{"type":"delivery"}`))
	assert.Len(t, healthy.messages, 2, "remaining clients keep receiving")
}

func TestUnregisterNotificationClient(t *testing.T) {
	resetNotificationClients()

	conn := &fakeNotificationClient{}
	registerNotificationClient(conn)
	unregisterNotificationClient(conn)

	broadcastNotification([]byte(`{"type":"order"}`))
	assert.Empty(t, conn.messages)
}
