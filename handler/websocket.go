package handler

import (
	"context"
	"sync"

	"shop_manager/helper"

	"github.com/gofiber/contrib/websocket"
)

// notificationClient is the slice of a websocket connection the fanout
// needs.
type notificationClient interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

var (
	notificationClients = make(map[notificationClient]bool)
	notificationMu      sync.Mutex
	notificationOnce    sync.Once
)

func registerNotificationClient(c notificationClient) {
	notificationMu.Lock()
	notificationClients[c] = true
	notificationMu.Unlock()
}

func unregisterNotificationClient(c notificationClient) {
	notificationMu.Lock()
	delete(notificationClients, c)
	notificationMu.Unlock()
}

// broadcastNotification writes one payload to every connected client.
// A client whose write fails is dropped.
func broadcastNotification(payload []byte) {
	notificationMu.Lock()
	defer notificationMu.Unlock()
	for conn := range notificationClients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(notificationClients, conn)
		}
	}
}

// startNotificationFanout owns the single redis subscription and fans
// each published message out to the connected clients.
func startNotificationFanout() {
	go func() {
		pubsub := helper.RedisClient.Subscribe(context.Background(), helper.NotificationChannel)
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			broadcastNotification([]byte(msg.Payload))
		}
	}()
}

// NotificationWebsocket streams admin notifications live. The redis
// subscription is shared across all dashboards; a connection only joins
// and leaves the client set.
func NotificationWebsocket(c *websocket.Conn) {
	notificationOnce.Do(startNotificationFanout)

	registerNotificationClient(c)
	defer func() {
		unregisterNotificationClient(c)
		c.Close()
	}()

	// Hold the connection open; inbound frames are ignored.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
