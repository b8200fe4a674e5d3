package handler

import (
	"context"
	"net/url"
	"sync"

	"github.com/adil-bs/Universal-ticket-mock-APIs/helper"
	"github.com/adil-bs/Universal-ticket-mock-APIs/model"
	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	liveClients = make(map[string]map[*websocket.Conn]bool)
	liveSubs    = make(map[string]*redis.PubSub)
	liveMu      sync.Mutex
)

// AvailabilityWebsocket streams availability for one search route. Every
// fresh persisted scrape of the route is pushed to all connected watchers.
func AvailabilityWebsocket(c *websocket.Conn) {
	mode := routeParam(c, "mode")
	origin := routeParam(c, "origin")
	destination := routeParam(c, "destination")
	date := routeParam(c, "date")

	channel := helper.AvailabilityChannel(mode, origin, destination, date)

	// Disconnect removes the client; the last client of a route also drops
	// the redis subscription.
	defer func() {
		liveMu.Lock()
		if liveClients[channel] != nil {
			delete(liveClients[channel], c)
			if len(liveClients[channel]) == 0 {
				delete(liveClients, channel)
				if sub := liveSubs[channel]; sub != nil {
					sub.Close()
					delete(liveSubs, channel)
				}
			}
		}
		liveMu.Unlock()
		c.Close()
	}()

	liveMu.Lock()
	if liveClients[channel] == nil {
		liveClients[channel] = make(map[*websocket.Conn]bool)
	}
	liveClients[channel][c] = true
	if liveSubs[channel] == nil {
		sub := helper.SubscribeAvailability(context.Background(), channel)
		liveSubs[channel] = sub
		go fanOutAvailability(channel, sub)
	}
	liveMu.Unlock()

	// First frame: whatever the store already holds for the route.
	snapshot, err := helper.StoredAvailability(model.AvailabilityQuery{
		Mode:        mode,
		Origin:      origin,
		Destination: destination,
		Datetime:    date,
	})
	if err == nil && len(snapshot.Schedules) > 0 {
		c.WriteJSON(snapshot)
	}

	// Watchers only listen; the read loop just notices the disconnect.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

func fanOutAvailability(channel string, sub *redis.PubSub) {
	for msg := range sub.Channel() {
		payload := []byte(msg.Payload)

		liveMu.Lock()
		for conn := range liveClients[channel] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(liveClients[channel], conn)
			}
		}
		liveMu.Unlock()
	}
}

// routeParam unescapes a path segment so "New%20Delhi" lands on the same
// channel the availability endpoint publishes for "New Delhi".
func routeParam(c *websocket.Conn, key string) string {
	raw := c.Params(key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
