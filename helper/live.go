package helper

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/adil-bs/Universal-ticket-mock-APIs/config"
	"github.com/adil-bs/Universal-ticket-mock-APIs/model"
	"github.com/adil-bs/Universal-ticket-mock-APIs/utils"
	"github.com/gosimple/slug"
	"github.com/redis/go-redis/v9"
)

var liveCtx = context.Background()

var liveRedis = redis.NewClient(&redis.Options{
	Addr: config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
})

// AvailabilityChannel names the pub/sub channel carrying fresh availability
// results for one (mode, origin, destination, date) search.
func AvailabilityChannel(mode, origin, destination, date string) string {
	return "availability:" + slug.Make(strings.Join([]string{mode, origin, destination, date}, " "))
}

// PublishAvailability pushes an availability response onto its search
// channel. Async and best effort: a down redis never fails or delays the
// request that produced the response.
func PublishAvailability(resp model.AvailabilityResponse) {
	go func() {
		date := resp.Input.Datetime
		if parsed, err := utils.ParseTravelDate(resp.Input.Datetime); err == nil {
			date = parsed.Format("2006-01-02")
		}
		channel := AvailabilityChannel(resp.Input.Mode, resp.Input.Origin, resp.Input.Destination, date)

		payload, err := json.Marshal(resp)
		if err != nil {
			log.Printf("[LIVE] marshalling availability for %s: %v", channel, err)
			return
		}
		if err := liveRedis.Publish(liveCtx, channel, payload).Err(); err != nil {
			log.Printf("[LIVE] publishing to %s: %v", channel, err)
		}
	}()
}

// SubscribeAvailability opens a subscription on one search channel for a
// websocket client. The caller owns the returned PubSub and must close it.
func SubscribeAvailability(ctx context.Context, channel string) *redis.PubSub {
	return liveRedis.Subscribe(ctx, channel)
}
