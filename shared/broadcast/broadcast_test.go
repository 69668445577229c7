package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms/config"
	"hms/infras/otel/mocks"
	"hms/infras/websocket"
	"hms/shared/broadcast"
)

func registered(hub *websocket.Hub, id string) *websocket.Client {
	client := websocket.NewClient(nil, 4)
	client.ID = id
	hub.Register(client)

	return client
}

func receive(t *testing.T, client *websocket.Client) string {
	t.Helper()

	select {
	case frame := <-client.Send:
		return string(frame)
	case <-time.After(2 * time.Second):
		t.Fatalf("client %s received nothing", client.ID)

		return ""
	}
}

func TestHubBroadcaster(t *testing.T) {
	hub := websocket.NewHub()
	sender := registered(hub, "sender")
	other := registered(hub, "other")

	b := broadcast.New(&config.Config{}, hub, nil, mocks.NewOtel())

	require.NoError(t, b.Publish(context.Background(), broadcast.EventICUUpdated, []map[string]string{{"id": "icu-1"}}))
	assert.JSONEq(t, `{"event":"icuUpdated","data":[{"id":"icu-1"}]}`, receive(t, sender))
	assert.JSONEq(t, `{"event":"icuUpdated","data":[{"id":"icu-1"}]}`, receive(t, other))

	require.NoError(t, b.PublishExcept(context.Background(), sender.ID, broadcast.EventHospitalAdded, "Nile"))
	assert.JSONEq(t, `{"event":"hospitalAdded","data":"Nile"}`, receive(t, other))
	assert.Empty(t, sender.Send)

	assert.Error(t, b.Publish(context.Background(), broadcast.EventICUUpdated, make(chan int)))
}

func TestRedisBroadcasterWithRelay(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Broadcast.Channel = "hms.broadcast"

	hub := websocket.NewHub()
	sender := registered(hub, "sender")
	other := registered(hub, "other")

	relay := broadcast.NewRelay(cfg, hub, client)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- relay.Run(ctx) }()

	require.Eventually(t, func() bool {
		return len(mr.PubSubChannels("")) == 1
	}, 2*time.Second, 10*time.Millisecond)

	b := broadcast.New(cfg, hub, client, mocks.NewOtel())

	require.NoError(t, b.PublishExcept(context.Background(), sender.ID, broadcast.EventHospitalAdded, map[string]string{"name": "Nile"}))
	assert.JSONEq(t, `{"event":"hospitalAdded","data":{"name":"Nile"}}`, receive(t, other))

	require.NoError(t, b.Publish(context.Background(), broadcast.EventICUUpdated, []string{}))
	assert.JSONEq(t, `{"event":"icuUpdated","data":[]}`, receive(t, sender))
	assert.JSONEq(t, `{"event":"icuUpdated","data":[]}`, receive(t, other))

	mr.Publish("hms.broadcast", "garbage")

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("relay did not stop")
	}
}

func TestRelayWithoutChannel(t *testing.T) {
	relay := broadcast.NewRelay(&config.Config{}, websocket.NewHub(), nil)

	assert.NoError(t, relay.Run(context.Background()))
}
