package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const channelPrefix = "notificacoes:"

func Channel(empresaID string) string { return channelPrefix + empresaID }

// RedisBus publishes on notificacoes:<empresa_id> and relays what it
// receives to a local Hub, so every instance serves its own SSE clients.
type RedisBus struct {
	client *redis.Client
	hub    *Hub
	log    *zap.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRedisBus starts a pattern subscription and returns once it is confirmed.
// The caller keeps ownership of client.
func NewRedisBus(ctx context.Context, client *redis.Client, log *zap.Logger) (*RedisBus, error) {
	subCtx, cancel := context.WithCancel(context.Background())
	ps := client.PSubscribe(subCtx, channelPrefix+"*")
	if _, err := ps.Receive(ctx); err != nil {
		cancel()
		_ = ps.Close()
		return nil, fmt.Errorf("subscribe %s*: %w", channelPrefix, err)
	}

	b := &RedisBus{client: client, hub: NewHub(), log: log, cancel: cancel}
	b.wg.Add(1)
	go b.relay(subCtx, ps)
	log.Info("notification bus subscribed", zap.String("pattern", channelPrefix+"*"))
	return b, nil
}

func (b *RedisBus) relay(ctx context.Context, ps *redis.PubSub) {
	defer b.wg.Done()
	defer ps.Close()

	ch := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				b.log.Warn("notification channel closed")
				return
			}
			var n Notification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				b.log.Error("bad notification payload", zap.String("channel", msg.Channel), zap.Error(err))
				continue
			}
			if n.EmpresaID == "" {
				n.EmpresaID = strings.TrimPrefix(msg.Channel, channelPrefix)
			}
			b.hub.deliver(n)
		}
	}
}

func (b *RedisBus) Publish(ctx context.Context, n Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, Channel(n.EmpresaID), data).Err()
}

func (b *RedisBus) Subscribe(ctx context.Context, empresaID string) (<-chan Notification, func(), error) {
	return b.hub.Subscribe(ctx, empresaID)
}

func (b *RedisBus) Close() error {
	b.cancel()
	b.wg.Wait()
	return b.hub.Close()
}
