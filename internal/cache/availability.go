package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache de slots por dia. Leitura de disponibilidade tolera snapshot
// levemente defasado: quem decide de verdade é a transação de gravação,
// então um TTL curto basta.
const slotsTTL = 30 * time.Second

type AvailabilityCache struct {
	rdb *redis.Client
}

// New aceita client nil (cache desligado) para ambientes sem redis.
func New(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb}
}

func (c *AvailabilityCache) enabled() bool {
	return c != nil && c.rdb != nil
}

func slotsKey(salonID, masterID, serviceID uint, date string, stepMin int) string {
	return fmt.Sprintf("slots:%d:%d:%d:%s:%d", salonID, masterID, serviceID, date, stepMin)
}

func masterSetKey(salonID, masterID uint) string {
	return fmt.Sprintf("slots-keys:%d:%d", salonID, masterID)
}

func (c *AvailabilityCache) GetSlots(
	ctx context.Context,
	salonID, masterID, serviceID uint,
	date string,
	stepMin int,
) ([]string, bool) {

	if !c.enabled() {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotsKey(salonID, masterID, serviceID, date, stepMin)).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) SetSlots(
	ctx context.Context,
	salonID, masterID, serviceID uint,
	date string,
	stepMin int,
	slots []string,
) {

	if !c.enabled() {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	key := slotsKey(salonID, masterID, serviceID, date, stepMin)
	c.rdb.Set(ctx, key, raw, slotsTTL)
	// índice das chaves vivas do mestre, para invalidação pontual
	c.rdb.SAdd(ctx, masterSetKey(salonID, masterID), key)
	c.rdb.Expire(ctx, masterSetKey(salonID, masterID), slotsTTL)
}

// InvalidateMaster descarta os slots em cache do mestre após qualquer
// mutação de agenda (criação ou cancelamento).
func (c *AvailabilityCache) InvalidateMaster(ctx context.Context, salonID, masterID uint) {
	if !c.enabled() {
		return
	}

	setKey := masterSetKey(salonID, masterID)
	keys, err := c.rdb.SMembers(ctx, setKey).Result()
	if err == nil && len(keys) > 0 {
		c.rdb.Del(ctx, keys...)
	}
	c.rdb.Del(ctx, setKey)
}
