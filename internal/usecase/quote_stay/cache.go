package quote_stay

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
)

const cacheKeyPrefix = "quote:"

// RedisCache хранит расчеты в JSON с TTL. Ошибки чтения и записи считаются промахом кэша.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache создает кэш; при ttl <= 0 кэш выключен
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*domain.PricingBreakdown, bool) {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return nil, false
	}
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var b domain.PricingBreakdown
	if err := json.Unmarshal([]byte(val), &b); err != nil {
		return nil, false
	}
	return &b, true
}

func (c *RedisCache) Set(ctx context.Context, key string, breakdown *domain.PricingBreakdown) {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return
	}
	data, err := json.Marshal(breakdown)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, data, c.ttl).Err()
}

// cacheKey ключ расчета по всему, от чего зависит цена: запрос, тарифы и правила номера, конфиг цен
func cacheKey(room *domain.Room, req *Request, tier, pricingFingerprint string) string {
	ages := make([]string, 0, len(req.Children))
	for _, c := range req.Children {
		ages = append(ages, fmt.Sprint(c.AgeAt(req.CheckIn)))
	}
	sort.Strings(ages)

	return fmt.Sprintf("%scfg=%s:room=%d:%s:in=%d:out=%d:a=%d:c=%s:pet=%t:park=%t:extra=%.2f:tier=%s",
		cacheKeyPrefix, pricingFingerprint, room.ID, roomFingerprint(room),
		req.CheckIn.Unix(), req.CheckOut.Unix(), req.Adults, strings.Join(ages, ","),
		req.HasPets, req.NeedsParking, req.AdditionalCharges, tier)
}

// roomFingerprint хеш ценовых параметров номера. У номеров из файла каталога нет
// времени обновления, поэтому хешируются сами тарифы.
func roomFingerprint(room *domain.Room) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%d", room.Type, room.UpdatedAt.Unix())

	periods := make([]string, 0, len(room.Rates))
	for p := range room.Rates {
		periods = append(periods, string(p))
	}
	sort.Strings(periods)
	for _, p := range periods {
		fmt.Fprintf(h, "|%s=%g", p, room.Rates[domain.SeasonalPeriod(p)])
	}

	if r := room.Rules; r != nil {
		fmt.Fprintf(h, "|min=%d|buf=%d", r.MinStayNights, r.BufferDays)
		if r.FixedStayRate != nil {
			fmt.Fprintf(h, "|fixed=%g", *r.FixedStayRate)
		}
		for _, s := range r.IncludedServices {
			fmt.Fprintf(h, "|inc=%s", s)
		}
	}
	return strconv.FormatUint(h.Sum64(), 36)
}
