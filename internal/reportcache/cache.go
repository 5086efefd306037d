package reportcache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/dgraph-io/ristretto"

	"example.com/finance-advisor/backend/internal/advisor"
	"example.com/finance-advisor/backend/internal/config"
)

// Cache хранит готовые отчеты по хэшу содержимого профиля.
type Cache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// New создает кэш отчетов с TTL и лимитом записей из конфигурации.
func New(cfg config.CacheConfig) (*Cache, error) {
	inner, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(cfg.MaxEntries) * 10,
		MaxCost:     int64(cfg.MaxEntries),
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &Cache{cache: inner, ttl: cfg.TTL}, nil
}

// Key возвращает ключ кэша по каноническому JSON профиля.
func Key(profileJSON []byte) string {
	sum := sha256.Sum256(profileJSON)
	return hex.EncodeToString(sum[:])
}

// Get возвращает отчет из кэша, если он там есть.
func (c *Cache) Get(key string) (*advisor.Report, bool) {
	if c == nil {
		return nil, false
	}

	value, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}

	report, ok := value.(*advisor.Report)
	return report, ok
}

// Set кладет отчет в кэш со стоимостью одной записи.
func (c *Cache) Set(key string, report *advisor.Report) {
	if c == nil {
		return
	}

	c.cache.SetWithTTL(key, report, 1, c.ttl)
}

// Wait дожидается применения отложенных записей.
func (c *Cache) Wait() {
	if c != nil {
		c.cache.Wait()
	}
}

// Close освобождает ресурсы кэша.
func (c *Cache) Close() {
	if c != nil {
		c.cache.Close()
	}
}
