package repository

// CacheRepository stores encoded comparison results under opaque keys.
// A miss and a read failure look the same to callers; a write failure is
// returned so it can be logged.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

var (
	_ CacheRepository = (*MemoryCache)(nil)
	_ CacheRepository = (*RedisCache)(nil)
)
