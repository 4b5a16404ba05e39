package credential

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Drivers
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Backends подключения, из которых выбирается хранилище.
// Заполняется только то, что нужно выбранному драйверу.
type Backends struct {
	FilePath    string
	DB          DBExecutor
	Redis       *redis.Client
	RedisPrefix string
}

// NewStore выбирает реализацию Store по имени драйвера
func NewStore(driver string, b Backends) (Store, error) {
	switch driver {
	case DriverFile, "":
		return NewFileStore(b.FilePath), nil
	case DriverPostgres:
		if b.DB == nil {
			return nil, fmt.Errorf("%w: postgres driver requires a database connection", ErrUnknownDriver)
		}
		return NewPostgresStore(b.DB), nil
	case DriverRedis:
		if b.Redis == nil {
			return nil, fmt.Errorf("%w: redis driver requires a redis client", ErrUnknownDriver)
		}
		return NewRedisStore(b.Redis, b.RedisPrefix), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
