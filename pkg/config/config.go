package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Payments      PaymentsConfig
	Assets        AssetsConfig
	CORS          CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(cfg.FeatureFlags.UseSQLite); err != nil {
		return nil, err
	}
	if cfg.Payments.MembershipPrice < 0 {
		return nil, fmt.Errorf("%s must not be negative", EnvMembershipPrice)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CLUBHOUSE_APP_ENV" required:"true"`
	Port         string `envconfig:"CLUBHOUSE_APP_PORT" default:"4000"`
	LogLevel     string `envconfig:"CLUBHOUSE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CLUBHOUSE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN        string `envconfig:"CLUBHOUSE_DB_DSN"`
	SQLitePath string `envconfig:"CLUBHOUSE_DB_SQLITE_PATH" default:"clubhouse.db"`

	LegacyHost     string `envconfig:"CLUBHOUSE_DB_HOST"`
	LegacyPort     int    `envconfig:"CLUBHOUSE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CLUBHOUSE_DB_USER"`
	LegacyPassword string `envconfig:"CLUBHOUSE_DB_PASSWORD"`
	LegacyName     string `envconfig:"CLUBHOUSE_DB_NAME"`
	LegacySSLMode  string `envconfig:"CLUBHOUSE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CLUBHOUSE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CLUBHOUSE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CLUBHOUSE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CLUBHOUSE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CLUBHOUSE_REDIS_URL"`
	Address      string        `envconfig:"CLUBHOUSE_REDIS_ADDR"`
	Password     string        `envconfig:"CLUBHOUSE_REDIS_PASSWORD"`
	DB           int           `envconfig:"CLUBHOUSE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CLUBHOUSE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CLUBHOUSE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CLUBHOUSE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CLUBHOUSE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CLUBHOUSE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint is configured. Idempotent replay and
// auth throttling are skipped without one.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type JWTConfig struct {
	Secret    string        `envconfig:"CLUBHOUSE_JWT_SECRET" required:"true"`
	Issuer    string        `envconfig:"CLUBHOUSE_JWT_ISSUER" default:"clubhouse"`
	ExpiresIn time.Duration `envconfig:"CLUBHOUSE_JWT_EXPIRES_IN" default:"168h"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"CLUBHOUSE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"CLUBHOUSE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"CLUBHOUSE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"CLUBHOUSE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"CLUBHOUSE_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"CLUBHOUSE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"CLUBHOUSE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"CLUBHOUSE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"CLUBHOUSE_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"CLUBHOUSE_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"CLUBHOUSE_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"CLUBHOUSE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"CLUBHOUSE_AUTO_MIGRATE" default:"false"`
}

type PaymentsConfig struct {
	MembershipPrice int64  `envconfig:"CLUBHOUSE_MEMBERSHIP_PRICE" default:"500"`
	Currency        string `envconfig:"CLUBHOUSE_CURRENCY" default:"KES"`
	QRWidth         int    `envconfig:"CLUBHOUSE_TICKET_QR_WIDTH" default:"320"`
	QRMargin        int    `envconfig:"CLUBHOUSE_TICKET_QR_MARGIN" default:"1"`
}

type AssetsConfig struct {
	PublicURL string `envconfig:"CLUBHOUSE_ASSETS_PUBLIC_URL"`
}

type CORSConfig struct {
	Origins string `envconfig:"CLUBHOUSE_CORS_ORIGIN" default:"http://localhost:3000"`
}

// AllowedOrigins splits the comma separated origin list.
func (c CORSConfig) AllowedOrigins() []string {
	out := []string{}
	for _, origin := range strings.Split(c.Origins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (db *DBConfig) ensureDSN(useSQLite bool) error {
	if db.DSN != "" || useSQLite {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
