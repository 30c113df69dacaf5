package config

// EnvPrefix is empty because every field tag already carries the full CLUBHOUSE_ name.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv          = "CLUBHOUSE_APP_ENV"
	EnvPort            = "CLUBHOUSE_APP_PORT"
	EnvDBDSN           = "CLUBHOUSE_DB_DSN"
	EnvDBHost          = "CLUBHOUSE_DB_HOST"
	EnvDBUser          = "CLUBHOUSE_DB_USER"
	EnvDBName          = "CLUBHOUSE_DB_NAME"
	EnvRedisURL        = "CLUBHOUSE_REDIS_URL"
	EnvJWTSecret       = "CLUBHOUSE_JWT_SECRET"
	EnvJWTIssuer       = "CLUBHOUSE_JWT_ISSUER"
	EnvJWTExpiresIn    = "CLUBHOUSE_JWT_EXPIRES_IN"
	EnvUseSQLite       = "CLUBHOUSE_USE_SQLITE"
	EnvMembershipPrice = "CLUBHOUSE_MEMBERSHIP_PRICE"
	EnvCurrency        = "CLUBHOUSE_CURRENCY"
	EnvAssetsPublicURL = "CLUBHOUSE_ASSETS_PUBLIC_URL"
	EnvCORSOrigin      = "CLUBHOUSE_CORS_ORIGIN"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
