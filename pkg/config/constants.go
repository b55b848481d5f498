package config

const EnvPrefix = "MODASTORE"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv     = "MODASTORE_APP_ENV"
	EnvPort       = "MODASTORE_APP_PORT"
	EnvDBDSN      = "MODASTORE_DB_DSN"
	EnvDBHost     = "MODASTORE_DB_HOST"
	EnvDBUser     = "MODASTORE_DB_USER"
	EnvDBName     = "MODASTORE_DB_NAME"
	EnvJWTSecret  = "MODASTORE_JWT_SECRET"
	EnvJWTIssuer  = "MODASTORE_JWT_ISSUER"
	EnvJWTExpMins = "MODASTORE_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
