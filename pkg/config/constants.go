package config

const (
	// EnvPrefix namespaces every environment variable read by Load.
	EnvPrefix = "RESTOPOS"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)
