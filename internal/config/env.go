package config

import (
	"os"
	"strings"
)

type StorageEnv struct {
	Provider string
	ID       string
	Secret   string
	Region   string
	Bucket   string
	Endpoint string
}

type Env struct {
	AppAddr     string
	GinMode     string
	TokenSecret string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	Storage StorageEnv
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func LoadEnv() Env {
	return Env{
		AppAddr:     getenv("APP_ADDR", ":3002"),
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		TokenSecret: getenv("TOKEN_SECRET", "super-secret-key-change-me"),

		DBUser: getenv("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: getenv("DB_HOST", "127.0.0.1:3306"),
		DBName: getenv("DB_NAME", "shop_app"),

		Storage: StorageEnv{
			// "filesystem" keeps local dev working without cloud credentials.
			Provider: getenv("STORAGE_PROVIDER", "filesystem"),
			ID:       os.Getenv("STORAGE_ID"),
			Secret:   os.Getenv("STORAGE_SECRET"),
			Region:   getenv("STORAGE_REGION", "us-east-1"),
			Bucket:   getenv("STORAGE_BUCKET", "./uploads"),
			Endpoint: os.Getenv("STORAGE_ENDPOINT"),
		},
	}
}
