package config

import (
	"os"
	"strings"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
}

type Config struct {
	PostgresURI     string
	RedisURI        string
	FrontendURL     string
	ListenAddr      string
	Brands          []string
	IngestPrefix    string
	IngestPublicURL string
	R2              R2
	SecretKey       string
	CookieName      string
}

func LoadConfig() *Config {
	return &Config{
		PostgresURI:     getEnv("POSTGRES_URI", ""),
		RedisURI:        getEnv("REDIS_URI", ""),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:5173"),
		ListenAddr:      getEnv("LISTEN_ADDR", ":3000"),
		Brands:          strings.Split(getEnv("BRANDS", "npp,lumepaint"), ","),
		IngestPrefix:    getEnv("INGEST_PREFIX", "field-uploads"),
		IngestPublicURL: getEnv("INGEST_PUBLIC_URL", ""),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
		},
		SecretKey:  getEnv("SECRET_KEY", ""),
		CookieName: getEnv("COOKIE_NAME", "paintpros_brand"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
