// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port   string
	AppEnv string

	// Object storage (S3-compatible: MinIO locally, R2/S3 in production)
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool

	// PublicBase is the browser-accessible base URL manifest entries point
	// at, e.g. "https://images.example.com".
	PublicBase string
	// ManifestKey is the reserved key the catalog is persisted under. It is
	// never a valid upload, rename, or delete target.
	ManifestKey string
	// AllowedExtensions is the image extension whitelist, without dots.
	AllowedExtensions []string

	// Catalog metadata stamped into the manifest on every save.
	CatalogTitle       string
	CatalogDescription string

	// ListPageSize and ListMaxPages bound the full-store scan performed on
	// every catalog rebuild.
	ListPageSize int
	ListMaxPages int

	// ThumbCacheSize is the max number of rendered variants kept in the
	// in-process edge cache.
	ThumbCacheSize int
}

// Load reads configuration from a .env file (if present) and environment
// variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
		StorageBucket:    getEnv("STORAGE_BUCKET", "icons"),
		StorageUseSSL:    getEnv("STORAGE_USE_SSL", "false") == "true",

		PublicBase:        getEnv("PUBLIC_BASE_URL", "http://localhost:9000/icons"),
		ManifestKey:       getEnv("MANIFEST_KEY", "icons.json"),
		AllowedExtensions: splitList(getEnv("ALLOWED_EXTENSIONS", "png,jpg,jpeg,gif,webp,svg,ico,bmp")),

		CatalogTitle:       getEnv("CATALOG_TITLE", "Icon subscription"),
		CatalogDescription: getEnv("CATALOG_DESCRIPTION", "Icons collected for script subscriptions"),

		ListPageSize: getEnvInt("LIST_PAGE_SIZE", 1000),
		ListMaxPages: getEnvInt("LIST_MAX_PAGES", 100),

		ThumbCacheSize: getEnvInt("THUMB_CACHE_SIZE", 512),
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("config: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
