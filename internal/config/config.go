package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type PromptAssets struct {
	Bucket     string
	Prefix     string
	PresignTTL time.Duration
}

type Game struct {
	// Which room-store driver to wire: "redis", "postgres" or "memory".
	StoreDriver string

	// Size of the prompt-image pool the per-room prompt order is drawn from.
	PromptPoolSize int
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	Assets   PromptAssets
	Game     Game
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		Assets:   *newPromptAssets(),
		Game:     *newGame(),
	}

	log.Printf("%s backend config : %+v\n", logtag, cfg)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "picparty"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newPromptAssets() *PromptAssets {
	return &PromptAssets{
		Bucket:     getenv("PROMPT_BUCKET", "picparty-prompts"),
		Prefix:     getenv("PROMPT_PREFIX", "prompt/"),
		PresignTTL: getenvDuration("PROMPT_PRESIGN_TTL", 15*time.Minute),
	}
}

func newGame() *Game {
	return &Game{
		StoreDriver:    getenv("STORE_DRIVER", "redis"),
		PromptPoolSize: getenvInt("PROMPT_POOL_SIZE", 32),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getenvInt(key string, defaultValue int) int {
	val, err := strconv.Atoi(getenv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		log.Printf("%s %s is not an int. Using default value %d", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}

func getenvDuration(key string, defaultValue time.Duration) time.Duration {
	val, err := time.ParseDuration(getenv(key, defaultValue.String()))
	if err != nil {
		log.Printf("%s %s is not a duration. Using default value %s", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}
