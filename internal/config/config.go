package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl      string
	RedisAddr  string
	JWTSecret  string
	ServerPort string
	Timezone   string

	Shop ShopConfig
}

// ShopConfig is the single-location shop schedule driving slot generation.
type ShopConfig struct {
	OpenTime    string // "HH:MM"
	CloseTime   string // "HH:MM"
	SlotMinutes int

	// 1=Monday..7=Sunday, same notation as barber working days.
	ClosedWeekdays []time.Weekday

	MaxBookingDaysAhead int
}

func Load() *Config {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	return &Config{
		DBUrl:      getEnv("DATABASE_URL", ""),
		RedisAddr:  getEnv("REDIS_ADDR", ""),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Timezone:   getEnv("TIMEZONE", "Europe/Madrid"),
		Shop: ShopConfig{
			OpenTime:            getEnv("SHOP_OPEN", "09:00"),
			CloseTime:           getEnv("SHOP_CLOSE", "18:00"),
			SlotMinutes:         getEnvInt("SLOT_MINUTES", 30),
			ClosedWeekdays:      parseClosedWeekdays(getEnv("CLOSED_WEEKDAYS", "7")),
			MaxBookingDaysAhead: getEnvInt("MAX_BOOKING_DAYS_AHEAD", 30),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func parseClosedWeekdays(spec string) []time.Weekday {
	var days []time.Weekday
	for _, part := range strings.Split(spec, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > 7 {
			continue
		}
		if n == 7 {
			days = append(days, time.Sunday)
		} else {
			days = append(days, time.Weekday(n))
		}
	}
	if len(days) == 0 {
		days = []time.Weekday{time.Sunday}
	}
	return days
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
