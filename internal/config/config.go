package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ugochukwu16henry/foundationprototype/internal/analysis/counter"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server    ServerConfig
	Chat      ChatConfig
	Consent   ConsentConfig
	Analytics AnalyticsConfig
	Stats     StatsConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	chat, err := loadChatConfig()
	if err != nil {
		return nil, err
	}

	consent, err := loadConsentConfig()
	if err != nil {
		return nil, err
	}

	analytics, err := loadAnalyticsConfig()
	if err != nil {
		return nil, err
	}

	stats, err := loadStatsConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Chat: chat, Consent: consent, Analytics: analytics, Stats: stats}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	shutdown, err := parseDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return ServerConfig{}, err
	}

	cfg := ServerConfig{
		AllowedOrigins:  parseListEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		ShutdownTimeout: shutdown,
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		cfg.Addr = port
		return cfg, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	cfg.Addr = ":" + port
	return cfg, nil
}

// ChatConfig 描述聊天组件配置。
type ChatConfig struct {
	RulesFile   string
	TypingDelay time.Duration
}

func loadChatConfig() (ChatConfig, error) {
	delay, err := parseDurationEnv("CHAT_TYPING_DELAY", time.Second)
	if err != nil {
		return ChatConfig{}, err
	}
	if delay < 0 {
		return ChatConfig{}, fmt.Errorf("invalid CHAT_TYPING_DELAY value %q: must not be negative", delay)
	}

	return ChatConfig{
		RulesFile:   strings.TrimSpace(os.Getenv("CHAT_RULES_FILE")),
		TypingDelay: delay,
	}, nil
}

// ConsentConfig 描述 cookie 同意记录配置。
type ConsentConfig struct {
	TTL         time.Duration
	BannerDelay time.Duration
}

func loadConsentConfig() (ConsentConfig, error) {
	ttl, err := parseDurationEnv("CONSENT_TTL", 365*24*time.Hour)
	if err != nil {
		return ConsentConfig{}, err
	}

	banner, err := parseDurationEnv("CONSENT_BANNER_DELAY", 2*time.Second)
	if err != nil {
		return ConsentConfig{}, err
	}

	return ConsentConfig{TTL: ttl, BannerDelay: banner}, nil
}

// AnalyticsConfig 描述事件上报配置。
type AnalyticsConfig struct {
	Enabled   bool
	QueueSize int
	Rate      float64
	Burst     int
}

func loadAnalyticsConfig() (AnalyticsConfig, error) {
	enabled, err := parseBoolEnv("ANALYTICS_ENABLED", true)
	if err != nil {
		return AnalyticsConfig{}, err
	}

	queueSize := 256
	if override, err := parseOptionalIntEnv("ANALYTICS_QUEUE_SIZE"); err != nil {
		return AnalyticsConfig{}, err
	} else if override != nil && *override > 0 {
		queueSize = *override
	}

	rate := 5.0
	if override, err := parseOptionalFloatEnv("ANALYTICS_RATE"); err != nil {
		return AnalyticsConfig{}, err
	} else if override != nil {
		rate = *override
	}

	burst := 10
	if override, err := parseOptionalIntEnv("ANALYTICS_BURST"); err != nil {
		return AnalyticsConfig{}, err
	} else if override != nil {
		if *override < 1 {
			burst = 1
		} else {
			burst = *override
		}
	}

	return AnalyticsConfig{
		Enabled:   enabled,
		QueueSize: queueSize,
		Rate:      rate,
		Burst:     burst,
	}, nil
}

// StatsConfig 描述计数动画配置。
type StatsConfig struct {
	Tick time.Duration
	// Overrides 按统计项名称覆盖展示值，例如 STATS="students=5000+,volunteers=850"。
	Overrides map[string]string
}

func loadStatsConfig() (StatsConfig, error) {
	tick, err := parseDurationEnv("STATS_TICK", 16*time.Millisecond)
	if err != nil {
		return StatsConfig{}, err
	}

	overrides := make(map[string]string)
	for _, entry := range parseListEnv("STATS", nil) {
		name, value, ok := strings.Cut(entry, "=")
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if !ok || name == "" {
			return StatsConfig{}, fmt.Errorf("invalid STATS entry %q: want name=value", entry)
		}
		if _, ok := counter.ParseTarget(value); !ok {
			return StatsConfig{}, fmt.Errorf("invalid STATS entry %q: value must start with a number", entry)
		}
		overrides[name] = value
	}

	return StatsConfig{Tick: tick, Overrides: overrides}, nil
}

func parseListEnv(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
