package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath                   = "."
	defaultEventBuffer            = 64
	defaultAdminFreshness         = 30 * time.Second
	defaultPromotionFreshness     = 60 * time.Second
	defaultPromotionToastDuration = 8 * time.Second
	defaultIcon                   = "/images/logo.png"
	defaultChimePath              = "/assets/chime.wav"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Firebase configuration for the store, identity and messaging backends
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Collections names the store collections the watchers read and write
	Collections CollectionsConfig `json:"collections" yaml:"collections"`

	// Watchers configuration for the live order and announcement watchers
	Watchers WatchersConfig `json:"watchers" yaml:"watchers"`

	// Notification configuration for the delivery channels
	Notification NotificationConfig `json:"notification" yaml:"notification"`

	// Session configuration for page streams
	Session SessionConfig `json:"session" yaml:"session"`

	// Redis configuration for the device store; nil keeps device state in memory
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for foreground push delivery
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase project access
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Public web-push key handed to pages when they request a messaging token
	VapidKey string `json:"vapidKey" yaml:"vapidKey"`

	// Validate page-issued tokens with a dry-run send before persisting them
	ValidateTokens bool `json:"validateTokens" yaml:"validateTokens"`
}

// CollectionsConfig names the store collections
type CollectionsConfig struct {
	Orders        string `json:"orders" yaml:"orders"`
	Users         string `json:"users" yaml:"users"`
	Notifications string `json:"notifications" yaml:"notifications"`
}

// WatchersConfig defines the freshness windows of the "is this new?" checks.
// Events older than the window are treated as replayed history.
type WatchersConfig struct {
	AdminFreshness     time.Duration `json:"adminFreshness" yaml:"adminFreshness"`
	PromotionFreshness time.Duration `json:"promotionFreshness" yaml:"promotionFreshness"`
}

// NotificationConfig defines channel presentation defaults
type NotificationConfig struct {
	DefaultIcon            string        `json:"defaultIcon" yaml:"defaultIcon"`
	Vibrate                []int         `json:"vibrate" yaml:"vibrate"`
	PromotionToastDuration time.Duration `json:"promotionToastDuration" yaml:"promotionToastDuration"`
	ChimePath              string        `json:"chimePath" yaml:"chimePath"`
}

// SessionConfig defines page stream behaviour
type SessionConfig struct {
	// Number of page events buffered per session before sends fail
	EventBuffer int `json:"eventBuffer" yaml:"eventBuffer"`
}

// RedisConfig defines the device store connection
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

// PubSubConfig defines how foreground push payloads reach this process
type PubSubConfig struct {
	// Provider type: "local" accepts unauthenticated push requests, "google" also pulls from a subscription
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub subscription ID to pull from (for google provider)
	SubscriptionID string `json:"subscriptionId" yaml:"subscriptionId"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: FIREBASE_VAPIDKEY -> firebase.vapidKey (not firebase.vapidkey)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Collections.Orders == "" {
		cfg.Collections.Orders = "orders"
	}
	if cfg.Collections.Users == "" {
		cfg.Collections.Users = "users"
	}
	if cfg.Collections.Notifications == "" {
		cfg.Collections.Notifications = "notifications"
	}
	if cfg.Watchers.AdminFreshness <= 0 {
		cfg.Watchers.AdminFreshness = defaultAdminFreshness
	}
	if cfg.Watchers.PromotionFreshness <= 0 {
		cfg.Watchers.PromotionFreshness = defaultPromotionFreshness
	}
	if strings.TrimSpace(cfg.Notification.DefaultIcon) == "" {
		cfg.Notification.DefaultIcon = defaultIcon
	}
	if len(cfg.Notification.Vibrate) == 0 {
		cfg.Notification.Vibrate = []int{200, 100, 200}
	}
	if cfg.Notification.PromotionToastDuration <= 0 {
		cfg.Notification.PromotionToastDuration = defaultPromotionToastDuration
	}
	if cfg.Notification.ChimePath == "" {
		cfg.Notification.ChimePath = defaultChimePath
	}
	if cfg.Session.EventBuffer <= 0 {
		cfg.Session.EventBuffer = defaultEventBuffer
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
