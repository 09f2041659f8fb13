// Package config loads the campus navigator settings from an optional YAML
// file and CAMPUS_* environment variables.
package config

import (
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	EnvPrefix   = "CAMPUS_"
	DefaultFile = "config.yaml"
)

type Config struct {
	Map    Map    `json:"map" yaml:"map"`
	Server Server `json:"server" yaml:"server"`
	Log    Log    `json:"log" yaml:"log"`
}

type Map struct {
	File string `json:"file" yaml:"file" validate:"required"`
	// MaxSettled bounds the number of vertices a single search may settle,
	// 0 means unbounded.
	MaxSettled int `json:"maxSettled" yaml:"maxSettled" validate:"gte=0"`
}

type Server struct {
	Addr           string        `json:"addr" yaml:"addr" validate:"required"`
	ReadTimeout    time.Duration `json:"readTimeout" yaml:"readTimeout" validate:"gt=0"`
	WriteTimeout   time.Duration `json:"writeTimeout" yaml:"writeTimeout" validate:"gt=0"`
	RouteCacheSize int           `json:"routeCacheSize" yaml:"routeCacheSize" validate:"gte=0"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

func defaults() map[string]any {
	return map[string]any{
		"map": map[string]any{
			"file":       "map.osm",
			"maxSettled": 0,
		},
		"server": map[string]any{
			"addr":           ":8080",
			"readTimeout":    5 * time.Second,
			"writeTimeout":   10 * time.Second,
			"routeCacheSize": 1024,
		},
		"log": map[string]any{
			"level":  "info",
			"pretty": false,
		},
	}
}

// defaultsProvider feeds the built-in defaults into koanf before any file or
// environment layer.
type defaultsProvider struct{}

func (defaultsProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("defaults provider does not support ReadBytes")
}

func (defaultsProvider) Read() (map[string]any, error) {
	return defaults(), nil
}

// Load builds the configuration from defaults, the YAML file at path and the
// environment, in increasing priority. An empty path looks for config.yaml in
// the working directory and tolerates its absence; an explicit path must
// exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(defaultsProvider{}, nil); err != nil {
		return nil, errors.Wrap(err, "load defaults failed")
	}

	configFile := path
	if configFile == "" {
		configFile = DefaultFile
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config %s failed", configFile)
		}
	} else if path != "" {
		return nil, errors.Wrapf(err, "config file %s", path)
	}

	existing := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			// CAMPUS_SERVER_ROUTECACHESIZE -> server.routeCacheSize
			return canonicalizeEnvKey(strings.TrimPrefix(key, EnvPrefix), existing), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(Config)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config failed")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
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
