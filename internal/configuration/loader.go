package configuration

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"chaindb/internal/configuration/properties"
	"chaindb/internal/configuration/util"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigDir = "internal/static"

	EnvConfigDir = "CHAINDB_CONFIG_DIR"
	EnvProfile   = "CHAINDB_PROFILE"

	dotEnvFile = ".env"
)

// Load reads .env (if present), then application.yml and the active profile
// overlay from CHAINDB_CONFIG_DIR or DefaultConfigDir.
func Load() (*properties.Config, error) {
	if err := util.LoadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	dir := DefaultConfigDir
	if d, ok := os.LookupEnv(EnvConfigDir); ok && d != "" {
		dir = d
	}
	return LoadFrom(dir)
}

func LoadFrom(dir string) (*properties.Config, error) {
	cfg, err := loadBaseConfig(dir)
	if err != nil {
		return nil, err
	}

	if p, ok := os.LookupEnv(EnvProfile); ok && p != "" {
		cfg.Application.Profile = p
	}

	if cfg.Application.Profile != "" {
		if err := loadProfileConfig(dir, cfg); err != nil {
			return nil, err
		}
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadBaseConfig(dir string) (*properties.Config, error) {
	baseConfig, err := util.LoadAndExpandYaml(dir, "application")
	if err != nil {
		slog.Error("Error loading base config", "Error", err.Error())
		return nil, err
	}

	cfg := properties.Config{}
	if err := yaml.Unmarshal([]byte(baseConfig), &cfg); err != nil {
		slog.Error("Error parsing base config", "Error", err.Error())
		return nil, fmt.Errorf("unmarshal base config: %w", err)
	}

	return &cfg, nil
}

func loadProfileConfig(dir string, cfg *properties.Config) error {
	profileConfig, err := util.LoadAndExpandYaml(dir, "application-"+cfg.Application.Profile)
	if err != nil {
		slog.Error("Error loading profile config", "Profile", cfg.Application.Profile, "Error", err.Error())
		return err
	}

	if err := yaml.Unmarshal([]byte(profileConfig), cfg); err != nil {
		slog.Error("Error parsing profile config", "Profile", cfg.Application.Profile, "Error", err.Error())
		return fmt.Errorf("unmarshal profile config: %w", err)
	}

	return nil
}

func applyDefaults(cfg *properties.Config) {
	if cfg.Application.LogLevel == "" {
		cfg.Application.LogLevel = "info"
	}
	if cfg.Application.LogFormat == "" {
		cfg.Application.LogFormat = "pretty"
	}
	if cfg.Transport.Network == "" {
		cfg.Transport.Network = "tcp"
	}
	if cfg.Transport.Timeout == 0 {
		slog.Warn("Timeout can't be less than 1 second. Setting transport timeout to 1 second.")
		cfg.Transport.Timeout = 1
	}
	if cfg.Transport.MaxConcurrentStreams == 0 {
		cfg.Transport.MaxConcurrentStreams = 100
	}
	if cfg.Chain.CallTimeout == 0 {
		cfg.Chain.CallTimeout = 2000
	}
	if cfg.Chain.DialTimeout == 0 {
		cfg.Chain.DialTimeout = 2000
	}
	if cfg.Chain.KeepaliveTime == 0 {
		cfg.Chain.KeepaliveTime = 30000
	}
	if cfg.Chain.KeepaliveTimeout == 0 {
		cfg.Chain.KeepaliveTimeout = 5000
	}
}

func Validate(cfg *properties.Config) error {
	var errs []error

	if cfg.Transport.Port == "" {
		errs = append(errs, errors.New("transport.port is required"))
	}
	if cfg.Storage.Dir == "" {
		errs = append(errs, errors.New("storage.dir is required"))
	}

	self := cfg.Transport.BindAddr()
	if cfg.Chain.NextAddr != "" && cfg.Chain.NextAddr == self {
		errs = append(errs, fmt.Errorf("chain.next-addr %s points at this node", cfg.Chain.NextAddr))
	}
	if cfg.Chain.PrevAddr != "" && cfg.Chain.PrevAddr == self {
		errs = append(errs, fmt.Errorf("chain.prev-addr %s points at this node", cfg.Chain.PrevAddr))
	}
	if cfg.Chain.NextAddr != "" && cfg.Chain.NextAddr == cfg.Chain.PrevAddr {
		errs = append(errs, fmt.Errorf("chain.next-addr and chain.prev-addr are both %s", cfg.Chain.NextAddr))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
