package properties

import (
	"net"
	"time"
)

type ApplicationConfigProperties struct {
	Profile   string `yaml:"profile"`
	LogLevel  string `yaml:"log-level"`
	LogFormat string `yaml:"log-format"`
}

type TransportConfigProperties struct {
	Network              string `yaml:"network"`
	Address              string `yaml:"address"`
	Port                 string `yaml:"port"`
	Timeout              uint64 `yaml:"timeout"`
	MaxConcurrentStreams uint32 `yaml:"max-concurrent-streams"`
	NumStreamWorkers     uint32 `yaml:"num-stream-workers"`
}

// ChainConfigProperties holds the static topology of this node. Empty
// addresses mean the node is the head (no prev) or the tail (no next).
type ChainConfigProperties struct {
	NextAddr         string `yaml:"next-addr"`
	PrevAddr         string `yaml:"prev-addr"`
	CallTimeout      uint64 `yaml:"call-timeout"`
	DialTimeout      uint64 `yaml:"dial-timeout"`
	KeepaliveTime    uint64 `yaml:"keepalive-time"`
	KeepaliveTimeout uint64 `yaml:"keepalive-timeout"`
}

type StorageConfigProperties struct {
	Dir              string `yaml:"dir"`
	NoSync           bool   `yaml:"no-sync"`
	CompactThreshold uint64 `yaml:"compact-threshold"`
}

type MetricsConfigProperties struct {
	Address string `yaml:"address"`
}

type Config struct {
	Application ApplicationConfigProperties `yaml:"app"`
	Transport   TransportConfigProperties   `yaml:"transport"`
	Chain       ChainConfigProperties       `yaml:"chain"`
	Storage     StorageConfigProperties     `yaml:"storage"`
	Metrics     MetricsConfigProperties     `yaml:"metrics"`
}

func (c *TransportConfigProperties) BindAddr() string {
	return net.JoinHostPort(c.Address, c.Port)
}

func (c *TransportConfigProperties) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

func (c *ChainConfigProperties) CallTimeoutDuration() time.Duration {
	return time.Duration(c.CallTimeout) * time.Millisecond
}

func (c *ChainConfigProperties) DialTimeoutDuration() time.Duration {
	return time.Duration(c.DialTimeout) * time.Millisecond
}

func (c *ChainConfigProperties) KeepaliveTimeDuration() time.Duration {
	return time.Duration(c.KeepaliveTime) * time.Millisecond
}

func (c *ChainConfigProperties) KeepaliveTimeoutDuration() time.Duration {
	return time.Duration(c.KeepaliveTimeout) * time.Millisecond
}
