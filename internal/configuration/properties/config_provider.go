package properties

type ConfigProvider interface {
	GetApplication() *ApplicationConfigProperties
	GetTransport() *TransportConfigProperties
	GetChain() *ChainConfigProperties
	GetStorage() *StorageConfigProperties
	GetMetrics() *MetricsConfigProperties
}

type AppConfigProvider struct {
	config *Config
}

func NewProvider(cfg *Config) *AppConfigProvider {
	return &AppConfigProvider{config: cfg}
}

func (c *AppConfigProvider) GetApplication() *ApplicationConfigProperties {
	return &c.config.Application
}

func (c *AppConfigProvider) GetTransport() *TransportConfigProperties {
	return &c.config.Transport
}

func (c *AppConfigProvider) GetChain() *ChainConfigProperties {
	return &c.config.Chain
}

func (c *AppConfigProvider) GetStorage() *StorageConfigProperties {
	return &c.config.Storage
}

func (c *AppConfigProvider) GetMetrics() *MetricsConfigProperties {
	return &c.config.Metrics
}
