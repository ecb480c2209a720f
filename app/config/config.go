package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	AppConfigFileName = "app"
	AppConfigFileType = "toml"

	DefaultLogLevel = "main:info,state:info,*:error"
)

type UAChainContext struct {
	Config *UAChainConfig
	Logger log.Logger
}

func NewDefaultContext() *UAChainContext {
	return &UAChainContext{DefaultUAChainConfig(), log.NewTMLogger(log.NewSyncWriter(os.Stdout))}
}

type UAChainConfig struct {
	HomeDir   string `mapstructure:"home"`
	DBBackend string `mapstructure:"db_backend"`

	Log         *LogConfig         `mapstructure:"log"`
	Governance  *GovernanceConfig  `mapstructure:"governance"`
	Publication *PublicationConfig `mapstructure:"publication"`
	API         *APIConfig         `mapstructure:"api"`
}

type LogConfig struct {
	Level        string `mapstructure:"level"`
	LogToConsole bool   `mapstructure:"logToConsole"`
	LogFilePath  string `mapstructure:"logFilePath"`
	LogMaxSize   int    `mapstructure:"logMaxSize"`
	LogMaxAge    int    `mapstructure:"logMaxAge"`
}

type GovernanceConfig struct {
	DefaultVotingPeriodDays uint8 `mapstructure:"defaultVotingPeriodDays"`
}

type PublicationConfig struct {
	PublishLedgerEvents bool   `mapstructure:"publishLedgerEvents"`
	LedgerEventsTopic   string `mapstructure:"ledgerEventsTopic"`
	LedgerEventsKafka   string `mapstructure:"ledgerEventsKafka"`
	KafkaVersion        string `mapstructure:"kafkaVersion"`

	PublishLocal bool `mapstructure:"publishLocal"`
	LocalMaxSize int  `mapstructure:"localMaxSize"`
	LocalMaxAge  int  `mapstructure:"localMaxAge"`

	PublicationChannelSize int `mapstructure:"publicationChannelSize"`
	MaxPublishRetries      int `mapstructure:"maxPublishRetries"`
}

func (pubCfg PublicationConfig) ShouldPublishAny() bool {
	return pubCfg.PublishLedgerEvents || pubCfg.PublishLocal
}

type APIConfig struct {
	ListenAddr      string `mapstructure:"listenAddr"`
	CacheSize       int    `mapstructure:"cacheSize"`
	RequestsPerSec  int    `mapstructure:"requestsPerSec"`
	MaxRequestBytes int64  `mapstructure:"maxRequestBytes"`
}

func DefaultUAChainConfig() *UAChainConfig {
	return &UAChainConfig{
		DBBackend:   "goleveldb",
		Log:         defaultLogConfig(),
		Governance:  defaultGovernanceConfig(),
		Publication: defaultPublicationConfig(),
		API:         defaultAPIConfig(),
	}
}

func defaultLogConfig() *LogConfig {
	return &LogConfig{
		Level:        DefaultLogLevel,
		LogToConsole: true,
		LogFilePath:  "uachaind.log",
		LogMaxSize:   100,
		LogMaxAge:    7,
	}
}

func defaultGovernanceConfig() *GovernanceConfig {
	return &GovernanceConfig{DefaultVotingPeriodDays: 7}
}

func defaultPublicationConfig() *PublicationConfig {
	return &PublicationConfig{
		PublishLedgerEvents:    false,
		LedgerEventsTopic:      "ledger-events",
		LedgerEventsKafka:      "127.0.0.1:9092",
		KafkaVersion:           "2.1.0",
		PublishLocal:           false,
		LocalMaxSize:           1024,
		LocalMaxAge:            7,
		PublicationChannelSize: 10000,
		MaxPublishRetries:      10,
	}
}

func defaultAPIConfig() *APIConfig {
	return &APIConfig{
		ListenAddr:      "tcp://127.0.0.1:8080",
		CacheSize:       1024,
		RequestsPerSec:  100,
		MaxRequestBytes: 1024 * 1024,
	}
}

// ConfigDir is where app.toml lives under home.
func ConfigDir(home string) string {
	return filepath.Join(home, "config")
}

// DataDir is where the ledger database and local publication files live under home.
func DataDir(home string) string {
	return filepath.Join(home, "data")
}

// ParseConfig reads $HOME/config/app.toml, if any, over the defaults.
func (context *UAChainContext) ParseConfig(v *viper.Viper, home string) (*UAChainConfig, error) {
	v.SetConfigName(AppConfigFileName)
	v.SetConfigType(AppConfigFileType)
	v.AddConfigPath(ConfigDir(home))
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "failed to read app config")
		}
	}
	if err := v.Unmarshal(context.Config); err != nil {
		return nil, errors.Wrap(err, "failed to parse app config")
	}
	context.Config.HomeDir = home
	return context.Config, nil
}

// WriteConfigFile writes cfg as $HOME/config/app.toml.
func WriteConfigFile(home string, cfg *UAChainConfig) (string, error) {
	if err := os.MkdirAll(ConfigDir(home), 0700); err != nil {
		return "", errors.Wrap(err, "failed to create config dir")
	}
	v := viper.New()
	v.SetConfigType(AppConfigFileType)
	for key, value := range cfg.settings() {
		v.Set(key, value)
	}
	path := filepath.Join(ConfigDir(home), AppConfigFileName+"."+AppConfigFileType)
	if err := v.WriteConfigAs(path); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	return path, nil
}

func (cfg *UAChainConfig) settings() map[string]interface{} {
	return map[string]interface{}{
		"db_backend": cfg.DBBackend,

		"log.level":        cfg.Log.Level,
		"log.logToConsole": cfg.Log.LogToConsole,
		"log.logFilePath":  cfg.Log.LogFilePath,
		"log.logMaxSize":   cfg.Log.LogMaxSize,
		"log.logMaxAge":    cfg.Log.LogMaxAge,

		"governance.defaultVotingPeriodDays": int(cfg.Governance.DefaultVotingPeriodDays),

		"publication.publishLedgerEvents":    cfg.Publication.PublishLedgerEvents,
		"publication.ledgerEventsTopic":      cfg.Publication.LedgerEventsTopic,
		"publication.ledgerEventsKafka":      cfg.Publication.LedgerEventsKafka,
		"publication.kafkaVersion":           cfg.Publication.KafkaVersion,
		"publication.publishLocal":           cfg.Publication.PublishLocal,
		"publication.localMaxSize":           cfg.Publication.LocalMaxSize,
		"publication.localMaxAge":            cfg.Publication.LocalMaxAge,
		"publication.publicationChannelSize": cfg.Publication.PublicationChannelSize,
		"publication.maxPublishRetries":      cfg.Publication.MaxPublishRetries,

		"api.listenAddr":      cfg.API.ListenAddr,
		"api.cacheSize":       cfg.API.CacheSize,
		"api.requestsPerSec":  cfg.API.RequestsPerSec,
		"api.maxRequestBytes": cfg.API.MaxRequestBytes,
	}
}
