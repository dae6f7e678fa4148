package prover

import (
	"fmt"

	"github.com/coniks-sys/trieproof-go/application"
	"github.com/coniks-sys/trieproof-go/crypto/hashers/coniks"
	"github.com/coniks-sys/trieproof-go/utils"
)

// Storage backends.
const (
	LevelDB = "leveldb"
	Bolt    = "bolt"
	Memory  = "memory"
)

// StorageConfig selects where the trie's nodes are kept. Path is
// ignored by the memory backend.
type StorageConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path,omitempty"`
}

// Config contains the prover's configuration: the hashing strategy of
// the trie, its storage and the size of the decoded node cache.
type Config struct {
	*application.CommonConfig

	Hasher    string         `toml:"hasher"`
	Storage   *StorageConfig `toml:"storage"`
	CacheSize int            `toml:"cache_size"`
}

var _ application.AppConfig = (*Config)(nil)

// NewConfig initializes a new prover configuration at the given file
// path with the default hasher and a production logger.
func NewConfig(file, encoding string, storage *StorageConfig) *Config {
	return &Config{
		CommonConfig: application.NewCommonConfig(file, encoding, &application.LoggerConfig{
			Environment: "production",
		}),
		Hasher:    coniks.CONIKS_Hash_SHA512_256,
		Storage:   storage,
		CacheSize: 1024,
	}
}

// Load initializes a prover's configuration from the given file
// using the given encoding. Relative storage and log paths are resolved
// against the directory of file.
func (conf *Config) Load(file, encoding string) error {
	conf.CommonConfig = application.NewCommonConfig(file, encoding, nil)
	if err := conf.GetLoader().Decode(conf); err != nil {
		return err
	}
	if conf.Storage == nil {
		return fmt.Errorf("[prover] Missing storage section in %s", file)
	}
	switch conf.Storage.Backend {
	case LevelDB, Bolt:
		if conf.Storage.Path == "" {
			return fmt.Errorf("[prover] Backend %s needs a storage path", conf.Storage.Backend)
		}
		conf.Storage.Path = utils.ResolvePath(conf.Storage.Path, file)
	case Memory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, conf.Storage.Backend)
	}
	if conf.Logger != nil && conf.Logger.Path != "" {
		conf.Logger.Path = utils.ResolvePath(conf.Logger.Path, file)
	}
	return nil
}

// Save writes a prover's configuration.
func (conf *Config) Save() error {
	return conf.GetLoader().Encode(conf)
}

// GetPath returns the prover's configuration file path.
func (conf *Config) GetPath() string {
	return conf.Path
}
