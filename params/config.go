package params

import (
	"encoding/json"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/chankun4766151-cpu/Web3-Portfolio/common"
	"github.com/chankun4766151-cpu/Web3-Portfolio/log"
)

// default config items
const (
	DefaultPrefix  = "0000"
	DefaultKeyBits = 1024
	DefaultRounds  = 20

	// Sha256Algorithm is the default miner digest algorithm
	Sha256Algorithm = "sha256"
	// Keccak256Algorithm is the alternative miner digest algorithm
	Keccak256Algorithm = "keccak256"
)

var (
	workbenchConfig   *WorkbenchConfig
	loadConfigStarter sync.Once
)

// WorkbenchConfig config items (decode from toml file)
type WorkbenchConfig struct {
	Identifier string
	Miner      *MinerConfig
	RSA        *RSAConfig
	Cache      *CacheConfig `toml:",omitempty" json:",omitempty"`
}

// MinerConfig proof of work miner config
type MinerConfig struct {
	Nickname  string
	Prefix    string
	Workers   int    `toml:",omitempty" json:",omitempty"`
	Algorithm string `toml:",omitempty" json:",omitempty"`
}

// RSAConfig rsa key generation and signing config
type RSAConfig struct {
	KeyBits int
	Rounds  int
}

// CacheConfig mined solution cache config
type CacheConfig struct {
	Enable bool
	DBDir  string
}

// GetConfig get workbench config
func GetConfig() *WorkbenchConfig {
	return workbenchConfig
}

// SetConfig set workbench config
func SetConfig(config *WorkbenchConfig) {
	workbenchConfig = config
}

// GetMinerConfig get miner config
func GetMinerConfig() *MinerConfig {
	return GetConfig().Miner
}

// GetRSAConfig get rsa config
func GetRSAConfig() *RSAConfig {
	return GetConfig().RSA
}

// GetCacheConfig get solution cache config, may be nil
func GetCacheConfig() *CacheConfig {
	return GetConfig().Cache
}

// CacheEnabled whether the mined solution cache is on
func CacheEnabled() bool {
	return GetCacheConfig() != nil && GetCacheConfig().Enable
}

// GetIdentifier get identifier
func GetIdentifier() string {
	return GetConfig().Identifier
}

// LoadConfig load and check config only once
func LoadConfig(configFile string) *WorkbenchConfig {
	loadConfigStarter.Do(func() {
		SetConfig(loadConfigFile(configFile))
	})
	return workbenchConfig
}

// ReloadConfig reload config (used by the config file watcher)
func ReloadConfig(configFile string) {
	SetConfig(loadConfigFile(configFile))
}

func loadConfigFile(configFile string) *WorkbenchConfig {
	if configFile == "" {
		log.Fatalf("LoadConfig error: no config file specified")
	}
	if !common.FileExist(configFile) {
		log.Fatalf("LoadConfig error: config file %v not exist", configFile)
	}
	config := &WorkbenchConfig{}
	if _, err := toml.DecodeFile(configFile, &config); err != nil {
		log.Fatalf("LoadConfig error (toml DecodeFile): %v", err)
	}

	var bs []byte
	if log.JSONFormat {
		bs, _ = json.Marshal(config)
	} else {
		bs, _ = json.MarshalIndent(config, "", "  ")
	}
	log.Println("LoadConfig finished.", string(bs))

	if err := config.CheckConfig(); err != nil {
		log.Fatalf("Check config failed. %v", err)
	}
	return config
}
