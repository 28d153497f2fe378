package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	config := LoadConfig("testdata/config-example.toml")
	require.NotNil(t, config)
	assert.Equal(t, config, GetConfig())

	assert.Equal(t, "powsign-test", GetIdentifier())

	miner := GetMinerConfig()
	require.NotNil(t, miner)
	assert.Equal(t, "Sam", miner.Nickname)
	assert.Equal(t, "0000", miner.Prefix)
	assert.Equal(t, 4, miner.Workers)
	assert.Equal(t, Sha256Algorithm, miner.Algorithm) // defaulted

	rsaCfg := GetRSAConfig()
	require.NotNil(t, rsaCfg)
	assert.Equal(t, 1024, rsaCfg.KeyBits)
	assert.Equal(t, 20, rsaCfg.Rounds)

	assert.True(t, CacheEnabled())
	assert.Equal(t, "/tmp/powsign-cache", GetCacheConfig().DBDir)
}

func TestCheckConfig(t *testing.T) {
	newValid := func() *WorkbenchConfig {
		return &WorkbenchConfig{
			Identifier: "test",
			Miner:      &MinerConfig{Nickname: "Sam"},
			RSA:        &RSAConfig{},
		}
	}

	config := newValid()
	require.NoError(t, config.CheckConfig())
	// defaults filled in
	assert.Equal(t, DefaultPrefix, config.Miner.Prefix)
	assert.Equal(t, Sha256Algorithm, config.Miner.Algorithm)
	assert.Equal(t, DefaultKeyBits, config.RSA.KeyBits)
	assert.Equal(t, DefaultRounds, config.RSA.Rounds)

	config = newValid()
	config.Identifier = ""
	assert.Error(t, config.CheckConfig())

	config = newValid()
	config.Miner = nil
	assert.Error(t, config.CheckConfig())

	config = newValid()
	config.Miner.Nickname = ""
	assert.Error(t, config.CheckConfig())

	config = newValid()
	config.Miner.Prefix = "00FF"
	assert.Error(t, config.CheckConfig(), "uppercase hex prefix must be rejected")

	config = newValid()
	config.Miner.Prefix = "00gg"
	assert.Error(t, config.CheckConfig())

	config = newValid()
	config.Miner.Workers = -1
	assert.Error(t, config.CheckConfig())

	config = newValid()
	config.Miner.Algorithm = "md5"
	assert.Error(t, config.CheckConfig())

	config = newValid()
	config.Miner.Algorithm = Keccak256Algorithm
	assert.NoError(t, config.CheckConfig())

	config = newValid()
	config.RSA = nil
	assert.Error(t, config.CheckConfig())

	config = newValid()
	config.RSA.KeyBits = 15
	assert.Error(t, config.CheckConfig())

	config = newValid()
	config.RSA.KeyBits = 1025
	assert.Error(t, config.CheckConfig())

	config = newValid()
	config.RSA.Rounds = -2
	assert.Error(t, config.CheckConfig())

	config = newValid()
	config.Cache = &CacheConfig{Enable: true}
	assert.Error(t, config.CheckConfig(), "enabled cache requires DBDir")
}
