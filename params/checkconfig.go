package params

import (
	"errors"

	"github.com/chankun4766151-cpu/Web3-Portfolio/common"
)

// CheckConfig check config and fill in defaults
func (c *WorkbenchConfig) CheckConfig() (err error) {
	if c.Identifier == "" {
		return errors.New("must config non empty 'Identifier'")
	}
	if c.Miner == nil {
		return errors.New("must config 'Miner'")
	}
	if err = c.Miner.CheckConfig(); err != nil {
		return err
	}
	if c.RSA == nil {
		return errors.New("must config 'RSA'")
	}
	if err = c.RSA.CheckConfig(); err != nil {
		return err
	}
	if c.Cache != nil {
		if err = c.Cache.CheckConfig(); err != nil {
			return err
		}
	}
	return nil
}

// CheckConfig check miner config
func (c *MinerConfig) CheckConfig() error {
	if c.Nickname == "" {
		return errors.New("must config non empty 'Miner.Nickname'")
	}
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if !common.IsLowerHex(c.Prefix) {
		return errors.New("'Miner.Prefix' is not lowercase hex")
	}
	if c.Workers < 0 {
		return errors.New("wrong negative 'Miner.Workers'")
	}
	switch c.Algorithm {
	case "":
		c.Algorithm = Sha256Algorithm
	case Sha256Algorithm, Keccak256Algorithm:
	default:
		return errors.New("unknown 'Miner.Algorithm' " + c.Algorithm)
	}
	return nil
}

// CheckConfig check rsa config
func (c *RSAConfig) CheckConfig() error {
	if c.KeyBits == 0 {
		c.KeyBits = DefaultKeyBits
	}
	if c.KeyBits < 16 || c.KeyBits%2 != 0 {
		return errors.New("wrong 'RSA.KeyBits', must be an even number >= 16")
	}
	if c.Rounds == 0 {
		c.Rounds = DefaultRounds
	}
	if c.Rounds < 1 {
		return errors.New("wrong 'RSA.Rounds', must be >= 1")
	}
	return nil
}

// CheckConfig check solution cache config
func (c *CacheConfig) CheckConfig() error {
	if c.Enable && c.DBDir == "" {
		return errors.New("must config 'Cache.DBDir' when cache is enabled")
	}
	return nil
}
