package worker

import (
	"encoding/json"
	"fmt"

	"github.com/chankun4766151-cpu/Web3-Portfolio/leveldb"
	"github.com/chankun4766151-cpu/Web3-Portfolio/log"
	"github.com/chankun4766151-cpu/Web3-Portfolio/params"
	"github.com/chankun4766151-cpu/Web3-Portfolio/pow"
)

var lvldbHandle *leveldb.Database

func getSolutionRecordKey(nickname, prefix, algorithm string) string {
	return fmt.Sprintf("pow-solution:%s:%s:%s", nickname, prefix, algorithm)
}

// OpenSolutionDatabase open the mined solution cache if it is configured.
func OpenSolutionDatabase() {
	if !params.CacheEnabled() {
		return
	}
	dbDir := params.GetCacheConfig().DBDir
	db, err := leveldb.New(dbDir, 16, 16, false)
	if err != nil {
		logWorkerFatal("cache", "open solution database failed", err, "dbDir", dbDir)
	}
	lvldbHandle = db
}

// CloseSolutionDatabase close the solution cache if it is open.
func CloseSolutionDatabase() {
	if lvldbHandle == nil {
		return
	}
	if err := lvldbHandle.Close(); err != nil {
		logWorkerError("cache", "close solution database failed", err)
	}
	lvldbHandle = nil
}

// AddSolutionRecord remember a mined solution
func AddSolutionRecord(nickname, prefix, algorithm string, solution *pow.Solution) error {
	if lvldbHandle == nil {
		return nil
	}
	key := []byte(getSolutionRecordKey(nickname, prefix, algorithm))
	value, err := json.Marshal(solution)
	if err != nil {
		return err
	}
	err = lvldbHandle.Put(key, value)
	if err != nil {
		log.Warn("add solution record failed", "key", string(key), "err", err)
	} else {
		log.Info("add solution record success", "key", string(key))
	}
	return err
}

// GetSolutionRecord get a previously mined solution, nil if unknown
func GetSolutionRecord(nickname, prefix, algorithm string) *pow.Solution {
	if lvldbHandle == nil {
		return nil
	}
	key := []byte(getSolutionRecordKey(nickname, prefix, algorithm))
	value, err := lvldbHandle.Get(key)
	if err != nil {
		if !leveldb.IsNotFoundErr(err) {
			log.Warn("get solution record failed", "key", string(key), "err", err)
		}
		return nil
	}
	solution := &pow.Solution{}
	if err = json.Unmarshal(value, solution); err != nil {
		log.Warn("decode solution record failed", "key", string(key), "err", err)
		return nil
	}
	return solution
}
