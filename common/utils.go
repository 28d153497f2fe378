package common

import (
	"os"
	"strconv"
	"time"
)

// FileExist checks if a file exists at filePath.
func FileExist(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}

// IsLowerHex checks s contains only lowercase hex characters.
func IsLowerHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}

// Now returns the current unix timestamp in seconds
func Now() int64 {
	return time.Now().Unix()
}

// NowStr returns the current unix timestamp in seconds of string format
func NowStr() string {
	return strconv.FormatInt(time.Now().Unix(), 10)
}

// NowMilli returns the current unix timestamp in milli seconds
func NowMilli() int64 {
	return time.Now().UnixNano() / 1e6
}

// NowMilliStr returns the current unix timestamp in milli seconds of string format
func NowMilliStr() string {
	return strconv.FormatInt(time.Now().UnixNano()/1e6, 10)
}
