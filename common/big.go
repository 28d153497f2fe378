package common

import (
	"errors"
	"math"
	"math/big"
)

// Common big integers often used
var (
	Big0 = big.NewInt(0)
	Big1 = big.NewInt(1)
	Big2 = big.NewInt(2)
	Big3 = big.NewInt(3)
	Big4 = big.NewInt(4)

	BigMaxUint64 = new(big.Int).SetUint64(math.MaxUint64)
)

// GetBigIntFromStr parse string into big int, support decimal and 0x prefixed hex
func GetBigIntFromStr(str string) (*big.Int, error) {
	bi, ok := new(big.Int).SetString(str, 0)
	if !ok {
		return nil, errors.New("invalid big integer: " + str)
	}
	return bi, nil
}

// MarshalBigInt marshalls big int into text string for consistent encoding
func MarshalBigInt(i *big.Int) (string, error) {
	bz, err := i.MarshalText()
	if err != nil {
		return "", err
	}
	return string(bz), nil
}

// MustMarshalBigInt marshalls big int into text string for consistent encoding.
// It panics if an error is encountered.
func MustMarshalBigInt(i *big.Int) string {
	str, err := MarshalBigInt(i)
	if err != nil {
		panic(err)
	}
	return str
}

// UnmarshalBigInt unmarshalls string from *big.Int
func UnmarshalBigInt(s string) (*big.Int, error) {
	ret := new(big.Int)
	err := ret.UnmarshalText([]byte(s))
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// MustUnmarshalBigInt unmarshalls string from *big.Int.
// It panics if an error is encountered.
func MustUnmarshalBigInt(s string) *big.Int {
	ret, err := UnmarshalBigInt(s)
	if err != nil {
		panic(err)
	}
	return ret
}
