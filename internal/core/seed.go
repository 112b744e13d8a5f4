package core

import "math/rand/v2"

const seedAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomSeed returns a random alphanumeric seed of the given length.
func RandomSeed(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = seedAlphabet[rand.IntN(len(seedAlphabet))]
	}
	return string(b)
}
