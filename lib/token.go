package lib

import (
	"fmt"
	mathrand "math/rand"
	"time"
)

// GenerateLeadNumber generates a unique lead number in the format: MS-XXXXXX
// where XXXXXX is a random 6-character alphanumeric string
func GenerateLeadNumber() string {
	// Use a local rand.Source + rand.Rand for thread safety
	src := mathrand.NewSource(time.Now().UnixNano())
	r := mathrand.New(src)

	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 6

	randomPart := make([]byte, length)
	for i := range randomPart {
		randomPart[i] = chars[r.Intn(len(chars))]
	}

	return fmt.Sprintf("MS-%s", string(randomPart))
}
