package logging

import (
	"crypto/rand"
	"fmt"
	"time"
)

// GenerateSessionID returns a fresh identifier of the form
// YYYYMMDD_HHMMSS_xxxx, where xxxx is random hex. The timestamp keeps log
// directories sortable; the suffix disambiguates sessions started within
// the same second.
func GenerateSessionID() string {
	var suffix [2]byte
	_, _ = rand.Read(suffix[:])
	return fmt.Sprintf("%s_%02x%02x", time.Now().Format("20060102_150405"), suffix[0], suffix[1])
}

// ShortSessionID returns just the random suffix of a full session ID, for
// tagging every log line without the timestamp noise.
func ShortSessionID(id string) string {
	if len(id) < 4 {
		return id
	}
	return id[len(id)-4:]
}
