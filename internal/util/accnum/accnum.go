// Package accnum generates account numbers of the form
// <3-letter type prefix><8 time-derived digits>-<4 random digits>,
// e.g. SAV72041598-3317.
package accnum

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

var prefixes = map[string]string{
	"SAVINGS": "SAV",
	"CURRENT": "CUR",
	"FIXED":   "FIX",
}

// Generate returns a fresh account number for the given account type.
// Uniqueness is probabilistic (time component plus random suffix); the
// accounts table carries a unique constraint as the hard guarantee.
func Generate(accountType string) string {
	prefix, ok := prefixes[accountType]
	if !ok {
		prefix = "ACC"
	}

	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}

	return fmt.Sprintf("%s%s-%04d", prefix, millis, 1000+rand.Intn(9000))
}
