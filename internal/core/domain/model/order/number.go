package order

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const numberPrefix = "ORD"

const numberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderNumber generates a business-facing order number of the form
// "ORD<unix millis><9 random base36 chars>". The millisecond timestamp keeps
// numbers roughly sortable by creation time; the random suffix makes
// collisions within the same millisecond practically impossible.
func NewOrderNumber() string {
	var suffix strings.Builder
	for range 9 {
		suffix.WriteByte(numberAlphabet[rand.IntN(len(numberAlphabet))])
	}
	return fmt.Sprintf("%s%d%s", numberPrefix, time.Now().UnixMilli(), suffix.String())
}
