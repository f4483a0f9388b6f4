package resolver

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a stable hex fingerprint of the given config bytes.
func Fingerprint(data []byte) string {
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}
