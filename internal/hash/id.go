// Package hash computes the content-addressing digest blob.TextBlobSet uses
// to deduplicate identical strings before BOCU-1 encoding them.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 digest of content.
func Sum64(content string) uint64 {
	return xxhash.Sum64String(content)
}
