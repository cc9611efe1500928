package hashring

import (
	"crypto/md5"
	"encoding/binary"
)

// hashKey maps an identity string onto the 64-bit ring position: the first
// 8 bytes of the MD5 digest, read little-endian. This exact rule is shared
// with peer implementations; identically populated rings on different
// machines must place every key identically, so neither the digest bytes
// nor the byte order may change. MD5 is used for its distribution, not for
// cryptographic strength.
func hashKey(s string) uint64 {
	sum := md5.Sum([]byte(s))
	return binary.LittleEndian.Uint64(sum[:8])
}
