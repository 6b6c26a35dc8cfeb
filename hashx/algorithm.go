package hashx

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"errors"
	"fmt"
	"github.com/zeebo/xxh3"
	"hash"
	"hash/crc32"
	"strings"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
)

// Algorithm names a hash function, and creates fresh state for it.
type Algorithm interface {
	Name() string
	New() hash.Hash
}

type algorithm struct {
	name string
	fn   func() hash.Hash
}

func (a algorithm) Name() string {
	return a.name
}

func (a algorithm) New() hash.Hash {
	return a.fn()
}

// NewAlgorithm creates an [Algorithm] from a name and a constructor.
func NewAlgorithm(name string, fn func() hash.Hash) Algorithm {
	if fn == nil {
		panic("nil hash constructor")
	}
	return algorithm{name: name, fn: fn}
}

var (
	CRC32  = NewAlgorithm("crc32", func() hash.Hash { return crc32.NewIEEE() })
	SHA1   = NewAlgorithm("sha1", sha1.New)
	SHA256 = NewAlgorithm("sha256", sha256.New)
	MD5    = NewAlgorithm("md5", md5.New)
	XXH3   = NewAlgorithm("xxh3", func() hash.Hash { return xxh3.New() })
)

var builtin = []Algorithm{CRC32, SHA1, SHA256, MD5, XXH3}

// AlgorithmByName returns the built-in [Algorithm] with the given name, compared case-insensitive.
func AlgorithmByName(name string) (Algorithm, error) {
	name = strings.TrimSpace(name)
	for _, alg := range builtin {
		if strings.EqualFold(alg.Name(), name) {
			return alg, nil
		}
	}
	return nil, fmt.Errorf("%w: '%s'", ErrUnknownAlgorithm, name)
}
