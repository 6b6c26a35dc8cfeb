package hashx

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"
)

// BlockSize is the number of bytes read from input at a time.
const BlockSize = 64 * 1024

var (
	ErrNoResult = errors.New("no hash result")
)

// Calculator feeds a single pass over input through every registered [Algorithm].
type Calculator struct {
	algorithms []Algorithm
	results    map[string]hash.Hash
}

func NewCalculator(algorithms ...Algorithm) *Calculator {
	c := &Calculator{}
	c.Register(algorithms...)
	return c
}

// Register adds algorithms to the Calculator.
// An algorithm with the same name as one already registered replaces it.
func (c *Calculator) Register(algorithms ...Algorithm) {
	for _, alg := range algorithms {
		if alg == nil {
			continue
		}
		replaced := false
		for i, existing := range c.algorithms {
			if existing.Name() == alg.Name() {
				c.algorithms[i] = alg
				replaced = true
				break
			}
		}
		if !replaced {
			c.algorithms = append(c.algorithms, alg)
		}
	}
}

// Names returns the registered algorithm names in registration order.
func (c *Calculator) Names() []string {
	names := make([]string, len(c.algorithms))
	for i, alg := range c.algorithms {
		names[i] = alg.Name()
	}
	return names
}

// Calculate reads r to the end in blocks of [BlockSize], writing each block to every registered algorithm.
// Results from a previous calculation are discarded.
// The context is checked between blocks.
// Calculate does nothing if no algorithms are registered.
func (c *Calculator) Calculate(ctx context.Context, r io.Reader) error {
	if len(c.algorithms) == 0 {
		return nil
	}
	c.results = nil
	states := make(map[string]hash.Hash, len(c.algorithms))
	for _, alg := range c.algorithms {
		states[alg.Name()] = alg.New()
	}
	buf := make([]byte, BlockSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := r.Read(buf)
		if n > 0 {
			for _, state := range states {
				_, _ = state.Write(buf[:n])
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}
	c.results = states
	return nil
}

// CalculateFile is like Calculate, reading from the file at path.
func (c *Calculator) CalculateFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return c.Calculate(ctx, f)
}

// Result returns the upper case hex result of the named algorithm.
// CRC-style 32 and 64 bit sums are formatted as fixed width numbers, and other hashes as their digest bytes.
// An error wrapping [ErrNoResult] is returned if nothing has been calculated for name.
func (c *Calculator) Result(name string) (string, error) {
	state, ok := c.results[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoResult, name)
	}
	switch sum := state.(type) {
	case hash.Hash32:
		return fmt.Sprintf("%08X", sum.Sum32()), nil
	case interface{ Sum64() uint64 }:
		return fmt.Sprintf("%016X", sum.Sum64()), nil
	default:
		return strings.ToUpper(hex.EncodeToString(state.Sum(nil))), nil
	}
}
