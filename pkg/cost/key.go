package cost

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/cpslab-asu/staliro-go/pkg/core"
	"github.com/cpslab-asu/staliro-go/pkg/errors"
)

// evaluationKey derives a stable cache key from the configuration scope, a
// sample vector, and the simulation interval. The scope names the
// model+specification configuration, so a persistent cache shared across
// processes never serves a cost computed under a different configuration.
func evaluationKey(scope string, sample core.Sample, interval core.Interval) string {
	h := sha256.New()

	h.Write([]byte(scope))
	h.Write([]byte{0})

	var buf [8]byte
	writeFloat := func(v float64) {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}

	writeFloat(interval.Lower())
	writeFloat(interval.Upper())
	for i := 0; i < sample.Len(); i++ {
		writeFloat(sample.At(i))
	}

	return "eval:" + hex.EncodeToString(h.Sum(nil))
}

func encodeCost(cost float64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(cost))

	return buf
}

func decodeCost(value []byte) (float64, error) {
	if len(value) != 8 {
		return 0, errors.Newf(errors.InvalidInput, "cached cost must be 8 bytes, got %d", len(value))
	}

	return math.Float64frombits(binary.BigEndian.Uint64(value)), nil
}
