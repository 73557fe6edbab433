// Package base62 converts floating-point draws into Base62 strings for the
// URL shortener service.
package base62

import "math"

// Alphabet is the 62-character set used for encoding: digits first, then
// uppercase, then lowercase. Index order is part of the wire contract.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// maxEncodedLength is the longest possible output: 62^10 < MaxInt64 < 62^11,
// so a scaled draw never needs more than 11 digits.
const maxEncodedLength = 11

// Encode maps a float in [0, 1) to a Base62 string. The input is scaled by
// MaxInt64 and truncated toward zero; the resulting integer is written out
// most-significant digit first with no leading zeros. A truncated value of
// zero encodes as "0".
//
// The scaling is intentionally lossy: a float64 cannot hold every value near
// MaxInt64, so distinct inputs may collide after truncation. Products that
// reach 2^63 (the float rounding of MaxInt64, hit by inputs at or above 1.0)
// clamp to MaxInt64. Callers are expected to supply values in [0, 1); inputs
// outside that range get whatever the truncation yields.
//
// Encode is a pure function: no shared state, same input always yields the
// same output.
func Encode(x float64) string {
	v := scale(x)
	if v == 0 {
		return "0"
	}

	var buf [maxEncodedLength]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = Alphabet[v%62]
		v /= 62
	}
	return string(buf[i:])
}

// scale widens x into the signed 64-bit integer domain, truncating toward
// zero. float64(math.MaxInt64) rounds up to exactly 2^63, one past MaxInt64,
// so products at or above it are clamped rather than left to the
// platform-dependent overflow conversion.
func scale(x float64) int64 {
	f := x * float64(math.MaxInt64)
	if f >= float64(math.MaxInt64) {
		return math.MaxInt64
	}
	return int64(f)
}
