// Package stamp generates the identifiers, timestamps and integrity digests
// attached to submissions and generated letters.
//
// Identifiers look like PREFIX-<unix millis>-<9 uppercase base36 chars>. They
// are unique with overwhelming probability but uniqueness is never checked:
// two calls in the same millisecond only differ by their random suffix.
package stamp

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// SuffixLength is the number of base36 characters after the timestamp.
	SuffixLength = 9

	// suffixSpace is 36^9, the number of distinct suffixes.
	suffixSpace = 101559956668416

	// isoLayout matches JavaScript's Date.prototype.toISOString output.
	isoLayout = "2006-01-02T15:04:05.000Z"
)

// Stamper hands out the current time and random suffixes. Both sources are
// swappable so tests can pin them.
type Stamper struct {
	now    func() time.Time
	suffix func() string
}

// New returns a Stamper backed by the wall clock and UUIDv4 randomness.
func New() *Stamper {
	return &Stamper{
		now:    time.Now,
		suffix: RandomSuffix,
	}
}

// NewWithSources returns a Stamper using the given clock and suffix source.
// A nil argument falls back to the default source.
func NewWithSources(now func() time.Time, suffix func() string) *Stamper {
	s := New()
	if now != nil {
		s.now = now
	}
	if suffix != nil {
		s.suffix = suffix
	}
	return s
}

// Now returns the current time in UTC, truncated to milliseconds so the id
// and the ISO timestamp derived from the same instant agree.
func (s *Stamper) Now() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// ID builds PREFIX-<unix millis of at>-<random suffix>.
func (s *Stamper) ID(prefix string, at time.Time) string {
	return prefix + "-" + strconv.FormatInt(at.UnixMilli(), 10) + "-" + s.suffix()
}

// RandomSuffix returns SuffixLength uppercase base36 characters drawn from the
// random half of a version 4 UUID.
func RandomSuffix() string {
	u := uuid.New()

	// Bytes 8..15 carry 62 random bits (only the variant bits are fixed).
	n := binary.BigEndian.Uint64(u[8:]) % suffixSpace

	s := strings.ToUpper(strconv.FormatUint(n, 36))
	if len(s) < SuffixLength {
		s = strings.Repeat("0", SuffixLength-len(s)) + s
	}
	return s
}

// Timestamp formats t as an ISO-8601 UTC timestamp with millisecond
// precision, e.g. 2024-03-01T12:00:00.000Z.
func Timestamp(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// Digest returns the hex encoded SHA-256 of the concatenated parts.
func Digest(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
