package stamp

import (
	"regexp"
	"strconv"
	"testing"
	"time"
)

var suffixPattern = regexp.MustCompile(`^[0-9A-Z]{9}$`)

func TestRandomSuffixShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		s := RandomSuffix()
		if !suffixPattern.MatchString(s) {
			t.Fatalf("suffix %q is not 9 uppercase base36 characters", s)
		}
		seen[s] = true
	}
	if len(seen) < 190 {
		t.Fatalf("suffixes repeat too often: %d distinct of 200", len(seen))
	}
}

func TestIDUsesMillisAndSuffix(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.UTC)
	s := NewWithSources(func() time.Time { return at }, func() string { return "ABCDEFGHI" })

	now := s.Now()
	if now.Nanosecond() != 123000000 {
		t.Fatalf("Now must truncate to milliseconds, got %v", now)
	}

	id := s.ID("EVID", now)
	want := "EVID-" + strconv.FormatInt(at.UnixMilli(), 10) + "-ABCDEFGHI"
	if id != want {
		t.Fatalf("id = %q, want %q", id, want)
	}

	if !regexp.MustCompile(`^TENDER-\d+-[0-9A-Z]{9}$`).MatchString(New().ID("TENDER", time.Now())) {
		t.Fatalf("default stamper produced a malformed id")
	}
}

func TestTimestamp(t *testing.T) {
	at := time.Date(2024, 3, 1, 7, 5, 9, 7000000, time.FixedZone("X", 3600))
	if got := Timestamp(at); got != "2024-03-01T06:05:09.007Z" {
		t.Fatalf("Timestamp = %q", got)
	}
}

func TestDigest(t *testing.T) {
	// SHA-256("abc")
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

	if got := Digest("abc"); got != want {
		t.Fatalf("Digest = %s", got)
	}
	if got := Digest("a", "b", "c"); got != want {
		t.Fatalf("Digest must hash the concatenation, got %s", got)
	}
}
