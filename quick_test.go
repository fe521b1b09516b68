package numparse

import (
	"strconv"
	"testing"
	"testing/quick"
)

const digitAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// formatInt renders v in the given base using the parse alphabet. The
// library has no formatting direction, so the tests carry their own.
func formatInt(v int64, base int) string {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	s := formatUint(u, base)
	if v < 0 {
		return "-" + s
	}
	return s
}

func formatUint(u uint64, base int) string {
	if u == 0 {
		return "0"
	}
	var buf [64]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = digitAlphabet[u%uint64(base)]
		u /= uint64(base)
	}
	return string(buf[i:])
}

func TestQuickRoundTripInt64(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(v int64, b uint8) bool {
		base := minBase + int(b)%(maxBase-minBase+1)
		got, err := IntBase[int64](formatInt(v, base), base)
		return err == nil && got == v
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickRoundTripUint64(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(v uint64, b uint8) bool {
		base := minBase + int(b)%(maxBase-minBase+1)
		got, err := IntBase[uint64](formatUint(v, base), base)
		return err == nil && got == v
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickRoundTripNarrow(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(v int16, b uint8) bool {
		base := minBase + int(b)%(maxBase-minBase+1)
		got, err := IntBase[int16](formatInt(int64(v), base), base)
		return err == nil && got == v
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickMatchesStrconv(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(v int64, b uint8) bool {
		base := 2 + int(b)%35
		s := strconv.FormatInt(v, base)
		want, err := strconv.ParseInt(s, base, 64)
		if err != nil {
			return false
		}
		got, perr := IntBase[int64](s, base)
		return perr == nil && got == want
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickStrictFallibleAgree(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(s string, b uint8) bool {
		base := minBase + int(b)%(maxBase-minBase+1)
		strict, err := IntBase[int32](s, base)
		fallible, ok := TryIntBase[int32](s, base)
		if (err == nil) != ok {
			return false
		}
		return !ok || strict == fallible
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickWhitespacePadding(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(v int32) bool {
		plain := formatInt(int64(v), 10)
		padded := " \t" + plain + "\n "
		a, errA := IntBase[int32](plain, 10)
		b, errB := IntBase[int32](padded, 10)
		return errA == nil && errB == nil && a == v && b == v
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}
