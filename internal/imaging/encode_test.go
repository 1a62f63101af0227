package imaging

import (
	"errors"
	"testing"
	"time"
)

func TestEncodePixel_KnownValues(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		want  uint32
	}{
		{"zero", 0, 0x00000000},
		{"alpha byte only", 0x000000FF, 0xFF000000},
		{"red byte only", 0xFF000000, 0x00FF0000},
		{"all channels", 0x11223344, 0x44112233},
		{"max", 0xFFFFFFFF, 0xFFFFFFFF},
		{"2007-08-31", 1188518400, 0x0046D75A},
		{"negative offset wraps", -18000, 0xB0FFFFB9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodePixel(tt.value); got != tt.want {
				t.Errorf("EncodePixel(%d): got %#08x, want %#08x", tt.value, got, tt.want)
			}
		})
	}
}

func TestEncodePixel_MatchesReferenceFormula(t *testing.T) {
	// Reference computed in 64-bit signed arithmetic, then truncated.
	reference := func(v int64) uint32 {
		return uint32((v << 24) | ((v >> 8) & 0xFFFFFF))
	}
	for _, v := range []int64{0, 1, 255, 256, 36000, 39600, -1, -3600, -43200, 1537401600, 0xFFFFFFFF} {
		if got, want := EncodePixel(v), reference(v); got != want {
			t.Errorf("EncodePixel(%d): got %#08x, want %#08x", v, got, want)
		}
	}
}

func TestDecodePixel_RoundTrip(t *testing.T) {
	check := func(v uint32) {
		if got := DecodePixel(EncodePixel(int64(v))); got != v {
			t.Fatalf("DecodePixel(EncodePixel(%d)): got %d", v, got)
		}
	}

	for _, v := range []uint32{0, 1, 0xFF, 0x100, 0xFFFF, 0x7FFFFFFF, 0x80000000, 0xFFFFFFFE, 0xFFFFFFFF} {
		check(v)
	}

	step := uint64(65521)
	if testing.Short() {
		step = 7919 * 65521
	}
	for v := uint64(0); v <= MaxUnixSeconds; v += step {
		check(uint32(v))
	}
}

func TestDecodeOffset(t *testing.T) {
	tests := []struct {
		offset int64
	}{
		{0}, {36000}, {39600}, {-18000}, {-43200}, {50400}, {-64800},
	}

	for _, tt := range tests {
		decoded := DecodePixel(EncodePixel(tt.offset))
		if got := DecodeOffset(decoded); got != tt.offset {
			t.Errorf("offset %d: got %d after round trip", tt.offset, got)
		}
	}
}

func TestToUnixSeconds(t *testing.T) {
	tests := []struct {
		name    string
		t       time.Time
		want    uint32
		wantErr bool
	}{
		{"epoch", time.Unix(0, 0), 0, false},
		{"2007-08-31", time.Date(2007, 8, 31, 0, 0, 0, 0, time.UTC), 1188518400, false},
		{"sub-second truncated", time.Unix(1188518400, 999999999), 1188518400, false},
		{"max", time.Unix(MaxUnixSeconds, 0), MaxUnixSeconds, false},
		{"max with fraction", time.Unix(MaxUnixSeconds, 500000000), MaxUnixSeconds, false},
		{"past max", time.Unix(MaxUnixSeconds+1, 0), 0, true},
		{"before epoch", time.Unix(-1, 0), 0, true},
		{"just before epoch", time.Unix(-1, 999999999), 0, true},
		{"zero time", time.Time{}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUnixSeconds(tt.t)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ToUnixSeconds should fail, got %d", got)
				}
				if !errors.Is(err, ErrRange) {
					t.Errorf("error should wrap ErrRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToUnixSeconds failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestToUnixSeconds_Monotonic(t *testing.T) {
	start := time.Unix(0, 0)
	var prev uint32
	for i := 0; i < 1000; i++ {
		instant := start.Add(time.Duration(i) * 4294967 * time.Second).Add(time.Duration(i%3) * time.Millisecond)
		got, err := ToUnixSeconds(instant)
		if err != nil {
			t.Fatalf("ToUnixSeconds(%v) failed: %v", instant, err)
		}
		if got < prev {
			t.Fatalf("not monotonic at %v: %d < %d", instant, got, prev)
		}
		prev = got
	}
}

func TestChannels_Word(t *testing.T) {
	r, g, b, a := channels(0x44112233)
	if r != 0x11 || g != 0x22 || b != 0x33 || a != 0x44 {
		t.Errorf("channels: got %02x %02x %02x %02x, want 11 22 33 44", r, g, b, a)
	}
	if got := word(r, g, b, a); got != 0x44112233 {
		t.Errorf("word: got %#08x, want 0x44112233", got)
	}
}
