package imaging

import (
	"bytes"
	"errors"
	"image"
	"io"
	"sync"
	"testing"
)

func TestCodecFor(t *testing.T) {
	tests := []struct {
		name            string
		format          string
		wantFormat      string
		wantContentType string
	}{
		{"default", "", "png", "image/png"},
		{"png", "png", "png", "image/png"},
		{"uppercase", "PNG", "png", "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := CodecFor(tt.format)
			if err != nil {
				t.Fatalf("CodecFor(%q) failed: %v", tt.format, err)
			}
			if c.Format != tt.wantFormat || c.ContentType != tt.wantContentType {
				t.Errorf("got %s/%s, want %s/%s", c.Format, c.ContentType, tt.wantFormat, tt.wantContentType)
			}
		})
	}
}

func TestCodecFor_Unknown(t *testing.T) {
	for _, format := range []string{"bmp", "BMP", "jpeg", "gif", "webp"} {
		if _, err := CodecFor(format); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("CodecFor(%q): error should wrap ErrUnknownFormat, got %v", format, err)
		}
	}
}

func TestCodec_Signatures(t *testing.T) {
	tests := []struct {
		codec Codec
		magic []byte
	}{
		{PNG, []byte("\x89PNG\r\n\x1a\n")},
	}

	img := Assemble([]int64{1188518400, 36000}, 2)
	for _, tt := range tests {
		t.Run(tt.codec.Format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.codec.Encode(&buf, img); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), tt.magic) {
				t.Errorf("encoded data does not start with %q", tt.magic)
			}
		})
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	// Every low byte differs from 0xFF so a dropped alpha channel shows up.
	tests := []struct {
		name   string
		values []int64
		size   int
	}{
		{"utc", []int64{1188518400}, 3},
		{"local", []int64{1537401600, 36000, 1538841600, 39600}, 3},
		{"negative offset", []int64{1188518400, -18000, 0, 0}, 2},
		{"mixed bytes", []int64{0x11223344}, 1},
		{"zero alpha", []int64{0x12345600}, 4},
	}

	for _, c := range Codecs() {
		for _, tt := range tests {
			t.Run(c.Format+"/"+tt.name, func(t *testing.T) {
				var buf bytes.Buffer
				if err := c.Encode(&buf, Assemble(tt.values, tt.size)); err != nil {
					t.Fatalf("Encode failed: %v", err)
				}
				img, err := DecodeImage(&buf)
				if err != nil {
					t.Fatalf("DecodeImage failed: %v", err)
				}
				got, err := ReadValues(img, 0)
				if err != nil {
					t.Fatalf("ReadValues failed: %v", err)
				}
				if len(got) != len(tt.values) {
					t.Fatalf("value count: got %d, want %d", len(got), len(tt.values))
				}
				for i, v := range tt.values {
					if got[i] != uint32(v) {
						t.Errorf("value %d: got %#08x, want %#08x", i, got[i], uint32(v))
					}
				}
			})
		}
	}
}

var errBoom = errors.New("boom")

func failingCodec() Codec {
	return Codec{
		Format:      "fail",
		ContentType: "application/octet-stream",
		encoder: func(io.Writer, image.Image) error {
			return errBoom
		},
	}
}

func TestBufferPool_Render(t *testing.T) {
	pool := NewBufferPool()

	var got []byte
	err := pool.Render([]int64{1188518400}, 1, PNG, func(b []byte) error {
		got = append([]byte(nil), b...)
		return nil
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	img, err := DecodeImage(bytes.NewReader(got))
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	values, err := ReadValues(img, 1)
	if err != nil {
		t.Fatalf("ReadValues failed: %v", err)
	}
	if values[0] != 1188518400 {
		t.Errorf("got %d, want 1188518400", values[0])
	}
}

func TestBufferPool_EncodeFailure(t *testing.T) {
	pool := NewBufferPool()

	called := false
	err := pool.Render([]int64{1}, 1, failingCodec(), func([]byte) error {
		called = true
		return nil
	})
	if !errors.Is(err, errBoom) {
		t.Errorf("error should wrap encoder error, got %v", err)
	}
	if called {
		t.Error("send should not be called when encoding fails")
	}
}

func TestBufferPool_SendFailure(t *testing.T) {
	pool := NewBufferPool()

	err := pool.Render([]int64{1}, 1, PNG, func([]byte) error {
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Errorf("error should be returned from send, got %v", err)
	}
}

func TestBufferPool_GetReturnsEmptyBuffer(t *testing.T) {
	pool := NewBufferPool()

	buf := pool.Get()
	buf.WriteString("leftover")
	pool.Put(buf)

	if got := pool.Get(); got.Len() != 0 {
		t.Errorf("Get returned buffer with %d bytes, want 0", got.Len())
	}
	pool.Put(nil)
}

func TestBufferPool_ConcurrentRender(t *testing.T) {
	pool := NewBufferPool()

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v int64) {
			defer wg.Done()
			errs <- pool.Render([]int64{v}, 3, PNG, func(b []byte) error {
				img, err := DecodeImage(bytes.NewReader(b))
				if err != nil {
					return err
				}
				got, err := ReadValues(img, 3)
				if err != nil {
					return err
				}
				if got[0] != uint32(v) {
					return errors.New("value mismatch")
				}
				return nil
			})
		}(int64(i) * 86400)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("concurrent render failed: %v", err)
		}
	}
}
