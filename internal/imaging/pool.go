package imaging

import (
	"bytes"
	"image"
	"sync"
)

// BufferPool recycles the byte buffers that encoded images are written into.
//
// BufferPool is safe for concurrent use by multiple goroutines.
//
// # Example Usage
//
//	pool := imaging.NewBufferPool()
//	err := pool.Render(values, size, imaging.PNG, func(b []byte) error {
//	    _, err := w.Write(b)
//	    return err
//	})
type BufferPool struct {
	pool sync.Pool
}

// NewBufferPool creates an empty pool ready for immediate use.
func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} { return new(bytes.Buffer) },
		},
	}
}

// Get returns an empty buffer from the pool.
func (p *BufferPool) Get() *bytes.Buffer {
	buf := p.pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// Put returns a buffer to the pool. The caller must not use buf afterwards.
func (p *BufferPool) Put(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	p.pool.Put(buf)
}

// Encode serializes img with codec into a pooled buffer and passes the bytes
// to send. The buffer goes back to the pool once send returns, whether
// encoding or sending failed or not, so send must not retain the slice.
func (p *BufferPool) Encode(img image.Image, codec Codec, send func([]byte) error) error {
	buf := p.Get()
	defer p.Put(buf)

	if err := codec.Encode(buf, img); err != nil {
		return err
	}
	return send(buf.Bytes())
}

// Render assembles values into blocks of blockSize pixels and encodes the
// result as Encode does.
func (p *BufferPool) Render(values []int64, blockSize int, codec Codec, send func([]byte) error) error {
	return p.Encode(Assemble(values, blockSize), codec, send)
}
