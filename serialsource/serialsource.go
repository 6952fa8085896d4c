// Package serialsource opens a live serial-attached FIT-capable device
// (a bike computer or watch in mass-storage/ANT passthrough mode,
// depending on vendor) and buffers it into a single byte slice a
// fit.Decoder can parse: wrap tarm/serial, respect a context for
// cancellation, and hand decodable bytes upstream.
package serialsource

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// Config holds what a FIT-over-serial link needs to open a port.
type Config struct {
	Name string
	Baud int
	// ReadTimeout bounds how long a single Read blocks, so the read loop
	// can observe context cancellation promptly.
	ReadTimeout time.Duration
	// IdleTimeout aborts the read loop if no bytes arrive for this long.
	// Zero disables the idle check.
	IdleTimeout time.Duration
}

// DefaultConfig returns sensible defaults: 100ms read timeout and no
// idle limit. Open always configures the port for 8 data bits.
func DefaultConfig(name string, baud int) Config {
	return Config{Name: name, Baud: baud, ReadTimeout: 100 * time.Millisecond}
}

// Open opens the named serial port and reads until ctx is cancelled or
// the device stops producing data for longer than cfg.IdleTimeout,
// returning everything read so far as one buffer ready for
// fit.Decoder.Decode.
func Open(ctx context.Context, cfg Config) ([]byte, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Name,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
		Size:        8,
	})
	if err != nil {
		return nil, fmt.Errorf("serialsource: open %q: %w", cfg.Name, err)
	}
	defer port.Close()

	go func() {
		<-ctx.Done()
		port.Close()
	}()

	return readUntilIdle(ctx, port, cfg.IdleTimeout)
}

// readUntilIdle accumulates bytes from r until ctx is done, r returns a
// terminal error, or (when idleTimeout > 0) no data arrives for longer
// than idleTimeout.
func readUntilIdle(ctx context.Context, r io.Reader, idleTimeout time.Duration) ([]byte, error) {
	var buf []byte
	chunk := make([]byte, 4096)
	idleSince := time.Time{}

	for {
		select {
		case <-ctx.Done():
			return buf, ctx.Err()
		default:
		}

		n, err := r.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			idleSince = time.Time{}
		}
		if err != nil {
			if err == io.EOF {
				return buf, nil
			}
			if isTimeout(err) {
				if idleTimeout <= 0 {
					continue
				}
				if idleSince.IsZero() {
					idleSince = time.Now()
				} else if time.Since(idleSince) > idleTimeout {
					return buf, nil
				}
				continue
			}
			return buf, fmt.Errorf("serialsource: read: %w", err)
		}
	}
}

type timeoutError interface {
	Timeout() bool
}

func isTimeout(err error) bool {
	te, ok := err.(timeoutError)
	return ok && te.Timeout()
}
