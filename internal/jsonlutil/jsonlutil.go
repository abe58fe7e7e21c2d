// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
// Encoder itself is tiny and tied to an io.Writer, so we (re)create it per call.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Encode writes one JSON value per line for each item of list.
//   - encode: fn to encode one value (convert to wire type & enc.Encode)
func Encode[T any](out io.Writer, list []T, encode func(*json.Encoder, T) error) error {
	bw := bwPool.Get().(*bufio.Writer)
	// Rebind to the actual output while keeping the pooled buffer.
	bw.Reset(out)
	// Always put back to pool and drop references to 'out'.
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	for _, v := range list {
		if err := encode(enc, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
