package xyz

import (
	"compress/gzip"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Trajectories can be stored compressed; the codec is picked from the
//filename suffix, as the rest of the formats in this toolkit do. Plain text
//is the default.

//This will cause additional indirections
//but I suppose it won't matter, as each call will
//take enough time to make those delays irrelevant.
//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type stdql struct {
	closeql func()
	*zstd.Decoder
}

//Close closes the object. It can not be used after this call
func (s stdql) Close() error {
	s.closeql()
	return nil
}

//newDecompressor wraps r in the decompressor the filename suffix calls for,
//or returns nil for plain text.
func newDecompressor(name string, r io.Reader) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewReader(r)
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return stdql{d.Close, d}, nil
	}
	return nil, nil
}

//newCompressor wraps w in the compressor the filename suffix calls for, or
//returns nil for plain text.
func newCompressor(name string, w io.Writer) (io.WriteCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewWriter(w), nil
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		return zstd.NewWriter(w)
	}
	return nil, nil
}
