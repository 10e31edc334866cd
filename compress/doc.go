// Package compress provides the compression codecs used for status list
// payloads.
//
// A packed status list is a long run of mostly-identical small values, which
// DEFLATE handles extremely well: a 100k-entry list of valid credentials
// compresses to a few dozen bytes. The wire format mandates zlib-framed
// DEFLATE at the highest compression level, so ZlibCodec is the codec used
// on every encode and decode path.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// ZlibCodec implements the wire format; NoOpCodec is a pass-through used in
// tests and overhead measurements.
//
// # Safety
//
// Decompression accepts arbitrary input: malformed streams return an error
// rather than panicking, and output is capped at MaxDecompressedSize so a
// small adversarial payload cannot inflate without bound.
package compress
