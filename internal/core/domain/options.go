package domain

// Options configures the codec service. Zero values are filled with
// defaults by the service; explicit values are validated.
type Options struct {
	// Level is the DEFLATE compression level (1-9) used by one-shot
	// compression and compressing sessions. Defaults to best compression.
	Level int

	// ChunkSize is the read granularity, in bytes, used when draining a
	// decompressing session. Must be a power of 2.
	ChunkSize uint32

	// Limits bounds buffer growth during one-shot transforms.
	Limits *LimitOptions

	// Bomb configures the compression-bomb detector.
	Bomb *BombOptions
}

// LimitOptions bounds how large any single transform is allowed to get.
type LimitOptions struct {
	// MaxAllocSize is the hard process-wide ceiling, in bytes, on a
	// single output buffer. Growth past it fails the operation.
	MaxAllocSize uint64

	// MaxCallSize is the largest input or output length a single call
	// may address. DEFLATE-family codecs count a call's transfer in
	// 32-bit quantities regardless of host word size, so this may never
	// exceed the maximum 32-bit unsigned value.
	MaxCallSize uint64
}

// BombOptions tunes the expansion-ratio policy that rejects compression
// bombs. Both values are fixed policy constants by default, not derived.
type BombOptions struct {
	// MaxRatio is the largest produced:consumed byte ratio tolerated
	// once ActivationSize has been produced.
	MaxRatio uint64

	// ActivationSize is the produced-byte floor below which the ratio is
	// never checked. Small outputs are not a meaningful amplification
	// risk, and integer division would overstate their ratio.
	ActivationSize uint64
}
