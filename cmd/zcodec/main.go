package main

import (
	"bytes"
	"context"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/iamNilotpal/zcodec/config"
	adapters "github.com/iamNilotpal/zcodec/internal/adapters/codec"
	"github.com/iamNilotpal/zcodec/internal/core/domain"
	"github.com/iamNilotpal/zcodec/internal/core/services/codec"
	"github.com/iamNilotpal/zcodec/pkg/errors"
	"github.com/iamNilotpal/zcodec/pkg/logger"
)

func main() {
	logger := logger.New("zcodec")
	defer logger.Sync()

	logger.Infow("starting codec service",
		"gzip_supported", adapters.IsGzipSupported(),
		"codec_version", adapters.CodecVersion(),
	)

	var opts *domain.Options
	if len(os.Args) > 1 {
		cfg, err := config.LoadConfig(os.Args[1])
		if err != nil {
			logger.Infow("load config error", "error", err)
			os.Exit(1)
		}
		opts = cfg.Options()
	}

	svc, err := codec.New(opts, logger)
	if err != nil {
		if errors.IsValidationError(err) {
			err := errors.AsValidationError(err)
			logger.Infow("create codec error", "field", err.Field, "value", err.Value, "error", err.Err)
		} else {
			logger.Infow("create codec error", "error", err)
		}
		os.Exit(1)
	}

	method := domain.MethodZlib
	if adapters.IsGzipSupported() {
		method = domain.MethodGzip
	}

	payload := bytes.Repeat([]byte("all work and no play makes a dull codec. "), 64)

	compressed, err := svc.Compress(payload, method)
	if err != nil {
		logger.Infow("compress error", "error", err)
		os.Exit(1)
	}
	logger.Infow("compressed", "method", method.String(), "in", len(payload), "out", len(compressed))

	detected := adapters.DetectMethod(compressed)
	logger.Infow("sniffed container framing", "method", detected.String())

	plain, err := svc.Decompress(compressed, detected, true, zapcore.WarnLevel)
	if err != nil {
		logger.Infow("decompress error", "error", err)
		os.Exit(1)
	}
	logger.Infow("round trip complete", "match", bytes.Equal(plain, payload))

	// Same stream again, this time chunk by chunk through a session.
	session, err := svc.NewSession(false, detected)
	if err != nil {
		logger.Infow("new session error", "error", err)
		os.Exit(1)
	}
	defer session.Close(context.Background())

	var rebuilt []byte
	out := make([]byte, 512)
	remaining := compressed
	for {
		read, wrote, result := session.Process(out, remaining, true)
		remaining = remaining[read:]
		rebuilt = append(rebuilt, out[:wrote]...)

		if result == domain.StepDone {
			break
		}
		if result == domain.StepErr {
			logger.Infow("session error", "error", session.Err())
			os.Exit(1)
		}
	}

	logger.Infow("incremental round trip complete",
		"match", bytes.Equal(rebuilt, payload),
		"bytes_in", session.BytesIn(),
		"bytes_out", session.BytesOut(),
	)
}
