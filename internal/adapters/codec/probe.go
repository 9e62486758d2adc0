package codec

import (
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
)

const codecModulePath = "github.com/klauspost/compress"

// DEFLATE libraries older than 1.2 understand raw zlib framing but not
// the gzip container selector.
const (
	minGzipMajor = 1
	minGzipMinor = 2
)

var (
	probeOnce     sync.Once
	gzipSupported bool
	codecVersion  string
)

// IsGzipSupported reports whether the linked codec build understands
// the gzip container. The answer is computed once per process from the
// linked library's version and is immutable afterwards.
func IsGzipSupported() bool {
	probeOnce.Do(probe)
	return gzipSupported
}

// CodecVersion returns the module version of the linked codec library,
// or "(devel)" when build info is unavailable.
func CodecVersion() string {
	probeOnce.Do(probe)
	return codecVersion
}

func probe() {
	codecVersion = "(devel)"
	gzipSupported = true

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, dep := range info.Deps {
		if dep.Path != codecModulePath {
			continue
		}
		codecVersion = dep.Version
		gzipSupported = versionAtLeast(dep.Version, minGzipMajor, minGzipMinor)
		return
	}
}

// versionAtLeast parses a "vMAJOR.MINOR[.PATCH]" module version.
// Pseudo-versions and anything unparseable are assumed modern enough.
func versionAtLeast(version string, major, minor int) bool {
	version = strings.TrimPrefix(version, "v")
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return true
	}

	maj, err := strconv.Atoi(parts[0])
	if err != nil {
		return true
	}
	if maj != major {
		return maj > major
	}

	minorPart := parts[1]
	if i := strings.IndexAny(minorPart, "-+"); i >= 0 {
		minorPart = minorPart[:i]
	}
	mnr, err := strconv.Atoi(minorPart)
	if err != nil {
		return true
	}
	return mnr >= minor
}
