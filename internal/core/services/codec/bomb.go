package codec

import "github.com/iamNilotpal/zcodec/internal/core/domain"

// isCompressionBomb reports whether producing out bytes from in bytes
// looks like a compression bomb. Pure function of the two counters and
// the policy: never flags while the output stays under the activation
// floor (small outputs are not a meaningful amplification risk, and
// integer division would overstate their ratio), flags once the
// produced:consumed ratio exceeds the policy maximum.
func isCompressionBomb(policy *domain.BombOptions, in, out uint64) bool {
	if in == 0 || out < policy.ActivationSize {
		return false
	}
	return out/in > policy.MaxRatio
}
