package playback

import (
	"fmt"
	"math"
)

// PreviewFunc maps a timeline position in seconds to a preview asset key.
type PreviewFunc func(seconds float64) string

// DefaultBucketSeconds is the span covered by one preview frame.
const DefaultBucketSeconds = 10

// BucketPreview returns a PreviewFunc that selects one frame per bucket of the
// given length, named preview{n}.jpg with n starting at 1.
func BucketPreview(bucketSeconds float64) PreviewFunc {
	if bucketSeconds <= 0 {
		bucketSeconds = DefaultBucketSeconds
	}

	return func(seconds float64) string {
		return fmt.Sprintf("preview%d.jpg", PreviewBucket(seconds, bucketSeconds))
	}
}

// PreviewBucket returns max(1, floor(seconds/bucketSeconds)).
func PreviewBucket(seconds, bucketSeconds float64) int {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || bucketSeconds <= 0 {
		return 1
	}

	n := int(math.Floor(seconds / bucketSeconds))
	if n < 1 {
		return 1
	}
	return n
}
