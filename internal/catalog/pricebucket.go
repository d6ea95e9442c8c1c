package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePriceBucket parses the price-range selectors used by clients:
// "0-500", "500-1000" and the open-ended "1000+". An empty bucket means no
// price filtering and returns ok=false. The max pointer is nil for the
// open-ended bucket.
func ParsePriceBucket(bucket string) (min int, max *int, ok bool, err error) {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return 0, nil, false, nil
	}
	if rest, found := strings.CutSuffix(bucket, "+"); found {
		n, convErr := strconv.Atoi(rest)
		if convErr != nil {
			return 0, nil, false, fmt.Errorf("invalid price bucket %q", bucket)
		}
		return n, nil, true, nil
	}
	lo, hi, found := strings.Cut(bucket, "-")
	if !found {
		return 0, nil, false, fmt.Errorf("invalid price bucket %q", bucket)
	}
	minVal, err1 := strconv.Atoi(lo)
	maxVal, err2 := strconv.Atoi(hi)
	if err1 != nil || err2 != nil || maxVal < minVal {
		return 0, nil, false, fmt.Errorf("invalid price bucket %q", bucket)
	}
	return minVal, &maxVal, true, nil
}
