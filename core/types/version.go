package types

import (
	"fmt"
	"strconv"
	"strings"
)

// InitialVersion is stamped on freshly created assets.
const InitialVersion = "0.0.1"

// BumpVersion increments the trailing numeric segment of a dot-separated
// version string, e.g. "0.0.3" -> "0.0.4". The segment count is not fixed;
// only the last segment must be numeric.
func BumpVersion(version string) (string, error) {
	parts := strings.Split(version, ".")
	last := parts[len(parts)-1]
	n, err := strconv.Atoi(last)
	if err != nil {
		return "", fmt.Errorf("version %q has a non-numeric final segment: %w", version, err)
	}
	parts[len(parts)-1] = strconv.Itoa(n + 1)
	return strings.Join(parts, "."), nil
}
