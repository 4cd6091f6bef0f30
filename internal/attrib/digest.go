// SPDX-License-Identifier: MPL-2.0

package attrib

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// Digest returns the RFC 8785 canonical-JSON SHA-256 digest of the
// attribution entries, prefixed with the algorithm. Because aggregation is
// deterministic, repeated runs over unchanged input produce the same digest,
// which makes reproducibility checkable without diffing whole documents.
func Digest(entries []Entry) (string, error) {
	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("failed to marshal attribution entries: %w", err)
	}
	canonical, err := jcs.Transform(data)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize attribution entries: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return "sha256:" + hex.EncodeToString(sum[:]), nil
}
