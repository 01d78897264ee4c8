// Package chunker partitions the aggregated record collection into
// size-bounded parts so each upload stays below the search engine's request
// size limit. A part boundary never splits a single record.
package chunker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docketprep/internal/record"
)

// Limits bounds the size of one output part. A zero value disables that
// bound.
type Limits struct {
	MaxBytes   int64 // max serialized bytes per part
	MaxRecords int   // max records per part
}

// DefaultLimits keeps parts under the engine's 20MB payload cap with headroom.
func DefaultLimits() Limits {
	return Limits{MaxBytes: 18 * 1024 * 1024}
}

// Serialization overhead accounted per part and per record: the enclosing
// array brackets, and a separating comma plus newline for each element.
const (
	arrayOverhead  = 2
	recordOverhead = 2
)

// Partition splits records into consecutive parts, each within lim.
// Concatenating the parts in order reproduces the input exactly. A single
// record whose serialized size already exceeds MaxBytes occupies a part of
// its own rather than being fractured.
func Partition(records []record.Record, lim Limits) ([][]record.Record, error) {
	var parts [][]record.Record
	var current []record.Record
	currentBytes := int64(arrayOverhead)

	for _, r := range records {
		b, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("marshal record %s: %w", r.ID, err)
		}
		size := int64(len(b)) + recordOverhead

		overRecords := lim.MaxRecords > 0 && len(current) >= lim.MaxRecords
		overBytes := lim.MaxBytes > 0 && currentBytes+size > lim.MaxBytes
		if len(current) > 0 && (overRecords || overBytes) {
			parts = append(parts, current)
			current = nil
			currentBytes = arrayOverhead
		}

		current = append(current, r)
		currentBytes += size
	}
	if len(current) > 0 {
		parts = append(parts, current)
	}
	return parts, nil
}

// WriteParts writes each part as <base>_part<N>.json next to artifactPath and
// returns the written paths in part order.
func WriteParts(artifactPath string, parts [][]record.Record) ([]string, error) {
	dir := filepath.Dir(artifactPath)
	base := strings.TrimSuffix(filepath.Base(artifactPath), filepath.Ext(artifactPath))

	written := make([]string, 0, len(parts))
	for i, part := range parts {
		out := filepath.Join(dir, fmt.Sprintf("%s_part%d.json", base, i+1))
		b, err := json.Marshal(part)
		if err != nil {
			return nil, fmt.Errorf("marshal part %d: %w", i+1, err)
		}
		if err := os.WriteFile(out, b, 0o644); err != nil {
			return nil, fmt.Errorf("write part %d: %w", i+1, err)
		}
		written = append(written, out)
	}
	return written, nil
}
