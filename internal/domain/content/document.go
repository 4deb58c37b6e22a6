package content

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Document is the site's content tree: mappings (map[string]any), sequences
// ([]any), and scalar leaves (string, float64, bool, nil). It is JSON-shaped
// and schemaless — any key path may be read or written. The conventional
// shape mirrors the marketing pages (sections → subsections → fields).
type Document map[string]any

// SiteID is the fixed identifier the document is persisted under.
const SiteID = "beard-basketball"

// Resolve walks a dot-delimited key path through the document.
// A numeric segment indexes into a sequence; any other segment is a mapping
// key. The boolean return distinguishes a stored falsy value (0, false, "")
// from a missing path, so callers never conflate the two.
// PRE: path is non-empty
// POST: returns (value, true) if every segment resolved, (nil, false) otherwise
// INVARIANT: doc is not mutated
func Resolve(doc Document, path string) (any, bool) {
	var cur any = map[string]any(doc)
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case Document:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			// Scalar reached with segments remaining.
			return nil, false
		}
	}
	return cur, true
}

// Set assigns value at the dot-delimited key path, creating absent
// intermediate segments as empty mappings. An intermediate scalar is
// silently replaced by a mapping so the write can continue — destructive
// but never fatal, matching the store's last-write-wins contract. Writes
// into a sequence require an in-range numeric segment; anything else
// coerces the node to a mapping. The final segment is assigned
// unconditionally, type changes included.
// PRE: path is non-empty
// POST: returned document contains value at path; callers must treat the
// return value as authoritative
func Set(doc Document, path string, value any) Document {
	if doc == nil {
		doc = Document{}
	}
	segs := strings.Split(path, ".")
	out := setSegments(map[string]any(doc), segs, value)
	if m, ok := out.(map[string]any); ok {
		return Document(m)
	}
	// Single empty segment replacing the root cannot happen for non-empty
	// paths; keep the original root if the write degenerated.
	return doc
}

// setSegments recursively descends, rebuilding nodes as needed.
func setSegments(node any, segs []string, value any) any {
	if len(segs) == 0 {
		return value
	}
	seg := segs[0]
	switch n := node.(type) {
	case map[string]any:
		n[seg] = setSegments(n[seg], segs[1:], value)
		return n
	case Document:
		n[seg] = setSegments(n[seg], segs[1:], value)
		return n
	case []any:
		if idx, err := strconv.Atoi(seg); err == nil && idx >= 0 && idx < len(n) {
			n[idx] = setSegments(n[idx], segs[1:], value)
			return n
		}
		// Non-index segment against a sequence: coerce to a mapping.
		return setSegments(map[string]any{}, segs, value)
	default:
		// Absent (nil) or scalar intermediate: lazily create a mapping.
		return setSegments(map[string]any{}, segs, value)
	}
}

// Clone returns a deep copy of the document via a JSON round-trip, which
// also normalizes all numbers to float64 the way persistence does.
// Documents hold only JSON-shaped values, so the round-trip cannot fail;
// a document that somehow can't marshal clones to empty rather than
// propagating an error through every read path.
// POST: returned copy shares no mutable state with doc
func Clone(doc Document) Document {
	raw, err := json.Marshal(doc)
	if err != nil {
		return Document{}
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return Document{}
	}
	return out
}

// String renders a resolved value for display. Stored values may be strings,
// numbers, or booleans; templates and text fields want strings.
// INVARIANT: v is not mutated
func String(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
