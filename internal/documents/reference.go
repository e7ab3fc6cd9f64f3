package documents

import "strings"

// LegacyScheme is the URI scheme of the retired Cloudreve store. References
// with this prefix exist only in migrated historical data and cannot be
// resolved anymore.
const LegacyScheme = "cloudreve://"

// sessionMarker identifies session-scoped share links from the retired
// store. They look like regular HTTP URLs but expired with the session
// that created them.
const sessionMarker = "/session"

// Classification is the shape of a stored document reference. Every
// string falls into exactly one class.
type Classification string

const (
	// ClassificationEmpty means no document is attached.
	ClassificationEmpty Classification = "EMPTY"

	// ClassificationResolvable is a durable public URL that can be
	// redirected to directly. The upload pipeline only ever writes
	// references of this class.
	ClassificationResolvable Classification = "RESOLVABLE"

	// ClassificationLegacy is a reference into the retired store, either
	// by its custom scheme or as a session-scoped HTTP link. The document
	// exists but is unusable until migrated.
	ClassificationLegacy Classification = "LEGACY"

	// ClassificationInvalid is anything else.
	ClassificationInvalid Classification = "INVALID"
)

// Classify determines the class of a document reference.
//
// The order of the checks matters: an HTTP URL must be checked for the
// session marker before it is accepted as resolvable, and the legacy
// checks must run before the invalid fallback.
func Classify(reference string) Classification {
	if reference == "" {
		return ClassificationEmpty
	}

	if strings.HasPrefix(reference, "http://") || strings.HasPrefix(reference, "https://") {
		if !strings.Contains(reference, sessionMarker) {
			return ClassificationResolvable
		}

		// A session-scoped link is legacy data even though it parses as
		// a URL.
		return ClassificationLegacy
	}

	if strings.HasPrefix(reference, LegacyScheme) {
		return ClassificationLegacy
	}

	return ClassificationInvalid
}

// DisplayURL computes the clickable target for a document reference.
//
// Resolvable references are linked directly. Everything else, legacy and
// invalid data included, is linked through the resolver path so that the
// UI always has a target and the final determination happens at
// resolution time. Empty references have no target.
func DisplayURL(reference string, resolverPath string) string {
	switch Classify(reference) {
	case ClassificationEmpty:
		return ""
	case ClassificationResolvable:
		return reference
	default:
		return resolverPath
	}
}
