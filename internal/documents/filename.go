// Package documents contains the pure parts of the document attachment
// pipeline: filename sanitization, remote path construction and the
// classification of stored document references.
package documents

import (
	"fmt"
	"strings"
	"time"
)

// Kind distinguishes the two document slots of a despesa.
type Kind string

const (
	KindComprovante Kind = "comprovante"
	KindBoleto      Kind = "boleto"
)

// fallbackName is used when sanitization leaves nothing of the original
// filename.
const fallbackName = "arquivo"

// Sanitize replaces every character that is unsafe in a remote path with
// an underscore and trims surrounding whitespace. The result is never
// empty: a filename that sanitizes to nothing becomes the fallback name.
//
// Sanitize is idempotent, re-applying it to its own output is a no-op.
func Sanitize(filename string) string {
	sanitized := strings.Map(func(r rune) rune {
		if r < 0x20 || strings.ContainsRune(`<>:"/\|?*`, r) {
			return '_'
		}
		return r
	}, filename)

	sanitized = strings.TrimSpace(sanitized)
	if sanitized == "" {
		return fallbackName
	}

	return sanitized
}

// RemotePath builds the deterministic remote storage path for a document.
// When a despesa ID is known the file is grouped below a per-despesa
// directory, otherwise it goes to the flat recibos directory.
//
// There is no collision handling. Two uploads resolving to the same path
// overwrite each other, which is the intended behavior.
func RemotePath(filename string, despesaID string) string {
	name := Sanitize(filename)

	if despesaID != "" {
		return fmt.Sprintf("/recibos/despesa-%s/%s", despesaID, name)
	}

	return fmt.Sprintf("/recibos/%s", name)
}

// DatedFilename prefixes the original filename with the business date of
// the owning record, formatted in UTC. Boletos additionally carry a
// "boleto-" prefix. The prefix only organizes the remote store, it has no
// semantic meaning.
func DatedFilename(kind Kind, filename string, date time.Time) string {
	name := fmt.Sprintf("%s-%s", date.UTC().Format("2006-01-02"), filename)

	if kind == KindBoleto {
		return "boleto-" + name
	}

	return name
}
