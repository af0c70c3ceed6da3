/*
Package randx generates identifiers for stored objects.
*/
package randx

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// maxExtLength bounds the extension copied from a client-supplied file name.
const maxExtLength = 10

// ObjectKey returns a fresh key "<owner>/<uuid><ext>", where ext is the lower-cased
// extension of fileName. Extensions that are too long or not alphanumeric are dropped.
func ObjectKey(owner, fileName string) string {
	return OwnerPrefix(owner) + uuid.NewString() + safeExt(fileName)
}

// OwnerPrefix returns the key prefix under which owner's objects are stored.
func OwnerPrefix(owner string) string {
	return owner + "/"
}

func safeExt(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if len(ext) < 2 || len(ext) > maxExtLength {
		return ""
	}

	for _, c := range ext[1:] {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return ""
		}
	}
	return ext
}
