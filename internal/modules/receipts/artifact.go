package receipts

import "regexp"

var (
	tokenPattern    = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	fileNamePattern = regexp.MustCompile(`^receipt-[A-Za-z0-9_-]+\.pdf$`)
)

// ValidToken reports whether a transaction id is safe to embed in a file name.
func ValidToken(token string) bool { return tokenPattern.MatchString(token) }

func FileName(token string) string { return "receipt-" + token + ".pdf" }

// ValidFileName is the path-traversal guard for the serving side: anything
// outside receipt-<token>.pdf is rejected before touching storage.
func ValidFileName(name string) bool { return fileNamePattern.MatchString(name) }
