package receipts

import (
	"regexp"
	"strings"

	"upireceipts.in/app/internal/shared/apperr"
)

// The chat message carries the id as a line like "Transaction ID: <token>".
// The capture is bounded to the marker's own line: only horizontal whitespace
// may follow the marker, so an empty marker line never picks up the next one.
// Parsing stays permissive otherwise; the pipeline validates the token's
// character set before it is ever used to build a path.
var transactionIDPattern = regexp.MustCompile(`Transaction ID:[ \t]*([^\r\n]*)`)

func ParseTransactionID(body string) (string, error) {
	m := transactionIDPattern.FindStringSubmatch(body)
	if m == nil {
		return "", apperr.InvalidErr("No transaction ID found in the message.", nil)
	}
	token := strings.TrimSpace(m[1])
	if token == "" {
		return "", apperr.InvalidErr("No transaction ID found in the message.", nil)
	}
	return token, nil
}
