package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// Document number prefixes. Numbers are sequential per document type and
// treated as opaque strings everywhere outside this package.
const (
	QuotationPrefix   = "COT"
	CollectionPrefix  = "REC"
	CuentaCobroPrefix = "CC"
	ContractPrefix    = "CTR"
)

// FormatDocumentNumber renders a sequential document number, e.g. COT-000042.
func FormatDocumentNumber(prefix string, sequence int) string {
	return fmt.Sprintf("%s-%06d", prefix, sequence)
}

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
