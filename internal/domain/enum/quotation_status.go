package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// QuotationStatus represents the status of a quotation. There is no enforced
// transition graph: any status is reachable from any other through the single
// status-change entry point, so a strict table can be added later without
// touching callers.
type QuotationStatus int

const (
	QuotationStatusDraft    QuotationStatus = 0
	QuotationStatusSent     QuotationStatus = 1
	QuotationStatusApproved QuotationStatus = 2
	QuotationStatusRejected QuotationStatus = 3
	QuotationStatusExpired  QuotationStatus = 4
)

func (s QuotationStatus) String() string {
	names := [...]string{"Draft", "Sent", "Approved", "Rejected", "Expired"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Draft"
	}
	return names[s]
}

// IsValid reports whether the value is a known status.
func (s QuotationStatus) IsValid() bool {
	return s >= QuotationStatusDraft && s <= QuotationStatusExpired
}

func (s QuotationStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *QuotationStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = QuotationStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = QuotationStatusDraft
	case "Sent":
		*s = QuotationStatusSent
	case "Approved":
		*s = QuotationStatusApproved
	case "Rejected":
		*s = QuotationStatusRejected
	case "Expired":
		*s = QuotationStatusExpired
	}
	return nil
}

// ParseQuotationStatus maps the lowercase wire values accepted by the DTO
// validation to their constants.
func ParseQuotationStatus(s string) (QuotationStatus, bool) {
	switch s {
	case "draft":
		return QuotationStatusDraft, true
	case "sent":
		return QuotationStatusSent, true
	case "approved":
		return QuotationStatusApproved, true
	case "rejected":
		return QuotationStatusRejected, true
	case "expired":
		return QuotationStatusExpired, true
	}
	return QuotationStatusDraft, false
}

func (s QuotationStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *QuotationStatus) Scan(value interface{}) error {
	if value == nil {
		*s = QuotationStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = QuotationStatus(v)
	case int:
		*s = QuotationStatus(v)
	}
	return nil
}
