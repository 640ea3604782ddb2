package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// CollectionStatus represents the payment status of a collection (recaudo)
type CollectionStatus int

const (
	CollectionStatusPending   CollectionStatus = 0
	CollectionStatusPartial   CollectionStatus = 1
	CollectionStatusCollected CollectionStatus = 2
	CollectionStatusCanceled  CollectionStatus = 3
)

func (s CollectionStatus) String() string {
	names := [...]string{"Pending", "Partial", "Collected", "Canceled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Pending"
	}
	return names[s]
}

func (s CollectionStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *CollectionStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = CollectionStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = CollectionStatusPending
	case "Partial":
		*s = CollectionStatusPartial
	case "Collected":
		*s = CollectionStatusCollected
	case "Canceled":
		*s = CollectionStatusCanceled
	}
	return nil
}

// ParseCollectionStatus maps the lowercase wire values accepted by the DTO
// validation to their constants.
func ParseCollectionStatus(s string) (CollectionStatus, bool) {
	switch s {
	case "pending":
		return CollectionStatusPending, true
	case "partial":
		return CollectionStatusPartial, true
	case "collected":
		return CollectionStatusCollected, true
	case "canceled":
		return CollectionStatusCanceled, true
	}
	return CollectionStatusPending, false
}

func (s CollectionStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *CollectionStatus) Scan(value interface{}) error {
	if value == nil {
		*s = CollectionStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = CollectionStatus(v)
	case int:
		*s = CollectionStatus(v)
	}
	return nil
}
