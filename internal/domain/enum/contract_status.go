package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ContractStatus represents the lifecycle state of a contract
type ContractStatus int

const (
	ContractStatusDraft      ContractStatus = 0
	ContractStatusActive     ContractStatus = 1
	ContractStatusTerminated ContractStatus = 2
)

func (s ContractStatus) String() string {
	names := [...]string{"Draft", "Active", "Terminated"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Draft"
	}
	return names[s]
}

func (s ContractStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ContractStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ContractStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = ContractStatusDraft
	case "Active":
		*s = ContractStatusActive
	case "Terminated":
		*s = ContractStatusTerminated
	}
	return nil
}

// ParseContractStatus maps the lowercase wire values accepted by the DTO
// validation to their constants.
func ParseContractStatus(s string) (ContractStatus, bool) {
	switch s {
	case "draft":
		return ContractStatusDraft, true
	case "active":
		return ContractStatusActive, true
	case "terminated":
		return ContractStatusTerminated, true
	}
	return ContractStatusDraft, false
}

func (s ContractStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ContractStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ContractStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ContractStatus(v)
	case int:
		*s = ContractStatus(v)
	}
	return nil
}
