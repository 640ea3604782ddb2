package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ProviderType classifies what a provider supplies
type ProviderType string

const (
	ProviderTypeServices ProviderType = "services"
	ProviderTypeGoods    ProviderType = "goods"
	ProviderTypeMixed    ProviderType = "mixed"
)

func (t ProviderType) String() string {
	return string(t)
}

func (t ProviderType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *ProviderType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch ProviderType(str) {
	case ProviderTypeServices, ProviderTypeGoods, ProviderTypeMixed:
		*t = ProviderType(str)
	default:
		*t = ProviderTypeServices
	}
	return nil
}

func (t ProviderType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *ProviderType) Scan(value interface{}) error {
	if value == nil {
		*t = ProviderTypeServices
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = ProviderType(v)
	case []byte:
		*t = ProviderType(v)
	}
	return nil
}
