package schema

import (
	"encoding/json"
	"fmt"
)

// Block is one entry of minecraft-data's blocks.json. Only the fields the
// catalog needs are decoded.
type Block struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	DisplayName string         `json:"displayName"`
	Variations  []RawVariation `json:"variations"`
}

type RawVariation struct {
	Metadata    int    `json:"metadata"`
	DisplayName string `json:"displayName"`
}

func LoadJSON[T any](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return items, nil
}
