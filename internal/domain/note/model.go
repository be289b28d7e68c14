package note

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// TimeLayout - формат last_edited в ответах API (MM/DD/YYYY HH:MM:SS, UTC).
const TimeLayout = "01/02/2006 15:04:05"

type Note struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Items      []string  `json:"items"`
	Owner      string    `json:"owner"`
	LastEdited Timestamp `json:"last_edited"`
}

// Timestamp хранит время с полной точностью, а в JSON отдается с точностью до секунды.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

func (t Timestamp) String() string {
	return t.UTC().Format(TimeLayout)
}

// Schema реализует huma.SchemaProvider: в OpenAPI поле описано как строка.
func (Timestamp) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:        huma.TypeString,
		Description: "Время последнего изменения, MM/DD/YYYY HH:MM:SS (UTC)",
		Examples:    []any{"05/01/2024 10:00:00"},
	}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("last_edited: %w", err)
	}

	parsed, err := time.ParseInLocation(TimeLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("last_edited: %w", err)
	}
	t.Time = parsed

	return nil
}
