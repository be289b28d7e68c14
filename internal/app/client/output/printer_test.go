package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/domain/note"
)

func testNote() note.Note {
	return note.Note{
		ID:         "3f1c",
		Title:      "Groceries",
		Items:      []string{"milk", "eggs"},
		Owner:      "alice",
		LastEdited: note.NewTimestamp(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)),
	}
}

func TestPrinter_Note(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name     string
		format   string
		contains []string
	}{
		{
			name:     "text",
			format:   FormatText,
			contains: []string{"Groceries", "ID: 3f1c", "05/01/2024 10:00:00", "• milk"},
		},
		{
			name:     "json",
			format:   FormatJSON,
			contains: []string{`"title": "Groceries"`, `"last_edited": "05/01/2024 10:00:00"`},
		},
		{
			name:     "yaml",
			format:   FormatYAML,
			contains: []string{"title: Groceries", "05/01/2024 10:00:00", "- milk"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n := testNote()
			require.NoError(t, New(&buf, tt.format).Note(&n))
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestPrinter_Notes(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText).Notes(nil))
	assert.Equal(t, "Заметки не найдены\n", buf.String())

	buf.Reset()
	require.NoError(t, New(&buf, FormatYAML).Notes([]note.Note{testNote()}))
	assert.Contains(t, buf.String(), "notes:")
	assert.Contains(t, buf.String(), "id: 3f1c")

	buf.Reset()
	require.NoError(t, New(&buf, "").Notes([]note.Note{testNote()}))
	assert.Contains(t, buf.String(), "Найдено заметок: 1")
}

func TestPrinter_SuccessQuietInMachineFormats(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	New(&buf, FormatJSON).Success("Заметка %s удалена", "x")
	assert.Empty(t, buf.String())

	New(&buf, FormatText).Success("Заметка %s удалена", "x")
	assert.Equal(t, "✓ Заметка x удалена\n", buf.String())
}
