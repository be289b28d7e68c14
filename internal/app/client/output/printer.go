package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"notekeeper/internal/domain/note"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

// noteView - представление заметки для YAML.
type noteView struct {
	ID         string   `json:"id" yaml:"id"`
	Title      string   `json:"title" yaml:"title"`
	Items      []string `json:"items" yaml:"items"`
	Owner      string   `json:"owner" yaml:"owner"`
	LastEdited string   `json:"last_edited" yaml:"last_edited"`
}

func newNoteView(n note.Note) noteView {
	items := n.Items
	if items == nil {
		items = []string{}
	}
	return noteView{
		ID:         n.ID,
		Title:      n.Title,
		Items:      items,
		Owner:      n.Owner,
		LastEdited: n.LastEdited.String(),
	}
}

type Printer struct {
	w      io.Writer
	format string
}

func New(w io.Writer, format string) *Printer {
	if format == "" {
		format = FormatText
	}
	return &Printer{w: w, format: format}
}

func (p *Printer) Notes(notes []note.Note) error {
	switch p.format {
	case FormatJSON:
		return p.json(note.ListResponse{Notes: notes})
	case FormatYAML:
		views := make([]noteView, 0, len(notes))
		for _, n := range notes {
			views = append(views, newNoteView(n))
		}
		return p.yaml(map[string][]noteView{"notes": views})
	}

	if len(notes) == 0 {
		_, err := fmt.Fprintln(p.w, "Заметки не найдены")
		return err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Найдено заметок: %d\n\n", len(notes)))
	for _, n := range notes {
		sb.WriteString(fmt.Sprintf("  %s  %s %s\n", faint(n.ID), bold(n.Title), faint(fmt.Sprintf("(%d)", len(n.Items)))))
		sb.WriteString(fmt.Sprintf("  %s %s\n", faint("Изменена:"), faint(n.LastEdited.String())))
	}
	_, err := io.WriteString(p.w, sb.String())
	return err
}

func (p *Printer) Note(n *note.Note) error {
	switch p.format {
	case FormatJSON:
		return p.json(n)
	case FormatYAML:
		return p.yaml(newNoteView(*n))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", bold(n.Title)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), n.ID))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Владелец:"), n.Owner))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Изменена:"), n.LastEdited.String()))
	for _, item := range n.Items {
		sb.WriteString(fmt.Sprintf("  %s %s\n", cyan("•"), item))
	}
	_, err := io.WriteString(p.w, sb.String())
	return err
}

// Success выводит сообщение об успехе; в json/yaml режимах молчит.
func (p *Printer) Success(format string, args ...any) {
	if p.format != FormatText {
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", green("✓"), fmt.Sprintf(format, args...))
}

func (p *Printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) yaml(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
