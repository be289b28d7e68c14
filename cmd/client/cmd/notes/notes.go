package notes

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"notekeeper/internal/app/client"
)

// NotesCmd - родительская команда для операций с заметками
var NotesCmd = &cobra.Command{
	Use:     "notes",
	Aliases: []string{"note"},
	Short:   "Управление заметками",
	Long:    `Просмотр, создание, изменение и удаление заметок текущего пользователя.`,
}

var errNoTitle = errors.New("укажите заголовок: --title")

func init() {
	NotesCmd.AddCommand(ListCmd)
	NotesCmd.AddCommand(CreateCmd)
	NotesCmd.AddCommand(GetCmd)
	NotesCmd.AddCommand(UpdateCmd)
	NotesCmd.AddCommand(DeleteCmd)
}

// explain добавляет подсказку к типовым ответам сервера.
func explain(action string, err error) error {
	switch {
	case client.IsStatus(err, http.StatusUnauthorized):
		return fmt.Errorf("%s: %w (выполните notekeeper auth login или auth refresh)", action, err)
	case client.IsStatus(err, http.StatusNotFound):
		return fmt.Errorf("%s: заметка не найдена: %w", action, err)
	default:
		return fmt.Errorf("%s: %w", action, err)
	}
}

func addWriteFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("title", "t", "", "заголовок заметки")
	cmd.Flags().StringArrayP("item", "i", nil, "пункт заметки (можно повторять)")
}

func writeFlags(cmd *cobra.Command) (string, []string, error) {
	title, _ := cmd.Flags().GetString("title")
	items, _ := cmd.Flags().GetStringArray("item")
	if title == "" {
		return "", nil, errNoTitle
	}
	if items == nil {
		items = []string{}
	}
	return title, items, nil
}
