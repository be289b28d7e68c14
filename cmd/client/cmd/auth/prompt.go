package auth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errEmptyInput = errors.New("ввод не может быть пустым")

// readCredentials берет имя из флага --username или спрашивает его,
// пароль читается без эха, если stdin - терминал.
func readCredentials(cmd *cobra.Command, confirm bool) (string, string, error) {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	username, _ := cmd.Flags().GetString("username")
	if username == "" {
		fmt.Fprint(out, "Имя пользователя: ")
		line, err := readLine(in)
		if err != nil {
			return "", "", err
		}
		username = line
	}

	password, err := readPassword(in, out, "Пароль: ")
	if err != nil {
		return "", "", err
	}

	if confirm {
		again, err := readPassword(in, out, "Повторите пароль: ")
		if err != nil {
			return "", "", err
		}
		if again != password {
			return "", "", errors.New("пароли не совпадают")
		}
	}

	return username, password, nil
}

func readPassword(in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		password, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		if len(password) == 0 {
			return "", errEmptyInput
		}
		return string(password), nil
	}

	return readLine(in)
}

func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("ошибка чтения ввода: %w", err)
	}

	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errEmptyInput
	}
	return line, nil
}
