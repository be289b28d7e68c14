package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	gosync "sync"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/config"
	"notekeeper/internal/domain/note"
	"notekeeper/internal/utils/logger"
)

var ErrNotLoggedIn = errors.New("токен не найден. Выполните вход: notekeeper auth login")

type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	state      *AppState
	mu         gosync.Mutex
}

// AppState хранит состояние между запусками.
type AppState struct {
	Username   string    `json:"username"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	state, err := loadAppState(cfg)
	if err != nil {
		log.Warn("Не удалось загрузить состояние приложения", logger.Err(err))
		state = &AppState{}
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: NewHTTPClient(cfg, log),
		state:      state,
	}

	if token, err := app.GetToken(); err == nil {
		app.httpClient.SetToken(token)
	}

	return app, nil
}

func loadAppState(cfg *config.Config) (*AppState, error) {
	data, err := os.ReadFile(cfg.StatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppState{}, nil
		}
		return nil, err
	}

	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("ошибка разбора состояния: %w", err)
	}
	return &state, nil
}

func (a *App) saveAppState() error {
	data, err := json.MarshalIndent(a.state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(a.config.StatePath, data, 0600)
}

func (a *App) Config() *config.Config {
	return a.config
}

// Username - имя, под которым выполнен последний вход.
func (a *App) Username() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Username
}

func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

// GetToken возвращает сохраненный токен
func (a *App) GetToken() (string, error) {
	tokenBytes, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotLoggedIn
		}
		return "", fmt.Errorf("ошибка чтения токена: %w", err)
	}

	token := strings.TrimSpace(string(tokenBytes))
	if token == "" {
		return "", ErrNotLoggedIn
	}
	return token, nil
}

// SaveToken сохраняет токен с правами 0600.
func (a *App) SaveToken(token string) error {
	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}

	a.httpClient.SetToken(token)

	return nil
}

func (a *App) ClearToken() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state = &AppState{}
	a.httpClient.SetToken("")

	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка удаления токена: %w", err)
	}

	if err := a.saveAppState(); err != nil {
		return fmt.Errorf("ошибка сохранения состояния: %w", err)
	}

	return nil
}

// Register регистрирует пользователя; сервер сразу выдает токен, он сохраняется.
func (a *App) Register(ctx context.Context, username, password string) error {
	token, err := a.httpClient.Register(ctx, username, password)
	if err != nil {
		return err
	}

	if err := a.remember(username, token); err != nil {
		return err
	}

	a.log.Info("Пользователь успешно зарегистрирован", "username", username)
	return nil
}

func (a *App) Login(ctx context.Context, username, password string) error {
	token, err := a.httpClient.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := a.remember(username, token); err != nil {
		return err
	}

	a.log.Info("Вход выполнен успешно", "username", username)
	return nil
}

// Refresh меняет истекший сохраненный токен на новый.
func (a *App) Refresh(ctx context.Context) error {
	if _, err := a.GetToken(); err != nil {
		return err
	}

	username := a.Username()
	token, err := a.httpClient.Refresh(ctx, username)
	if err != nil {
		return err
	}

	return a.remember(username, token)
}

func (a *App) remember(username, token string) error {
	if err := a.SaveToken(token); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.Username = username
	a.state.LoggedInAt = time.Now().UTC()
	if err := a.saveAppState(); err != nil {
		a.log.Warn("Не удалось сохранить состояние", logger.Err(err))
	}

	return nil
}

func (a *App) ListNotes(ctx context.Context) ([]note.Note, error) {
	if err := a.requireToken(); err != nil {
		return nil, err
	}
	return a.httpClient.ListNotes(ctx)
}

func (a *App) CreateNote(ctx context.Context, title string, items []string) (*note.Note, error) {
	if err := a.requireToken(); err != nil {
		return nil, err
	}
	return a.httpClient.CreateNote(ctx, note.NewInput(title, items))
}

func (a *App) GetNote(ctx context.Context, id string) (*note.Note, error) {
	if err := a.requireToken(); err != nil {
		return nil, err
	}
	return a.httpClient.GetNote(ctx, id)
}

func (a *App) UpdateNote(ctx context.Context, id, title string, items []string) (*note.Note, error) {
	if err := a.requireToken(); err != nil {
		return nil, err
	}
	return a.httpClient.UpdateNote(ctx, id, note.NewInput(title, items))
}

func (a *App) DeleteNote(ctx context.Context, id string) (*note.Note, error) {
	if err := a.requireToken(); err != nil {
		return nil, err
	}
	return a.httpClient.DeleteNote(ctx, id)
}

func (a *App) requireToken() error {
	_, err := a.GetToken()
	return err
}
