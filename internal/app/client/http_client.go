package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/config"
	"notekeeper/internal/domain/account"
	"notekeeper/internal/domain/note"
)

// APIError - ответ сервера со статусом 4xx/5xx.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ошибка сервера: статус %d", e.Status)
	}
	return fmt.Sprintf("ошибка сервера (%d): %s", e.Status, e.Message)
}

// IsStatus сообщает, что err - APIError с указанным статусом.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 2,
		},
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   cfg.BaseURL(),
		userAgent: "Notekeeper-Client/1.0",
	}
}

// SetToken устанавливает токен для заголовка Authorization.
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Register(ctx context.Context, username, password string) (string, error) {
	return h.tokenRequest(ctx, "/auth/register", account.NewCredentials(username, password))
}

func (h *httpClient) Login(ctx context.Context, username, password string) (string, error) {
	return h.tokenRequest(ctx, "/auth/login", account.NewCredentials(username, password))
}

// Refresh отправляет истекший токен (из SetToken) и получает новый.
func (h *httpClient) Refresh(ctx context.Context, username string) (string, error) {
	var body any
	if username != "" {
		body = account.RefreshRequest{Username: username}
	}
	return h.tokenRequest(ctx, "/auth/refresh", body)
}

func (h *httpClient) tokenRequest(ctx context.Context, path string, body any) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return "", err
	}

	var tokenResp account.TokenResponse
	if err := h.parseResponse(resp, &tokenResp); err != nil {
		return "", err
	}

	h.SetToken(tokenResp.Token)
	return tokenResp.Token, nil
}

func (h *httpClient) ListNotes(ctx context.Context) ([]note.Note, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/notes", nil)
	if err != nil {
		return nil, err
	}

	var listResp note.ListResponse
	if err := h.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}

	return listResp.Notes, nil
}

func (h *httpClient) CreateNote(ctx context.Context, in note.Input) (*note.Note, error) {
	return h.noteRequest(ctx, http.MethodPost, "/notes", in)
}

func (h *httpClient) GetNote(ctx context.Context, id string) (*note.Note, error) {
	return h.noteRequest(ctx, http.MethodGet, notePath(id), nil)
}

func (h *httpClient) UpdateNote(ctx context.Context, id string, in note.Input) (*note.Note, error) {
	return h.noteRequest(ctx, http.MethodPut, notePath(id), in)
}

func (h *httpClient) DeleteNote(ctx context.Context, id string) (*note.Note, error) {
	return h.noteRequest(ctx, http.MethodDelete, notePath(id), nil)
}

func (h *httpClient) noteRequest(ctx context.Context, method, path string, body any) (*note.Note, error) {
	resp, err := h.doRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	var n note.Note
	if err := h.parseResponse(resp, &n); err != nil {
		return nil, err
	}

	return &n, nil
}

func notePath(id string) string {
	return "/notes/" + url.PathEscape(id)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

// parseResponse читает тело; для 4xx/5xx возвращает *APIError с detail из problem+json.
func (h *httpClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ", "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		var errResp struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
		}
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.Unmarshal(body, &errResp); err == nil {
			apiErr.Message = errResp.Detail
			if apiErr.Message == "" {
				apiErr.Message = errResp.Title
			}
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}
