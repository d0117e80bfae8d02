// Package emailclient реализует клиент внешнего почтового HTTP API,
// через который отправляются письма с подтверждением подписки.
package emailclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/magabrotheeeer/newsletter-service/internal/config"
)

// Message описывает одно исходящее письмо. HTML и текстовая версии
// отправляются вместе, обе должны содержать одну и ту же ссылку подтверждения.
type Message struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
	TextBody string `json:"text_body"`
}

// Client отправляет письма через почтовый HTTP API.
type Client struct {
	apiURL      string
	authToken   string
	sendTimeout time.Duration
	httpClient  *http.Client
}

// New создаёт клиент почтового API по настройкам из конфига.
func New(cfg config.EmailClient) *Client {
	return &Client{
		apiURL:      cfg.APIURL,
		authToken:   cfg.AuthToken,
		sendTimeout: cfg.SendTimeout,
		httpClient:  &http.Client{},
	}
}

// Send отправляет письмо с жёстким дедлайном sendTimeout. Сетевая ошибка,
// истечение дедлайна или не-2xx ответ API считаются отказом доставки;
// повторных попыток клиент не делает.
func (c *Client) Send(ctx context.Context, msg Message) error {
	const op = "emailclient.Send"

	ctx, cancel := context.WithTimeout(ctx, c.sendTimeout)
	defer cancel()

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/email", &buf)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.authToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%s: unexpected status: %s", op, resp.Status)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
