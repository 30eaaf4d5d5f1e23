package momo

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "print-orders/pkg/errors"
)

// getToken возвращает закешированный bearer-токен или получает новый.
// Обновление идёт под эксклюзивным Lock: при истёкшем токене несколько
// конкурентных вызовов дают ровно один запрос аутентификации к шлюзу,
// остальные дожидаются его результата.
func (p *Provider) getToken(ctx context.Context) (string, error) {
	p.tokenMutex.RLock()
	if p.token != "" && time.Now().Before(p.tokenExpiry.Add(-1*time.Minute)) {
		defer p.tokenMutex.RUnlock()
		return p.token, nil
	}
	p.tokenMutex.RUnlock()

	p.tokenMutex.Lock()
	defer p.tokenMutex.Unlock()

	// Повторная проверка внутри Lock: другой поток мог уже обновить токен.
	if p.token != "" && time.Now().Before(p.tokenExpiry.Add(-1*time.Minute)) {
		return p.token, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/collection/token/", nil)
	if err != nil {
		return "", fmt.Errorf("%w: ошибка создания запроса: %v", apperrors.ErrGatewayAuth, err)
	}

	basic := base64.StdEncoding.EncodeToString([]byte(p.apiUserID + ":" + p.apiKey))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Ocp-Apim-Subscription-Key", p.primaryKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrGatewayAuth, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: шлюз вернул статус %s, тело: %s", apperrors.ErrGatewayAuth, resp.Status, string(bodyBytes))
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		return "", fmt.Errorf("%w: ошибка парсинга ответа с токеном: %v", apperrors.ErrGatewayAuth, err)
	}

	if authResp.AccessToken == "" {
		return "", fmt.Errorf("%w: шлюз не вернул access_token", apperrors.ErrGatewayAuth)
	}

	p.token = authResp.AccessToken
	p.tokenExpiry = time.Now().Add(time.Second * time.Duration(authResp.ExpiresIn))

	return p.token, nil
}
