package momo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"print-orders/pkg/config"
	apperrors "print-orders/pkg/errors"
)

// ProviderInterface — контракт платёжного шлюза для сервисного слоя.
// RequestToPay лишь ставит списание в обработку; итог расчёта узнаётся
// только последующим опросом GetTransactionStatus — плательщик
// подтверждает списание на своём устройстве, вне нашего запроса.
type ProviderInterface interface {
	RequestToPay(ctx context.Context, amount float64, phoneNumber string, externalID string) (string, *TransactionDTO, error)
	GetTransactionStatus(ctx context.Context, referenceID string) (*TransactionDTO, error)
}

// Provider — клиент MTN MoMo Collections API с кешем токена.
type Provider struct {
	httpClient *http.Client
	baseURL    string
	apiUserID  string
	apiKey     string
	primaryKey string
	targetEnv  string
	currency   string
	logger     *zap.Logger

	// Кеш токена. Один токен на процесс, под RWMutex.
	token       string
	tokenExpiry time.Time
	tokenMutex  sync.RWMutex
}

func New(cfg config.MomoConfig, logger *zap.Logger) ProviderInterface {
	return &Provider{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    cfg.BaseURL,
		apiUserID:  cfg.APIUserID,
		apiKey:     cfg.APIKey,
		primaryKey: cfg.PrimaryKey,
		targetEnv:  cfg.TargetEnvironment,
		currency:   cfg.Currency,
		logger:     logger.Named("momo_provider"),
	}
}

// RequestToPay инициирует списание и возвращает свежий референс.
// 2xx от шлюза означает «принято в обработку», не «оплачено».
func (p *Provider) RequestToPay(ctx context.Context, amount float64, phoneNumber string, externalID string) (string, *TransactionDTO, error) {
	token, err := p.getToken(ctx)
	if err != nil {
		return "", nil, err
	}

	referenceID := uuid.New().String()

	payload := RequestToPayPayload{
		Amount:     strconv.FormatFloat(amount, 'f', 2, 64),
		Currency:   p.currency,
		ExternalID: externalID,
		Payer: PayerDTO{
			PartyIDType: "MSISDN",
			PartyID:     phoneNumber,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/collection/v1_0/requesttopay", bytes.NewReader(body))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Reference-Id", referenceID)
	req.Header.Set("X-Target-Environment", p.targetEnv)
	req.Header.Set("Ocp-Apim-Subscription-Key", p.primaryKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", apperrors.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", nil, fmt.Errorf("%w: requesttopay вернул статус %s, тело: %s", apperrors.ErrGatewayUnavailable, resp.Status, string(respBody))
	}

	p.logger.Info("запрос на списание принят шлюзом",
		zap.String("reference_id", referenceID),
		zap.String("amount", payload.Amount),
	)

	// Sandbox обычно отвечает 202 с пустым телом; если тело есть — отдаём его.
	var accepted *TransactionDTO
	respBody, _ := io.ReadAll(resp.Body)
	if len(bytes.TrimSpace(respBody)) > 0 {
		accepted = &TransactionDTO{}
		if err := json.Unmarshal(respBody, accepted); err != nil {
			accepted = nil
		}
	}

	return referenceID, accepted, nil
}

// GetTransactionStatus опрашивает расчёт по референсу.
func (p *Provider) GetTransactionStatus(ctx context.Context, referenceID string) (*TransactionDTO, error) {
	token, err := p.getToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/collection/v1_0/requesttopay/"+referenceID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Target-Environment", p.targetEnv)
	req.Header.Set("Ocp-Apim-Subscription-Key", p.primaryKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	// Референс, неизвестный шлюзу, — ошибка, а не Pending.
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: шлюз не распознал референс %s", apperrors.ErrGatewayProtocol, referenceID)
	}
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: статусный эндпоинт вернул %s, тело: %s", apperrors.ErrGatewayUnavailable, resp.Status, string(respBody))
	}

	var transaction TransactionDTO
	if err := json.NewDecoder(resp.Body).Decode(&transaction); err != nil {
		return nil, fmt.Errorf("%w: ошибка парсинга ответа: %v", apperrors.ErrGatewayProtocol, err)
	}

	return &transaction, nil
}
