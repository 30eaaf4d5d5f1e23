package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"print-orders/internal/dto"
	"print-orders/internal/entities"
	"print-orders/internal/integrations/momo"
	"print-orders/internal/repositories"
	apperrors "print-orders/pkg/errors"
)

// PaymentServiceInterface — инициация платежа и сверка его статуса.
// Платёж по своей природе fire-and-forget: инициация и опрос — две
// независимые операции, и сервис никогда не придумывает Paid/Failed
// без явного ответа шлюза.
type PaymentServiceInterface interface {
	RequestPayment(ctx context.Context, payload dto.RequestPaymentDTO) (*dto.PaymentInitiatedDTO, error)
	RefreshPaymentStatus(ctx context.Context, requestID uint64) (*dto.PrintRequestDTO, error)
	ReconcileByReference(ctx context.Context, referenceID string) (*momo.TransactionDTO, error)
}

type PaymentService struct {
	repo     repositories.PrintRequestRepositoryInterface
	provider momo.ProviderInterface
	logger   *zap.Logger
}

func NewPaymentService(
	repo repositories.PrintRequestRepositoryInterface,
	provider momo.ProviderInterface,
	logger *zap.Logger,
) PaymentServiceInterface {
	return &PaymentService{
		repo:     repo,
		provider: provider,
		logger:   logger,
	}
}

// RequestPayment инициирует списание по заявке.
// Требует уже выставленной стоимости и точного совпадения суммы.
// Пока по заявке висит неподтверждённый референс, повторная инициация
// отклоняется: референс назначается не более одного раза за попытку,
// новая попытка разрешена только после зафиксированного Failed.
func (s *PaymentService) RequestPayment(ctx context.Context, payload dto.RequestPaymentDTO) (*dto.PaymentInitiatedDTO, error) {
	request, err := s.repo.FindByID(ctx, payload.RequestID)
	if err != nil {
		return nil, err
	}

	if !request.QuotationAmount.Valid {
		return nil, apperrors.ErrQuotationNotSet
	}
	if payload.Amount == nil || *payload.Amount != request.QuotationAmount.Float64 {
		return nil, apperrors.ErrAmountMismatch
	}
	if request.PaymentReference.Valid && request.PaymentStatus != entities.PaymentStatusFailed {
		return nil, apperrors.ErrPaymentAlreadyPending
	}

	referenceID, gatewayBody, err := s.provider.RequestToPay(ctx, *payload.Amount, payload.PhoneNumber, strconv.FormatUint(request.ID, 10))
	if err != nil {
		s.logger.Error("не удалось инициировать платёж",
			zap.Uint64("request_id", request.ID),
			zap.Error(err),
		)
		return nil, err
	}

	pending := entities.PaymentStatusPending
	if _, err := s.repo.UpdateFields(ctx, request.ID, dto.UpdatePrintRequestFieldsDTO{
		PaymentReference: &referenceID,
		PaymentStatus:    &pending,
	}); err != nil {
		// Платёж уже в обработке у шлюза, а референс не записан — это
		// нужно видеть в логах, чтобы сверить вручную.
		s.logger.Error("платёж инициирован, но референс не записан в заявку",
			zap.Uint64("request_id", request.ID),
			zap.String("reference_id", referenceID),
			zap.Error(err),
		)
		return nil, err
	}

	return &dto.PaymentInitiatedDTO{
		ReferenceID: referenceID,
		Gateway:     transactionToMap(gatewayBody),
	}, nil
}

// RefreshPaymentStatus опрашивает шлюз и записывает статус в заявку.
// Идемпотентна: до расчёта повторные вызовы просто перечитывают Pending.
func (s *PaymentService) RefreshPaymentStatus(ctx context.Context, requestID uint64) (*dto.PrintRequestDTO, error) {
	request, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !request.PaymentReference.Valid {
		// До инициации платежа опрашивать нечего — до шлюза не идём.
		return nil, apperrors.ErrPaymentNotRequested
	}

	transaction, err := s.provider.GetTransactionStatus(ctx, request.PaymentReference.String)
	if err != nil {
		return nil, err
	}

	mapped, err := momo.MapStatus(transaction.Status)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateFields(ctx, requestID, dto.UpdatePrintRequestFieldsDTO{PaymentStatus: &mapped})
	if err != nil {
		return nil, err
	}
	return mapPrintRequest(updated), nil
}

// ReconcileByReference опрашивает шлюз по референсу и, если референс
// принадлежит какой-то заявке, записывает в неё статус. Референсы, о
// которых мы не знаем, отдаются как есть.
func (s *PaymentService) ReconcileByReference(ctx context.Context, referenceID string) (*momo.TransactionDTO, error) {
	transaction, err := s.provider.GetTransactionStatus(ctx, referenceID)
	if err != nil {
		return nil, err
	}

	mapped, err := momo.MapStatus(transaction.Status)
	if err != nil {
		return nil, err
	}

	request, err := s.repo.FindByPaymentReference(ctx, referenceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Debug("референс не привязан ни к одной заявке", zap.String("reference_id", referenceID))
			return transaction, nil
		}
		return nil, err
	}

	if _, err := s.repo.UpdateFields(ctx, request.ID, dto.UpdatePrintRequestFieldsDTO{PaymentStatus: &mapped}); err != nil {
		return nil, err
	}

	s.logger.Info("статус оплаты сверен со шлюзом",
		zap.Uint64("request_id", request.ID),
		zap.String("reference_id", referenceID),
		zap.String("payment_status", mapped),
	)
	return transaction, nil
}

func transactionToMap(t *momo.TransactionDTO) map[string]interface{} {
	if t == nil {
		return nil
	}
	raw, err := json.Marshal(t)
	if err != nil {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
