package momo

import (
	"fmt"

	"print-orders/internal/entities"
	apperrors "print-orders/pkg/errors"
)

// MapStatus переводит словарь статусов MoMo в трёхзначный статус оплаты.
// Незнакомое значение — протокольная ошибка, а не Pending: выдумывать
// состояние расчёта нельзя.
func MapStatus(gatewayStatus string) (string, error) {
	switch gatewayStatus {
	case "SUCCESSFUL":
		return entities.PaymentStatusPaid, nil
	case "FAILED", "REJECTED", "TIMEOUT":
		return entities.PaymentStatusFailed, nil
	case "PENDING", "CREATED", "ONGOING":
		return entities.PaymentStatusPending, nil
	default:
		return "", fmt.Errorf("%w: неизвестный статус транзакции %q", apperrors.ErrGatewayProtocol, gatewayStatus)
	}
}
