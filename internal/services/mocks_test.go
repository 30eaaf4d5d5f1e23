// Файл: internal/services/mocks_test.go
package services

import (
	"context"
	"errors"
	"io"
	"time"

	"print-orders/internal/dto"
	"print-orders/internal/entities"
	"print-orders/internal/integrations/momo"
)

// Ручные заглушки: поведение подставляется функциями-полями,
// незаданный метод падает с понятной ошибкой.

type mockPrintRequestRepo struct {
	CreateFunc                 func(ctx context.Context, payload dto.CreatePrintRequestDTO, attachments []entities.Attachment) (*entities.PrintRequest, error)
	FindByIDFunc               func(ctx context.Context, id uint64) (*entities.PrintRequest, error)
	FindAllFunc                func(ctx context.Context) ([]entities.PrintRequest, error)
	FindByPaymentReferenceFunc func(ctx context.Context, reference string) (*entities.PrintRequest, error)
	UpdateFieldsFunc           func(ctx context.Context, id uint64, fields dto.UpdatePrintRequestFieldsDTO) (*entities.PrintRequest, error)
}

func (m *mockPrintRequestRepo) Create(ctx context.Context, payload dto.CreatePrintRequestDTO, attachments []entities.Attachment) (*entities.PrintRequest, error) {
	if m.CreateFunc == nil {
		return nil, errors.New("mockPrintRequestRepo.Create не настроен")
	}
	return m.CreateFunc(ctx, payload, attachments)
}

func (m *mockPrintRequestRepo) FindByID(ctx context.Context, id uint64) (*entities.PrintRequest, error) {
	if m.FindByIDFunc == nil {
		return nil, errors.New("mockPrintRequestRepo.FindByID не настроен")
	}
	return m.FindByIDFunc(ctx, id)
}

func (m *mockPrintRequestRepo) FindAll(ctx context.Context) ([]entities.PrintRequest, error) {
	if m.FindAllFunc == nil {
		return nil, errors.New("mockPrintRequestRepo.FindAll не настроен")
	}
	return m.FindAllFunc(ctx)
}

func (m *mockPrintRequestRepo) FindByPaymentReference(ctx context.Context, reference string) (*entities.PrintRequest, error) {
	if m.FindByPaymentReferenceFunc == nil {
		return nil, errors.New("mockPrintRequestRepo.FindByPaymentReference не настроен")
	}
	return m.FindByPaymentReferenceFunc(ctx, reference)
}

func (m *mockPrintRequestRepo) UpdateFields(ctx context.Context, id uint64, fields dto.UpdatePrintRequestFieldsDTO) (*entities.PrintRequest, error) {
	if m.UpdateFieldsFunc == nil {
		return nil, errors.New("mockPrintRequestRepo.UpdateFields не настроен")
	}
	return m.UpdateFieldsFunc(ctx, id, fields)
}

type mockMomoProvider struct {
	RequestToPayFunc         func(ctx context.Context, amount float64, phoneNumber string, externalID string) (string, *momo.TransactionDTO, error)
	GetTransactionStatusFunc func(ctx context.Context, referenceID string) (*momo.TransactionDTO, error)

	RequestToPayCalls         int
	GetTransactionStatusCalls int
}

func (m *mockMomoProvider) RequestToPay(ctx context.Context, amount float64, phoneNumber string, externalID string) (string, *momo.TransactionDTO, error) {
	m.RequestToPayCalls++
	if m.RequestToPayFunc == nil {
		return "", nil, errors.New("mockMomoProvider.RequestToPay не настроен")
	}
	return m.RequestToPayFunc(ctx, amount, phoneNumber, externalID)
}

func (m *mockMomoProvider) GetTransactionStatus(ctx context.Context, referenceID string) (*momo.TransactionDTO, error) {
	m.GetTransactionStatusCalls++
	if m.GetTransactionStatusFunc == nil {
		return nil, errors.New("mockMomoProvider.GetTransactionStatus не настроен")
	}
	return m.GetTransactionStatusFunc(ctx, referenceID)
}

type mockFileStorage struct {
	SaveFunc  func(file io.Reader, originalFileName string, prefix string) (string, error)
	SavedName []string
}

func (m *mockFileStorage) Save(file io.Reader, originalFileName string, prefix string) (string, error) {
	m.SavedName = append(m.SavedName, originalFileName)
	if m.SaveFunc == nil {
		return prefix + "/" + originalFileName, nil
	}
	return m.SaveFunc(file, originalFileName, prefix)
}

func (m *mockFileStorage) Delete(filePath string) error { return nil }

type mockEquipmentRepo struct {
	GetEquipmentsFunc   func(ctx context.Context) ([]entities.Equipment, error)
	FindEquipmentFunc   func(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipmentFunc func(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipmentFunc func(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipmentFunc func(ctx context.Context, id uint64) (*entities.Equipment, error)

	GetEquipmentsCalls int
}

func (m *mockEquipmentRepo) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	m.GetEquipmentsCalls++
	if m.GetEquipmentsFunc == nil {
		return nil, errors.New("mockEquipmentRepo.GetEquipments не настроен")
	}
	return m.GetEquipmentsFunc(ctx)
}

func (m *mockEquipmentRepo) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	if m.FindEquipmentFunc == nil {
		return nil, errors.New("mockEquipmentRepo.FindEquipment не настроен")
	}
	return m.FindEquipmentFunc(ctx, id)
}

func (m *mockEquipmentRepo) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	if m.CreateEquipmentFunc == nil {
		return nil, errors.New("mockEquipmentRepo.CreateEquipment не настроен")
	}
	return m.CreateEquipmentFunc(ctx, payload)
}

func (m *mockEquipmentRepo) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	if m.UpdateEquipmentFunc == nil {
		return nil, errors.New("mockEquipmentRepo.UpdateEquipment не настроен")
	}
	return m.UpdateEquipmentFunc(ctx, id, payload)
}

func (m *mockEquipmentRepo) DeleteEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	if m.DeleteEquipmentFunc == nil {
		return nil, errors.New("mockEquipmentRepo.DeleteEquipment не настроен")
	}
	return m.DeleteEquipmentFunc(ctx, id)
}

// mockCacheRepo — кеш в памяти, без TTL.
type mockCacheRepo struct {
	store    map[string]string
	DelCalls int
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{store: make(map[string]string)}
}

func (m *mockCacheRepo) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("mockCacheRepo: ожидалась строка")
	}
	m.store[key] = s
	return nil
}

func (m *mockCacheRepo) Get(ctx context.Context, key string) (string, error) {
	value, ok := m.store[key]
	if !ok {
		return "", errors.New("ключ не найден")
	}
	return value, nil
}

func (m *mockCacheRepo) Del(ctx context.Context, keys ...string) error {
	m.DelCalls++
	for _, key := range keys {
		delete(m.store, key)
	}
	return nil
}
