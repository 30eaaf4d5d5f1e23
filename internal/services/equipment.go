package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"print-orders/internal/dto"
	"print-orders/internal/entities"
	"print-orders/internal/repositories"
)

const (
	equipmentsCacheKey = "equipments:all"
	equipmentsCacheTTL = 5 * time.Minute
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context) ([]dto.EquipmentDTO, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	cacheRepo           repositories.CacheRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		cacheRepo:           cacheRepo,
		logger:              logger,
	}
}

// GetEquipments отдаёт каталог из кеша; промах или битый кеш — идём в БД.
func (s *EquipmentService) GetEquipments(ctx context.Context) ([]dto.EquipmentDTO, error) {
	if cached, err := s.cacheRepo.Get(ctx, equipmentsCacheKey); err == nil && cached != "" {
		var result []dto.EquipmentDTO
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
	}

	equipments, err := s.equipmentRepository.GetEquipments(ctx)
	if err != nil {
		s.logger.Error("не удалось получить список оборудования", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EquipmentDTO, 0, len(equipments))
	for i := range equipments {
		result = append(result, *mapEquipment(&equipments[i]))
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := s.cacheRepo.Set(ctx, equipmentsCacheKey, string(raw), equipmentsCacheTTL); err != nil {
			s.logger.Debug("не удалось записать каталог в кеш", zap.Error(err))
		}
	}

	return result, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapEquipment(equipment), nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepository.CreateEquipment(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании оборудования", zap.Error(err))
		return nil, err
	}
	s.invalidateCache(ctx)
	return mapEquipment(equipment), nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepository.UpdateEquipment(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return mapEquipment(equipment), nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepository.DeleteEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return mapEquipment(equipment), nil
}

func (s *EquipmentService) invalidateCache(ctx context.Context) {
	if err := s.cacheRepo.Del(ctx, equipmentsCacheKey); err != nil {
		s.logger.Debug("не удалось сбросить кеш каталога", zap.Error(err))
	}
}

func mapEquipment(e *entities.Equipment) *dto.EquipmentDTO {
	return &dto.EquipmentDTO{
		ID:        e.ID,
		Name:      e.Name,
		Category:  e.Category,
		Price:     e.Price.Ptr(),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
