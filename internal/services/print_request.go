package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"

	"print-orders/config"
	"print-orders/internal/dto"
	"print-orders/internal/entities"
	"print-orders/internal/repositories"
	apperrors "print-orders/pkg/errors"
	"print-orders/pkg/filestorage"
)

// PrintRequestServiceInterface — жизненный цикл заявки на печать.
type PrintRequestServiceInterface interface {
	Submit(ctx context.Context, payload dto.CreatePrintRequestDTO, files []*multipart.FileHeader) (*dto.PrintRequestDTO, error)
	FindAll(ctx context.Context) ([]dto.PrintRequestDTO, error)
	FindByID(ctx context.Context, id uint64) (*dto.PrintRequestDTO, error)
	UpdateStatus(ctx context.Context, id uint64, status string) (*dto.PrintRequestDTO, error)
	SetQuotation(ctx context.Context, id uint64, amount float64) (*dto.PrintRequestDTO, error)
	UpdatePaymentStatus(ctx context.Context, id uint64, paymentStatus string) (*dto.PrintRequestDTO, error)
}

type PrintRequestService struct {
	repo        repositories.PrintRequestRepositoryInterface
	fileStorage filestorage.FileStorageInterface
	uploadRules config.UploadRules
	logger      *zap.Logger
}

func NewPrintRequestService(
	repo repositories.PrintRequestRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) PrintRequestServiceInterface {
	return &PrintRequestService{
		repo:        repo,
		fileStorage: fileStorage,
		uploadRules: config.PrintDocuments,
		logger:      logger,
	}
}

// Submit сохраняет файлы и создаёт заявку.
// Если запись заявки в БД не удалась, уже сохранённые файлы остаются на
// диске без ссылающейся заявки — отката хранилища нет, это осознанный
// пробел (см. DESIGN.md).
func (s *PrintRequestService) Submit(ctx context.Context, payload dto.CreatePrintRequestDTO, files []*multipart.FileHeader) (*dto.PrintRequestDTO, error) {
	if len(files) > s.uploadRules.MaxFiles {
		return nil, apperrors.NewInvalidInputError("слишком много файлов: максимум %d", s.uploadRules.MaxFiles)
	}

	attachments := make([]entities.Attachment, 0, len(files))
	for _, fileHeader := range files {
		if fileHeader.Size > s.uploadRules.MaxSizeMB*1024*1024 {
			return nil, apperrors.NewInvalidInputError("файл %s больше %d МБ", fileHeader.Filename, s.uploadRules.MaxSizeMB)
		}
		if mimeType := fileHeader.Header.Get("Content-Type"); mimeType != "" && !s.uploadRules.Allows(mimeType) {
			return nil, apperrors.NewInvalidInputError("тип файла %s не поддерживается", mimeType)
		}

		src, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageFailure, err)
		}

		filePath, err := s.fileStorage.Save(src, fileHeader.Filename, s.uploadRules.PathPrefix)
		src.Close()
		if err != nil {
			s.logger.Error("не удалось сохранить файл", zap.String("file", fileHeader.Filename), zap.Error(err))
			return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageFailure, err)
		}

		attachments = append(attachments, entities.Attachment{
			FileName: fileHeader.Filename,
			FilePath: filePath,
			FileSize: fileHeader.Size,
		})
	}

	request, err := s.repo.Create(ctx, payload, attachments)
	if err != nil {
		s.logger.Error("не удалось создать заявку, сохранённые файлы осиротели",
			zap.Int("files_stored", len(attachments)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("создана заявка на печать",
		zap.Uint64("request_id", request.ID),
		zap.Int("attachments", len(request.Attachments)),
	)
	return mapPrintRequest(request), nil
}

func (s *PrintRequestService) FindAll(ctx context.Context) ([]dto.PrintRequestDTO, error) {
	requests, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("не удалось получить список заявок", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PrintRequestDTO, 0, len(requests))
	for i := range requests {
		result = append(result, *mapPrintRequest(&requests[i]))
	}
	return result, nil
}

func (s *PrintRequestService) FindByID(ctx context.Context, id uint64) (*dto.PrintRequestDTO, error) {
	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapPrintRequest(request), nil
}

// UpdateStatus пишет статус без проверки допустимости перехода:
// единственное ограничение — закрытый словарь значений.
func (s *PrintRequestService) UpdateStatus(ctx context.Context, id uint64, status string) (*dto.PrintRequestDTO, error) {
	if !entities.IsValidRequestStatus(status) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, status)
	}

	request, err := s.repo.UpdateFields(ctx, id, dto.UpdatePrintRequestFieldsDTO{Status: &status})
	if err != nil {
		return nil, err
	}
	return mapPrintRequest(request), nil
}

func (s *PrintRequestService) SetQuotation(ctx context.Context, id uint64, amount float64) (*dto.PrintRequestDTO, error) {
	// Ноль — допустимая стоимость, отрицательная — нет.
	if amount < 0 {
		return nil, fmt.Errorf("%w: стоимость не может быть отрицательной", apperrors.ErrBadRequest)
	}

	request, err := s.repo.UpdateFields(ctx, id, dto.UpdatePrintRequestFieldsDTO{QuotationAmount: &amount})
	if err != nil {
		return nil, err
	}

	s.logger.Info("выставлена стоимость заявки",
		zap.Uint64("request_id", id),
		zap.Float64("amount", amount),
	)
	return mapPrintRequest(request), nil
}

// UpdatePaymentStatus — ручная правка статуса оплаты оператором.
func (s *PrintRequestService) UpdatePaymentStatus(ctx context.Context, id uint64, paymentStatus string) (*dto.PrintRequestDTO, error) {
	if !entities.IsValidPaymentStatus(paymentStatus) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, paymentStatus)
	}

	request, err := s.repo.UpdateFields(ctx, id, dto.UpdatePrintRequestFieldsDTO{PaymentStatus: &paymentStatus})
	if err != nil {
		return nil, err
	}
	return mapPrintRequest(request), nil
}

func mapPrintRequest(e *entities.PrintRequest) *dto.PrintRequestDTO {
	files := make([]dto.AttachmentDTO, 0, len(e.Attachments))
	for _, a := range e.Attachments {
		files = append(files, dto.AttachmentDTO{
			ID:        a.ID,
			Name:      a.FileName,
			Path:      a.FilePath,
			Size:      a.FileSize,
			URL:       "/uploads/" + a.FilePath,
			CreatedAt: a.CreatedAt,
		})
	}

	return &dto.PrintRequestDTO{
		ID:               e.ID,
		DocumentType:     e.DocumentType,
		PrintType:        e.PrintType,
		Copies:           e.Copies,
		DocumentFormat:   e.DocumentFormat,
		PaperSize:        e.PaperSize,
		Description:      e.Description,
		DescriptionType:  e.DescriptionType,
		TextDescription:  e.TextDescription.Ptr(),
		Status:           e.Status,
		QuotationAmount:  e.QuotationAmount.Ptr(),
		PaymentStatus:    e.PaymentStatus,
		PaymentReference: e.PaymentReference.Ptr(),
		Files:            files,
		CreatedAt:        e.CreatedAt,
	}
}
