package repositories

import (
	"context"
	"errors"
	"fmt"

	"print-orders/internal/dto"
	"print-orders/internal/entities"
	apperrors "print-orders/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const printRequestFields = `id, document_type, print_type, copies, document_format, paper_size,
	description, description_type, text_description, status, quotation_amount,
	payment_status, payment_reference, created_at`

type PrintRequestRepositoryInterface interface {
	Create(ctx context.Context, payload dto.CreatePrintRequestDTO, attachments []entities.Attachment) (*entities.PrintRequest, error)
	FindByID(ctx context.Context, id uint64) (*entities.PrintRequest, error)
	FindAll(ctx context.Context) ([]entities.PrintRequest, error)
	FindByPaymentReference(ctx context.Context, reference string) (*entities.PrintRequest, error)
	UpdateFields(ctx context.Context, id uint64, fields dto.UpdatePrintRequestFieldsDTO) (*entities.PrintRequest, error)
}

type PrintRequestRepository struct {
	storage        *pgxpool.Pool
	attachmentRepo AttachmentRepositoryInterface
}

func NewPrintRequestRepository(storage *pgxpool.Pool, attachmentRepo AttachmentRepositoryInterface) PrintRequestRepositoryInterface {
	return &PrintRequestRepository{
		storage:        storage,
		attachmentRepo: attachmentRepo,
	}
}

// Create сохраняет заявку и её вложения в одной транзакции.
// Статусы и стоимость задаются базой: новая заявка всегда Pending/Pending
// с пустой стоимостью, что бы ни пришло от клиента.
func (r *PrintRequestRepository) Create(ctx context.Context, payload dto.CreatePrintRequestDTO, attachments []entities.Attachment) (*entities.PrintRequest, error) {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageFailure, err)
	}
	defer tx.Rollback(ctx)

	query := fmt.Sprintf(`
		INSERT INTO print_requests
		(document_type, print_type, copies, document_format, paper_size, description, description_type, text_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`, printRequestFields)

	copies := payload.Copies
	if copies <= 0 {
		copies = 1
	}
	descriptionType := payload.DescriptionType
	if descriptionType == "" {
		descriptionType = "Text"
	}

	var textDescription *string
	if payload.TextDescription != "" {
		textDescription = &payload.TextDescription
	}

	request, err := scanPrintRequest(tx.QueryRow(ctx, query,
		payload.DocumentType, payload.PrintType, copies, payload.DocumentFormat,
		payload.PaperSize, payload.Description, descriptionType, textDescription,
	))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageFailure, err)
	}

	// Вложения вставляются в порядке загрузки: их id задают порядок показа.
	for i := range attachments {
		attachments[i].PrintRequestID = request.ID
		if err := r.attachmentRepo.Create(ctx, tx, &attachments[i]); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageFailure, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageFailure, err)
	}

	request.Attachments = attachments
	return request, nil
}

func (r *PrintRequestRepository) FindByID(ctx context.Context, id uint64) (*entities.PrintRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM print_requests WHERE id = $1`, printRequestFields)

	request, err := scanPrintRequest(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	attachments, err := r.attachmentRepo.FindAllByRequestID(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	request.Attachments = attachments
	return request, nil
}

func (r *PrintRequestRepository) FindByPaymentReference(ctx context.Context, reference string) (*entities.PrintRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM print_requests WHERE payment_reference = $1`, printRequestFields)

	request, err := scanPrintRequest(r.storage.QueryRow(ctx, query, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	attachments, err := r.attachmentRepo.FindAllByRequestID(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	request.Attachments = attachments
	return request, nil
}

// FindAll возвращает заявки в порядке создания, с уже подтянутыми вложениями.
func (r *PrintRequestRepository) FindAll(ctx context.Context) ([]entities.PrintRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM print_requests ORDER BY id ASC`, printRequestFields)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []entities.PrintRequest
	var ids []uint64
	for rows.Next() {
		request, err := scanPrintRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *request)
		ids = append(ids, request.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return []entities.PrintRequest{}, nil
	}

	// Один запрос на все вложения вместо N+1.
	attachmentsByRequest, err := r.attachmentRepo.FindAllByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		requests[i].Attachments = attachmentsByRequest[requests[i].ID]
	}
	return requests, nil
}

// UpdateFields делает частичное обновление одним UPDATE-запросом:
// меняются только переданные поля, конкурирующие вызовы не затирают
// чужие колонки.
func (r *PrintRequestRepository) UpdateFields(ctx context.Context, id uint64, fields dto.UpdatePrintRequestFieldsDTO) (*entities.PrintRequest, error) {
	builder := sq.Update("print_requests").PlaceholderFormat(sq.Dollar)

	changed := false
	if fields.Status != nil {
		builder = builder.Set("status", *fields.Status)
		changed = true
	}
	if fields.QuotationAmount != nil {
		builder = builder.Set("quotation_amount", *fields.QuotationAmount)
		changed = true
	}
	if fields.PaymentStatus != nil {
		builder = builder.Set("payment_status", *fields.PaymentStatus)
		changed = true
	}
	if fields.PaymentReference != nil {
		builder = builder.Set("payment_reference", *fields.PaymentReference)
		changed = true
	}
	if !changed {
		return r.FindByID(ctx, id)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + printRequestFields).
		ToSql()
	if err != nil {
		return nil, err
	}

	request, err := scanPrintRequest(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	attachments, err := r.attachmentRepo.FindAllByRequestID(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	request.Attachments = attachments
	return request, nil
}

func scanPrintRequest(row pgx.Row) (*entities.PrintRequest, error) {
	var request entities.PrintRequest
	err := row.Scan(
		&request.ID,
		&request.DocumentType,
		&request.PrintType,
		&request.Copies,
		&request.DocumentFormat,
		&request.PaperSize,
		&request.Description,
		&request.DescriptionType,
		&request.TextDescription,
		&request.Status,
		&request.QuotationAmount,
		&request.PaymentStatus,
		&request.PaymentReference,
		&request.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}
