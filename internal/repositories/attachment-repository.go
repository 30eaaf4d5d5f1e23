package repositories

import (
	"context"

	"print-orders/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AttachmentRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, attachment *entities.Attachment) error
	FindAllByRequestID(ctx context.Context, requestID uint64) ([]entities.Attachment, error)
	FindAllByRequestIDs(ctx context.Context, requestIDs []uint64) (map[uint64][]entities.Attachment, error)
}

type AttachmentRepository struct {
	storage *pgxpool.Pool
}

func NewAttachmentRepository(storage *pgxpool.Pool) AttachmentRepositoryInterface {
	return &AttachmentRepository{
		storage: storage,
	}
}

// Create вставляет вложение внутри транзакции создания заявки.
func (r *AttachmentRepository) Create(ctx context.Context, tx pgx.Tx, attachment *entities.Attachment) error {
	query := `
		INSERT INTO attachments
		(print_request_id, file_name, file_path, file_size)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	return tx.QueryRow(ctx, query,
		attachment.PrintRequestID, attachment.FileName, attachment.FilePath, attachment.FileSize,
	).Scan(&attachment.ID, &attachment.CreatedAt)
}

// FindAllByRequestID возвращает вложения заявки в порядке загрузки.
func (r *AttachmentRepository) FindAllByRequestID(ctx context.Context, requestID uint64) ([]entities.Attachment, error) {
	query := `
		SELECT id, print_request_id, file_name, file_path, file_size, created_at
		FROM attachments
		WHERE print_request_id = $1
		ORDER BY id ASC`
	rows, err := r.storage.Query(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttachments(rows)
}

// FindAllByRequestIDs собирает вложения сразу для набора заявок.
func (r *AttachmentRepository) FindAllByRequestIDs(ctx context.Context, requestIDs []uint64) (map[uint64][]entities.Attachment, error) {
	query := `
		SELECT id, print_request_id, file_name, file_path, file_size, created_at
		FROM attachments
		WHERE print_request_id = ANY($1)
		ORDER BY print_request_id ASC, id ASC`
	rows, err := r.storage.Query(ctx, query, requestIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attachments, err := collectAttachments(rows)
	if err != nil {
		return nil, err
	}

	grouped := make(map[uint64][]entities.Attachment, len(requestIDs))
	for _, a := range attachments {
		grouped[a.PrintRequestID] = append(grouped[a.PrintRequestID], a)
	}
	return grouped, nil
}

func collectAttachments(rows pgx.Rows) ([]entities.Attachment, error) {
	var attachments []entities.Attachment
	for rows.Next() {
		var a entities.Attachment
		if err := rows.Scan(&a.ID, &a.PrintRequestID, &a.FileName, &a.FilePath, &a.FileSize, &a.CreatedAt); err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, rows.Err()
}
