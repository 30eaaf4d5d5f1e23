// Файл: internal/services/print_request_test.go
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"print-orders/internal/dto"
	"print-orders/internal/entities"
	apperrors "print-orders/pkg/errors"
)

// makeFileHeaders собирает настоящие multipart.FileHeader, прогоняя
// содержимое через multipart-кодирование, как это делает echo.
func makeFileHeaders(t *testing.T, files ...testFile) []*multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, f.name))
		header.Set("Content-Type", f.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["files"]
}

type testFile struct {
	name        string
	contentType string
	content     []byte
}

func pdf(name string, content string) testFile {
	return testFile{name: name, contentType: "application/pdf", content: []byte(content)}
}

func TestSubmitStoresFilesInOrder(t *testing.T) {
	storage := &mockFileStorage{}
	var createdAttachments []entities.Attachment
	repo := &mockPrintRequestRepo{
		CreateFunc: func(ctx context.Context, payload dto.CreatePrintRequestDTO, attachments []entities.Attachment) (*entities.PrintRequest, error) {
			createdAttachments = attachments
			request := &entities.PrintRequest{
				ID:            1,
				DocumentType:  payload.DocumentType,
				Copies:        payload.Copies,
				Status:        entities.RequestStatusPending,
				PaymentStatus: entities.PaymentStatusPending,
			}
			for i, a := range attachments {
				a.ID = uint64(i + 1)
				request.Attachments = append(request.Attachments, a)
			}
			return request, nil
		},
	}
	svc := NewPrintRequestService(repo, storage, zap.NewNop())

	files := makeFileHeaders(t,
		pdf("first.pdf", "first"),
		pdf("second.pdf", "second"),
		pdf("third.pdf", "third"),
	)
	result, err := svc.Submit(context.Background(), dto.CreatePrintRequestDTO{DocumentType: "Flyer", Copies: 3}, files)
	require.NoError(t, err)

	// Порядок загрузки сохраняется и в хранилище, и в заявке.
	assert.Equal(t, []string{"first.pdf", "second.pdf", "third.pdf"}, storage.SavedName)
	require.Len(t, createdAttachments, 3)
	assert.Equal(t, "first.pdf", createdAttachments[0].FileName)
	assert.Equal(t, "third.pdf", createdAttachments[2].FileName)

	require.Len(t, result.Files, 3)
	assert.Equal(t, "/uploads/requests/first.pdf", result.Files[0].URL)
	assert.Equal(t, entities.RequestStatusPending, result.Status)
	assert.Equal(t, entities.PaymentStatusPending, result.PaymentStatus)
}

func TestSubmitRejectsTooManyFiles(t *testing.T) {
	storage := &mockFileStorage{}
	svc := NewPrintRequestService(&mockPrintRequestRepo{}, storage, zap.NewNop())

	var many []testFile
	for i := 0; i < 11; i++ {
		many = append(many, pdf(fmt.Sprintf("doc-%d.pdf", i), "x"))
	}
	_, err := svc.Submit(context.Background(), dto.CreatePrintRequestDTO{}, makeFileHeaders(t, many...))

	var invalidInput *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalidInput)
	assert.Empty(t, storage.SavedName, "До проверки лимита ни один файл не должен сохраняться")
}

func TestSubmitRejectsDisallowedMimeType(t *testing.T) {
	storage := &mockFileStorage{}
	svc := NewPrintRequestService(&mockPrintRequestRepo{}, storage, zap.NewNop())

	files := makeFileHeaders(t, testFile{name: "tool.exe", contentType: "application/x-msdownload", content: []byte("MZ")})
	_, err := svc.Submit(context.Background(), dto.CreatePrintRequestDTO{}, files)

	var invalidInput *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalidInput)
	assert.Empty(t, storage.SavedName)
}

func TestSubmitStorageFailure(t *testing.T) {
	storage := &mockFileStorage{
		SaveFunc: func(file io.Reader, name string, prefix string) (string, error) {
			return "", errors.New("диск переполнен")
		},
	}
	svc := NewPrintRequestService(&mockPrintRequestRepo{}, storage, zap.NewNop())

	_, err := svc.Submit(context.Background(), dto.CreatePrintRequestDTO{}, makeFileHeaders(t, pdf("doc.pdf", "x")))
	assert.ErrorIs(t, err, apperrors.ErrStorageFailure)
}

func TestSubmitDatabaseFailureLeavesFilesStored(t *testing.T) {
	// Файлы уже на диске, запись заявки не удалась: отката хранилища нет,
	// ошибка уходит наверх как есть.
	storage := &mockFileStorage{}
	dbErr := errors.New("соединение потеряно")
	repo := &mockPrintRequestRepo{
		CreateFunc: func(ctx context.Context, payload dto.CreatePrintRequestDTO, attachments []entities.Attachment) (*entities.PrintRequest, error) {
			return nil, dbErr
		},
	}
	svc := NewPrintRequestService(repo, storage, zap.NewNop())

	_, err := svc.Submit(context.Background(), dto.CreatePrintRequestDTO{}, makeFileHeaders(t, pdf("doc.pdf", "x")))

	assert.ErrorIs(t, err, dbErr)
	assert.Len(t, storage.SavedName, 1, "Сохранённый файл остаётся в хранилище")
}

func TestSetQuotation(t *testing.T) {
	repo := &mockPrintRequestRepo{
		UpdateFieldsFunc: func(ctx context.Context, id uint64, fields dto.UpdatePrintRequestFieldsDTO) (*entities.PrintRequest, error) {
			require.NotNil(t, fields.QuotationAmount)
			return &entities.PrintRequest{ID: id, QuotationAmount: null.Float64From(*fields.QuotationAmount)}, nil
		},
	}
	svc := NewPrintRequestService(repo, &mockFileStorage{}, zap.NewNop())

	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := svc.SetQuotation(context.Background(), 1, -1)
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})

	t.Run("zero is a valid quotation", func(t *testing.T) {
		result, err := svc.SetQuotation(context.Background(), 1, 0)
		require.NoError(t, err)
		require.NotNil(t, result.QuotationAmount)
		assert.Equal(t, float64(0), *result.QuotationAmount)
	})

	t.Run("positive amount is stored", func(t *testing.T) {
		result, err := svc.SetQuotation(context.Background(), 1, 2500.50)
		require.NoError(t, err)
		require.NotNil(t, result.QuotationAmount)
		assert.Equal(t, 2500.50, *result.QuotationAmount)
	})
}

func TestUpdateStatus(t *testing.T) {
	repo := &mockPrintRequestRepo{
		UpdateFieldsFunc: func(ctx context.Context, id uint64, fields dto.UpdatePrintRequestFieldsDTO) (*entities.PrintRequest, error) {
			require.NotNil(t, fields.Status)
			return &entities.PrintRequest{ID: id, Status: *fields.Status}, nil
		},
	}
	svc := NewPrintRequestService(repo, &mockFileStorage{}, zap.NewNop())

	t.Run("known status is accepted", func(t *testing.T) {
		result, err := svc.UpdateStatus(context.Background(), 1, entities.RequestStatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, entities.RequestStatusAccepted, result.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(context.Background(), 1, "InProgress")
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	})

	t.Run("payment vocabulary is separate", func(t *testing.T) {
		_, err := svc.UpdatePaymentStatus(context.Background(), 1, entities.RequestStatusCompleted)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus, "Completed — статус заявки, а не оплаты")
	})
}
