package entities

import "time"

// Attachment — файл, приложенный к заявке. Неизменяем после создания.
type Attachment struct {
	ID             uint64    `db:"id"`
	PrintRequestID uint64    `db:"print_request_id"`
	FileName       string    `db:"file_name"`
	FilePath       string    `db:"file_path"`
	FileSize       int64     `db:"file_size"`
	CreatedAt      time.Time `db:"created_at"`
}
