package config

// UploadRules — ограничения на загружаемые документы печати.
type UploadRules struct {
	AllowedMimeTypes []string
	MaxSizeMB        int64
	MaxFiles         int
	PathPrefix       string
}

// PrintDocuments — единственный контекст загрузки: файлы, прикладываемые к заявке на печать.
var PrintDocuments = UploadRules{
	AllowedMimeTypes: []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"image/jpeg", "image/png", "image/jpg",
	},
	MaxSizeMB:  20,
	MaxFiles:   10,
	PathPrefix: "requests",
}

// Allows сообщает, разрешён ли MIME-тип для загрузки.
func (r UploadRules) Allows(mimeType string) bool {
	for _, allowed := range r.AllowedMimeTypes {
		if allowed == mimeType {
			return true
		}
	}
	return false
}
