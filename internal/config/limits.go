package config

const (
	// Chat
	ChatHistoryLimit = 50

	// Pagination
	DefaultPageSize = 10
	MaxPageSize     = 100

	// Uploads
	MaxUploadSize = 20 << 20 // 20 MiB
)
