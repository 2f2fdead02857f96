package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 资源附件上传相关常量
const (
	MimePDF         = "application/pdf"
	MimeOctetStream = "application/octet-stream"
)

var (
	AllowedAttachmentExtensions = []string{".pdf", ".md", ".txt", ".zip", ".png", ".jpg"}
)
