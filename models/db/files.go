package dbmodels

// FileRecord - вложение к заявке, тело файла хранится в S3
type FileRecord struct {
	BaseOrgModel
	RequestID   string `gorm:"type:varchar(36);index"`
	FileName    string `gorm:"type:varchar(255)"`
	ContentType string `gorm:"type:varchar(255)"`
	Size        int64
	S3Key       string `gorm:"type:varchar(500)"`
	UploadedBy  string `gorm:"type:varchar(36)"`
}
