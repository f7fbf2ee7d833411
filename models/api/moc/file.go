package mocapimodels

import (
	"time"

	dbmodels "moc-tools-backend/models/db"
)

type FileView struct {
	ID          string    `json:"id"`
	RequestID   string    `json:"request_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedBy  string    `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func FileConvert(rec dbmodels.FileRecord) FileView {
	return FileView{
		ID:          rec.ID,
		RequestID:   rec.RequestID,
		FileName:    rec.FileName,
		ContentType: rec.ContentType,
		Size:        rec.Size,
		UploadedBy:  rec.UploadedBy,
		CreatedAt:   rec.CreatedAt,
	}
}
