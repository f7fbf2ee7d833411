package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"moc-tools-backend/config"
	"moc-tools-backend/db"
	filestore "moc-tools-backend/lib/file-storage/store"
	mocapimodels "moc-tools-backend/models/api/moc"
	dbmodels "moc-tools-backend/models/db"
	s3client "moc-tools-backend/s3"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Upload(ctx context.Context, orgID, requestID, userID, fileName, contentType string, file []byte) (id string, err error)
	Get(ctx context.Context, orgID, fileID string) (rec *dbmodels.FileRecord, body []byte, err error)
	List(orgID, requestID string) ([]mocapimodels.FileView, error)
	Delete(ctx context.Context, orgID, fileID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: filestore.NewInstance(db.DB),
	}
}

type impl struct {
	store filestore.Provider
}

func (i impl) Upload(ctx context.Context, orgID, requestID, userID, fileName, contentType string, file []byte) (id string, err error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	s3Key := fmt.Sprintf("%s/%s/%s-%s", orgID, requestID, uuid.NewString(), fileName)
	_, err = s3client.Client.PutObject(ctx, config.Conf.S3.Bucket, s3Key,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки файла в хранилище")
	}
	rec := dbmodels.FileRecord{
		BaseOrgModel: dbmodels.BaseOrgModel{
			OrgID: orgID,
		},
		RequestID:   requestID,
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(file)),
		S3Key:       s3Key,
		UploadedBy:  userID,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения записи о вложении")
	}
	log.
		WithField("org_id", orgID).
		WithField("request_id", requestID).
		WithField("file_id", id).
		Info("загружено вложение")
	return id, nil
}

func (i impl) Get(ctx context.Context, orgID, fileID string) (rec *dbmodels.FileRecord, body []byte, err error) {
	rec, err = i.store.GetByID(orgID, fileID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, nil
	}
	object, err := s3client.Client.GetObject(ctx, config.Conf.S3.Bucket, rec.S3Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения файла из хранилища")
	}
	defer object.Close()
	body, err = io.ReadAll(object)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка чтения файла из хранилища")
	}
	return rec, body, nil
}

func (i impl) List(orgID, requestID string) ([]mocapimodels.FileView, error) {
	list, err := i.store.ListByRequest(orgID, requestID)
	if err != nil {
		return nil, err
	}
	result := make([]mocapimodels.FileView, 0, len(list))
	for _, rec := range list {
		result = append(result, mocapimodels.FileConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(ctx context.Context, orgID, fileID string) error {
	rec, err := i.store.GetByID(orgID, fileID)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}
	err = s3client.Client.RemoveObject(ctx, config.Conf.S3.Bucket, rec.S3Key, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "ошибка удаления файла из хранилища")
	}
	return i.store.Delete(orgID, fileID)
}
