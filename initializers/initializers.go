package initializers

import (
	"context"

	"moc-tools-backend/config"
	"moc-tools-backend/fiberlog"
	aihandler "moc-tools-backend/lib/ai"
	analyticshandler "moc-tools-backend/lib/analytics"
	approvalhandler "moc-tools-backend/lib/approval"
	facilityhandler "moc-tools-backend/lib/dicts/facility"
	xlsexport "moc-tools-backend/lib/export/xls"
	filestorage "moc-tools-backend/lib/file-storage"
	mochistoryhandler "moc-tools-backend/lib/moc-history"
	mocreqhandler "moc-tools-backend/lib/moc-req"
	notifyhandler "moc-tools-backend/lib/notify"
	authhandler "moc-tools-backend/lib/org/auth"
	orgusershandler "moc-tools-backend/lib/org/users"
	taskhandler "moc-tools-backend/lib/task"
	taskdueworker "moc-tools-backend/lib/task/due-worker"
	connectionhub "moc-tools-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	connectionhub.Init()
	mochistoryhandler.NewHandler()
	notifyhandler.NewHandler()
	approvalhandler.NewHandler()
	orgusershandler.NewHandler()
	authhandler.NewHandler()
	facilityhandler.NewHandler()
	xlsexport.NewHandler()
	mocreqhandler.NewHandler()
	taskhandler.NewHandler()
	analyticshandler.NewHandler()
	aihandler.NewHandler()
	filestorage.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача уведомлений о приближении срока задач внедрения
	taskdueworker.StartWorker(ctx)
}
