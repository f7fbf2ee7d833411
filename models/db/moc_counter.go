package dbmodels

// MocCounter - счетчик номеров заявок, отдельный на организацию и год
type MocCounter struct {
	BaseModel
	OrgID      string `gorm:"type:varchar(36);uniqueIndex:idx_moc_counter"`
	Year       int    `gorm:"uniqueIndex:idx_moc_counter"`
	LastNumber int64
}
