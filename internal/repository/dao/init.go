package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Team{},
		&Host{},
		&Waiter{},
		&SeatingEvent{},
		&DailyCutoff{},
	)
}
