package database

import (
	"Wayfarer/config"
	"Wayfarer/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	gormConf := &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	}
	if conf.Debug() {
		gormConf.Logger = gormLogger.Default.LogMode(gormLogger.Info)
	}
	db, err := gorm.Open(mysql.Open(dsn), gormConf)
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.L.Fatal("failed to get sql.DB", zap.Error(err))
	}
	if conf.MySQL.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MySQL.MaxOpenConns)
	}
	if conf.MySQL.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.MySQL.MaxIdleConns)
	}
	log.L.Info("connect database success")
	return db
}
