package repository

import (
	"fmt"

	"github.com/user/streamvault/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化数据库连接并迁移表结构
func InitDB(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("表结构迁移失败: %w", err)
	}

	return db, nil
}

// AutoMigrate 迁移全部实体表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Series{},
		&model.Season{},
		&model.Episode{},
		&model.Person{},
		&model.Character{},
		&model.ProductionCompany{},
		&model.User{},
		&model.Playlist{},
		&model.PlaylistItem{},
	)
}

// Repositories 仓库集合
type Repositories struct {
	DB           *gorm.DB
	Series       *SeriesRepository
	Season       *SeasonRepository
	Episode      *EpisodeRepository
	Person       *PersonRepository
	Character    *CharacterRepository
	Company      *CompanyRepository
	User         *UserRepository
	Playlist     *PlaylistRepository
	PlaylistItem *PlaylistItemRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:           db,
		Series:       NewSeriesRepository(db),
		Season:       NewSeasonRepository(db),
		Episode:      NewEpisodeRepository(db),
		Person:       NewPersonRepository(db),
		Character:    NewCharacterRepository(db),
		Company:      NewCompanyRepository(db),
		User:         NewUserRepository(db),
		Playlist:     NewPlaylistRepository(db),
		PlaylistItem: NewPlaylistItemRepository(db),
	}
}

// Transaction 在单个数据库事务中执行 fn，fn 内通过事务版仓库集合访问数据
// fn 返回错误时整个事务回滚
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
