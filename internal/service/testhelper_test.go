package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/user/streamvault/internal/model"
	"github.com/user/streamvault/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRepos 每个测试用例一个独立的内存数据库
func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	return repository.NewRepositories(db)
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func seedUser(t *testing.T, repos *repository.Repositories, email string) *model.User {
	t.Helper()
	user, err := repos.User.Create("测试用户", email, "password123", model.RoleUser)
	require.NoError(t, err)
	return user
}

func seedMovie(t *testing.T, repos *repository.Repositories, title string, year int) *model.Episode {
	t.Helper()
	movie := &model.Episode{Title: title, IsMovie: true, ReleaseYear: &year}
	require.NoError(t, repos.Episode.Create(movie))
	return movie
}

func seedSeries(t *testing.T, repos *repository.Repositories, title string, year int) *model.Series {
	t.Helper()
	series := &model.Series{Title: title, ReleaseYear: year}
	require.NoError(t, repos.Series.Create(series))
	return series
}
