package repository

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/streamvault/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试用例一个独立的内存数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestPlaylistCreateIfAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlaylistRepository(db)
	userID := uuid.NewString()

	first := &model.Playlist{UserID: userID}
	require.NoError(t, repo.CreateIfAbsent(first))

	// 第二次插入被唯一索引吞掉，不报错也不产生新记录
	second := &model.Playlist{UserID: userID}
	require.NoError(t, repo.CreateIfAbsent(second))

	var count int64
	require.NoError(t, db.Model(&model.Playlist{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	loaded, err := repo.FindByUserID(userID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, first.ID, loaded.ID)
}

func TestPlaylistFindByUserIDPreloadsItems(t *testing.T) {
	db := newTestDB(t)
	repos := NewRepositories(db)
	userID := uuid.NewString()

	movie := &model.Episode{Title: "收藏的电影", IsMovie: true}
	require.NoError(t, repos.Episode.Create(movie))
	series := &model.Series{Title: "收藏的剧集", ReleaseYear: 2021}
	require.NoError(t, repos.Series.Create(series))

	playlist := &model.Playlist{UserID: userID}
	require.NoError(t, repos.Playlist.CreateIfAbsent(playlist))
	require.NoError(t, repos.PlaylistItem.Create(&model.PlaylistItem{PlaylistID: playlist.ID, EpisodeID: &movie.ID}))
	require.NoError(t, repos.PlaylistItem.Create(&model.PlaylistItem{PlaylistID: playlist.ID, SeriesID: &series.ID}))

	loaded, err := repos.Playlist.FindByUserID(userID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.Items, 2)

	// 条目应带出各自关联的实体
	var gotMovie, gotSeries bool
	for _, item := range loaded.Items {
		if item.Episode != nil {
			assert.Equal(t, "收藏的电影", item.Episode.Title)
			gotMovie = true
		}
		if item.Series != nil {
			assert.Equal(t, "收藏的剧集", item.Series.Title)
			gotSeries = true
		}
	}
	assert.True(t, gotMovie)
	assert.True(t, gotSeries)
}

func TestPlaylistFindByUserIDMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlaylistRepository(db)

	loaded, err := repo.FindByUserID(uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
