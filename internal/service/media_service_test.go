package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/streamvault/internal/model"
	"github.com/user/streamvault/internal/storage"
)

func newTestMediaService(t *testing.T) (*MediaService, *SeriesService) {
	t.Helper()
	repos := newTestRepos(t)
	files, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewMediaService(repos, files), NewSeriesService(repos)
}

func TestCreateMovieForcesDiscriminator(t *testing.T) {
	media, _ := newTestMediaService(t)

	year := 2023
	movie, err := media.CreateMovie(&model.Episode{Title: "独立电影", ReleaseYear: &year})
	require.NoError(t, err)
	assert.True(t, movie.IsMovie)
	assert.Nil(t, movie.SeasonID)

	// 不存在的制作公司直接拒绝
	badCompany := "00000000-0000-0000-0000-000000000000"
	_, err = media.CreateMovie(&model.Episode{Title: "无主电影", ProductionCompanyID: &badCompany})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestCreateEpisodeRequiresSeason(t *testing.T) {
	media, series := newTestMediaService(t)

	created, err := series.CreateCascade(
		&model.Series{Title: "单集测试剧", ReleaseYear: 2022},
		[]model.Season{{Number: 1, ReleaseYear: 2022}},
		nil,
	)
	require.NoError(t, err)
	require.Len(t, created.Seasons, 1)

	episode, err := media.CreateEpisode(created.Seasons[0].ID, &model.Episode{Title: "第一集"})
	require.NoError(t, err)
	assert.False(t, episode.IsMovie)
	require.NotNil(t, episode.SeasonID)
	assert.Equal(t, created.Seasons[0].ID, *episode.SeasonID)

	_, err = media.CreateEpisode("00000000-0000-0000-0000-000000000000", &model.Episode{Title: "孤儿集"})
	assert.ErrorIs(t, err, ErrSeasonNotFound)

	listed, err := media.ListBySeason(created.Seasons[0].ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestSaveVideoAndCover(t *testing.T) {
	media, _ := newTestMediaService(t)

	movie, err := media.CreateMovie(&model.Episode{Title: "上传测试"})
	require.NoError(t, err)

	videoToken, err := media.SaveVideo(movie.ID, ".mp4", strings.NewReader("video"))
	require.NoError(t, err)
	coverToken, err := media.SaveCover(movie.ID, ".jpg", strings.NewReader("cover"))
	require.NoError(t, err)

	loaded, err := media.Get(movie.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.VideoFile)
	assert.Equal(t, videoToken, *loaded.VideoFile)
	require.NotNil(t, loaded.CoverImage)
	assert.Equal(t, coverToken, *loaded.CoverImage)

	_, err = media.SaveVideo("00000000-0000-0000-0000-000000000000", ".mp4", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrEpisodeNotFound)
}

func TestMediaUpdateMergeSemantics(t *testing.T) {
	media, _ := newTestMediaService(t)

	year := 2020
	movie, err := media.CreateMovie(&model.Episode{Title: "原名", ReleaseYear: &year, Genre: "剧情"})
	require.NoError(t, err)

	// 空字符串不会清空已有值
	updated, err := media.Update(movie.ID, EpisodeUpdate{Title: strPtr("新名"), Genre: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "新名", updated.Title)
	assert.Equal(t, "剧情", updated.Genre)
	require.NotNil(t, updated.ReleaseYear)
	assert.Equal(t, 2020, *updated.ReleaseYear)
}

func TestMediaDelete(t *testing.T) {
	media, _ := newTestMediaService(t)

	movie, err := media.CreateMovie(&model.Episode{Title: "一次性影片"})
	require.NoError(t, err)

	ok, err := media.Delete(movie.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = media.Get(movie.ID)
	assert.ErrorIs(t, err, ErrEpisodeNotFound)

	_, err = media.Delete(movie.ID)
	assert.ErrorIs(t, err, ErrEpisodeNotFound)
}
