package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/streamvault/internal/model"
)

func TestCreateCascade(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSeriesService(repos)

	s1 := uuid.NewString()
	s2 := uuid.NewString()
	seasons := []model.Season{
		{ID: s1, Number: 1, ReleaseYear: 2020},
		{ID: s2, Number: 2, ReleaseYear: 2021},
	}
	episodesBySeason := map[string][]model.Episode{
		s1: {
			{Title: "EP1: Pilot"},
			{Title: "EP2: Fallout"},
		},
		s2: {
			{Title: "EP1: Return"},
		},
	}

	created, err := svc.CreateCascade(&model.Series{Title: "暗流", Genre: "惊悚", ReleaseYear: 2020}, seasons, episodesBySeason)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	loaded, err := svc.Get(created.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Seasons, 2)
	assert.Len(t, loaded.Seasons[0].Episodes, 2)
	assert.Len(t, loaded.Seasons[1].Episodes, 1)
	assert.Equal(t, 2, loaded.Seasons[0].EpisodeCount)

	// 所有单集都挂在正确的季上
	for _, episode := range loaded.Seasons[0].Episodes {
		require.NotNil(t, episode.SeasonID)
		assert.Equal(t, s1, *episode.SeasonID)
		assert.False(t, episode.IsMovie)
	}
}

func TestCreateCascadeSeasonWithoutEpisodes(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSeriesService(repos)

	seasonID := uuid.NewString()
	created, err := svc.CreateCascade(
		&model.Series{Title: "空季剧", ReleaseYear: 2022},
		[]model.Season{{ID: seasonID, Number: 1, ReleaseYear: 2022}},
		map[string][]model.Episode{}, // 映射中没有该季的条目
	)
	require.NoError(t, err)

	loaded, err := svc.Get(created.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Seasons, 1)
	assert.Empty(t, loaded.Seasons[0].Episodes)
	assert.Equal(t, 0, loaded.Seasons[0].EpisodeCount)
}

func TestCreateCascadeRollsBackEverything(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSeriesService(repos)

	// 两个单集使用相同的预分配 ID，第二次插入违反主键约束
	dupID := uuid.NewString()
	seasonID := uuid.NewString()
	_, err := svc.CreateCascade(
		&model.Series{Title: "注定失败", ReleaseYear: 2023},
		[]model.Season{{ID: seasonID, Number: 1, ReleaseYear: 2023}},
		map[string][]model.Episode{
			seasonID: {
				{ID: dupID, Title: "EP1"},
				{ID: dupID, Title: "EP2"},
			},
		},
	)
	require.Error(t, err)

	// 级联中的任何一行都不应残留
	seriesList, err := repos.Series.FindAll()
	require.NoError(t, err)
	assert.Empty(t, seriesList)

	seasons, err := repos.Season.FindBySeriesID(seasonID)
	require.NoError(t, err)
	assert.Empty(t, seasons)

	episodes, err := repos.Episode.FindBySeasonID(seasonID)
	require.NoError(t, err)
	assert.Empty(t, episodes)
}

func TestFirstEpisodeID(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSeriesService(repos)

	makeSeries := func(t *testing.T, episodeTitle string) string {
		seasonID := uuid.NewString()
		created, err := svc.CreateCascade(
			&model.Series{Title: "标记测试", ReleaseYear: 2020},
			[]model.Season{{ID: seasonID, Number: 1, ReleaseYear: 2020}},
			map[string][]model.Episode{seasonID: {{Title: episodeTitle}}},
		)
		require.NoError(t, err)
		return created.ID
	}

	t.Run("标准标记命中", func(t *testing.T) {
		id := makeSeries(t, "EP1: Pilot")
		episodeID, err := svc.FirstEpisodeID(id)
		require.NoError(t, err)
		assert.NotEmpty(t, episodeID)
	})

	t.Run("子串匹配的宽松性", func(t *testing.T) {
		// 标题约定是纯文本子串匹配，"STEP1 forward" 同样命中
		id := makeSeries(t, "STEP1 forward")
		episodeID, err := svc.FirstEpisodeID(id)
		require.NoError(t, err)
		assert.NotEmpty(t, episodeID)
	})

	t.Run("无标记的标题不命中", func(t *testing.T) {
		id := makeSeries(t, "Episode One")
		_, err := svc.FirstEpisodeID(id)
		assert.ErrorIs(t, err, ErrEpisodeNotFound)
	})

	t.Run("缺少第一季", func(t *testing.T) {
		seasonID := uuid.NewString()
		created, err := svc.CreateCascade(
			&model.Series{Title: "从第二季开始", ReleaseYear: 2020},
			[]model.Season{{ID: seasonID, Number: 2, ReleaseYear: 2021}},
			map[string][]model.Episode{seasonID: {{Title: "EP1"}}},
		)
		require.NoError(t, err)

		_, err = svc.FirstEpisodeID(created.ID)
		assert.ErrorIs(t, err, ErrSeasonNotFound)
	})

	t.Run("剧集不存在", func(t *testing.T) {
		_, err := svc.FirstEpisodeID(uuid.NewString())
		assert.ErrorIs(t, err, ErrSeriesNotFound)
	})
}

func TestSeriesUpdateMergeSemantics(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSeriesService(repos)

	series := seedSeries(t, repos, "原标题", 2019)
	require.NoError(t, repos.Series.UpdateFields(series.ID, map[string]interface{}{
		"genre":       "剧情",
		"description": "原简介",
	}))

	updated, err := svc.Update(series.ID, SeriesUpdate{
		Title:       strPtr("新标题"),
		Description: strPtr(""), // 空字符串视为未修改
	})
	require.NoError(t, err)
	assert.Equal(t, "新标题", updated.Title)
	assert.Equal(t, "剧情", updated.Genre)
	assert.Equal(t, "原简介", updated.Description)
}
