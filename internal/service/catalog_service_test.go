package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/streamvault/internal/model"
	"github.com/user/streamvault/internal/utils"
)

func TestLatestShape(t *testing.T) {
	utils.InitCache()
	repos := newTestRepos(t)
	svc := NewCatalogService(repos, time.Minute)

	for _, year := range []int{2020, 2019, 2018, 2017, 2016} {
		seedMovie(t, repos, "电影", year)
	}
	seedSeries(t, repos, "剧集A", 2021)
	seedSeries(t, repos, "剧集B", 2015)

	items, err := svc.Latest(context.Background())
	require.NoError(t, err)

	// 电影取年份最新的 4 部，随后是全部 2 部剧集，各自按年份降序
	require.Len(t, items, 6)

	movieYears := []int{}
	for _, item := range items[:4] {
		assert.Equal(t, model.CatalogTypeMovie, item.Type)
		movieYears = append(movieYears, item.ReleaseYear)
	}
	assert.Equal(t, []int{2020, 2019, 2018, 2017}, movieYears)

	assert.Equal(t, model.CatalogTypeSeries, items[4].Type)
	assert.Equal(t, 2021, items[4].ReleaseYear)
	assert.Equal(t, model.CatalogTypeSeries, items[5].Type)
	assert.Equal(t, 2015, items[5].ReleaseYear)
}

func TestLatestUsesCache(t *testing.T) {
	utils.InitCache()
	repos := newTestRepos(t)
	svc := NewCatalogService(repos, time.Minute)

	seedMovie(t, repos, "缓存前", 2020)

	first, err := svc.Latest(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	// 新增数据在缓存失效前不可见
	seedMovie(t, repos, "缓存后", 2024)
	second, err := svc.Latest(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 1)

	svc.InvalidateLatest()
	third, err := svc.Latest(context.Background())
	require.NoError(t, err)
	assert.Len(t, third, 2)
}

func TestSearchByTitle(t *testing.T) {
	utils.InitCache()
	repos := newTestRepos(t)
	svc := NewCatalogService(repos, time.Minute)

	seedMovie(t, repos, "The Dark Tower", 2017)
	seedMovie(t, repos, "Bright Lights", 2019)
	seedSeries(t, repos, "Dark Matter", 2015)
	seedSeries(t, repos, "Light House", 2016)

	t.Run("大小写不敏感的子串匹配", func(t *testing.T) {
		items, err := svc.Search(context.Background(), "dArK")
		require.NoError(t, err)
		require.Len(t, items, 2)

		// 电影在前，剧集在后
		assert.Equal(t, model.CatalogTypeMovie, items[0].Type)
		assert.Equal(t, "The Dark Tower", items[0].Title)
		assert.Equal(t, model.CatalogTypeSeries, items[1].Type)
		assert.Equal(t, "Dark Matter", items[1].Title)
	})

	t.Run("无匹配返回空集", func(t *testing.T) {
		items, err := svc.Search(context.Background(), "不存在的标题")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("空关键词返回空集", func(t *testing.T) {
		items, err := svc.Search(context.Background(), "   ")
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestSearchTreatsWildcardsAsLiterals(t *testing.T) {
	utils.InitCache()
	repos := newTestRepos(t)
	svc := NewCatalogService(repos, time.Minute)

	seedMovie(t, repos, "100% Pure", 2020)
	seedMovie(t, repos, "1000 Miles", 2021)
	seedMovie(t, repos, "Dark Water", 2019)
	seedMovie(t, repos, "D_rk Secret", 2018)

	// LIKE 元字符按字面量匹配，% 不是通配符
	items, err := svc.Search(context.Background(), "100%")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "100% Pure", items[0].Title)

	// _ 也不是单字符通配符，"d_rk" 不应命中 "Dark Water"
	items, err = svc.Search(context.Background(), "d_rk")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "D_rk Secret", items[0].Title)
}
