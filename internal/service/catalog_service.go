package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/user/streamvault/internal/model"
	"github.com/user/streamvault/internal/repository"
	"github.com/user/streamvault/internal/utils"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// 最新内容每类取前 N 条
const latestLimit = 4

const latestCacheKey = "catalog:latest"

// CatalogService 统一目录读取：最新内容与标题搜索
type CatalogService struct {
	repos       *repository.Repositories
	latestTTL   time.Duration
	searchCache *utils.SearchCache[[]model.CatalogItem]
	sf          singleflight.Group
}

// NewCatalogService 创建目录服务
func NewCatalogService(repos *repository.Repositories, latestTTL time.Duration) *CatalogService {
	if utils.Cache == nil {
		utils.InitCache()
	}
	return &CatalogService{
		repos:       repos,
		latestTTL:   latestTTL,
		searchCache: utils.NewSearchCache[[]model.CatalogItem](1000, 10*time.Minute),
	}
}

// Latest 最新内容：电影和剧集各按年份降序取前 4 条，电影在前
func (s *CatalogService) Latest(ctx context.Context) ([]model.CatalogItem, error) {
	if cached, ok := utils.CacheGet(latestCacheKey); ok {
		return cached.([]model.CatalogItem), nil
	}

	var movies []model.Episode
	var seriesList []model.Series

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		movies, err = s.repos.Episode.FindAllMovies()
		return err
	})
	g.Go(func() error {
		var err error
		seriesList, err = s.repos.Series.FindAll()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(movies, func(i, j int) bool {
		return movieYear(movies[i]) > movieYear(movies[j])
	})
	sort.Slice(seriesList, func(i, j int) bool {
		return seriesList[i].ReleaseYear > seriesList[j].ReleaseYear
	})

	items := make([]model.CatalogItem, 0, latestLimit*2)
	for i, movie := range movies {
		if i >= latestLimit {
			break
		}
		items = append(items, model.CatalogItemFromMovie(movie))
	}
	for i, series := range seriesList {
		if i >= latestLimit {
			break
		}
		items = append(items, model.CatalogItemFromSeries(series))
	}

	utils.CacheSet(latestCacheKey, items, s.latestTTL)
	return items, nil
}

// Search 标题搜索：大小写不敏感的子串匹配，电影在前、剧集在后
// 相同关键词的并发请求通过 singleflight 合并，结果走 LRU 缓存
func (s *CatalogService) Search(ctx context.Context, keyword string) ([]model.CatalogItem, error) {
	key := strings.ToLower(strings.TrimSpace(keyword))
	if key == "" {
		return []model.CatalogItem{}, nil
	}

	if items, ok := s.searchCache.Get(key); ok {
		return items, nil
	}

	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		var movies []model.Episode
		var seriesList []model.Series

		g, _ := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			movies, err = s.repos.Episode.SearchMoviesByTitle(key)
			return err
		})
		g.Go(func() error {
			var err error
			seriesList, err = s.repos.Series.SearchByTitle(key)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		items := make([]model.CatalogItem, 0, len(movies)+len(seriesList))
		for _, movie := range movies {
			items = append(items, model.CatalogItemFromMovie(movie))
		}
		for _, series := range seriesList {
			items = append(items, model.CatalogItemFromSeries(series))
		}

		s.searchCache.Set(key, items)
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]model.CatalogItem), nil
}

// InvalidateLatest 写入路径变更后清除最新内容缓存
func (s *CatalogService) InvalidateLatest() {
	utils.CacheDelete(latestCacheKey)
}

func movieYear(e model.Episode) int {
	if e.ReleaseYear == nil {
		return 0
	}
	return *e.ReleaseYear
}
