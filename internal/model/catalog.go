package model

// 统一目录条目的类型标识
// 历史接口中 "Movie"/"movie" 大小写不一致，这里统一为小写
const (
	CatalogTypeMovie  = "movie"
	CatalogTypeSeries = "series"
)

// CatalogItem 统一目录条目（最新内容 / 标题搜索的返回形状）
type CatalogItem struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre,omitempty"`
	ReleaseYear int     `json:"release_year"`
	Description string  `json:"description,omitempty"`
	CoverImage  *string `json:"cover_image,omitempty"`
}

// CatalogItemFromMovie 由电影构造目录条目
func CatalogItemFromMovie(e Episode) CatalogItem {
	year := 0
	if e.ReleaseYear != nil {
		year = *e.ReleaseYear
	}
	return CatalogItem{
		ID:          e.ID,
		Type:        CatalogTypeMovie,
		Title:       e.Title,
		Genre:       e.Genre,
		ReleaseYear: year,
		Description: e.Description,
		CoverImage:  e.CoverImage,
	}
}

// CatalogItemFromSeries 由剧集构造目录条目
func CatalogItemFromSeries(s Series) CatalogItem {
	return CatalogItem{
		ID:          s.ID,
		Type:        CatalogTypeSeries,
		Title:       s.Title,
		Genre:       s.Genre,
		ReleaseYear: s.ReleaseYear,
		Description: s.Description,
		CoverImage:  s.CoverImage,
	}
}
