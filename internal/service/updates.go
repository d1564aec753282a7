package service

// 部分更新采用显式的可选字段增量结构：
// 字段为 nil 表示不修改；为兼容历史客户端，空字符串与数值零值同样视为不修改

func setString(fields map[string]interface{}, column string, v *string) {
	if v != nil && *v != "" {
		fields[column] = *v
	}
}

func setInt(fields map[string]interface{}, column string, v *int) {
	if v != nil && *v != 0 {
		fields[column] = *v
	}
}

func setBool(fields map[string]interface{}, column string, v *bool) {
	if v != nil {
		fields[column] = *v
	}
}

// SeriesUpdate 剧集增量更新
type SeriesUpdate struct {
	Title       *string `json:"title"`
	Genre       *string `json:"genre"`
	ReleaseYear *int    `json:"release_year"`
	FinalYear   *int    `json:"final_year"`
	Description *string `json:"description"`
	CoverImage  *string `json:"cover_image"`
}

func (u SeriesUpdate) fields() map[string]interface{} {
	m := map[string]interface{}{}
	setString(m, "title", u.Title)
	setString(m, "genre", u.Genre)
	setInt(m, "release_year", u.ReleaseYear)
	setInt(m, "final_year", u.FinalYear)
	setString(m, "description", u.Description)
	setString(m, "cover_image", u.CoverImage)
	return m
}

// SeasonUpdate 季增量更新
type SeasonUpdate struct {
	Number      *int `json:"number"`
	ReleaseYear *int `json:"release_year"`
}

func (u SeasonUpdate) fields() map[string]interface{} {
	m := map[string]interface{}{}
	setInt(m, "number", u.Number)
	setInt(m, "release_year", u.ReleaseYear)
	return m
}

// EpisodeUpdate 电影/单集增量更新
type EpisodeUpdate struct {
	Title       *string `json:"title"`
	ReleaseYear *int    `json:"release_year"`
	Genre       *string `json:"genre"`
	Description *string `json:"description"`
	Language    *string `json:"language"`
	Award       *string `json:"award"`
}

func (u EpisodeUpdate) fields() map[string]interface{} {
	m := map[string]interface{}{}
	setString(m, "title", u.Title)
	setInt(m, "release_year", u.ReleaseYear)
	setString(m, "genre", u.Genre)
	setString(m, "description", u.Description)
	setString(m, "language", u.Language)
	setString(m, "award", u.Award)
	return m
}

// PersonUpdate 人物增量更新
type PersonUpdate struct {
	Name   *string `json:"name"`
	Age    *int    `json:"age"`
	Role   *string `json:"role"`
	Awards *string `json:"awards"`
	Gender *string `json:"gender"`
}

func (u PersonUpdate) fields() map[string]interface{} {
	m := map[string]interface{}{}
	setString(m, "name", u.Name)
	setInt(m, "age", u.Age)
	setString(m, "role", u.Role)
	setString(m, "awards", u.Awards)
	setString(m, "gender", u.Gender)
	return m
}

// CompanyUpdate 制作公司增量更新
type CompanyUpdate struct {
	Name           *string `json:"name"`
	FoundationYear *int    `json:"foundation_year"`
	Country        *string `json:"country"`
	Website        *string `json:"website"`
}

func (u CompanyUpdate) fields() map[string]interface{} {
	m := map[string]interface{}{}
	setString(m, "name", u.Name)
	setInt(m, "foundation_year", u.FoundationYear)
	setString(m, "country", u.Country)
	setString(m, "website", u.Website)
	return m
}

// UserUpdate 用户资料增量更新
type UserUpdate struct {
	Name     *string `json:"name"`
	Nickname *string `json:"nickname"`
	Active   *bool   `json:"active"`
}

func (u UserUpdate) fields() map[string]interface{} {
	m := map[string]interface{}{}
	setString(m, "name", u.Name)
	setString(m, "nickname", u.Nickname)
	setBool(m, "active", u.Active)
	return m
}
