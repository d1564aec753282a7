package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/streamvault/internal/model"
)

func TestCompanyDeleteNullsEpisodeRefs(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewCompanyService(repos)

	company, err := svc.Create(&model.ProductionCompany{Name: "即将解散影业"})
	require.NoError(t, err)

	e1 := seedMovie(t, repos, "旗下电影一", 2019)
	e2 := seedMovie(t, repos, "旗下电影二", 2020)
	require.NoError(t, repos.Episode.UpdateFields(e1.ID, map[string]interface{}{"production_company_id": company.ID}))
	require.NoError(t, repos.Episode.UpdateFields(e2.ID, map[string]interface{}{"production_company_id": company.ID}))

	ok, err := svc.Delete(company.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// 公司不可再查到，影片保留但外键被置空
	_, err = svc.Get(company.ID)
	assert.ErrorIs(t, err, ErrCompanyNotFound)

	for _, id := range []string{e1.ID, e2.ID} {
		loaded, err := repos.Episode.FindByID(id)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Nil(t, loaded.ProductionCompanyID)
	}
}

func TestCompanyListProductions(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewCompanyService(repos)

	company, err := svc.Create(&model.ProductionCompany{Name: "高产影业"})
	require.NoError(t, err)
	other, err := svc.Create(&model.ProductionCompany{Name: "隔壁影业"})
	require.NoError(t, err)

	mine := seedMovie(t, repos, "自家出品", 2022)
	require.NoError(t, repos.Episode.UpdateFields(mine.ID, map[string]interface{}{"production_company_id": company.ID}))
	theirs := seedMovie(t, repos, "别家出品", 2022)
	require.NoError(t, repos.Episode.UpdateFields(theirs.ID, map[string]interface{}{"production_company_id": other.ID}))

	productions, err := svc.ListProductions(company.ID)
	require.NoError(t, err)
	require.Len(t, productions, 1)
	assert.Equal(t, "自家出品", productions[0].Title)

	_, err = svc.ListProductions("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestCompanyUpdateMergeSemantics(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewCompanyService(repos)

	company, err := svc.Create(&model.ProductionCompany{Name: "旧名影业", Country: "中国"})
	require.NoError(t, err)

	// 空字符串不会清空已有值
	updated, err := svc.Update(company.ID, CompanyUpdate{Name: strPtr("新名影业"), Country: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "新名影业", updated.Name)
	assert.Equal(t, "中国", updated.Country)
}
