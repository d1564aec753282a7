package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/streamvault/internal/model"
)

func TestPersonUpdateMergeSemantics(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPersonService(repos)

	person, err := svc.Create(&model.Person{
		Name:   "老演员",
		Age:    intPtr(52),
		Role:   strPtr("director"),
		Awards: strPtr("金鸡奖"),
		Gender: strPtr("male"),
	})
	require.NoError(t, err)

	// 只更新名字，其余字段保持原值；空字符串同样视为未修改
	updated, err := svc.Update(person.ID, PersonUpdate{
		Name:   strPtr("新艺名"),
		Awards: strPtr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "新艺名", updated.Name)
	require.NotNil(t, updated.Age)
	assert.Equal(t, 52, *updated.Age)
	require.NotNil(t, updated.Role)
	assert.Equal(t, "director", *updated.Role)
	require.NotNil(t, updated.Awards)
	assert.Equal(t, "金鸡奖", *updated.Awards)
	require.NotNil(t, updated.Gender)
	assert.Equal(t, "male", *updated.Gender)
}

func TestPersonDeleteDetachesLinksAndCharacters(t *testing.T) {
	repos := newTestRepos(t)
	persons := NewPersonService(repos)
	cast := NewCastService(repos)

	movie := seedMovie(t, repos, "删除测试", 2020)
	person := seedPerson(t, repos.Person, "将被删除")

	require.NoError(t, cast.AttachPerson(movie.ID, person.ID))
	_, err := cast.AddCharacter(movie.ID, person.ID, CharacterInput{Name: "遗留角色"})
	require.NoError(t, err)

	ok, err := persons.Delete(person.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// 人物、出演关系与名下角色都应消失
	_, err = persons.Get(person.ID)
	assert.ErrorIs(t, err, ErrPersonNotFound)

	loaded, err := repos.Episode.FindByIDWithCast(movie.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.People)
	assert.Empty(t, loaded.Characters)
}

func TestPersonDeleteMissing(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPersonService(repos)

	_, err := svc.Delete("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrPersonNotFound)
}
