package storage

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreSaveAndOpen(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	token, err := store.Save(".MP4", strings.NewReader("video-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(token, ".mp4"), "扩展名统一转小写")

	rc, err := store.Open(token)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "video-bytes", string(data))
}

func TestFileStoreSaveWithoutExt(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	token, err := store.Save("", strings.NewReader("raw"))
	require.NoError(t, err)
	assert.NotContains(t, token, ".")
}

func TestFileStoreUniqueTokens(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	// 相同内容多次保存互不覆盖
	a, err := store.Save(".png", strings.NewReader("same"))
	require.NoError(t, err)
	b, err := store.Save(".png", strings.NewReader("same"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestFileStoreOpenMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open("no-such-token.mp4")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreRejectsPathTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open("../../etc/passwd")
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, store.Remove("../outside"))
}

func TestFileStoreRemove(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	token, err := store.Save(".jpg", strings.NewReader("cover"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(token))
	_, err = store.Open(token)
	assert.True(t, os.IsNotExist(err))

	// 重复删除不算错误
	assert.NoError(t, store.Remove(token))
}
