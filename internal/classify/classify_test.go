package classify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFolder(t *testing.T, files []string, dirs ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte("x"), 0644))
	}
	for _, d := range dirs {
		require.NoError(t, os.Mkdir(filepath.Join(root, d), 0755))
	}
	return root
}

func TestFolder_Partition(t *testing.T) {
	root := makeFolder(t, []string{
		"Movie.2010.1080p.mkv",
		"Movie.2010.srt",
		"poster.jpg",
		"readme.nfo",
	}, "Sample")

	set, err := Folder(root, MultiMedia)
	require.NoError(t, err)

	assert.Equal(t, []string{"Movie.2010.1080p.mkv"}, set.MediaFiles)
	assert.Equal(t, []string{"Movie.2010.srt"}, set.SubtitleFiles)
	assert.Equal(t, []string{"poster.jpg"}, set.PosterFiles)
	assert.ElementsMatch(t, []string{"readme.nfo", "Sample"}, set.OtherFiles)

	// every entry is in exactly one bucket
	total := len(set.MediaFiles) + len(set.SubtitleFiles) +
		len(set.PosterFiles) + len(set.OtherFiles)
	assert.Equal(t, 5, total)
}

func TestFolder_SingleMediaPolicy(t *testing.T) {
	root := makeFolder(t, []string{
		"Movie.CD1.mkv",
		"Movie.CD2.mkv",
	})

	_, err := Folder(root, SingleMedia)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMultipleMedia))
}

func TestFolder_MultiMediaPolicy(t *testing.T) {
	root := makeFolder(t, []string{
		"Movie.CD1.mkv",
		"Movie.CD2.mkv",
		"Movie.CD3.mkv",
	})

	set, err := Folder(root, MultiMedia)
	require.NoError(t, err)
	assert.Len(t, set.MediaFiles, 3)
}

func TestFolder_PosterSpelling(t *testing.T) {
	root := makeFolder(t, []string{
		"poster.jpg",
		"Poster.png",
		"POSTER.jpg",   // wrong case, not accepted
		"cover.jpg",    // wrong stem
		"poster.x.jpg", // stem is "poster.x"
	})

	set, err := Folder(root, MultiMedia)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"poster.jpg", "Poster.png"}, set.PosterFiles)
	assert.ElementsMatch(t, []string{"POSTER.jpg", "cover.jpg", "poster.x.jpg"}, set.OtherFiles)
}

func TestFolder_DirectoriesAreOther(t *testing.T) {
	root := makeFolder(t, nil, "Subs.mkv")

	// a directory named like a media file is still "other"
	set, err := Folder(root, SingleMedia)
	require.NoError(t, err)
	assert.Empty(t, set.MediaFiles)
	assert.Equal(t, []string{"Subs.mkv"}, set.OtherFiles)
}

func TestFolder_MissingFolder(t *testing.T) {
	_, err := Folder(filepath.Join(t.TempDir(), "does-not-exist"), MultiMedia)
	assert.Error(t, err)
}

func TestStem(t *testing.T) {
	assert.Equal(t, "Movie.2010.1080p", Stem("Movie.2010.1080p.mkv"))
	assert.Equal(t, "noext", Stem("noext"))
}
