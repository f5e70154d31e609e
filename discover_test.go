package ingest

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type DiscoverTestSuite struct {
	suite.Suite
	root string
}

func TestDiscoverSuite(t *testing.T) {
	suite.Run(t, new(DiscoverTestSuite))
}

// SetupTest builds a small tree with matches at several depths
func (s *DiscoverTestSuite) SetupTest() {
	s.root = s.T().TempDir()

	for _, name := range []string{
		"a.wav",
		"b.txt",
		"sub/c.wav",
		"sub/c.txt",
		"sub/deep/d.wav",
	} {
		touch(s.T(), filepath.Join(s.root, name))
	}

	// A directory whose name matches is not a file
	require.NoError(s.T(), os.MkdirAll(filepath.Join(s.root, "dir.wav"), 0755))
}

func (s *DiscoverTestSuite) TestWalk_MatchesWholeSubtree() {
	files, err := Walk(s.root, "*.wav")
	require.NoError(s.T(), err)

	assert.ElementsMatch(s.T(), []string{
		filepath.Join(s.root, "a.wav"),
		filepath.Join(s.root, "sub", "c.wav"),
		filepath.Join(s.root, "sub", "deep", "d.wav"),
	}, files)
}

func (s *DiscoverTestSuite) TestWalk_MissingRootIsEmpty() {
	files, err := Walk(filepath.Join(s.root, "nope"), "*.wav")
	require.NoError(s.T(), err)
	assert.Empty(s.T(), files)
}

func (s *DiscoverTestSuite) TestWalk_BadPattern() {
	_, err := Walk(s.root, "[")
	assert.ErrorIs(s.T(), err, filepath.ErrBadPattern)
}

func (s *DiscoverTestSuite) TestGlob_TopLevelOnly() {
	files := collect(Glob(s.root, "*.wav"))
	assert.Equal(s.T(), []string{filepath.Join(s.root, "a.wav")}, files)

	files = collect(Glob(filepath.Join(s.root, "sub"), "*.txt"))
	assert.Equal(s.T(), []string{filepath.Join(s.root, "sub", "c.txt")}, files)
}

func (s *DiscoverTestSuite) TestGlob_MissingDirYieldsNothing() {
	assert.Empty(s.T(), collect(Glob(filepath.Join(s.root, "nope"), "*.wav")))
	assert.Empty(s.T(), collect(Glob(s.root, "[")))
}

func (s *DiscoverTestSuite) TestGlob_LargeFlatDirectory() {
	flat := filepath.Join(s.root, "flat")
	total := globBatch*2 + 17
	for i := 0; i < total; i++ {
		touch(s.T(), filepath.Join(flat, fmt.Sprintf("%05d.mp3", i)))
	}
	touch(s.T(), filepath.Join(flat, "sentences.csv"))

	assert.Len(s.T(), collect(Glob(flat, "*.mp3")), total)
}

func (s *DiscoverTestSuite) TestGlob_StopsWhenConsumerBreaks() {
	n := 0
	for range Glob(s.root, "*") {
		n++
		break
	}
	assert.Equal(s.T(), 1, n)
}

func collect(seq iter.Seq[string]) []string {
	var out []string
	for path := range seq {
		out = append(out, path)
	}
	return out
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}
