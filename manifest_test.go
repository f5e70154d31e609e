package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteManifest_OneLinePerIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.csv")

	err := WriteManifest(path,
		[]string{"a.wav", "b.wav"},
		[]string{"a.txt", "b.txt"},
	)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a.wav,a.txt\nb.wav,b.txt\n", string(data))
}

func TestWriteManifest_TruncatesToShortestColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.csv")

	err := WriteManifest(path,
		[]string{"a.wav", "b.wav", "c.wav"},
		[]string{"a.txt"},
		[]string{"x", "y"},
	)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a.wav,a.txt,x\n", string(data))
}

func TestWriteManifest_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale,row\nstale,row\nstale,row\n"), 0644))

	require.NoError(t, WriteManifest(path, []string{"new.wav"}, []string{"new.txt"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new.wav,new.txt\n", string(data))
}

func TestWriteManifest_NoColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.csv")
	require.NoError(t, WriteManifest(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestWriteManifest_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "manifest.csv")

	err := WriteManifest(path, []string{"a.wav"}, []string{"a.txt"})
	assert.ErrorIs(t, err, ErrManifestWrite)
}

func TestManifest_AddKeepsColumnsAligned(t *testing.T) {
	m := &Manifest{}
	m.Add("1.wav", "1.txt")
	m.Add("2.wav", "2.txt")

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []Record{
		{Audio: "1.wav", Transcript: "1.txt"},
		{Audio: "2.wav", Transcript: "2.txt"},
	}, m.Records())
}

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		root    string
		want    []Record
		wantErr bool
	}{
		{
			name:    "plain rows",
			content: "a.wav,a.txt\nb.wav,b.txt\n",
			want:    []Record{{"a.wav", "a.txt"}, {"b.wav", "b.txt"}},
		},
		{
			name:    "comments and blank lines",
			content: "# generated\n\na.wav,a.txt\n\n",
			want:    []Record{{"a.wav", "a.txt"}},
		},
		{
			name:    "root prefix",
			content: "a.wav,a.txt\n",
			root:    "/data",
			want:    []Record{{"/data/a.wav", "/data/a.txt"}},
		},
		{
			name:    "ragged rows",
			content: "a.wav,a.txt\nb.wav\n",
			wantErr: true,
		},
		{
			name:    "three columns",
			content: "a.wav,a.txt,extra\n",
			wantErr: true,
		},
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, string(rune('a'+i))+".csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			got, err := ReadManifest(path, tt.root)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrManifestRead)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadManifest_MissingFile(t *testing.T) {
	_, err := ReadManifest(filepath.Join(t.TempDir(), "nope.csv"), "")
	assert.ErrorIs(t, err, ErrManifestRead)
}

func TestManifest_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.csv")

	m := &Manifest{}
	m.Add("/out/p225/p225_001.wav", "/in/txt/p225/p225_001.txt")
	m.Add("/out/p226/p226_001.wav", "/in/txt/p226/p226_001.txt")
	require.NoError(t, m.Write(path))

	records, err := ReadManifest(path, "")
	require.NoError(t, err)
	assert.Equal(t, m.Records(), records)
}
