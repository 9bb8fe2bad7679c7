package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sumry/dataset"
	"sumry/format"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDelimited(t *testing.T) {
	path := writeFile(t, "people.csv",
		"name,age,score,active\n"+
			"alice,30,1.5,true\n"+
			"bob,25,2,false\n"+
			"carol,41,3.25,true\n")

	ds, err := Load(path, format.Delimited)
	require.NoError(t, err)

	require.Equal(t, "people.csv", ds.Name)
	require.Equal(t, format.Delimited, ds.Format)
	require.Len(t, ds.Records, 3)
	require.Equal(t, []dataset.Column{
		{Name: "name", Type: dataset.TypeString},
		{Name: "age", Type: dataset.TypeInteger},
		{Name: "score", Type: dataset.TypeFloat},
		{Name: "active", Type: dataset.TypeBoolean},
	}, ds.Columns)

	require.Equal(t, "alice", ds.Records[0].Cells[0])
	require.Positive(t, ds.BytesRead)
	require.Positive(t, ds.FileSize)
}

func TestLoadDelimitedHeaderOnly(t *testing.T) {
	path := writeFile(t, "empty.csv", "name,age\n")

	ds, err := Load(path, format.Delimited)
	require.NoError(t, err)
	require.Empty(t, ds.Records)
	require.Len(t, ds.Columns, 2)
	require.Equal(t, dataset.TypeEmpty, ds.Columns[0].Type)
}

func TestLoadDelimitedMissingCells(t *testing.T) {
	path := writeFile(t, "gaps.csv", "a,b\n1,\n,2\n")

	ds, err := Load(path, format.Delimited)
	require.NoError(t, err)
	require.Len(t, ds.Records, 2)
	require.Nil(t, ds.Records[0].Cells[1])
	require.Nil(t, ds.Records[1].Cells[0])
	require.Equal(t, dataset.TypeInteger, ds.Columns[0].Type)
	require.Equal(t, dataset.TypeInteger, ds.Columns[1].Type)
}

func TestLoadTSV(t *testing.T) {
	path := writeFile(t, "data.tsv", "city\tpop\noslo\t700000\n")

	ds, err := Load(path, format.Delimited)
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)
	require.Equal(t, "oslo", ds.Records[0].Cells[0])
	require.Equal(t, dataset.TypeInteger, ds.Columns[1].Type)
}

func TestLoadDelimitedMalformed(t *testing.T) {
	path := writeFile(t, "bad.csv", "a,b\n\"unterminated\n")

	_, err := Load(path, format.Delimited)
	require.Error(t, err)
}

func TestLoadPathNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), format.Delimited)
	require.ErrorIs(t, err, ErrPathNotFound)
}

func TestClassifyString(t *testing.T) {
	type test struct {
		value string
		want  string
	}

	tests := []test{
		{"", dataset.TypeEmpty},
		{"42", dataset.TypeInteger},
		{"-7", dataset.TypeInteger},
		{"3.14", dataset.TypeFloat},
		{"1e3", dataset.TypeFloat},
		{"true", dataset.TypeBoolean},
		{"FALSE", dataset.TypeBoolean},
		{"2023-10-06", dataset.TypeDate},
		{"2023-10-06 12:30:00", dataset.TypeDate},
		{"hello", dataset.TypeString},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, classifyString(tt.value), "value %q", tt.value)
	}
}

func TestResolveTypeMixtures(t *testing.T) {
	require.Equal(t, dataset.TypeFloat, resolveType(map[string]int{
		dataset.TypeInteger: 2,
		dataset.TypeFloat:   1,
	}))
	require.Equal(t, dataset.TypeString, resolveType(map[string]int{
		dataset.TypeInteger: 2,
		dataset.TypeString:  1,
	}))
	require.Equal(t, dataset.TypeEmpty, resolveType(map[string]int{}))
}
