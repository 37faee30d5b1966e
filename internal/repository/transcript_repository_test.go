package repository

import (
	"testing"

	"cgpa_tracker/internal/model"
	"cgpa_tracker/internal/util"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "cgpa_data.txt"

func writeFile(t *testing.T, fs afero.Fs, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, testPath, []byte(content), 0644))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := NewTranscriptRepository(fs, testPath)

	var first model.Semester
	first.AddCourse(8, 3)
	first.AddCourse(6.5, 2)
	var second model.Semester
	second.AddCourse(9, 4)

	require.NoError(t, repo.Save([]model.Semester{first, second}))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, first.Courses(), loaded[0].Courses())
	assert.Equal(t, second.Courses(), loaded[1].Courses())
}

func TestSave_FileFormat(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := NewTranscriptRepository(fs, testPath)

	var sem model.Semester
	sem.AddCourse(8, 3)
	sem.AddCourse(6.5, 2)
	require.NoError(t, repo.Save([]model.Semester{sem}))

	content, err := afero.ReadFile(fs, testPath)
	require.NoError(t, err)
	assert.Equal(t, "2\n8 3\n6.5 2\n", string(content))
}

func TestSave_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	repo := NewTranscriptRepository(fs, testPath)

	var sem model.Semester
	sem.AddCourse(8, 3)
	assert.Error(t, repo.Save([]model.Semester{sem}))
}

func TestLoad_MissingFile(t *testing.T) {
	repo := NewTranscriptRepository(afero.NewMemMapFs(), testPath)

	semesters, err := repo.Load()
	require.ErrorIs(t, err, util.ErrNoSavedData)
	assert.Nil(t, semesters)
}

func TestLoad_EmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "")
	repo := NewTranscriptRepository(fs, testPath)

	semesters, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, semesters)
}

func TestLoad_SkipsBlankLines(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "\n2\n\n8 3\n6 2\n\n1\n9 4\n")
	repo := NewTranscriptRepository(fs, testPath)

	semesters, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, semesters, 2)
	assert.Len(t, semesters[0].Courses(), 2)
	assert.Len(t, semesters[1].Courses(), 1)
}

func TestLoad_CorruptData(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"count exceeds lines", "3\n8 3\n6 2\n", util.ErrCorruptData},
		{"non-numeric count", "two\n8 3\n", util.ErrCorruptData},
		{"negative count", "-1\n", util.ErrCorruptData},
		{"non-numeric grade", "1\nabc 3\n", util.ErrCorruptData},
		{"non-numeric credit", "1\n8 xyz\n", util.ErrCorruptData},
		{"missing credit field", "1\n8\n", util.ErrCorruptData},
		{"extra field", "1\n8 3 1\n", util.ErrCorruptData},
		{"grade above range", "1\n11 3\n", util.ErrInvalidGrade},
		{"grade below range", "1\n-0.5 3\n", util.ErrInvalidGrade},
		{"zero credit", "1\n8 0\n", util.ErrInvalidCredit},
		{"negative credit", "1\n8 -2\n", util.ErrInvalidCredit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeFile(t, fs, tt.content)
			repo := NewTranscriptRepository(fs, testPath)

			semesters, err := repo.Load()
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, semesters)
		})
	}
}
