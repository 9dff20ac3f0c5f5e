package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"tunereads/internal/platform/googlebooks"
	"tunereads/internal/recommend/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func volumeWith(title string, mutate func(*googlebooks.Volume)) googlebooks.Volume {
	v := googlebooks.Volume{ID: "vol-" + title}
	v.VolumeInfo.Title = title
	if mutate != nil {
		mutate(&v)
	}
	return v
}

func TestSourceNormalizesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searcher := mocks.NewMockVolumeSearcher(ctrl)
	searcher.EXPECT().
		Volumes(gomock.Any(), "some query", 5).
		Return([]googlebooks.Volume{volumeWith("Bare Bones", nil)}, nil)

	source := NewSource(searcher, zap.NewNop())
	recs := source.Search(context.Background(), "some query", 5)

	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, "Unknown Author", rec.Author)
	assert.Equal(t, "A great read.", rec.Description)
	assert.Equal(t, "Fiction", rec.Genre)
	assert.Equal(t, 4.0, rec.Rating)
	assert.Empty(t, rec.Reason)
	assert.Contains(t, rec.AmazonURL, "Bare+Bones")
}

func TestSourceTruncatesLongDescriptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	long := strings.Repeat("a", 300)
	searcher := mocks.NewMockVolumeSearcher(ctrl)
	searcher.EXPECT().
		Volumes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]googlebooks.Volume{volumeWith("Long One", func(v *googlebooks.Volume) {
			v.VolumeInfo.Description = long
		})}, nil)

	source := NewSource(searcher, zap.NewNop())
	recs := source.Search(context.Background(), "q", 5)

	require.Len(t, recs, 1)
	assert.Equal(t, strings.Repeat("a", 200)+"...", recs[0].Description)
	assert.Len(t, recs[0].Description, 203)
}

func TestSourceTruncatesOnRunesNotBytes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The 200th character is multibyte; a byte-based cut would split it.
	long := strings.Repeat("a", 199) + "é" + strings.Repeat("b", 100)
	searcher := mocks.NewMockVolumeSearcher(ctrl)
	searcher.EXPECT().
		Volumes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]googlebooks.Volume{volumeWith("Accented One", func(v *googlebooks.Volume) {
			v.VolumeInfo.Description = long
		})}, nil)

	source := NewSource(searcher, zap.NewNop())
	recs := source.Search(context.Background(), "q", 5)

	require.Len(t, recs, 1)
	got := recs[0].Description
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("a", 199)+"é...", got)
	assert.Equal(t, 203, utf8.RuneCountInString(got))
}

func TestSourcePrefersISBN13(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searcher := mocks.NewMockVolumeSearcher(ctrl)
	searcher.EXPECT().
		Volumes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]googlebooks.Volume{volumeWith("With ISBNs", func(v *googlebooks.Volume) {
			v.VolumeInfo.IndustryIdentifiers = []googlebooks.IndustryIdentifier{
				{Type: "ISBN_10", Identifier: "0123456789"},
				{Type: "ISBN_13", Identifier: "9780123456786"},
			}
		})}, nil)

	source := NewSource(searcher, zap.NewNop())
	recs := source.Search(context.Background(), "q", 5)

	require.Len(t, recs, 1)
	assert.Equal(t, "https://www.amazon.com/s?k=9780123456786", recs[0].AmazonURL)
}

func TestSourceFallsBackToISBN10(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searcher := mocks.NewMockVolumeSearcher(ctrl)
	searcher.EXPECT().
		Volumes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]googlebooks.Volume{volumeWith("Old Edition", func(v *googlebooks.Volume) {
			v.VolumeInfo.IndustryIdentifiers = []googlebooks.IndustryIdentifier{
				{Type: "OTHER", Identifier: "whatever"},
				{Type: "ISBN_10", Identifier: "0123456789"},
			}
		})}, nil)

	source := NewSource(searcher, zap.NewNop())
	recs := source.Search(context.Background(), "q", 5)

	require.Len(t, recs, 1)
	assert.Equal(t, "https://www.amazon.com/s?k=0123456789", recs[0].AmazonURL)
}

func TestSourceKeepsProvidedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searcher := mocks.NewMockVolumeSearcher(ctrl)
	searcher.EXPECT().
		Volumes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]googlebooks.Volume{volumeWith("Complete", func(v *googlebooks.Volume) {
			v.VolumeInfo.Authors = []string{"First Author", "Second Author"}
			v.VolumeInfo.Description = "Short and sweet."
			v.VolumeInfo.Categories = []string{"Mystery"}
			v.VolumeInfo.AverageRating = 3.5
			v.VolumeInfo.ImageLinks.Thumbnail = "https://covers.example/complete.jpg"
		})}, nil)

	source := NewSource(searcher, zap.NewNop())
	recs := source.Search(context.Background(), "q", 5)

	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, "First Author", rec.Author)
	assert.Equal(t, "Short and sweet.", rec.Description)
	assert.Equal(t, "Mystery", rec.Genre)
	assert.Equal(t, 3.5, rec.Rating)
	assert.Equal(t, "https://covers.example/complete.jpg", rec.CoverURL)
}

func TestSourceSoftFailsOnSearchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searcher := mocks.NewMockVolumeSearcher(ctrl)
	searcher.EXPECT().
		Volumes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("upstream 500"))

	source := NewSource(searcher, zap.NewNop())
	recs := source.Search(context.Background(), "q", 5)

	assert.Empty(t, recs)
}

func TestSourceSkipsUntitledVolumes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	searcher := mocks.NewMockVolumeSearcher(ctrl)
	searcher.EXPECT().
		Volumes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]googlebooks.Volume{
			{ID: "untitled"},
			volumeWith("Named", nil),
		}, nil)

	source := NewSource(searcher, zap.NewNop())
	recs := source.Search(context.Background(), "q", 5)

	require.Len(t, recs, 1)
	assert.Equal(t, "Named", recs[0].Title)
}
