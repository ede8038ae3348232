package serviceImp

import (
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mkulima/database"
	kbRepoImp "mkulima/pkg/kb/repositoryImp"
)

func newSvc(t *testing.T) *Svc {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return New(kbRepoImp.New(db))
}

func TestChunkTextKeepsShortTextWhole(t *testing.T) {
	parts := chunkText("a short advisory note", 1000)
	require.Len(t, parts, 1)
	assert.Equal(t, "a short advisory note", parts[0])
}

func TestChunkTextSplitsOnNewlineAfterLimit(t *testing.T) {
	para := strings.Repeat("x", 600) + "\n"
	parts := chunkText(para+para+para, 1000)
	// the first split lands at the newline after rune 1000
	require.Len(t, parts, 2)
	assert.Equal(t, 1202, len([]rune(parts[0])))
	for _, p := range parts {
		assert.True(t, strings.HasSuffix(p, "\n") || p == parts[len(parts)-1])
	}
}

func TestChunkTextEmpty(t *testing.T) {
	assert.Empty(t, chunkText("", 1000))
}

func TestUpsertDocumentStoresChunks(t *testing.T) {
	s := newSvc(t)
	text := "Remove infected plants immediately.\nUse certified disease-free seeds.\n"
	d, n, err := s.UpsertDocument("Maize Lethal Necrosis", "maize,disease", text, "")
	require.NoError(t, err)
	assert.NotZero(t, d.DocID)
	assert.Equal(t, 1, n)

	chunks, err := s.Search("certified seeds", 5)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, d.DocID, chunks[0].DocID)
}

func TestSearchRanksByTermHits(t *testing.T) {
	s := newSvc(t)
	_, _, err := s.UpsertDocument("Coffee Leaf Rust", "coffee",
		"Apply copper-based fungicides. Copper sprays slow rust spread.", "")
	require.NoError(t, err)
	_, _, err = s.UpsertDocument("Tomato Late Blight", "tomato",
		"Apply fungicides preventively. Improve air circulation.", "")
	require.NoError(t, err)

	hits, err := s.Search("copper rust", 2)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Contains(t, hits[0].Text, "copper-based")

	hits, err = s.Search("fungicides", 5)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestSearchEmptyQuery(t *testing.T) {
	s := newSvc(t)
	hits, err := s.Search("   ", 5)
	require.NoError(t, err)
	assert.Nil(t, hits)
}

func TestSearchCapsAtK(t *testing.T) {
	s := newSvc(t)
	for i := 0; i < 4; i++ {
		_, _, err := s.UpsertDocument("Doc", "", "maize blight advisory", "")
		require.NoError(t, err)
	}
	hits, err := s.Search("maize", 2)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestDocsMeta(t *testing.T) {
	s := newSvc(t)
	d, _, err := s.UpsertDocument("Banana Sigatoka", "banana", "Remove affected leaves.", "https://example.org/sigatoka")
	require.NoError(t, err)

	meta, err := s.DocsMeta([]uint{d.DocID})
	require.NoError(t, err)
	require.Contains(t, meta, d.DocID)
	assert.Equal(t, "Banana Sigatoka", meta[d.DocID].Title)
	assert.Equal(t, "https://example.org/sigatoka", meta[d.DocID].SourceURL)
}
