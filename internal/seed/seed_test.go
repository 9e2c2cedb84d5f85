package seed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

type fakeCreator struct {
	failTitle string
	failAll   bool
	created   []*model.Article
}

func (f *fakeCreator) CreateArticle(_ context.Context, a *model.Article) error {
	if f.failAll || a.Title == f.failTitle {
		return errors.New("duplicate key")
	}
	a.ID = "id-" + *a.Category
	f.created = append(f.created, a)

	return nil
}

func TestArticlesCoverEveryCategory(t *testing.T) {
	articles := Articles()

	require.Len(t, articles, 29)
	assert.Equal(t, []string{"Tecnologia", "Saúde", "Política", "Economia", "Esportes", "Entretenimento", "Educação", "Cultura"},
		Categories())

	perCategory := map[string]int{}
	titles := map[string]bool{}
	for _, a := range articles {
		assert.NotEmpty(t, a.Title)
		assert.NotContains(t, a.Title, "#")
		assert.Equal(t, author, *a.Author)
		assert.Contains(t, Categories(), *a.Category)
		assert.False(t, titles[a.Title], "duplicate title %q", a.Title)
		titles[a.Title] = true
		perCategory[*a.Category]++
	}
	for _, c := range Categories() {
		assert.GreaterOrEqual(t, perCategory[c], 3, c)
	}
	assert.Equal(t, "Inteligência Artificial revoluciona o diagnóstico médico", articles[0].Title)
}

func TestSeedContinuesPastFailures(t *testing.T) {
	c := &fakeCreator{failTitle: "Bolsa de Valores atinge maior alta em 5 anos"}

	created, err := Seed(context.Background(), c, zap.NewNop().Sugar())

	assert.Len(t, created, 28)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bolsa de Valores")
}

func TestSeedStopsWhenCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	created, err := Seed(ctx, &fakeCreator{}, zap.NewNop().Sugar())
	assert.Empty(t, created)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler(&fakeCreator{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/seed", nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 29, body.Inserted)

	rec = httptest.NewRecorder()
	Handler(&fakeCreator{failAll: true}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/seed", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
