package site

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/haemonga/portfolio/internal/app/store/portfolio"
	"github.com/haemonga/portfolio/internal/domain/models"
	"github.com/haemonga/portfolio/internal/testutil"
)

func newTestSite(t *testing.T) (http.Handler, *portfolio.Store) {
	t.Helper()
	testutil.MustBootTemplates(t)

	repo := portfolio.New(testutil.TempStore(t), zap.NewNop())
	repo.Hydrate(testutil.TestContext(t))
	return Routes(NewHandler(repo, zap.NewNop())), repo
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHome(t *testing.T) {
	router, repo := newTestSite(t)

	rec := get(t, router, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()

	if name := repo.Profile().Name; !strings.Contains(body, name) {
		t.Errorf("home page missing profile name %q", name)
	}
	for _, p := range repo.Projects() {
		if !strings.Contains(body, "/work/"+p.Slug) {
			t.Errorf("home page missing link to %q", p.Slug)
		}
	}
}

func TestWorkPage(t *testing.T) {
	router, repo := newTestSite(t)
	project := repo.Projects()[0]

	rec := get(t, router, "/work/"+project.Slug)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()

	if !strings.Contains(body, project.Title) {
		t.Error("work page missing project title")
	}
	// The text block's content comes through the block renderer.
	for _, b := range project.Blocks {
		if text, ok := b.Data.(models.TextData); ok {
			if !strings.Contains(body, string(text)) {
				t.Errorf("work page missing block text %q", text)
			}
			break
		}
	}
}

func TestWorkPageRendersSavedEdits(t *testing.T) {
	router, repo := newTestSite(t)
	ctx := testutil.TestContext(t)

	saved := repo.SaveProject(ctx, models.Project{
		ID:    "p2",
		Title: "Fresh Work",
		Blocks: []models.ContentBlock{
			{ID: "b1", Type: models.BlockText, Data: models.TextData("freshly written copy")},
		},
	})

	rec := get(t, router, "/work/"+saved.Slug)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "freshly written copy") {
		t.Error("saved block text not rendered")
	}
}

func TestWorkUnknownSlug(t *testing.T) {
	router, _ := newTestSite(t)

	rec := get(t, router, "/work/no-such-project")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestUnknownPath(t *testing.T) {
	router, _ := newTestSite(t)

	rec := get(t, router, "/definitely/not/here")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
