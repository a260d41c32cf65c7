package api_test

import (
	"context"
	"net/http"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/joestump/content-genius/internal/api"
	"github.com/joestump/content-genius/internal/llm"
	"github.com/joestump/content-genius/internal/store"
)

// fakeGenerator records the last call and answers with a fixed result.
type fakeGenerator struct {
	content string
	err     error

	calls  int
	tpl    *store.Template
	fields llm.Fields
	model  string
}

func (g *fakeGenerator) Generate(_ context.Context, tpl *store.Template, fields llm.Fields, modelName string) (string, error) {
	g.calls++
	g.tpl, g.fields, g.model = tpl, fields, modelName
	return g.content, g.err
}

type fakeCatalog struct {
	models []llm.ModelDescriptor
}

func (c *fakeCatalog) ListModels(context.Context) []llm.ModelDescriptor { return c.models }

// panicAccessor simulates an unexpected failure inside a handler.
type panicAccessor struct{}

func (panicAccessor) List(context.Context) []*store.Template { panic("template listing exploded") }
func (panicAccessor) Get(context.Context, string) (*store.Template, bool) {
	panic("template lookup exploded")
}

// testEnv holds the router and the fakes behind it.
type testEnv struct {
	Router    http.Handler
	Generator *fakeGenerator
	Catalog   *fakeCatalog
}

// newTestEnv wires the API router over the built-in templates and fakes
// for the provider.
func newTestEnv(t *testing.T, strict bool) *testEnv {
	t.Helper()
	gen := &fakeGenerator{content: "generated text"}
	cat := &fakeCatalog{models: llm.StaticCatalog()}
	router := api.NewAPIRouter(api.Deps{
		Templates:    store.NewAccessor(nil, zaptest.NewLogger(t)),
		Generator:    gen,
		Catalog:      cat,
		StrictErrors: strict,
		Log:          zaptest.NewLogger(t),
	})
	return &testEnv{Router: router, Generator: gen, Catalog: cat}
}
