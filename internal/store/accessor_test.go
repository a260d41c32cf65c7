package store_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap/zaptest"

	"github.com/joestump/content-genius/internal/store"
	"github.com/joestump/content-genius/internal/testutil"
)

// newFailingStore returns a TemplateStore whose every query fails, the way
// an unreachable database would.
func newFailingStore(t *testing.T) (*store.TemplateStore, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = mockDB.Close() })
	return store.NewTemplateStore(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestAccessor_Get_BuiltinWhenStoreUnreachable(t *testing.T) {
	ts, mock := newFailingStore(t)
	mock.ExpectQuery("SELECT (.+) FROM templates WHERE id").
		WithArgs("blog-post").
		WillReturnError(errors.New("connection refused"))

	a := store.NewAccessor(ts, zaptest.NewLogger(t))
	tpl, ok := a.Get(context.Background(), "blog-post")
	if !ok {
		t.Fatal("expected blog-post from built-ins")
	}
	if !strings.Contains(tpl.Prompt, "{topic}") {
		t.Errorf("prompt = %q, want {topic} placeholder", tpl.Prompt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAccessor_Get_UnknownIDIsAbsent(t *testing.T) {
	a := store.NewAccessor(store.NewTemplateStore(testutil.NewTestDB(t)), zaptest.NewLogger(t))

	tpl, ok := a.Get(context.Background(), "nonexistent-id")
	if ok || tpl != nil {
		t.Errorf("got (%v, %v), want (nil, false)", tpl, ok)
	}
}

func TestAccessor_Get_UnknownIDIsAbsentWhenStoreUnreachable(t *testing.T) {
	ts, mock := newFailingStore(t)
	mock.ExpectQuery("SELECT (.+) FROM templates WHERE id").
		WillReturnError(errors.New("connection refused"))

	a := store.NewAccessor(ts, zaptest.NewLogger(t))
	if _, ok := a.Get(context.Background(), "nonexistent-id"); ok {
		t.Error("expected absent")
	}
}

func TestAccessor_Get_StoreRowShadowsBuiltin(t *testing.T) {
	ts := store.NewTemplateStore(testutil.NewTestDB(t))
	ctx := context.Background()
	if err := ts.Upsert(ctx, &store.Template{ID: "blog-post", Name: "Custom", Prompt: "Custom {topic}"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	a := store.NewAccessor(ts, zaptest.NewLogger(t))
	tpl, ok := a.Get(ctx, "blog-post")
	if !ok {
		t.Fatal("expected template")
	}
	if tpl.Name != "Custom" {
		t.Errorf("name = %q, want store row %q", tpl.Name, "Custom")
	}
}

func TestAccessor_Get_NoStore(t *testing.T) {
	a := store.NewAccessor(nil, nil)

	tpl, ok := a.Get(context.Background(), "social-media")
	if !ok {
		t.Fatal("expected social-media from built-ins")
	}
	if tpl.Name != "Social Media Post" {
		t.Errorf("name = %q", tpl.Name)
	}
}

func TestAccessor_List_FallbackOnError(t *testing.T) {
	ts, mock := newFailingStore(t)
	mock.ExpectQuery("SELECT (.+) FROM templates").
		WillReturnError(errors.New("relation \"templates\" does not exist"))

	a := store.NewAccessor(ts, zaptest.NewLogger(t))
	all := a.List(context.Background())
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].ID != "blog-post" || all[1].ID != "social-media" {
		t.Errorf("ids = [%s %s], want [blog-post social-media]", all[0].ID, all[1].ID)
	}
}

func TestAccessor_List_FromStore(t *testing.T) {
	ts := store.NewTemplateStore(testutil.NewTestDB(t))
	ctx := context.Background()
	if err := ts.Upsert(ctx, &store.Template{ID: "email-newsletter", Prompt: "News about {topic}"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	a := store.NewAccessor(ts, zaptest.NewLogger(t))
	all := a.List(ctx)
	if len(all) != 1 || all[0].ID != "email-newsletter" {
		t.Errorf("templates = %v, want [email-newsletter]", all)
	}
}

func TestAccessor_List_EmptyStoreIsNotNil(t *testing.T) {
	a := store.NewAccessor(store.NewTemplateStore(testutil.NewTestDB(t)), zaptest.NewLogger(t))

	all := a.List(context.Background())
	if all == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestBuiltins_FreshCopies(t *testing.T) {
	first := store.Builtins()
	first[0].Prompt = "mutated"

	second := store.Builtins()
	if second[0].Prompt == "mutated" {
		t.Error("Builtins returned shared state")
	}
}
