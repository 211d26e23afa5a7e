package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"snapbridge/internal/adapters/providers/devkit"
	"snapbridge/internal/platform/config"
	perr "snapbridge/internal/platform/errors"
	phttp "snapbridge/internal/platform/net/http"
	"snapbridge/internal/services/api"
	"snapbridge/internal/services/bridge/client"
	dom "snapbridge/internal/services/bridge/domain"

	"github.com/go-chi/chi/v5"
)

func host(t *testing.T) *httptest.Server {
	t.Helper()
	t.Setenv("BRIDGE_HOST_TOKEN", "tok")

	mux := chi.NewRouter()
	k := devkit.New(devkit.Settings{Login: devkit.LoginSuccess, Installed: true}, devkit.DefaultFixture())
	api.Mount(phttp.AdaptChi(mux), api.Options{Config: config.New(), Providers: k.Providers()})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestInvoke(t *testing.T) {
	srv := host(t)
	c := client.New(srv.URL+"/", "tok")

	w, err := c.Invoke(context.Background(), dom.Command{Name: dom.MethodIsInstalled})
	if err != nil || w.Failed() || w.Data != true {
		t.Fatalf("isInstalled = %+v, %v", w, err)
	}

	w, err = c.Invoke(context.Background(), dom.Command{ID: "c-9", Name: dom.MethodSendMedia, Payload: map[string]any{"mediaType": "PHOTO"}})
	if err != nil || !w.Failed() || w.Reason != "SendMediaArgsError" {
		t.Fatalf("sendMedia = %+v, %v", w, err)
	}

	w, err = c.Invoke(context.Background(), dom.Command{Name: "nope"})
	if err != nil || w.StatusCode != http.StatusNotImplemented {
		t.Fatalf("nope = %+v, %v", w, err)
	}
}

func TestMethods(t *testing.T) {
	srv := host(t)
	got, err := client.New(srv.URL, "tok").Methods(context.Background())
	if err != nil || len(got) != 7 {
		t.Fatalf("methods = %v, %v", got, err)
	}

	if _, err := client.New(srv.URL, "wrong").Methods(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnauthenticated) {
		t.Fatalf("want unauthenticated, got %v", err)
	}
}

func TestUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	_, err := client.New(srv.URL, "").Invoke(context.Background(), dom.Command{Name: dom.MethodLogout})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}
}
