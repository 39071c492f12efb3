package testutil

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
)

func TestFakeResolver(t *testing.T) {
	r := NewFakeResolver(map[string][]string{
		"data.astropy.org": {"192.0.2.10", "2001:db8::10"},
	})
	ctx := context.Background()

	addrs, err := r.LookupHost(ctx, "data.astropy.org")
	if err != nil {
		t.Fatalf("LookupHost() error: %v", err)
	}
	if len(addrs) != 2 {
		t.Errorf("got %d addresses, want 2", len(addrs))
	}

	addrs, err = r.LookupHost(ctx, "127.0.0.1")
	if err != nil || len(addrs) != 1 || addrs[0] != "127.0.0.1" {
		t.Errorf("IP literal lookup = %v, %v", addrs, err)
	}

	_, err = r.LookupHost(ctx, "unknown.invalid")
	dnsErr, ok := err.(*net.DNSError)
	if !ok || !dnsErr.IsNotFound {
		t.Errorf("unknown host error = %v, want not-found DNSError", err)
	}

	if got := r.Lookups(); len(got) != 3 || got[2] != "unknown.invalid" {
		t.Errorf("Lookups() = %v", got)
	}
}

func TestStaticLocalNames(t *testing.T) {
	names := StaticLocalNames("buildhost", "buildhost.example.com")(context.Background())
	if len(names) != 2 || names[1] != "buildhost.example.com" {
		t.Errorf("names = %v", names)
	}
}

func TestLoopbackServer(t *testing.T) {
	srv := LoopbackServer(t, "hello")

	if !strings.HasPrefix(srv.URL, "http://127.0.0.1:") {
		t.Errorf("URL = %q, want a 127.0.0.1 address", srv.URL)
	}

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "hello" {
		t.Errorf("body = %q, want hello", body)
	}
}

func TestFixtures(t *testing.T) {
	for _, name := range []string{"netguard.toml", "netguard.yaml", "invalid.toml"} {
		data, err := LoadFixture(name)
		if err != nil {
			t.Fatalf("LoadFixture(%s) error: %v", name, err)
		}
		if !strings.Contains(string(data), "remote_data") {
			t.Errorf("fixture %s should set remote_data", name)
		}
	}

	path := WriteFixture(t, t.TempDir(), "netguard.toml")
	if !strings.HasSuffix(path, "netguard.toml") {
		t.Errorf("WriteFixture() = %q", path)
	}
}
