package placeholder

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/CrestNiraj12/terminalfeed/domain"
)

func TestUserService_ReadsLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte(`[{"id":1,"name":"Leanne Graham"},{"id":2,"name":"<i>Ervin</i>"}]`), 0o600); err != nil {
		t.Fatalf("write users: %v", err)
	}

	users, err := NewUserService(nil, path).FetchUsers(context.Background())
	if err != nil {
		t.Fatalf("fetch users: %v", err)
	}
	want := []domain.User{{ID: 1, Name: "Leanne Graham"}, {ID: 2, Name: "Ervin"}}
	if len(users) != len(want) {
		t.Fatalf("unexpected users: %#v", users)
	}
	for i := range want {
		if users[i] != want[i] {
			t.Fatalf("user %d: got %#v want %#v", i, users[i], want[i])
		}
	}
}

func TestUserService_ReadsRemoteURL(t *testing.T) {
	var gotPath string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[{"id":3,"name":"Clementine"}]`))
	})
	client := newTestClient(h)

	users, err := NewUserService(client, "https://static.test/data/users.json").FetchUsers(context.Background())
	if err != nil {
		t.Fatalf("fetch users: %v", err)
	}
	if gotPath != "/data/users.json" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if len(users) != 1 || users[0].Name != "Clementine" {
		t.Fatalf("unexpected users: %#v", users)
	}
}

func TestUserService_Failures(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("not-json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	for name, source := range map[string]string{
		"missing file": filepath.Join(dir, "missing.json"),
		"invalid json": bad,
		"empty source": "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewUserService(nil, source).FetchUsers(context.Background())
			if !errors.Is(err, domain.ErrFetch) {
				t.Fatalf("expected ErrFetch, got %v", err)
			}
		})
	}
}
