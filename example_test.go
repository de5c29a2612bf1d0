package satpam_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/satpam-id/satpam"
	"github.com/satpam-id/satpam/pkg/cookie"
	"github.com/satpam-id/satpam/pkg/store"
)

// A resolver serves exactly one request: construct it in the handler, verify,
// and read the outcome.
func ExampleResolver_Verify() {
	r := httptest.NewRequest("GET", "/dashboard?token=tok-123", nil)
	w := httptest.NewRecorder()

	rs := satpam.New(r, w, satpam.WithURLCheck("token"))
	sess, err := rs.Verify(context.Background(), nil)
	if err != nil {
		panic(err)
	}

	fmt.Println(sess.Status, sess.Token)
	// Output: true tok-123
}

// A hook can mint a token when the request carries none.
func ExampleResolver_Verify_hook() {
	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	guest := func(ctx context.Context, candidate string) (string, error) {
		if candidate != "" {
			return "", nil
		}
		return "guest-1", nil
	}

	sess, err := satpam.New(r, w).Verify(context.Background(), guest)
	if err != nil {
		panic(err)
	}

	fmt.Println(sess.Token)
	fmt.Println(w.Header().Get("Set-Cookie"))
	// Output:
	// guest-1
	// satpam=guest-1; Path=/; HttpOnly; SameSite=Lax
}

// SetSession persists an explicit token with custom cookie attributes.
func ExampleResolver_SetSession() {
	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	rs := satpam.New(r, w, satpam.WithCookieName("sid"))
	header := rs.SetSession("tok-456", cookie.WithMaxAge(3600))

	fmt.Println(header)
	// Output: sid=tok-456; Path=/; Max-Age=3600; HttpOnly; SameSite=Lax
}

// The middleware builds a fresh resolver per request and keeps guest sessions
// alive in a token store.
func ExampleMiddleware() {
	tokens := store.NewMemoryStore(0)
	defer tokens.Close()

	counter := 0
	source := func() (string, error) {
		counter++
		return fmt.Sprintf("guest-%d", counter), nil
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := satpam.MustFromContext(r.Context())
		fmt.Println(sess.Token)
	}))

	handler := satpam.Middleware(satpam.EnsureHook(tokens, source, time.Hour))(mux)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	returning := httptest.NewRequest("GET", "/", nil)
	returning.Header.Set("Cookie", "satpam=guest-1")
	handler.ServeHTTP(httptest.NewRecorder(), returning)

	// Output:
	// guest-1
	// guest-1
}
