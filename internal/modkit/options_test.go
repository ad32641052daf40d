package modkit

import (
	"net/http"
	"testing"

	phttp "leadrouter/internal/platform/net/http"
)

// configure applies opts to a fresh buildCfg, mirroring what Build does.
func configure(opts ...Option) buildCfg {
	var c buildCfg
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// taggingMW builds a middleware that appends its tag to trace on every call.
func taggingMW(trace *[]string, tag string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, tag)
			if next != nil {
				next.ServeHTTP(w, r)
			}
		})
	}
}

func TestWithNameAndPrefix(t *testing.T) {
	t.Parallel()

	c := configure(WithName("operators"), WithPrefix("/operators"))

	if c.name != "operators" || c.prefix != "/operators" {
		t.Fatalf("name=%q prefix=%q", c.name, c.prefix)
	}
}

func TestWithMiddlewares_AccumulatesInOrder(t *testing.T) {
	t.Parallel()

	var trace []string
	c := configure(
		WithMiddlewares(taggingMW(&trace, "a"), taggingMW(&trace, "b")),
		WithMiddlewares(taggingMW(&trace, "c")),
	)

	if len(c.mw) != 3 {
		t.Fatalf("middleware count: %d", len(c.mw))
	}

	// chain so the first registered runs outermost
	var h http.Handler = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for i := len(c.mw) - 1; i >= 0; i-- {
		h = c.mw[i](h)
	}
	h.ServeHTTP(nil, nil)

	if len(trace) != 3 || trace[0] != "a" || trace[1] != "b" || trace[2] != "c" {
		t.Fatalf("execution order: %v", trace)
	}
}

func TestWithPorts_KeepsConcreteType(t *testing.T) {
	t.Parallel()

	type Ports struct {
		Service string
		Weight  int
	}

	c := configure(WithPorts(Ports{Service: "distribution", Weight: 7}))

	ps, ok := c.ports.(Ports)
	if !ok {
		t.Fatalf("ports type: %T", c.ports)
	}
	if ps.Service != "distribution" || ps.Weight != 7 {
		t.Fatalf("ports value: %+v", ps)
	}
}

func TestWithSwagger_Toggles(t *testing.T) {
	t.Parallel()

	if c := configure(); c.swaggerOn {
		t.Fatal("zero value must be off")
	}
	if c := configure(WithSwagger(true)); !c.swaggerOn {
		t.Fatal("WithSwagger(true) did not enable")
	}
	if c := configure(WithSwagger(true), WithSwagger(false)); c.swaggerOn {
		t.Fatal("WithSwagger(false) did not disable")
	}
}

func TestWithSubrouter_StoresFactory(t *testing.T) {
	t.Parallel()

	called := false
	var seen phttp.Router

	c := configure(WithSubrouter(func(r phttp.Router) phttp.Router {
		called = true
		seen = r
		return r
	}))

	if c.subrouter == nil {
		t.Fatal("factory not stored")
	}

	var r phttp.Router
	out := c.subrouter(r)
	if !called {
		t.Fatal("factory never ran")
	}
	if seen != r || out != r {
		t.Fatalf("factory should be identity here: seen=%v out=%v", seen, out)
	}
}

func TestOptions_Compose(t *testing.T) {
	t.Parallel()

	var trace []string
	c := configure(
		WithName("leads"),
		WithPrefix("/leads"),
		WithSwagger(true),
		WithMiddlewares(taggingMW(&trace, "x")),
		WithPorts(map[string]int{"ok": 1}),
	)

	if c.name != "leads" || c.prefix != "/leads" || !c.swaggerOn {
		t.Fatalf("cfg: %+v", c)
	}
	if len(c.mw) != 1 {
		t.Fatalf("middleware count: %d", len(c.mw))
	}
	if _, ok := c.ports.(map[string]int); !ok {
		t.Fatalf("ports type: %T", c.ports)
	}
}

func TestWithRegister_StoresCallback(t *testing.T) {
	t.Parallel()

	called := false
	var seen phttp.Router

	c := configure(WithRegister(func(r phttp.Router) {
		called = true
		seen = r
	}))

	if c.register == nil {
		t.Fatal("register not stored")
	}

	var r phttp.Router
	c.register(r)
	if !called {
		t.Fatal("register never ran")
	}
	if seen != r {
		t.Fatal("register got a different router")
	}
}
