package module

import (
	"sync"
	"testing"
)

type leadPorts struct {
	Name string
	ID   int
}

func TestRegistry_RoundTrip(t *testing.T) {
	Reset()

	want := leadPorts{Name: "distribution", ID: 1}
	Register("distribution", want)

	got, ok := PortsAs[leadPorts]("distribution")
	if !ok {
		t.Fatal("lookup failed for a registered name")
	}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRegistry_MissingName(t *testing.T) {
	Reset()

	got, ok := PortsAs[leadPorts]("absent")
	if ok {
		t.Fatal("lookup succeeded for an unregistered name")
	}
	if got != (leadPorts{}) {
		t.Fatalf("non-zero value for a miss: %v", got)
	}
}

func TestRegistry_TypeMismatch(t *testing.T) {
	Reset()

	Register("distribution", leadPorts{Name: "distribution", ID: 2})

	if _, ok := PortsAs[int]("distribution"); ok {
		t.Fatal("lookup succeeded under the wrong type")
	}
}

func TestRegistry_OverwriteWins(t *testing.T) {
	Reset()

	Register("leads", leadPorts{Name: "old", ID: 1})
	Register("leads", leadPorts{Name: "new", ID: 2})

	got, ok := PortsAs[leadPorts]("leads")
	if !ok {
		t.Fatal("lookup failed after overwrite")
	}
	if got.Name != "new" || got.ID != 2 {
		t.Fatalf("stale value survived: %v", got)
	}
}

func TestRegistry_ResetClears(t *testing.T) {
	Reset()

	Register("sources", leadPorts{Name: "sources", ID: 9})
	Reset()

	if _, ok := PortsAs[leadPorts]("sources"); ok {
		t.Fatal("entry survived Reset")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	Reset()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			Register("shared", leadPorts{Name: "w", ID: i})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_, _ = PortsAs[leadPorts]("shared")
		}
	}()

	wg.Wait()

	got, ok := PortsAs[leadPorts]("shared")
	if !ok {
		t.Fatal("entry missing after concurrent writes")
	}
	if got.Name != "w" {
		t.Fatalf("final value: %v", got)
	}
}
