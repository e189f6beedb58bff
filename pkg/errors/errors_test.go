package errors

import (
	"strings"
	"testing"
)

func TestLoomErrorString(t *testing.T) {
	err := &LoomError{
		Op:   "core.Install",
		Kind: KindFacet,
		Err:  &FacetNotFoundError{Entity: "btn", Kind: "button", Op: "core.Install"},
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
}

func TestLoomErrorWithEntity(t *testing.T) {
	err := &LoomError{
		Op:     "core.Uninstall",
		Kind:   KindFacet,
		Entity: "main/window",
		Err:    &FacetNotFoundError{Entity: "main/window", Kind: "window", Op: "core.Uninstall"},
	}
	got := err.Error()
	want := "entity=main/window"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindFacet, "facet"},
		{KindMember, "member"},
		{KindTaxonomy, "taxonomy"},
		{KindAffinity, "affinity"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestFacetNotFoundErrorString(t *testing.T) {
	err := &FacetNotFoundError{Entity: "btn", Kind: "content-control", Op: "core.Uninstall"}
	got := err.Error()
	for _, want := range []string{"btn", "content-control", "core.Uninstall"} {
		if !strings.Contains(got, want) {
			t.Errorf("error string %q should contain %q", got, want)
		}
	}
}

func TestMemberNotFoundErrorString(t *testing.T) {
	err := &MemberNotFoundError{Entity: "btn", Member: "Opacity", Type: "*testkit.FakeWidget", Op: "erased.Set"}
	got := err.Error()
	for _, want := range []string{"btn", "Opacity", "*testkit.FakeWidget"} {
		if !strings.Contains(got, want) {
			t.Errorf("error string %q should contain %q", got, want)
		}
	}
}

type captureHandler struct {
	LogHandler
	errs   []*LoomError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *LoomError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError) {
	h.panics = append(h.panics, err)
}

func TestReportSetsTimestamp(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&LoomError{Op: "test.op", Kind: KindTaxonomy, Err: &TaxonomyError{Kind: "panel", Reason: "cycle"}})
	if len(h.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("expected Report to set a timestamp")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("test.panicking")
		panic("boom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("expected 1 reported panic, got %d", len(h.panics))
	}
	if h.panics[0].Value != "boom" {
		t.Errorf("expected panic value %q, got %v", "boom", h.panics[0].Value)
	}
	if h.panics[0].StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
}
