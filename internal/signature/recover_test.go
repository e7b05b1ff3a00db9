package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanobind-stubgen/internal/diagnostic"
	"nanobind-stubgen/internal/pysyntax"
)

func newTestRecoverer(t *testing.T) (*Recoverer, *diagnostic.Diagnostics) {
	t.Helper()

	v, err := pysyntax.NewValidator(pysyntax.DefaultCacheSize)
	require.NoError(t, err)

	diags := &diagnostic.Diagnostics{}

	return NewRecoverer(v, diags), diags
}

func TestRecover_NoDocumentation(t *testing.T) {
	r, diags := newTestRecoverer(t)

	for _, doc := range []string{"", "   \n  "} {
		sig := r.Recover("mod.add", "add", doc, false)

		assert.Equal(t, "add(*args, **kwargs)", sig.Text)
		assert.Empty(t, sig.Doc)
		assert.True(t, sig.IsFallback())
	}

	assert.Empty(t, diags.Warnings)
}

func TestRecover_DocumentedSignature(t *testing.T) {
	r, diags := newTestRecoverer(t)

	sig := r.Recover("mod.add", "add", "add(x: int) -> int\n\nAdds one.\n  Keeps indentation.\n", false)

	assert.Equal(t, "add", sig.Name)
	assert.Equal(t, "add(x: int) -> int", sig.Text)
	assert.Equal(t, "Adds one.\n  Keeps indentation.", sig.Doc)
	assert.False(t, sig.IsFallback())
	assert.Empty(t, diags.Warnings)
}

func TestRecover_InvalidSignatureFallsBack(t *testing.T) {
	r, diags := newTestRecoverer(t)

	sig := r.Recover("mod.add", "add", "add(x: int\nBroken.", false)

	assert.Equal(t, "add(*args, **kwargs)", sig.Text)
	assert.Empty(t, sig.Doc)
	assert.Equal(t, 1, diags.Count(diagnostic.CodeInvalidSignature))
	assert.Equal(t, "mod.add", diags.Warnings[0].Member)
}

func TestRecover_ParameterOrderFallsBack(t *testing.T) {
	tests := []string{
		"f(x: int = 1, y: int) -> None",
		"f(**kwargs, x: int) -> None",
		"f(*, ) -> None",
		"f(*args, /) -> None",
	}

	for _, doc := range tests {
		t.Run(doc, func(t *testing.T) {
			r, diags := newTestRecoverer(t)

			sig := r.Recover("m.f", "f", doc+"\nDoc.", false)

			assert.True(t, sig.IsFallback())
			assert.Empty(t, sig.Doc)
			assert.Equal(t, 1, diags.Count(diagnostic.CodeInvalidSignature))
		})
	}
}

func TestRecover_KeywordOnlyAfterDefault(t *testing.T) {
	r, diags := newTestRecoverer(t)

	sig := r.Recover("m.f", "f", "f(x: int = 1, *, y: int) -> None", false)

	assert.Equal(t, "f(x: int = 1, *, y: int) -> None", sig.Text)
	assert.Empty(t, diags.Warnings)
}

func TestRecover_QuietSuppressesWarning(t *testing.T) {
	r, diags := newTestRecoverer(t)

	sig := r.Recover("mod.Color.__init__", "__init__", "Initialize self.  See help(type(self)).", true)

	assert.True(t, sig.IsFallback())
	assert.Empty(t, diags.Warnings)
}

func TestRecover_NameMismatchFallsBack(t *testing.T) {
	r, diags := newTestRecoverer(t)

	sig := r.Recover("mod.add", "add", "other(x: int) -> int\nDoc.", false)

	assert.Equal(t, "add(*args, **kwargs)", sig.Text)
	assert.Empty(t, sig.Doc)
	assert.Empty(t, diags.Warnings)
}

func TestRecover_KeywordName(t *testing.T) {
	r, diags := newTestRecoverer(t)

	sig := r.Recover("mod.foo", "foo", "lambda(x: int) -> int", false)

	assert.True(t, sig.IsFallback())
	assert.Equal(t, 1, diags.Count(diagnostic.CodeKeywordName))
}

func TestRecover_RewritesSignatureButNotDoc(t *testing.T) {
	r, _ := newTestRecoverer(t)

	doc := "f(a: ndarray[dtype=float32, shape=(3,4)], b: Foo = <Foo object at 0x7f3a1>) -> std::__1::pair<int, float>\n" +
		"Returns a std::__1::pair<int, float>."

	sig := r.Recover("mod.f", "f", doc, false)

	assert.Equal(t, "f(a: numpy.typing.NDArray, b: Foo = ...) -> Tuple[int, float]", sig.Text)
	assert.Equal(t, "Returns a std::__1::pair<int, float>.", sig.Doc)
}

func TestCallableName(t *testing.T) {
	assert.Equal(t, "foo", CallableName(" foo (x)"))
	assert.Equal(t, "Overloaded function.", CallableName("Overloaded function."))
	assert.Equal(t, "", CallableName("(x)"))
}
