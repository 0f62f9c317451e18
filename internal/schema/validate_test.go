package schema

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-settings-keeper/internal/tree"
	"github.com/MKhiriev/go-settings-keeper/internal/validators"
	"github.com/MKhiriev/go-settings-keeper/models"
)

func describeFor(t *testing.T, v any) *Node {
	t.Helper()
	root, err := Describe(reflect.TypeOf(v))
	require.NoError(t, err)
	return root
}

func validationErr(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	return vErr
}

// paths collects the field paths of every failure for easy assertions.
func paths(vErr *ValidationError) []string {
	out := make([]string, len(vErr.Fields))
	for i, f := range vErr.Fields {
		out[i] = f.Path
	}
	return out
}

// ── Apply: success paths ──────────────────────────────────────────────────────

// TestApply_CoercesAllLeafKinds verifies coercion of string raw values from
// flat sources and native values from YAML alike.
func TestApply_CoercesAllLeafKinds(t *testing.T) {
	type leafKinds struct {
		Str      string        `conf:"STR"`
		Num      int           `conf:"NUM"`
		Big      int64         `conf:"BIG"`
		Ratio    float64       `conf:"RATIO"`
		On       bool          `conf:"ON"`
		Wait     time.Duration `conf:"WAIT"`
		Key      models.Secret `conf:"KEY"`
		Tags     []string      `conf:"TAGS"`
		FromYAML int           `conf:"FROM_YAML"`
	}

	merged := tree.Tree{
		"STR":       "hello",
		"NUM":       "42",
		"BIG":       "9000000000",
		"RATIO":     "0.25",
		"ON":        "true",
		"WAIT":      "1h30m",
		"KEY":       "s3cr3t",
		"TAGS":      "a, b,c",
		"FROM_YAML": 7, // native int as the YAML source delivers it
	}

	var got leafKinds
	root := describeFor(t, leafKinds{})
	require.NoError(t, Apply(merged, &got, root, validators.Context{}))

	assert.Equal(t, "hello", got.Str)
	assert.Equal(t, 42, got.Num)
	assert.Equal(t, int64(9000000000), got.Big)
	assert.Equal(t, 0.25, got.Ratio)
	assert.True(t, got.On)
	assert.Equal(t, 90*time.Minute, got.Wait)
	assert.Equal(t, "s3cr3t", got.Key.Reveal())
	assert.Equal(t, []string{"a", "b", "c"}, got.Tags)
	assert.Equal(t, 7, got.FromYAML)
}

// TestApply_UsesDefaults verifies that absent leaves fall back to their
// declared defaults while present leaves keep the sourced value.
func TestApply_UsesDefaults(t *testing.T) {
	var got testSchema
	root := describeFor(t, testSchema{})

	merged := tree.Tree{
		"API_KEY": "provided",
		"DB":      tree.Tree{"HOST": "db.example.com"},
	}
	require.NoError(t, Apply(merged, &got, root, validators.Context{}))

	assert.Equal(t, "svc", got.ServiceName)
	assert.Equal(t, 30*time.Second, got.Timeout)
	assert.Equal(t, "db.example.com", got.DB.Host)
	assert.Equal(t, 5432, got.DB.Port)
	assert.Equal(t, 20, got.DB.Perf.PoolSize)
}

// TestApply_OptionalLeafStaysZero verifies that an absent optional leaf
// without a default is simply left at its zero value.
func TestApply_OptionalLeafStaysZero(t *testing.T) {
	var got testSchema
	root := describeFor(t, testSchema{})

	require.NoError(t, Apply(tree.Tree{"API_KEY": "k"}, &got, root, validators.Context{}))
	assert.Nil(t, got.Tags)
	assert.True(t, got.DB.Password.IsZero())
}

// ── Apply: failure aggregation ────────────────────────────────────────────────

// TestApply_MissingRequiredField verifies the exact field path appears in
// the aggregated error.
func TestApply_MissingRequiredField(t *testing.T) {
	var got testSchema
	root := describeFor(t, testSchema{})

	err := Apply(tree.Tree{}, &got, root, validators.Context{})
	vErr := validationErr(t, err)

	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "API_KEY", vErr.Fields[0].Path)
	assert.Equal(t, KindMissing, vErr.Fields[0].Kind)
	assert.Contains(t, err.Error(), "API_KEY: missing required field")
}

// TestApply_AggregatesEveryFailure verifies that all field-level failures
// are reported in one pass instead of stopping at the first.
func TestApply_AggregatesEveryFailure(t *testing.T) {
	var got testSchema
	root := describeFor(t, testSchema{})

	merged := tree.Tree{
		"TIMEOUT": "not-a-duration",
		"DB": tree.Tree{
			"PORT": "not-a-number",
			"PERF": tree.Tree{"POOL_SIZE": "NaN"},
		},
	}

	vErr := validationErr(t, Apply(merged, &got, root, validators.Context{}))
	assert.ElementsMatch(t, []string{"TIMEOUT", "API_KEY", "DB.PORT", "DB.PERF.POOL_SIZE"}, paths(vErr))
}

// TestApply_TypeFailureDetails verifies a coercion failure names the path,
// the expected type, and the offending value.
func TestApply_TypeFailureDetails(t *testing.T) {
	var got testSchema
	root := describeFor(t, testSchema{})

	merged := tree.Tree{
		"API_KEY": "k",
		"DB":      tree.Tree{"PORT": "eighty"},
	}

	vErr := validationErr(t, Apply(merged, &got, root, validators.Context{}))
	require.Len(t, vErr.Fields, 1)
	f := vErr.Fields[0]
	assert.Equal(t, "DB.PORT", f.Path)
	assert.Equal(t, KindType, f.Kind)
	assert.Equal(t, "int", f.Expected)
	assert.Equal(t, "eighty", f.Value)
}

// TestApply_SensitiveValuesRedactedInErrors verifies that a failing secret
// field never leaks its raw value into the error report.
func TestApply_SensitiveValuesRedactedInErrors(t *testing.T) {
	type withSecret struct {
		Token models.Secret `conf:"TOKEN"`
	}

	var got withSecret
	root := describeFor(t, withSecret{})

	// A YAML mapping where a scalar secret is expected cannot coerce.
	merged := tree.Tree{"TOKEN": tree.Tree{"oops": "super-secret-raw"}}

	vErr := validationErr(t, Apply(merged, &got, root, validators.Context{}))
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, models.RedactionToken, vErr.Fields[0].Value)
	assert.NotContains(t, vErr.Error(), "super-secret-raw")
}

// TestApply_ScalarWhereGroupExpected verifies a single section-level
// failure when a source provides a scalar at a group path.
func TestApply_ScalarWhereGroupExpected(t *testing.T) {
	var got testSchema
	root := describeFor(t, testSchema{})

	merged := tree.Tree{
		"API_KEY": "k",
		"DB":      "just-a-string",
	}

	vErr := validationErr(t, Apply(merged, &got, root, validators.Context{}))
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "DB", vErr.Fields[0].Path)
	assert.Equal(t, KindSection, vErr.Fields[0].Kind)
}

// ── Apply: validators and cross-field rules ───────────────────────────────────

// TestApply_RunsNamedValidators verifies constraint failures carry the
// validator's reason and the field path.
func TestApply_RunsNamedValidators(t *testing.T) {
	type constrained struct {
		Host string `conf:"HOST" validate:"nonempty"`
		File string `conf:"FILE" validate:"file_exists"`
	}

	dir := t.TempDir()
	existing := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o600))

	var got constrained
	root := describeFor(t, constrained{})

	// Valid values pass.
	require.NoError(t, Apply(tree.Tree{"HOST": "h", "FILE": existing}, &got, root, validators.Context{}))
	assert.Equal(t, existing, got.File)

	// Invalid values fail with one constraint failure each.
	vErr := validationErr(t, Apply(tree.Tree{"HOST": "  ", "FILE": filepath.Join(dir, "missing.txt")}, &got, root, validators.Context{}))
	assert.ElementsMatch(t, []string{"HOST", "FILE"}, paths(vErr))
	for _, f := range vErr.Fields {
		assert.Equal(t, KindConstraint, f.Kind)
	}
}

// TestApply_RelativePathsResolveAgainstBaseDir verifies the validator
// context's base directory anchors relative path checks.
func TestApply_RelativePathsResolveAgainstBaseDir(t *testing.T) {
	type withFile struct {
		File string `conf:"FILE" validate:"file_exists"`
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.csv"), []byte("x"), 0o600))

	var got withFile
	root := describeFor(t, withFile{})

	require.NoError(t, Apply(tree.Tree{"FILE": "data.csv"}, &got, root, validators.Context{BaseDir: dir}))
}

type guardedGroup struct {
	A string `conf:"A"`
	B string `conf:"B"`
}

var errGuard = errors.New("A and B must be provided together")

func (g guardedGroup) Validate() error {
	if (g.A == "") != (g.B == "") {
		return errGuard
	}
	return nil
}

type withGuard struct {
	Pair guardedGroup `conf:"PAIR"`
}

// TestApply_GroupCrossFieldValidation verifies that a group implementing
// Validate is checked after its fields coerce, and that the failure is
// reported at the group path.
func TestApply_GroupCrossFieldValidation(t *testing.T) {
	root := describeFor(t, withGuard{})

	var ok withGuard
	require.NoError(t, Apply(tree.Tree{"PAIR": tree.Tree{"A": "x", "B": "y"}}, &ok, root, validators.Context{}))

	var bad withGuard
	vErr := validationErr(t, Apply(tree.Tree{"PAIR": tree.Tree{"A": "x"}}, &bad, root, validators.Context{}))
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "PAIR", vErr.Fields[0].Path)
	assert.Equal(t, errGuard.Error(), vErr.Fields[0].Reason)
}

// TestApply_RejectsBadTarget verifies the target contract.
func TestApply_RejectsBadTarget(t *testing.T) {
	root := describeFor(t, testSchema{})

	assert.Error(t, Apply(tree.Tree{}, testSchema{}, root, validators.Context{}))
	assert.Error(t, Apply(tree.Tree{}, (*testSchema)(nil), root, validators.Context{}))
	assert.Error(t, Apply(tree.Tree{}, &struct{}{}, root, validators.Context{}))
}
