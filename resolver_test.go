package envcase_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/velmie/x/envcase"
	mock_envcase "github.com/velmie/x/envcase/mock"
)

var errSimulated = errors.New("simulated error")

// ErrorSource always fails
type ErrorSource struct{}

func (ErrorSource) Lookup(string) (string, bool, error) {
	return "", false, errSimulated
}

func (ErrorSource) Each(func(string, string) bool) error {
	return errSimulated
}

func (ErrorSource) Name() string {
	return "Error Source"
}

type recordingLogger struct {
	debug []string
	error []string
}

func (l *recordingLogger) Debug(msg string, args ...any) {
	l.debug = append(l.debug, msg+" "+fmt.Sprint(args...))
}

func (l *recordingLogger) Error(msg string, args ...any) {
	l.error = append(l.error, msg+" "+fmt.Sprint(args...))
}

func TestStandardResolverWithSingleSource(t *testing.T) {
	mapSource := envcase.NewMapSource(map[string]string{
		"Existing_Var": "test_value",
		"EMPTY_VAR":    "",
	}, "Test Source")

	resolver := envcase.NewResolver(mapSource)

	result, err := resolver.Get("EXISTING_VAR")
	require.NoError(t, err)
	assert.True(t, result.Exist)
	assert.Equal(t, "test_value", result.Val)
	assert.Equal(t, "EXISTING_VAR", result.Name)
	assert.Equal(t, "Existing_Var", result.MatchedName)
	assert.Equal(t, "Test Source", result.SourceName)
	assert.Equal(t, []string{"EXISTING_VAR"}, result.AllNames)

	result, err = resolver.Get("NON_EXISTENT_VAR")
	require.NoError(t, err)
	assert.False(t, result.Exist)
	assert.Equal(t, "", result.Val)

	result, err = resolver.Get("empty_var")
	require.NoError(t, err)
	assert.True(t, result.Exist)
	assert.Equal(t, "", result.Val)
}

func TestStandardResolverPolicies(t *testing.T) {
	mapSource := envcase.NewMapSource(map[string]string{"HeLlO": "world"}, "")

	tests := []struct {
		policy envcase.Policy
		key    string
		exist  bool
	}{
		{policy: envcase.Exact, key: "HeLlO", exist: true},
		{policy: envcase.Exact, key: "hello"},
		{policy: envcase.Uncased, key: "HELLO", exist: true},
		{policy: envcase.Lower, key: "hello", exist: true},
		{policy: envcase.Upper, key: "HELLO", exist: true},
		{policy: envcase.LowerKey, key: "HELLO"},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String()+"/"+tt.key, func(t *testing.T) {
			result, err := envcase.NewResolver(mapSource).WithPolicy(tt.policy).Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.exist, result.Exist)
		})
	}
}

func TestStandardResolverUnicodeFolding(t *testing.T) {
	mapSource := envcase.NewMapSource(map[string]string{"Maße": "42"}, "")

	result, err := envcase.NewResolver(mapSource).
		WithPolicy(envcase.Upper).
		WithFolding(envcase.UnicodeFolding).
		Get("MASSE")
	require.NoError(t, err)
	assert.True(t, result.Exist)
	assert.Equal(t, "42", result.Val)

	result, err = envcase.NewResolver(mapSource).
		WithPolicy(envcase.Upper).
		WithFolding(envcase.ASCIIFolding).
		Get("MASSE")
	require.NoError(t, err)
	assert.False(t, result.Exist)
}

func TestStandardResolverWithMultipleSources(t *testing.T) {
	mapSource1 := envcase.NewMapSource(map[string]string{
		"VAR1": "source1_value",
		"var3": "source1_value_for_var3",
	}, "Source 1")

	mapSource2 := envcase.NewMapSource(map[string]string{
		"VAR2": "source2_value",
		"VAR3": "source2_value_for_var3", // shadowed by Source 1
	}, "Source 2")

	resolver := envcase.NewResolver(mapSource1, mapSource2)

	result, err := resolver.Get("var1")
	require.NoError(t, err)
	assert.Equal(t, "source1_value", result.Val)

	result, err = resolver.Get("var2")
	require.NoError(t, err)
	assert.Equal(t, "source2_value", result.Val)
	assert.Equal(t, "Source 2", result.SourceName)

	result, err = resolver.Get("Var3")
	require.NoError(t, err)
	assert.Equal(t, "source1_value_for_var3", result.Val)
	assert.Equal(t, "var3", result.MatchedName)
}

func TestStandardResolverCoalesce(t *testing.T) {
	mapSource := envcase.NewMapSource(map[string]string{
		"VAR1": "",
		"VAR2": "value_for_var2",
		"VAR3": "value_for_var3",
	}, "Test Source")

	resolver := envcase.NewResolver(mapSource)

	result, err := resolver.Coalesce("var1", "var2", "var3")
	require.NoError(t, err)
	assert.True(t, result.Exist)
	assert.Equal(t, "value_for_var2", result.Val)
	assert.Equal(t, "var1", result.Name)
	assert.Equal(t, "VAR2", result.MatchedName)
	assert.Equal(t, []string{"var1", "var2", "var3"}, result.AllNames)

	result, err = resolver.Coalesce("NON_EXISTENT1", "NON_EXISTENT2")
	require.NoError(t, err)
	assert.False(t, result.Exist)
	assert.Equal(t, "NON_EXISTENT1", result.Name)
	assert.Equal(t, []string{"NON_EXISTENT1", "NON_EXISTENT2"}, result.AllNames)

	result, err = resolver.Coalesce()
	require.NoError(t, err)
	assert.False(t, result.Exist)
	assert.Equal(t, "", result.Name)
	assert.Nil(t, result.AllNames)
}

func TestStandardResolverWithErrorSourceAndBreakOnError(t *testing.T) {
	mapSource := envcase.NewMapSource(map[string]string{
		"VAR1": "fallback_value",
	}, "Fallback Source")

	resolver := envcase.NewResolver(ErrorSource{}, mapSource)

	result, err := resolver.Get("VAR1")
	require.Error(t, err)
	assert.ErrorIs(t, err, errSimulated)
	assert.Equal(t, "source Error Source: simulated error", err.Error())
	assert.Nil(t, result)

	result, err = resolver.Coalesce("VAR1")
	assert.ErrorIs(t, err, errSimulated)
	assert.Nil(t, result)
}

func TestStandardResolverWithErrorSourceAndContinueOnError(t *testing.T) {
	mapSource := envcase.NewMapSource(map[string]string{
		"VAR1": "fallback_value",
	}, "Fallback Source")

	logger := &recordingLogger{}
	resolver := envcase.NewResolver(ErrorSource{}, mapSource).
		WithErrorHandler(envcase.ContinueOnError).
		WithLogger(logger)

	result, err := resolver.Get("var1")
	require.NoError(t, err)
	assert.True(t, result.Exist)
	assert.Equal(t, "fallback_value", result.Val)

	require.Len(t, logger.debug, 2)
	assert.Contains(t, logger.debug[0], "skipping failed source")
	assert.Contains(t, logger.debug[1], "variable resolved")
	assert.Empty(t, logger.error)
}

func TestStandardResolverWithCustomErrorHandler(t *testing.T) {
	mapSource := envcase.NewMapSource(map[string]string{
		"VAR1": "fallback_value",
	}, "Fallback Source")

	customErrorHandler := func(err error, sourceName string) (bool, error) {
		return false, errors.New("error from " + sourceName)
	}

	logger := &recordingLogger{}
	resolver := envcase.NewResolver(ErrorSource{}, mapSource).
		WithErrorHandler(customErrorHandler).
		WithLogger(logger)

	result, err := resolver.Get("VAR1")
	require.Error(t, err)
	assert.Equal(t, "error from Error Source", err.Error())
	assert.Nil(t, result)
	assert.Len(t, logger.error, 1)
}

func TestStandardResolverWithMockedSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failing := mock_envcase.NewMockSource(ctrl)
	failing.EXPECT().Name().Return("remote").AnyTimes()
	failing.EXPECT().Lookup("TOKEN").Return("", false, errSimulated)

	working := mock_envcase.NewMockSource(ctrl)
	working.EXPECT().Name().Return("local").AnyTimes()
	working.EXPECT().Lookup("TOKEN").Return("secret", true, nil)

	var handled []string
	resolver := envcase.NewResolver(failing, working).
		WithPolicy(envcase.UpperKey).
		WithErrorHandler(func(err error, sourceName string) (bool, error) {
			handled = append(handled, sourceName)
			return true, nil
		})

	result, err := resolver.Get("token")
	require.NoError(t, err)
	assert.Equal(t, "secret", result.Val)
	assert.Equal(t, "TOKEN", result.MatchedName)
	assert.Equal(t, "local", result.SourceName)
	assert.Equal(t, []string{"remote"}, handled)
}

func TestStandardResolverUnknownPolicy(t *testing.T) {
	resolver := envcase.NewResolver(envcase.NewMapSource(map[string]string{}, "")).
		WithPolicy(envcase.Policy(7)).
		WithErrorHandler(envcase.ContinueOnError)

	_, err := resolver.Get("A")
	assert.ErrorIs(t, err, envcase.ErrUnknownPolicy)

	_, err = resolver.Coalesce("A")
	assert.ErrorIs(t, err, envcase.ErrUnknownPolicy)
}

func TestAddSource(t *testing.T) {
	resolver := envcase.NewResolver(envcase.NewMapSource(map[string]string{
		"VAR1": "original_value",
	}, "Original Source"))

	result, err := resolver.Get("VAR2")
	require.NoError(t, err)
	assert.False(t, result.Exist)

	resolver.AddSource(envcase.NewMapSource(map[string]string{
		"VAR2": "added_value",
	}, "Added Source"))

	result, err = resolver.Get("VAR2")
	require.NoError(t, err)
	assert.True(t, result.Exist)
	assert.Equal(t, "added_value", result.Val)

	result, err = resolver.Get("VAR1")
	require.NoError(t, err)
	assert.Equal(t, "original_value", result.Val)
}

func TestDefaultResolver(t *testing.T) {
	t.Setenv("ENVCASE_DEFAULT", "from_env")

	result := envcase.Get("envcase_default")
	assert.True(t, result.Exist)
	assert.Equal(t, "from_env", result.Val)
	assert.Equal(t, "ENVCASE_DEFAULT", result.MatchedName)

	result = envcase.Coalesce("ENVCASE_MISSING", "Envcase_Default")
	assert.True(t, result.Exist)
	assert.Equal(t, "from_env", result.Val)
}

func TestStandardResolverCoalesceConsidersFirstMatchOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mock_envcase.NewMockSource(ctrl)
	src.EXPECT().Name().Return("ordered").AnyTimes()
	src.EXPECT().Each(gomock.Any()).DoAndReturn(func(fn func(string, string) bool) error {
		for _, kv := range [][2]string{{"k", ""}, {"K", "x"}} {
			if !fn(kv[0], kv[1]) {
				break
			}
		}
		return nil
	}).Times(2)

	resolver := envcase.NewResolver(src)

	result, err := resolver.Coalesce("k")
	require.NoError(t, err)
	assert.False(t, result.Exist)

	result, err = resolver.Get("k")
	require.NoError(t, err)
	assert.True(t, result.Exist)
	assert.Equal(t, "", result.Val)
	assert.Equal(t, "k", result.MatchedName)
}
