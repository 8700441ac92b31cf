package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSmartValidJSONHasNoDiagnostics(t *testing.T) {
	out := ParseSmart(`{"a": 1, "b": [1, 2, 3], "c": "hi"}`)
	require.True(t, out.OK)
	require.Empty(t, out.Errors)
	require.Len(t, out.Results, 1)

	obj := out.Results[0].ObjectValue()
	assert.Equal(t, []string{"a", "b", "c"}, obj.Keys())
}

func TestParseSmartEmptyInputIsOKWithNoResults(t *testing.T) {
	out := ParseSmart("   \n\t  ")
	assert.True(t, out.OK)
	assert.Empty(t, out.Results)
	assert.Empty(t, out.Errors)
}

func TestParseSmartTruncatedObjectAutoCloses(t *testing.T) {
	out := ParseSmart(`{"a": 1, "b": `)
	require.Len(t, out.Results, 1)
	require.False(t, out.OK)

	obj := out.Results[0].ObjectValue()
	v, ok := obj.Get("b")
	require.True(t, ok)
	assert.True(t, v.IsNull())
	assert.NotEmpty(t, out.Errors)
}

func TestParseSmartUnclosedArrayAutoCloses(t *testing.T) {
	out := ParseSmart(`[1, 2, 3`)
	require.Len(t, out.Results, 1)
	arr := out.Results[0].ArrayValue()
	assert.Equal(t, []float64{1, 2, 3}, numbers(arr))
	assert.False(t, out.OK)
}

func TestParseSmartPythonTokensConvertedByDefault(t *testing.T) {
	out := ParseSmart(`{"a": True, "b": False, "c": None}`)
	obj := out.Results[0].ObjectValue()

	a, _ := obj.Get("a")
	b, _ := obj.Get("b")
	c, _ := obj.Get("c")
	assert.Equal(t, true, a.BoolValue())
	assert.Equal(t, false, b.BoolValue())
	assert.True(t, c.IsNull())
	assert.False(t, out.OK)
	assert.Len(t, out.Errors, 3)
}

func TestParseSmartPythonTokensOffByOption(t *testing.T) {
	out := ParseSmart(`[True]`, WithPythonTokens(false))
	arr := out.Results[0].ArrayValue()
	require.Len(t, arr, 0)
}

func TestParseSmartUndefinedAndNaNAndInfinityBecomeNull(t *testing.T) {
	out := ParseSmart(`[undefined, NaN, Infinity]`)
	arr := out.Results[0].ArrayValue()
	require.Len(t, arr, 3)
	for _, v := range arr {
		assert.True(t, v.IsNull())
	}
	assert.Len(t, out.Errors, 3)
}

func TestParseSmartCommentsSkippedByDefault(t *testing.T) {
	out := ParseSmart("{\n  // leading comment\n  \"a\": 1 /* trailing */\n}")
	require.True(t, out.OK)
	obj := out.Results[0].ObjectValue()
	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, float64(1), v.NumberValue())
}

func TestParseSmartTrailingCommentAfterValueIgnoredWhenCommentsDisallowed(t *testing.T) {
	out := ParseSmart(`{"a": 1} // trailing`, WithComments(false))
	require.True(t, out.OK)
	_ = out
}

func TestParseSmartPrematureArrayEndHeuristic(t *testing.T) {
	// A bare object key shape appearing where an array element was
	// expected signals the array actually ended already.
	out := ParseSmart(`{"items": [1, 2 "next": "value"]}`)
	root := out.Results[0].ObjectValue()
	items, ok := root.Get("items")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, numbers(items.ArrayValue()))
}

func TestParseSmartEmbeddedHTMLInString(t *testing.T) {
	out := ParseSmart(`{"body": "<div class=\"card\">hi</div>"}`)
	root := out.Results[0].ObjectValue()
	v, ok := root.Get("body")
	require.True(t, ok)
	assert.Equal(t, `<div class="card">hi</div>`, v.StringValue())
}

func TestParseSmartExtraCommaInsideArrayIsSilentlyDropped(t *testing.T) {
	out := ParseSmart(`[1,, 2]`)
	arr := out.Results[0].ArrayValue()
	assert.Equal(t, []float64{1, 2}, numbers(arr))
}

func TestParseSmartBareTopLevelCommaIsStrayAndRecovered(t *testing.T) {
	out := ParseSmart(`,`)
	require.Len(t, out.Results, 1)
	assert.True(t, out.Results[0].IsNull())
	assert.False(t, out.OK)
	require.Len(t, out.Errors, 1)
	assert.Contains(t, out.Errors[0], "Stray ','")
}

func TestParseSmartStrictModeStopsAtFirstDiagnostic(t *testing.T) {
	out := ParseSmart(`{"a": True, "b": False}`, WithStrict())
	assert.False(t, out.OK)
	assert.Equal(t, 1, out.ErrorCount)
	assert.Len(t, out.Errors, 1)
}

func TestParseSmartMaxDepthPrunesDeepContainers(t *testing.T) {
	out := ParseSmart(`{"a":{"b":{"c":1}}}`, WithMaxDepth(2))
	root := out.Results[0].ObjectValue()
	a, ok := root.Get("a")
	require.True(t, ok)
	assert.Equal(t, Object, a.Kind())
	assert.False(t, out.OK)

	found := false
	for _, e := range out.Errors {
		if containsAll(e, "Max depth") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParseSmartBOMConsumedOnce(t *testing.T) {
	out := ParseSmart("\xef\xbb\xbf{\"a\": 1}")
	require.True(t, out.OK)
	obj := out.Results[0].ObjectValue()
	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, float64(1), v.NumberValue())
}

func TestParseSmartUnquotedAndSingleQuotedKeys(t *testing.T) {
	out := ParseSmart(`{foo: 1, 'bar': 2}`)
	obj := out.Results[0].ObjectValue()
	assert.Equal(t, []string{"foo", "bar"}, obj.Keys())
	assert.False(t, out.OK)
}

func TestParseSmartDuplicateKeysOverwriteKeepingPosition(t *testing.T) {
	out := ParseSmart(`{"a": 1, "b": 2, "a": 3}`)
	obj := out.Results[0].ObjectValue()
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	v, _ := obj.Get("a")
	assert.Equal(t, float64(3), v.NumberValue())
}

func TestParseSmartTrailingCommaAllowedByDefault(t *testing.T) {
	out := ParseSmart(`[1, 2, 3,]`)
	assert.True(t, out.OK)
	assert.Equal(t, []float64{1, 2, 3}, numbers(out.Results[0].ArrayValue()))
}

func TestParseSmartTrailingCommaRejectedWhenDisallowed(t *testing.T) {
	out := ParseSmart(`[1, 2, 3,]`, WithTrailingComma(false))
	assert.False(t, out.OK)
	assert.Equal(t, []float64{1, 2, 3}, numbers(out.Results[0].ArrayValue()))
}

func TestParserDirectAPIPanicsOnSecondParse(t *testing.T) {
	p := New(`{"a": 1}`)
	_, _, _ = p.Parse()
	assert.Panics(t, func() {
		_, _, _ = p.Parse()
	})
}

func TestParserDirectAPIReturnsDecodedValue(t *testing.T) {
	p := New(`[1, 2, 3]`)
	ok, result, errs := p.Parse()
	require.True(t, ok)
	assert.Empty(t, errs)
	assert.Equal(t, []float64{1, 2, 3}, numbers(result.ArrayValue()))
}

func numbers(vs []Value) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.NumberValue()
	}
	return out
}

func containsAll(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

func TestParseSmartArrayWithEmbeddedObjectKeysRecoversAsSiblingMembers(t *testing.T) {
	// Mirrors the "youtube-like" fixture in spec.md scenario 6: an
	// array value that was never closed before the author started
	// writing "key": value pairs belonging to the enclosing object.
	out := ParseSmart(`{"formats": [{"itag": 18}, "fps":30, "quality":"240p"]}`)
	root := out.Results[0].ObjectValue()

	formats, ok := root.Get("formats")
	require.True(t, ok)
	require.Equal(t, Array, formats.Kind())
	require.Len(t, formats.ArrayValue(), 1)

	assert.False(t, out.OK)
	found := false
	for _, e := range out.Errors {
		if containsAll(e, "Detected object key inside array") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParseSmartStrictWithPythonTokensDisabled(t *testing.T) {
	// Scenario 10 of spec.md §8.
	out := ParseSmart(`{"x": True}`, WithStrict(), WithPythonTokens(false))
	assert.False(t, out.OK)
	assert.Empty(t, out.Results)
	assert.Equal(t, 1, out.ErrorCount)
	assert.Len(t, out.Errors, 1)
}

func TestParseSmartCommaCommaObjectOpenMultipleStrayCommas(t *testing.T) {
	// Scenario 9 of spec.md §8.
	out := ParseSmart(`,,{"a":1,,,`)
	require.Len(t, out.Results, 1)
	obj := out.Results[0].ObjectValue()
	v, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, float64(1), v.NumberValue())
	assert.False(t, out.OK)
	assert.GreaterOrEqual(t, len(out.Errors), 2)
}

func TestParseSmartMissingCommaBetweenMembers(t *testing.T) {
	// Scenario 8 of spec.md §8.
	out := ParseSmart(`{"a":1 "b":2}`)
	obj := out.Results[0].ObjectValue()
	a, _ := obj.Get("a")
	b, _ := obj.Get("b")
	assert.Equal(t, float64(1), a.NumberValue())
	assert.Equal(t, float64(2), b.NumberValue())
	found := false
	for _, e := range out.Errors {
		if containsAll(e, "Expected ',' or '}'") {
			found = true
		}
	}
	assert.True(t, found)
}
