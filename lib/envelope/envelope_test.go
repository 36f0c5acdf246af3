package envelope

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBarePassthrough(t *testing.T) {
	raw := map[string]any{
		"title": "hello",
		"author": map[string]any{
			"nickname": "someone",
		},
		"commentCount": float64(3),
	}
	out, err := Normalize(raw, false)
	require.NoError(t, err)

	diff := cmp.Diff(raw, out)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestNormalizeCodedEnvelope(t *testing.T) {
	out, err := Normalize(map[string]any{
		"code": float64(1000),
		"result": map[string]any{
			"postId": "1-111",
		},
	}, false)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"postId": "1-111"}, out)

	// success code without a result degrades to "no data"
	out, err = Normalize(map[string]any{"code": float64(200)}, false)
	require.NoError(t, err)
	require.Equal(t, map[string]any{}, out)
}

func TestNormalizeErrorEnvelope(t *testing.T) {
	raw := map[string]any{
		"errorCode": "E1",
		"message":   "does not\nexist",
	}

	_, err := Normalize(raw, false)
	var respErr *ResponseError
	require.True(t, errors.As(err, &respErr))
	require.Equal(t, "E1", respErr.Code)
	require.Equal(t, "does not exist", respErr.Message)

	out, err := Normalize(raw, true)
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestNormalizeErrorWithNonObjectData(t *testing.T) {
	// only an object-typed "data" is a recoverable payload
	_, err := Normalize(map[string]any{
		"errorCode": "E1",
		"message":   "x",
		"data":      []any{float64(1)},
	}, false)
	var respErr *ResponseError
	require.True(t, errors.As(err, &respErr))
}

func TestNormalizeErrorWithDataRecovers(t *testing.T) {
	out, err := Normalize(map[string]any{
		"errorCode": "E1",
		"message":   "x",
		"data":      map[string]any{"a": float64(1)},
	}, false)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": float64(1)}, out)
}

func TestNormalizeGatedPayload(t *testing.T) {
	// membership nesting under a solitary "data" key
	out, err := Normalize(map[string]any{
		"data": map[string]any{"a": float64(1)},
	}, false)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": float64(1)}, out)

	// "data" next to other keys is payload, not an envelope
	out, err = Normalize(map[string]any{
		"data":   map[string]any{"a": float64(1)},
		"paging": map[string]any{},
	}, false)
	require.NoError(t, err)
	require.Contains(t, out, "paging")
}

func TestNormalizeDoubleUnwrap(t *testing.T) {
	// coded success wrapping a gated payload unwraps twice
	out, err := Normalize(map[string]any{
		"code": float64(200),
		"result": map[string]any{
			"data": map[string]any{"a": float64(1)},
		},
	}, false)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": float64(1)}, out)
}

func TestNextCursor(t *testing.T) {
	require.Equal(t, "", NextCursor(map[string]any{
		"paging": map[string]any{},
	}))
	require.Equal(t, "", NextCursor(map[string]any{}))
	require.Equal(t, "X", NextCursor(map[string]any{
		"paging": map[string]any{
			"nextParams": map[string]any{"after": "X"},
		},
	}))
}

func TestIterateExhaustive(t *testing.T) {
	pages := map[string]*Page[int]{
		"":  {Items: []int{1, 2}, After: "A"},
		"A": {Items: []int{3, 4}, After: "B"},
		"B": {Items: []int{5}},
	}
	calls := 0
	it := Iterate(func(after string) (*Page[int], error) {
		calls++
		return pages[after], nil
	})

	items, err := it.Collect()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, items)
	require.Equal(t, 3, calls)
}

func TestIterateStopsEarly(t *testing.T) {
	calls := 0
	it := Iterate(func(after string) (*Page[int], error) {
		calls++
		return &Page[int]{Items: []int{1, 2}, After: "more"}, nil
	})

	_, ok := it.Next()
	require.True(t, ok)
	_, ok = it.Next()
	require.True(t, ok)
	// caller walks away; no further pages may be fetched
	require.Equal(t, 1, calls)
}

func TestIterateSurfacesPageError(t *testing.T) {
	boom := fmt.Errorf("connection reset")
	calls := 0
	it := Iterate(func(after string) (*Page[int], error) {
		calls++
		if calls == 2 {
			return nil, boom
		}
		return &Page[int]{Items: []int{1}, After: "next"}, nil
	})

	items, err := it.Collect()
	// the first page's items were already yielded and stay yielded
	require.Equal(t, []int{1}, items)
	require.ErrorIs(t, err, boom)
}
