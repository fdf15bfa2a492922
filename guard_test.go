package guard

import (
	stderrors "errors"
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify_Sentinel(t *testing.T) {
	sentinel := stderrors.New("boom")
	g := New(Expect(sentinel))

	require.Equal(t, ClassificationExpected, g.Classify(sentinel))
	require.Equal(t, ClassificationUnexpected, g.Classify(stderrors.New("other")))
}

func TestClassify_WrappedSentinel(t *testing.T) {
	sentinel := stderrors.New("boom")
	g := New(Expect(sentinel))

	// Chain traversal: a wrapped expected failure is still expected
	wrapped := fmt.Errorf("outer context: %w", sentinel)
	require.Equal(t, ClassificationExpected, g.Classify(wrapped))
}

func TestClassify_Type(t *testing.T) {
	g := New(ExpectType[*strconv.NumError]())

	_, numErr := strconv.Atoi("not a number")
	require.Equal(t, ClassificationExpected, g.Classify(numErr))

	wrapped := fmt.Errorf("parse failed: %w", numErr)
	require.Equal(t, ClassificationExpected, g.Classify(wrapped))

	require.Equal(t, ClassificationUnexpected, g.Classify(stderrors.New("other")))
}

func TestClassify_Predicate(t *testing.T) {
	g := New(ExpectMatch(os.IsNotExist))

	_, err := os.Open("/nonexistent/path/for/guard/test")
	require.Error(t, err)
	require.Equal(t, ClassificationExpected, g.Classify(err))
	require.Equal(t, ClassificationUnexpected, g.Classify(stderrors.New("other")))
}

func TestClassify_MultipleKinds(t *testing.T) {
	first := stderrors.New("first")
	second := stderrors.New("second")
	g := New(Expect(first, second), ExpectType[*strconv.NumError]())

	tests := []struct {
		name string
		err  error
		want Classification
	}{
		{
			name: "first sentinel",
			err:  first,
			want: ClassificationExpected,
		},
		{
			name: "second sentinel",
			err:  second,
			want: ClassificationExpected,
		},
		{
			name: "type member",
			err:  &strconv.NumError{Func: "Atoi", Num: "x", Err: strconv.ErrSyntax},
			want: ClassificationExpected,
		},
		{
			name: "non-member",
			err:  stderrors.New("other"),
			want: ClassificationUnexpected,
		},
		{
			name: "nil error",
			err:  nil,
			want: ClassificationExpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, g.Classify(tt.err))
		})
	}
}

func TestClassify_EmptySet(t *testing.T) {
	// Zero expected kinds is legal: every failure is unexpected
	g := New()

	require.Equal(t, ClassificationUnexpected, g.Classify(stderrors.New("anything")))
	require.Equal(t, ClassificationExpected, g.Classify(nil))
}

func TestIsExpected(t *testing.T) {
	require.True(t, ClassificationExpected.IsExpected())
	require.False(t, ClassificationUnexpected.IsExpected())
}
