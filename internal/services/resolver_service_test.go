package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/pkg/utils"
)

// stubCompletionClient returns a canned reply and counts calls. Shared by the
// resolver and itinerary tests.
type stubCompletionClient struct {
	reply string
	err   error
	calls int
}

func (s *stubCompletionClient) Complete(ctx context.Context, system, user string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestCityResolver_SeededCityNeedsNoModelCall(t *testing.T) {
	ai := &stubCompletionClient{err: errors.New("must not be called")}
	r := NewCityResolver(ai)

	code, err := r.Resolve(context.Background(), "london")
	require.NoError(t, err)
	assert.Equal(t, "LON", code)
	assert.Equal(t, 0, ai.calls)

	// Normalization: case and surrounding whitespace are ignored.
	code, err = r.Resolve(context.Background(), "  New York ")
	require.NoError(t, err)
	assert.Equal(t, "NYC", code)
	assert.Equal(t, 0, ai.calls)
}

func TestCityResolver_ModelResultIsValidatedAndCached(t *testing.T) {
	ai := &stubCompletionClient{reply: "xyz\n"}
	r := NewCityResolver(ai)

	code, err := r.Resolve(context.Background(), "Nowhereville")
	require.NoError(t, err)
	assert.Equal(t, "XYZ", code)
	assert.Equal(t, 1, ai.calls)

	// Second resolve hits the cache.
	code, err = r.Resolve(context.Background(), "nowhereville")
	require.NoError(t, err)
	assert.Equal(t, "XYZ", code)
	assert.Equal(t, 1, ai.calls)
}

func TestCityResolver_RejectsBadModelOutput(t *testing.T) {
	cases := []struct {
		name  string
		reply string
	}{
		{"unknown literal", "UNKNOWN"},
		{"too long", "LOND"},
		{"lower after trim still invalid", "l1n"},
		{"empty", ""},
		{"prose", "The code is LON"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewCityResolver(&stubCompletionClient{reply: tc.reply})
			_, err := r.Resolve(context.Background(), "Nowhereville")
			assert.ErrorIs(t, err, utils.ErrCityNotFound)
		})
	}
}

func TestCityResolver_TransportFailureIsNotFound(t *testing.T) {
	r := NewCityResolver(&stubCompletionClient{err: errors.New("boom")})
	_, err := r.Resolve(context.Background(), "Nowhereville")
	assert.ErrorIs(t, err, utils.ErrCityNotFound)
}

func TestCityResolver_EmptyNameIsNotFound(t *testing.T) {
	r := NewCityResolver(&stubCompletionClient{reply: "LON"})
	_, err := r.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, utils.ErrCityNotFound)
}

func TestCityResolver_BatchPartialResults(t *testing.T) {
	ai := &stubCompletionClient{reply: `{"Springfield": "SGF", "Atlantis": null, "Gotham": "not-a-code"}`}
	r := NewCityResolver(ai)

	codes, err := r.ResolveBatch(context.Background(), []string{"Springfield", "Atlantis", "Gotham"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Springfield": "SGF"}, codes)

	// Valid batch entries land in the cache.
	code, err := r.Resolve(context.Background(), "springfield")
	require.NoError(t, err)
	assert.Equal(t, "SGF", code)
	assert.Equal(t, 1, ai.calls)
}

func TestCityResolver_BatchInvalidJSON(t *testing.T) {
	r := NewCityResolver(&stubCompletionClient{reply: "no json here"})
	_, err := r.ResolveBatch(context.Background(), []string{"Springfield"})
	assert.ErrorIs(t, err, utils.ErrUnexpectedAIOutput)
}

func TestCityResolver_BatchEmptyInput(t *testing.T) {
	ai := &stubCompletionClient{reply: "{}"}
	r := NewCityResolver(ai)
	codes, err := r.ResolveBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, codes)
	assert.Equal(t, 0, ai.calls)
}
