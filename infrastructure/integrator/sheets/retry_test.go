package sheets

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

type stubSheet struct {
	title string
}

func (s *stubSheet) Title() string { return s.title }
func (s *stubSheet) ReadValues(context.Context, string) ([][]string, error) {
	return nil, nil
}
func (s *stubSheet) WriteValues(context.Context, string, [][]interface{}) error { return nil }
func (s *stubSheet) ColumnCount(context.Context, string) (int, error)           { return 0, nil }
func (s *stubSheet) UpdateCell(context.Context, string, int, int, interface{}) error {
	return nil
}

type scriptedOpener struct {
	errs  []error
	calls int
}

func (o *scriptedOpener) Open(_ context.Context, title string) (Spreadsheet, error) {
	o.calls++
	if o.calls <= len(o.errs) && o.errs[o.calls-1] != nil {
		return nil, o.errs[o.calls-1]
	}
	return &stubSheet{title: title}, nil
}

func newTestRetryingOpener(next Opener, retries int) (*RetryingOpener, *[]time.Duration) {
	slept := []time.Duration{}
	opener := NewRetryingOpener(next, retries, 5*time.Second)
	opener.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return opener, &slept
}

func TestRetryingOpener(t *testing.T) {
	unavailable := &googleapi.Error{Code: http.StatusServiceUnavailable, Message: "backend error"}

	t.Run("abre na terceira tentativa depois de dois 503", func(t *testing.T) {
		next := &scriptedOpener{errs: []error{unavailable, unavailable}}
		opener, slept := newTestRetryingOpener(next, 5)

		sheet, err := opener.Open(context.Background(), "Painel")

		require.NoError(t, err)
		assert.Equal(t, "Painel", sheet.Title())
		assert.Equal(t, 3, next.calls)
		assert.Equal(t, []time.Duration{5 * time.Second, 5 * time.Second}, *slept)
	})

	t.Run("desiste depois de esgotar as tentativas", func(t *testing.T) {
		next := &scriptedOpener{errs: []error{unavailable, unavailable, unavailable}}
		opener, slept := newTestRetryingOpener(next, 3)

		sheet, err := opener.Open(context.Background(), "Painel")

		assert.Nil(t, sheet)
		assert.ErrorIs(t, err, ErrSpreadsheetUnavailable)
		assert.Equal(t, 3, next.calls)
		assert.Len(t, *slept, 2)
	})

	t.Run("outros erros não são repetidos", func(t *testing.T) {
		notFound := errors.New("spreadsheet not found: Painel")
		next := &scriptedOpener{errs: []error{notFound}}
		opener, slept := newTestRetryingOpener(next, 5)

		_, err := opener.Open(context.Background(), "Painel")

		assert.Equal(t, notFound, err)
		assert.Equal(t, 1, next.calls)
		assert.Empty(t, *slept)
	})

	t.Run("contexto cancelado interrompe a espera", func(t *testing.T) {
		next := &scriptedOpener{errs: []error{unavailable, unavailable}}
		opener := NewRetryingOpener(next, 5, time.Hour)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := opener.Open(ctx, "Painel")

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, next.calls)
	})
}

func TestIsUnavailable(t *testing.T) {
	assert.True(t, IsUnavailable(&googleapi.Error{Code: 503}))
	assert.False(t, IsUnavailable(&googleapi.Error{Code: 404}))
	assert.True(t, IsUnavailable(errors.New("APIError: [503]: The service is currently unavailable")))
	assert.False(t, IsUnavailable(errors.New("permission denied")))
	assert.False(t, IsUnavailable(nil))
}
