package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/googleapi"
)

// RetryingOpener repete a abertura enquanto o Google responder 503
type RetryingOpener struct {
	next    Opener
	retries int
	delay   time.Duration
	sleep   func(ctx context.Context, d time.Duration) error
}

func NewRetryingOpener(next Opener, retries int, delay time.Duration) *RetryingOpener {
	if retries <= 0 {
		retries = 1
	}
	return &RetryingOpener{
		next:    next,
		retries: retries,
		delay:   delay,
		sleep:   sleepContext,
	}
}

func (o *RetryingOpener) Open(ctx context.Context, title string) (Spreadsheet, error) {
	for attempt := 1; attempt <= o.retries; attempt++ {
		logrus.WithFields(logrus.Fields{
			"title":   title,
			"attempt": attempt,
		}).Debug("Tentando abrir a planilha")

		sheet, err := o.next.Open(ctx, title)
		if err == nil {
			return sheet, nil
		}
		if !IsUnavailable(err) {
			return nil, err
		}

		logrus.WithFields(logrus.Fields{
			"title":   title,
			"attempt": fmt.Sprintf("%d/%d", attempt, o.retries),
			"delay":   o.delay.String(),
		}).Warn("APIError 503 ao abrir a planilha, tentando novamente")

		if attempt == o.retries {
			break
		}
		if err := o.sleep(ctx, o.delay); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: '%s' após %d tentativas", ErrSpreadsheetUnavailable, title, o.retries)
}

// IsUnavailable reconhece a indisponibilidade temporária do Google (503)
func IsUnavailable(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusServiceUnavailable
	}
	return err != nil && strings.Contains(err.Error(), "503")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
