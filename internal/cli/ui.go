package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/matreduce/internal/format"
	"github.com/agbru/matreduce/internal/orchestration"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 100 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts a terminal spinner so DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// progressBar generates a textual progress bar of the given width.
func progressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// FormatProgress renders the spinner suffix for a progress fraction.
func FormatProgress(progress *orchestration.ProgressCounter, eta time.Duration) string {
	return fmt.Sprintf(" %s %6.2f%% rows %d/%d ETA %s",
		progressBar(progress.Fraction(), ProgressBarWidth),
		progress.Fraction()*100, progress.Done(), progress.Total(), format.FormatETA(eta))
}

// DisplayProgress animates a spinner with a progress bar until ctx is
// cancelled. It calls wg.Done on return.
func DisplayProgress(ctx context.Context, wg *sync.WaitGroup, progress *orchestration.ProgressCounter, out io.Writer) {
	defer wg.Done()
	if progress == nil || progress.Total() == 0 {
		<-ctx.Done()
		return
	}

	opt := spinner.WithWriter(out)
	if f, ok := out.(*os.File); ok {
		opt = spinner.WithWriterFile(f)
	}
	s := newSpinner(opt)
	eta := format.NewETA()
	s.UpdateSuffix(FormatProgress(progress, 0))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.UpdateSuffix(FormatProgress(progress, eta.Remaining(progress.Fraction(), now)))
		}
	}
}
