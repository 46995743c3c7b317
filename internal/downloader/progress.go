package downloader

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Reporter receives progress events for one transfer. Start is called once
// the response headers are in (total is -1 when the server sends no length),
// Advance after every chunk written, and exactly one of Finish or Abort at
// the end.
type Reporter interface {
	Start(total int64)
	Advance(n int)
	Finish()
	Abort()
}

// NopReporter drops every event. It stands in when stderr is not a terminal
// or progress rendering is turned off.
type NopReporter struct{}

func (NopReporter) Start(total int64) {}
func (NopReporter) Advance(n int)     {}
func (NopReporter) Finish()           {}
func (NopReporter) Abort()            {}

type BarConfig struct {
	Enabled bool
	Writer  io.Writer
	Label   string
}

// BarReporter renders a terminal progress bar for a single transfer. A
// disabled reporter keeps the same surface but does nothing, so call sites
// never branch on TTY state.
type BarReporter struct {
	label     string
	container *mpb.Progress
	bar       *mpb.Bar
	enabled   bool
	last      time.Time
	mu        sync.Mutex
}

func NewBarReporter(config BarConfig) *BarReporter {
	if !config.Enabled {
		return &BarReporter{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	return &BarReporter{
		label:     config.Label,
		container: container,
		enabled:   true,
	}
}

func (r *BarReporter) Start(total int64) {
	if !r.enabled || r.container == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prepend := mpb.PrependDecorators(
		decor.Name(r.label+" ", decor.WC{W: len(r.label) + 1, C: decor.DindentRight}),
		decor.Elapsed(decor.ET_STYLE_HHMMSS, decor.WCSyncWidth),
	)

	if total > 0 {
		r.bar = r.container.New(total,
			mpb.BarStyle().Lbound("[").Filler("=").Tip(">").Padding("-").Rbound("]"),
			prepend,
			mpb.AppendDecorators(
				decor.CountersKibiByte("% .1f / % .1f", decor.WCSyncWidth),
				decor.NewPercentage("%d", decor.WCSyncSpace),
				decor.OnComplete(
					decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncWidth), " ✓ ",
				),
				decor.OnComplete(
					decor.EwmaSpeed(decor.SizeB1024(0), "% .1f", 30, decor.WCSyncSpace), "",
				),
			),
		)
	} else {
		// No Content-Length, so no percentage or ETA. The spinner plus a
		// byte counter is all we can honestly show.
		r.bar = r.container.New(0,
			mpb.SpinnerStyle(),
			prepend,
			mpb.AppendDecorators(
				decor.CurrentKibiByte("% .1f", decor.WCSyncWidth),
				decor.OnComplete(
					decor.EwmaSpeed(decor.SizeB1024(0), "% .1f", 30, decor.WCSyncSpace), " ✓ ",
				),
			),
		)
	}

	r.last = time.Now()
}

func (r *BarReporter) Advance(n int) {
	if !r.enabled || r.bar == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bar.EwmaIncrBy(n, time.Since(r.last))
	r.last = time.Now()
}

func (r *BarReporter) Finish() {
	if !r.enabled || r.bar == nil {
		return
	}
	r.bar.SetTotal(r.bar.Current(), true)
	r.container.Wait()
}

func (r *BarReporter) Abort() {
	if !r.enabled || r.bar == nil {
		return
	}
	r.bar.Abort(false)
	r.container.Wait()
}

// IsTTY reports whether writer is attached to a character device.
func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr) || IsTTY(os.Stdout)
}
