package coordinator

import (
	"context"
	"fmt"
	"time"
)

// showHint shows text and hides it after d. A newer hint replaces the
// pending hide.
func (o *Overlay) showHint(ctx context.Context, text string, d time.Duration) {
	if o.deps.Hints == nil {
		return
	}
	o.deps.Hints.ShowHint(ctx, text)
	if o.cancelHint != nil {
		o.cancelHint()
	}
	o.cancelHint = o.deps.Scheduler.After(d, func() {
		o.cancelHint = nil
		o.deps.Hints.HideHint(o.ctx)
	})
}

func (o *Overlay) hideHint(ctx context.Context) {
	if o.cancelHint == nil {
		return
	}
	o.cancelHint()
	o.cancelHint = nil
	o.deps.Hints.HideHint(ctx)
}

func sizeHint(width, height int) string {
	return fmt.Sprintf("%d × %d", width, height)
}
