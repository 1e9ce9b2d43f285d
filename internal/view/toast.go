// Package view renders the HTML fragments pushed to the browser over SSE.
package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/msomdec/jobtracker/internal/domain"
)

// ToastContainerID is the id of the element holding the current toast.
const ToastContainerID = "toast"

// Toast renders the toast container, holding t when it is not nil.
func Toast(t *domain.Toast) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if t == nil {
			_, err := fmt.Fprintf(w, `<div id="%s"></div>`, ToastContainerID)
			return err
		}
		_, err := fmt.Fprintf(w,
			`<div id="%s"><div id="toast-%s" class="toast toast-%s" role="status" data-on-click="@delete('/api/toasts')">%s</div></div>`,
			ToastContainerID,
			templ.EscapeString(t.ID),
			templ.EscapeString(string(t.Kind)),
			templ.EscapeString(t.Message),
		)
		return err
	})
}

// StatsContainerID is the element the stats fragment is patched into.
const StatsContainerID = "application-stats"

// StatCount is one labelled counter on the dashboard.
type StatCount struct {
	Label string
	Value int
}

// Stats renders the dashboard counters.
func Stats(counts []StatCount) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<dl class="stats">`); err != nil {
			return err
		}
		for _, c := range counts {
			if _, err := fmt.Fprintf(w, `<div class="stat"><dt>%s</dt><dd>%d</dd></div>`, templ.EscapeString(c.Label), c.Value); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</dl>`)
		return err
	})
}
