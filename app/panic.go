package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"lcdgfx/fonts/font6x8"
	"lcdgfx/gfx"
	"lcdgfx/internal/logging"
	"lcdgfx/textbox"
)

// showPanic logs v with the stack and paints it on the display. It gives up
// on the screen when another session still holds the display.
func (a *App) showPanic(v any) {
	stack := strings.TrimSpace(string(debug.Stack()))
	logging.L().Error("panic", "scene", a.scenes[a.cur].name(), "value", v, "stack", stack)

	dc, ok := a.d.TryAcquire()
	if !ok {
		return
	}
	defer dc.Close()

	var b strings.Builder
	fmt.Fprintf(&b, "panic in %s: %v\n", a.scenes[a.cur].name(), v)
	for _, line := range strings.Split(stack, "\n") {
		b.WriteString(strings.TrimLeft(line, "\t"))
		b.WriteByte('\n')
	}

	w, h := dc.Size()
	dc.SetFont(font6x8.Font)
	dc.SetTextColor(gfx.Black, gfx.White)
	textbox.Draw(dc, gfx.Pt(0, 0), gfx.Pt(w-1, h-1), b.String(), textbox.Options{
		Wrap:            textbox.CharWrap,
		ClearBackground: true,
		Margins:         textbox.Margins{Top: 2, Bottom: 2, Left: 2, Right: 2},
	})
}
