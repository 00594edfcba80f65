// Package diagnostics renders minimal, self-contained failure surfaces
// (a crash/failure notifier modal and a small HUD badge) adapted from
// the teacher's PanicNotifier, but stripped of its EnhancedModal/
// EnhancedButton/Toast widget framework since that GUI shell is out of
// scope for this engine (spec section 1): a fixed-size ebiten modal
// drawn directly with vector/text primitives stands in for it.
package diagnostics

import (
	"fmt"
	"image/color"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FailureInfo is the context captured when a failure notifier is shown:
// an unrecoverable startup error, or a sustained Link Bridge outage
// (spec sections 4.1 and 7).
type FailureInfo struct {
	Title       string
	Message     string
	StackTrace  string
	Snapshot    string // last-known mlink.Snapshot summary, text form
	PackSummary string
	Time        time.Time
}

// CrashNotifier is a minimal modal: a title, a scrollable-free message
// body, and a single "copy diagnostics" button plus a dismiss button.
// It has no cursor-drag scrollbar or theming layer, unlike the teacher's
// PanicNotifier — those concerns belong to the out-of-scope GUI shell.
type CrashNotifier struct {
	visible bool
	info    FailureInfo
	face    font.Face

	copyButtonRect    rect
	dismissButtonRect rect

	copyFlashUntil time.Time
}

type rect struct{ x, y, w, h int }

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

var global *CrashNotifier

// Init sets up the process-wide notifier singleton, the same
// "one global instance" shape as the teacher's InitPanicNotifier.
func Init() {
	if global != nil {
		return
	}
	global = &CrashNotifier{face: basicfont.Face7x13}
}

// Global returns the process-wide notifier, initializing it on first use.
func Global() *CrashNotifier {
	if global == nil {
		Init()
	}
	return global
}

// Show surfaces info as a blocking-looking modal (rendering-wise only;
// the caller decides whether to keep ticking game logic underneath).
func (c *CrashNotifier) Show(info FailureInfo) {
	if info.Time.IsZero() {
		info.Time = time.Now()
	}
	c.info = info
	c.visible = true
}

// ShowPanic captures the current goroutine's recovered panic value and
// stack and shows it, mirroring the teacher's terminate/continue flow
// but without the Terminate button forcing os.Exit — callers decide
// whether a panic is fatal.
func (c *CrashNotifier) ShowPanic(recovered any) {
	c.Show(FailureInfo{
		Title:      "Runtime Error",
		Message:    fmt.Sprintf("%v", recovered),
		StackTrace: string(debug.Stack()),
		Time:       time.Now(),
	})
}

func (c *CrashNotifier) Hide() { c.visible = false }

func (c *CrashNotifier) Visible() bool { return c.visible }

// Update handles the copy/dismiss buttons. Call once per frame while
// Visible() is true.
func (c *CrashNotifier) Update() {
	if !c.visible {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if c.copyButtonRect.contains(mx, my) {
			c.copyDiagnostics()
		}
		if c.dismissButtonRect.contains(mx, my) {
			c.Hide()
		}
	}
}

func (c *CrashNotifier) copyDiagnostics() {
	if runtime.GOOS == "js" {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", c.info.Title, c.info.Time.Format(time.RFC3339))
	fmt.Fprintf(&b, "message: %s\n\n", c.info.Message)
	if c.info.Snapshot != "" {
		fmt.Fprintf(&b, "last snapshot: %s\n\n", c.info.Snapshot)
	}
	if c.info.PackSummary != "" {
		fmt.Fprintf(&b, "pack summary: %s\n\n", c.info.PackSummary)
	}
	if c.info.StackTrace != "" {
		fmt.Fprintf(&b, "stack trace:\n%s\n", c.info.StackTrace)
	}
	clipboard.Write(clipboard.FmtText, []byte(b.String()))
	c.copyFlashUntil = time.Now().Add(2 * time.Second)
}

// Draw renders the modal centered over a screenW x screenH viewport.
func (c *CrashNotifier) Draw(screen *ebiten.Image, screenW, screenH int) {
	if !c.visible {
		return
	}

	modalW, modalH := 520, 360
	x := (screenW - modalW) / 2
	y := (screenH - modalH) / 2

	vector.DrawFilledRect(screen, 0, 0, float32(screenW), float32(screenH), color.RGBA{0, 0, 0, 140}, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(modalW), float32(modalH), color.RGBA{24, 24, 32, 255}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(modalW), float32(modalH), 2, color.RGBA{180, 60, 60, 255}, false)

	text.Draw(screen, c.info.Title, c.face, x+16, y+24, color.RGBA{230, 230, 230, 255})

	lineY := y + 52
	for _, line := range wrapText(c.info.Message, 70) {
		text.Draw(screen, line, c.face, x+16, lineY, color.RGBA{210, 210, 210, 255})
		lineY += 16
	}

	c.copyButtonRect = rect{x: x + 16, y: y + modalH - 48, w: 160, h: 32}
	c.dismissButtonRect = rect{x: x + modalW - 176, y: y + modalH - 48, w: 160, h: 32}

	copyLabel := "Copy diagnostics"
	if time.Now().Before(c.copyFlashUntil) {
		copyLabel = "Copied!"
	}
	drawButton(screen, c.face, c.copyButtonRect, copyLabel, color.RGBA{90, 90, 100, 255})
	drawButton(screen, c.face, c.dismissButtonRect, "Dismiss", color.RGBA{150, 120, 40, 255})
}

func drawButton(screen *ebiten.Image, face font.Face, r rect, label string, bg color.Color) {
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bg, false)
	text.Draw(screen, label, face, r.x+10, r.y+20, color.White)
}

func wrapText(s string, width int) []string {
	var lines []string
	for _, raw := range strings.Split(s, "\n") {
		for len(raw) > width {
			cut := strings.LastIndex(raw[:width], " ")
			if cut <= 0 {
				cut = width
			}
			lines = append(lines, raw[:cut])
			raw = raw[cut:]
			raw = strings.TrimPrefix(raw, " ")
		}
		lines = append(lines, raw)
	}
	return lines
}
