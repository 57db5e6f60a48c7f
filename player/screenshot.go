package player

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot queues a labeled capture of the next rendered frame. The PNG is
// written to the configured screenshot directory with a timestamped name.
// Safe to call from update hooks.
func (p *Player) Screenshot(label string) {
	p.screenshotQueue = append(p.screenshotQueue, label)
}

// flushScreenshots writes every queued label from the frame buffer just
// rendered. Called at the end of Draw, after the buffer is complete.
func (p *Player) flushScreenshots(pix []byte, w, h int) {
	if len(p.screenshotQueue) == 0 {
		return
	}

	dir := p.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "[player] screenshot: mkdir %s: %v\n", dir, err)
		p.screenshotQueue = p.screenshotQueue[:0]
		return
	}

	// The renderer writes opaque pixels, so the buffer is already valid
	// straight-alpha NRGBA.
	img := &image.NRGBA{
		Pix:    pix,
		Stride: 4 * w,
		Rect:   image.Rect(0, 0, w, h),
	}

	stamp := time.Now().Format("20060102_150405")
	for _, label := range p.screenshotQueue {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			fmt.Fprintf(os.Stderr, "[player] screenshot: %v\n", err)
		}
	}
	p.screenshotQueue = p.screenshotQueue[:0]
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
