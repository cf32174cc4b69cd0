package bazel

import (
	"fmt"
	"io"
	"strings"
)

const progressBarWidth = 40

// progressReader renders a simple in-place progress bar while the download
// body is consumed. Only used on interactive terminals.
type progressReader struct {
	r     io.Reader
	w     io.Writer
	name  string
	total int64
	read  int64
}

func newProgressReader(r io.Reader, w io.Writer, name string, total int64) *progressReader {
	return &progressReader{r: r, w: w, name: name, total: total}
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	p.read += int64(n)
	p.render()
	return n, err
}

func (p *progressReader) render() {
	total := p.total
	if total <= 0 {
		// Servers that omit Content-Length still get a moving bar.
		total = p.read + 1
	}

	fraction := float64(p.read) / float64(total)
	if fraction > 1 {
		fraction = 1
	}
	filled := int(progressBarWidth * fraction)

	fmt.Fprintf(p.w, "%s [%s%s] %d%%\r",
		p.name,
		strings.Repeat("#", filled),
		strings.Repeat(".", progressBarWidth-filled),
		int(fraction*100),
	)
}
