package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gridsnake/pkg/game/state"
)

// WriteScreenshotHTML writes the whole field of g as a colored HTML page.
func WriteScreenshotHTML(w io.Writer, g *state.Game, title string) error {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>`)
	b.WriteString(html.EscapeString(title))
	b.WriteString(` - Screenshot</title>
    <style>
        body {
            background-color: #1a1a1a;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #40bfbf;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .status { color: #888; margin-bottom: 20px; }
        .map-container {
            background-color: #0f0f0f;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .head { color: #40bfbf; font-weight: bold; }
        .food { color: #ff0000; font-weight: bold; }
        .empty { color: #444; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	h := g.Head
	fmt.Fprintf(&b, `    <div class="header">%s - tick %d</div>`+"\n", html.EscapeString(title), g.Tick)
	fmt.Fprintf(&b, `    <div class="status">Head (%g, %g) heading %s, step %d, food %d</div>`+"\n",
		h.Position.X, h.Position.Y, h.Heading, h.Step, len(g.Food))

	b.WriteString(`    <div class="map-container">` + "\n")
	var dump strings.Builder
	if err := writeMap(&dump, g); err != nil {
		return err
	}
	for _, row := range strings.Split(strings.TrimSuffix(dump.String(), "\n"), "\n") {
		b.WriteString(`        <div class="map-row">`)
		for _, c := range row {
			icon, class := cellHTMLInfo(c)
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, class, icon)
		}
		b.WriteString("</div>\n")
	}
	b.WriteString(`    </div>` + "\n")

	if len(g.Messages) > 0 {
		b.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range g.Messages {
			fmt.Fprintf(&b, `        <div class="message">%s</div>`+"\n", html.EscapeString(msg))
		}
		b.WriteString(`    </div>` + "\n")
	}

	b.WriteString(`</body>
</html>
`)
	_, err := io.WriteString(w, b.String())
	return err
}

// cellHTMLInfo returns the icon and CSS class for a map character
func cellHTMLInfo(c rune) (string, string) {
	switch c {
	case '@':
		return "@", "head"
	case '*':
		return "*", "food"
	default:
		return "&middot;", "empty"
	}
}

// SaveScreenshotHTML writes a timestamped screenshot-*.html into dir and returns its path.
func SaveScreenshotHTML(dir string, g *state.Game, title string) (string, error) {
	name := fmt.Sprintf("screenshot-%s.html", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WriteScreenshotHTML(f, g, title); err != nil {
		_ = f.Close()
		return "", err
	}
	return path, f.Close()
}
