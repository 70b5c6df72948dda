// Command replay summarizes a tick recording and re-simulates it to check
// that the recorded run is reproducible from its seed and input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gridsnake/pkg/game/devtools"
	"gridsnake/pkg/game/replay"
)

func main() {
	var (
		path    = flag.String("file", "", "path to a ticks-*.jsonl.zst recording")
		dumpDir = flag.String("dump", "", "write field.txt and an HTML screenshot of the replayed game to this dir (optional)")
	)
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "missing -file")
		os.Exit(2)
	}

	rec, err := replay.ReadFile(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read recording:", err)
		os.Exit(1)
	}

	h := rec.Header
	cfg := h.Config
	fmt.Printf("recording v%d started=%s seed=%d field=%vx%v cell=%v threshold=%d speed=%d ticks=%d\n",
		h.Version, h.StartedAt.Format("2006-01-02 15:04:05"), h.Seed,
		cfg.Field.Width, cfg.Field.Height, cfg.Field.CellSize,
		cfg.Movement.Threshold, cfg.Movement.Speed, len(rec.Ticks))

	d, err := rec.Verify()
	if err != nil {
		var div *replay.Divergence
		if errors.As(err, &div) {
			fmt.Fprintf(os.Stderr, "replay: %d of %d ticks matched\n", div.Tick-1, len(rec.Ticks))
		}
		fmt.Fprintln(os.Stderr, "replay:", err)
		os.Exit(1)
	}

	if *dumpDir != "" {
		out, err := devtools.DumpFieldToFile(*dumpDir, d.Game)
		if err != nil {
			fmt.Fprintln(os.Stderr, "dump field:", err)
			os.Exit(1)
		}
		fmt.Println("field dumped to", out)
		shot, err := devtools.SaveScreenshotHTML(*dumpDir, d.Game, cfg.Title)
		if err != nil {
			fmt.Fprintln(os.Stderr, "screenshot:", err)
			os.Exit(1)
		}
		fmt.Println("screenshot saved to", shot)
	}

	g := d.Game
	fmt.Printf("replay ok: checked=%d ticks head=(%g, %g) heading=%s food=%d\n",
		len(rec.Ticks), g.Head.Position.X, g.Head.Position.Y, g.Head.Heading, len(g.Food))
}
