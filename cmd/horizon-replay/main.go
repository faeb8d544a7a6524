// Horizon-replay - run the estimator over recorded segment frames
//
// Reads JSON-lines frames (the feed wire format) from a file or stdin
// and prints the estimate for each frame. Useful for tuning without a
// camera attached.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/foxnetlabs/go-horizon/pkg/feed"
	"github.com/foxnetlabs/go-horizon/pkg/horizon"
)

func main() {
	input := flag.String("input", "-", "Frame file (JSON lines), - for stdin")
	profile := flag.String("profile", "default", "Tuning profile: default, stable, responsive")
	verbose := flag.Bool("v", false, "Print wall candidates too")
	flag.Parse()

	cfg, err := tuningProfile(*profile)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	est, err := horizon.New(cfg)
	if err != nil {
		log.Fatalf("❌ Estimator: %v", err)
	}

	in := os.Stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("❌ Open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	fmt.Println("🎞️  Horizon replay")

	var total, found int
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		frame, err := feed.DecodeFrame(line)
		if err != nil {
			fmt.Printf("frame %d: ⚠️  %v\n", total+1, err)
			total++
			continue
		}

		res := est.Estimate(frame.Segments, frame.Width, frame.Height)
		total++

		if res.Found {
			found++
			fmt.Printf("frame %d: y=%.1f angle=%.1f° conf=%.2f segments=%d\n",
				total, res.Horizon.Y, res.Horizon.Angle, res.Horizon.Confidence, res.Horizon.SegmentCount)
		} else {
			fmt.Printf("frame %d: no horizon (%d walls)\n", total, len(res.Walls))
		}
		if *verbose {
			for _, w := range res.Walls {
				fmt.Printf("         wall angle=%.1f° length=%.1f\n", w.Angle, w.Length)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("❌ Read input: %v", err)
	}

	fmt.Printf("\n✅ %d/%d frames with a horizon\n", found, total)
}

// tuningProfile maps a profile name to an estimator configuration.
func tuningProfile(name string) (horizon.Config, error) {
	switch name {
	case "default":
		return horizon.DefaultConfig(), nil
	case "stable":
		return horizon.StableConfig(), nil
	case "responsive":
		return horizon.ResponsiveConfig(), nil
	}
	return horizon.Config{}, fmt.Errorf("unknown profile %q", name)
}
