package detect

import (
	"fmt"
	"image"
	"math"
	"sync"

	"gocv.io/x/gocv"

	"github.com/foxnetlabs/go-horizon/pkg/debug"
	"github.com/foxnetlabs/go-horizon/pkg/geometry"
	"github.com/foxnetlabs/go-horizon/pkg/horizon"
)

// HoughDetector finds line segments with OpenCV's probabilistic Hough
// transform: grayscale, Gaussian blur, Canny edges, HoughLinesP. All
// thresholds scale with the frame resolution.
type HoughDetector struct {
	config Config
	mu     sync.Mutex // Protects the OpenCV pipeline
}

// NewHough creates a new Hough line detector.
func NewHough(cfg Config) (*HoughDetector, error) {
	if cfg.BlurKernel < 1 || cfg.BlurKernel%2 == 0 {
		return nil, fmt.Errorf("blur kernel must be a positive odd number, got %d", cfg.BlurKernel)
	}
	return &HoughDetector{config: cfg}, nil
}

// Detect finds line segments in the JPEG image.
func (d *HoughDetector) Detect(jpeg []byte) (Frame, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	img, err := gocv.IMDecode(jpeg, gocv.IMReadColor)
	if err != nil {
		return Frame{}, fmt.Errorf("decode image: %w", err)
	}
	defer img.Close()

	if img.Empty() {
		return Frame{}, fmt.Errorf("empty image")
	}

	frame := Frame{Width: img.Cols(), Height: img.Rows()}
	params := horizon.AdaptParams(d.config.Tuning, frame.Width, frame.Height)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(gray, &blurred,
		image.Pt(d.config.BlurKernel, d.config.BlurKernel), 0, 0, gocv.BorderDefault)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(blurred, &edges, float32(params.CannyLow), float32(params.CannyHigh))

	lines := gocv.NewMat()
	defer lines.Close()
	gocv.HoughLinesPWithParams(edges, &lines,
		1, math.Pi/180,
		params.HoughVotes,
		float32(params.MinLineLength),
		float32(params.MaxLineGap))

	for r := 0; r < lines.Rows(); r++ {
		if d.config.MaxSegments > 0 && len(frame.Segments) >= d.config.MaxSegments {
			break
		}
		// HoughLinesP output rows are (x1, y1, x2, y2).
		v := lines.GetVeciAt(r, 0)
		frame.Segments = append(frame.Segments,
			geometry.NewSegment(float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])))
	}

	if len(frame.Segments) > 0 {
		debug.DetectLog("📐 Hough found %d segment(s) in %dx%d\n",
			len(frame.Segments), frame.Width, frame.Height)
	}

	return frame, nil
}

// Close releases the detector resources.
func (d *HoughDetector) Close() error {
	return nil
}
