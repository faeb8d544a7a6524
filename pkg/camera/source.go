package camera

import (
	"fmt"
	"io"
	"net/http"
	"sync"

	"gocv.io/x/gocv"

	"github.com/foxnetlabs/go-horizon/internal/config"
	"github.com/foxnetlabs/go-horizon/internal/httpc"
)

// FrameSource is the interface for capturing frames.
type FrameSource interface {
	// CaptureJPEG returns the most recent frame as JPEG bytes.
	CaptureJPEG() ([]byte, error)

	// Close releases the capture device.
	Close() error
}

// Webcam captures frames from a local V4L2/AVFoundation device via
// OpenCV.
type Webcam struct {
	cap *gocv.VideoCapture
	cfg Config
	mu  sync.Mutex
}

// OpenWebcam opens the configured local capture device.
func OpenWebcam(cfg Config) (*Webcam, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("camera config: %v", errs)
	}

	cap, err := gocv.OpenVideoCapture(cfg.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("open device %d: %w", cfg.DeviceID, err)
	}
	cap.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	cap.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))
	cap.Set(gocv.VideoCaptureFPS, float64(cfg.Framerate))

	return &Webcam{cap: cap, cfg: cfg}, nil
}

// CaptureJPEG grabs one frame and encodes it to JPEG.
func (w *Webcam) CaptureJPEG() ([]byte, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	img := gocv.NewMat()
	defer img.Close()

	if ok := w.cap.Read(&img); !ok || img.Empty() {
		return nil, fmt.Errorf("device %d returned no frame", w.cfg.DeviceID)
	}

	if code, flip := flipCode(w.cfg); flip {
		gocv.Flip(img, &img, code)
	}

	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, img,
		[]int{gocv.IMWriteJpegQuality, w.cfg.Quality})
	if err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	defer buf.Close()

	out := make([]byte, len(buf.GetBytes()))
	copy(out, buf.GetBytes())
	return out, nil
}

// Close releases the capture device.
func (w *Webcam) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cap.Close()
}

// flipCode maps the orientation flags to an OpenCV flip code.
func flipCode(cfg Config) (int, bool) {
	switch {
	case cfg.VFlip && cfg.HMirror:
		return -1, true
	case cfg.VFlip:
		return 0, true
	case cfg.HMirror:
		return 1, true
	}
	return 0, false
}

// Remote captures frames from the rover's HTTP photo endpoint.
type Remote struct {
	url    string
	client *http.Client
}

// NewRemote creates a frame source backed by the rover's /photo
// endpoint.
func NewRemote(roverIP string) *Remote {
	return &Remote{
		url:    config.RoverPhotoURL(roverIP),
		client: httpc.Client,
	}
}

// CaptureJPEG fetches one frame from the rover.
func (r *Remote) CaptureJPEG() ([]byte, error) {
	resp, err := r.client.Get(r.url)
	if err != nil {
		return nil, fmt.Errorf("fetch frame: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch frame: rover returned %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("rover returned an empty frame")
	}
	return data, nil
}

// Close is a no-op for the remote source.
func (r *Remote) Close() error {
	return nil
}
