package opencv

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/example/faceattend/internal/imaging"
	"github.com/example/faceattend/internal/vision"
)

const stopKey = 'q'

var tierColors = map[vision.Tier]color.RGBA{
	vision.TierMatched:    {G: 255},
	vision.TierBorderline: {R: 255, G: 255},
	vision.TierRejected:   {R: 255},
}

// capture couples the webcam handle with its preview window so both
// are torn down together on Close.
type capture struct {
	cam     *gocv.VideoCapture
	win     *gocv.Window
	frame   gocv.Mat
	gray    gocv.Mat
	delayMS int
	stopped bool
}

// OpenCamera acquires the capture device exclusively and applies the
// requested resolution hints. An empty Window title runs headless.
func (b *Backend) OpenCamera(opts vision.CameraOptions) (vision.Camera, error) {
	cam, err := gocv.OpenVideoCapture(opts.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture device %d: %w", opts.Index, err)
	}
	if opts.Width > 0 {
		cam.Set(gocv.VideoCaptureFrameWidth, float64(opts.Width))
	}
	if opts.Height > 0 {
		cam.Set(gocv.VideoCaptureFrameHeight, float64(opts.Height))
	}

	c := &capture{
		cam:     cam,
		frame:   gocv.NewMat(),
		gray:    gocv.NewMat(),
		delayMS: opts.DelayMS,
	}
	if c.delayMS <= 0 {
		c.delayMS = 1
	}
	if opts.Window != "" {
		c.win = gocv.NewWindow(opts.Window)
	}
	return c, nil
}

func (c *capture) Read() (*image.Gray, bool) {
	if ok := c.cam.Read(&c.frame); !ok || c.frame.Empty() {
		return nil, false
	}
	gocv.CvtColor(c.frame, &c.gray, gocv.ColorBGRToGray)

	img, err := c.gray.ToImage()
	if err != nil {
		return nil, false
	}
	return imaging.Grayscale(img), true
}

func (c *capture) Annotate(overlays []vision.Annotation) {
	if c.win == nil {
		return
	}
	for _, o := range overlays {
		col := tierColors[o.Tier]
		gocv.Rectangle(&c.frame, o.Box, col, 2)
		if o.Label != "" {
			gocv.PutText(&c.frame, o.Label, image.Pt(o.Box.Min.X+5, o.Box.Min.Y-5),
				gocv.FontHersheySimplex, 1, color.RGBA{R: 255, G: 255, B: 255}, 2)
		}
		if o.Score != "" {
			gocv.PutText(&c.frame, o.Score, image.Pt(o.Box.Min.X+5, o.Box.Max.Y-5),
				gocv.FontHersheySimplex, 1, col, 1)
		}
	}
	c.win.IMShow(c.frame)
	if key := c.win.WaitKey(c.delayMS); key == stopKey {
		c.stopped = true
	}
}

func (c *capture) Stopped() bool {
	return c.stopped
}

func (c *capture) Size() (int, int) {
	return int(c.cam.Get(gocv.VideoCaptureFrameWidth)), int(c.cam.Get(gocv.VideoCaptureFrameHeight))
}

func (c *capture) Close() error {
	c.frame.Close()
	c.gray.Close()
	if c.win != nil {
		c.win.Close()
	}
	return c.cam.Close()
}
