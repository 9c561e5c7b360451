package sensor

import (
	"fmt"
	"image"
	"math"
	"os"

	"github.com/disintegration/imaging"
	pigo "github.com/esimov/pigo/core"
	"github.com/wavepunk/palmctl"
)

// PigoSource is a rough stand-in for a real hand-landmark detector, built on
// top of pigo's pure-Go face classifier — the same cascade caire itself uses
// to mask faces before seam removal. It has no notion of hands: it detects
// the largest face in each frame and reports its box center as the tracked
// position, using the detection's confidence score (clamped to [0,1]) as
// HandObservation.Confidence and the box's relative shrink/grow across frames
// as a crude proxy for "pinch" strength (a closing fist brings a hand's
// apparent size down the same way leaning back shrinks a face box).
//
// This is explicitly not a contribution to the hand-tracking problem the
// wider system assumes upstream — it exists only so the CLI has something
// real to point a webcam at without bundling a production model.
type PigoSource struct {
	classifier *pigo.Pigo
	angle      float64
	lastScale  float64
	hasLast    bool
}

// NewPigoSource unpacks the cascade file at cascadePath (pigo ships this as a
// binary blob; there is no way to embed one without shipping the asset, so it
// is loaded from disk at runtime instead of via go:embed).
func NewPigoSource(cascadePath string, faceAngle float64) (*PigoSource, error) {
	data, err := os.ReadFile(cascadePath)
	if err != nil {
		return nil, fmt.Errorf("sensor: reading cascade file: %w", err)
	}
	p := pigo.NewPigo()
	classifier, err := p.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("sensor: unpacking cascade file: %w", err)
	}
	return &PigoSource{classifier: classifier, angle: faceAngle}, nil
}

// FrameFromImage runs detection over one already-decoded image (e.g. a
// camera grab) and produces a HandFrame. present is false when no face was
// found; the interpreter treats that like a hand leaving view.
func (s *PigoSource) FrameFromImage(img image.Image, nowMs int64) (palmctl.HandFrame, bool) {
	gray := imaging.Grayscale(img)
	cols, rows := gray.Bounds().Max.X, gray.Bounds().Max.Y
	pixels := make([]uint8, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			pixels[y*cols+x] = gray.Pix[gray.PixOffset(x, y)]
		}
	}

	cParams := pigo.CascadeParams{
		MinSize:     40,
		MaxSize:     int(math.Max(float64(cols), float64(rows))),
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,
		ImageParams: pigo.ImageParams{
			Pixels: pixels,
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := s.classifier.RunCascade(cParams, s.angle)
	dets = s.classifier.ClusterDetections(dets, 0.2)

	best, found := bestDetection(dets)
	if !found {
		s.hasLast = false
		return palmctl.HandFrame{TMs: nowMs}, false
	}

	posX := float64(best.Col) / float64(cols)
	posY := float64(best.Row) / float64(rows)

	confidence := clamp01(float64(best.Q) / 10.0)

	scale := float64(best.Scale)
	pinch := 0.0
	if s.hasLast && s.lastScale > 0 {
		shrink := (s.lastScale - scale) / s.lastScale
		pinch = clamp01(0.5 + shrink*3)
	}
	s.lastScale = scale
	s.hasLast = true

	frame := palmctl.HandFrame{
		TMs: nowMs,
		Hands: []palmctl.HandObservation{
			{
				HandID:     "pigo-0",
				Present:    true,
				Confidence: confidence,
				PosX:       posX,
				PosY:       posY,
				Pinch:      palmctl.PinchStrengths{Index: pinch},
			},
		},
	}
	return frame, true
}

func bestDetection(dets []pigo.Detection) (pigo.Detection, bool) {
	var best pigo.Detection
	found := false
	for _, d := range dets {
		if d.Q <= 5.0 {
			continue
		}
		if !found || d.Scale > best.Scale {
			best = d
			found = true
		}
	}
	return best, found
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
