package computer

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/mj1618/macos-computer/pkg/apperr"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// DataURLPrefix precedes the base64 PNG payload returned by Screenshot.
const DataURLPrefix = "data:image/png;base64,"

// ScreenshotImage captures the full screen and resamples it to the logical
// canvas, whatever the physical resolution.
func (c *Computer) ScreenshotImage(ctx context.Context) (img image.Image, err error) {
	const op = "Screenshot"
	_, logger, step := c.begin(ctx, op)
	defer func() {
		step.End(err)
	}()

	src, err := c.screen.CaptureScreen()
	if err != nil {
		return nil, apperr.Wrap(op, apperr.CodeUnavailable, err, map[string]any{
			apperr.MetaStage: apperr.StageCapture,
		})
	}
	if src == nil || src.Bounds().Empty() {
		return nil, apperr.Wrap(op, apperr.CodeUnavailable, fmt.Errorf("empty capture"), map[string]any{
			apperr.MetaStage: apperr.StageCapture,
		})
	}

	logger.Debug("Captured screen",
		zap.Int("width", src.Bounds().Dx()),
		zap.Int("height", src.Bounds().Dy()))
	return resample(src, LogicalWidth, LogicalHeight), nil
}

// Screenshot returns the logical-canvas screenshot as a PNG data URL.
func (c *Computer) Screenshot(ctx context.Context) (string, error) {
	img, err := c.ScreenshotImage(ctx)
	if err != nil {
		return "", err
	}
	data, err := encodePNG(img)
	if err != nil {
		return "", apperr.Wrap("Screenshot", apperr.CodeInternal, err, map[string]any{
			apperr.MetaStage: apperr.StageCapture,
		})
	}
	return DataURLPrefix + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeDataURL returns the PNG bytes carried by a Screenshot data URL.
func DecodeDataURL(dataURL string) ([]byte, error) {
	payload, ok := strings.CutPrefix(dataURL, DataURLPrefix)
	if !ok {
		return nil, fmt.Errorf("not a PNG data URL")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode screenshot payload: %w", err)
	}
	return data, nil
}

func resample(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}
