package checklist

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/dannyyo/checklist-go/pkg/checklist/models"
	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// errEmptyImage is returned for uploads without content.
var errEmptyImage = errors.New("empty image")

// scratchDir holds the PNG files staged for one report generation.
type scratchDir struct {
	dir    string
	files  []string
	logger *zap.Logger
}

func newScratchDir(id string, logger *zap.Logger) (*scratchDir, error) {
	dir, err := os.MkdirTemp("", "checklist-"+id+"-*")
	if err != nil {
		return nil, fmt.Errorf("creating scratch dir: %w", err)
	}
	return &scratchDir{dir: dir, logger: logger}, nil
}

// writePNG decodes img, scales it to size and stores it as name.png.
// The path is tracked before writing so partial files are cleaned up too.
func (s *scratchDir) writePNG(name string, img *models.Image, size ImageSize) (string, error) {
	if img == nil || len(img.Data) == 0 {
		return "", errEmptyImage
	}

	decoded, err := decodeImage(img.Data)
	if err != nil {
		return "", err
	}
	scaled := scaleImage(decoded, size)

	path := filepath.Join(s.dir, name+".png")
	s.files = append(s.files, path)

	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := png.Encode(out, scaled); err != nil {
		_ = out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// cleanup removes every staged file and then the directory. A directory that
// is still not empty afterwards is force-removed and logged.
func (s *scratchDir) cleanup() {
	for _, path := range s.files {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("removing scratch file failed", zap.String("path", path), zap.Error(err))
		}
	}
	if err := os.Remove(s.dir); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("scratch dir not empty, forcing removal", zap.String("dir", s.dir), zap.Error(err))
		if err := os.RemoveAll(s.dir); err != nil {
			s.logger.Error("removing scratch dir failed", zap.String("dir", s.dir), zap.Error(err))
		}
	}
}

func decodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err == nil {
		return img, nil
	}
	if decoded, webpErr := webp.Decode(bytes.NewReader(data)); webpErr == nil {
		return decoded, nil
	}
	return nil, fmt.Errorf("unable to decode image: %w", err)
}

// scaleImage resizes img to exactly size. A non-positive dimension keeps the
// original image.
func scaleImage(img image.Image, size ImageSize) image.Image {
	if size.Width <= 0 || size.Height <= 0 {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}
