package weddingnanny

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/image/draw"

	"github.com/eringen/weddingnanny/content"
)

const (
	jpegQuality   = 80
	maxUploadSize = 10 << 20 // 10MB
	uploadsSubdir = "uploads"
)

// ErrInvalidImage is returned when an upload cannot be decoded as an image.
var ErrInvalidImage = errors.New("weddingnanny: invalid image")

// Image describes one file in the media library.
type Image struct {
	Filename   string `json:"filename"`
	URL        string `json:"url"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Size       int64  `json:"size"`
	UploadedAt string `json:"uploadedAt"`
}

// MediaLibrary stores admin-uploaded images (OG images, hero art) as JPEG
// files in one directory. Uploads are not part of the content state and
// write no change log entry.
type MediaLibrary struct {
	mu        sync.Mutex
	dir       string
	urlPrefix string
	maxWidth  int
}

// NewMediaLibrary returns a library writing to dir and serving files under
// urlPrefix.
func NewMediaLibrary(dir, urlPrefix string, maxWidth int) *MediaLibrary {
	return &MediaLibrary{dir: dir, urlPrefix: urlPrefix, maxWidth: maxWidth}
}

// processImage decodes src, scales it down to maxWidth if it is wider, and
// encodes it as JPEG.
func processImage(src io.Reader, maxWidth int) ([]byte, int, int, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if maxWidth > 0 && w > maxWidth {
		newH := h * maxWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w, h = maxWidth, newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, 0, 0, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), w, h, nil
}

// Save processes the upload and writes it under a unique slug of originalName.
func (m *MediaLibrary) Save(src io.Reader, originalName string) (Image, error) {
	data, w, h, err := processImage(io.LimitReader(src, maxUploadSize+1), m.maxWidth)
	if err != nil {
		return Image{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return Image{}, fmt.Errorf("create uploads dir: %w", err)
	}
	name := m.uniqueFilename(originalName)
	if err := os.WriteFile(filepath.Join(m.dir, name), data, 0o644); err != nil {
		return Image{}, fmt.Errorf("write image: %w", err)
	}
	return Image{
		Filename:   name,
		URL:        m.urlPrefix + name,
		Width:      w,
		Height:     h,
		Size:       int64(len(data)),
		UploadedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// uniqueFilename appends a counter until the name is free. Callers hold m.mu.
func (m *MediaLibrary) uniqueFilename(originalName string) string {
	base := Slugify(strings.TrimSuffix(originalName, filepath.Ext(originalName)))
	if base == "" {
		base = "image"
	}
	candidate := base + ".jpg"
	for counter := 2; ; counter++ {
		if _, err := os.Stat(filepath.Join(m.dir, candidate)); errors.Is(err, fs.ErrNotExist) {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d.jpg", base, counter)
	}
}

// List returns the library's images, newest first.
func (m *MediaLibrary) List() ([]Image, error) {
	entries, err := os.ReadDir(m.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var images []Image
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".jpg") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		img := Image{
			Filename:   e.Name(),
			URL:        m.urlPrefix + e.Name(),
			Size:       info.Size(),
			UploadedAt: info.ModTime().UTC().Format(time.RFC3339),
		}
		if f, err := os.Open(filepath.Join(m.dir, e.Name())); err == nil {
			if cfg, _, err := image.DecodeConfig(f); err == nil {
				img.Width, img.Height = cfg.Width, cfg.Height
			}
			f.Close()
		}
		images = append(images, img)
	}
	sort.Slice(images, func(i, j int) bool {
		if images[i].UploadedAt != images[j].UploadedAt {
			return images[i].UploadedAt > images[j].UploadedAt
		}
		return images[i].Filename < images[j].Filename
	})
	return images, nil
}

// Delete removes one image. Names containing path separators are rejected.
func (m *MediaLibrary) Delete(name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: image name %q", content.ErrInvalidArgument, name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	err := os.Remove(filepath.Join(m.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: image %q", content.ErrNotFound, name)
	}
	return err
}
