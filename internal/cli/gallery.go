package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/lumenhq/lumen-cli/internal/gallery"
	"github.com/lumenhq/lumen-cli/pkg/logger"
)

// galleryView renders the catalog in the chosen layout, or shares one
// entry as a QR code.
func (a *App) galleryView(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "share" {
		return a.galleryShare(args[1:])
	}

	fs := flag.NewFlagSet("gallery", flag.ContinueOnError)
	layoutFlag := fs.String("layout", "grid", "layout: grid, masonry, carousel, or list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	layout, err := gallery.ParseLayout(*layoutFlag)
	if err != nil {
		return err
	}

	images := gallery.Catalog()
	fmt.Print(gallery.Render(images, layout))
	fmt.Printf("\n%d images. Share one with `lumen gallery share <n>`.\n", len(images))
	return nil
}

// galleryShare prints the image URL as a terminal QR code, the same way
// a phone would pick up a link.
func (a *App) galleryShare(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: lumen gallery share <n>")
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid image number: %q", args[0])
	}

	images := gallery.Catalog()
	if idx < 1 || idx > len(images) {
		return fmt.Errorf("image number out of range: %d (catalog has %d)", idx, len(images))
	}
	img := images[idx-1]

	qr, err := qrcode.New(img.URL, qrcode.Medium)
	if err != nil {
		logger.Warnf("Failed to generate QR code: %v", err)
		logger.Infof("Image URL: %s", img.URL)
		return nil
	}

	logger.Infof("Scan to open %q:", img.Title)
	fmt.Println(qr.ToSmallString(false))
	logger.Infof("%s", img.URL)
	return nil
}

// imageExtensions are the file types the upload view accepts.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// uploadGalleryView validates a local image and simulates the upload,
// matching the source application's behavior: there is no storage
// backend, the view only reports what would be sent.
func (a *App) uploadGalleryView(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: lumen upload <image-path>")
	}
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !imageExtensions[ext] {
		return fmt.Errorf("unsupported file type %q (expected an image)", ext)
	}

	logger.Infof("Uploading %s...", filepath.Base(path))
	time.Sleep(800 * time.Millisecond)

	logger.Infof("Uploaded %s (%.1f KB). Simulated: no storage backend is configured.",
		filepath.Base(path), float64(info.Size())/1024)
	return nil
}
