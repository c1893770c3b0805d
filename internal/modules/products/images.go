package products

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder for uploaded files

	"github.com/nfnt/resize"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/storage"
)

const thumbWidth = 320

// ImageService stores an uploaded product image plus a fixed-width
// thumbnail, then writes the URL metadata back onto the product row.
type ImageService struct {
	repo  *Repo
	store storage.Storage
}

func NewImageService(repo *Repo, store storage.Storage) *ImageService {
	return &ImageService{repo: repo, store: store}
}

type UploadResult struct {
	URL      string
	ThumbURL string
}

func (s *ImageService) Upload(ctx context.Context, productID, filename string, data []byte) (UploadResult, error) {
	if _, err := s.repo.Get(ctx, productID); err != nil {
		return UploadResult{}, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return UploadResult{}, fmt.Errorf("decode image: %w", err)
	}

	orig, err := s.store.Put(ctx, bytes.NewReader(data), storage.PutInput{
		Filename:    filename,
		ContentType: "image/jpeg",
		Size:        int64(len(data)),
		Kind:        "products",
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("store original: %w", err)
	}

	thumb := resize.Resize(thumbWidth, 0, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 85}); err != nil {
		return UploadResult{}, fmt.Errorf("encode thumbnail: %w", err)
	}

	th, err := s.store.Put(ctx, &buf, storage.PutInput{
		Filename:    "thumb_" + filename,
		ContentType: "image/jpeg",
		Size:        int64(buf.Len()),
		Kind:        "products",
	})
	if err != nil {
		// original is already stored; thumbnail is best effort
		th = storage.PutResult{URL: orig.URL}
	}

	if err := s.repo.UpdateImage(ctx, productID, orig.URL); err != nil {
		return UploadResult{}, fmt.Errorf("update image metadata: %w", err)
	}

	return UploadResult{URL: orig.URL, ThumbURL: th.URL}, nil
}
