package workorder

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// MaxPhotoBytes caps a single uploaded photo
const MaxPhotoBytes = 10 << 20

// EncodePhoto turns raw image bytes into a data URL
func EncodePhoto(contentType string, data []byte) string {
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}

// EncodeUploads reads every uploaded file concurrently and returns the data URLs in upload order
func EncodeUploads(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	encoded := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, fh := range files {
		i, fh := i, fh
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if fh.Size > MaxPhotoBytes {
				return fmt.Errorf("photo %s exceeds %d bytes", fh.Filename, MaxPhotoBytes)
			}
			f, err := fh.Open()
			if err != nil {
				return fmt.Errorf("open %s: %w", fh.Filename, err)
			}
			defer f.Close()

			data, err := io.ReadAll(io.LimitReader(f, MaxPhotoBytes+1))
			if err != nil {
				return fmt.Errorf("read %s: %w", fh.Filename, err)
			}
			encoded[i] = EncodePhoto(fh.Header.Get("Content-Type"), data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return encoded, nil
}
