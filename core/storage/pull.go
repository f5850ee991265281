package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Pull mirrors every object under cfg.Prefix in cfg.Bucket into dest,
// creating parent directories as needed. It runs before the server
// binds; any failure aborts startup, since the operator explicitly
// asked for content that cannot be served.
func Pull(ctx context.Context, client Client, cfg Config, dest string, logg *zap.Logger) error {
	ok, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %q: %w", cfg.Bucket, err)
	}
	if !ok {
		return fmt.Errorf("bucket %q does not exist", cfg.Bucket)
	}

	count := 0
	opts := minio.ListObjectsOptions{Prefix: cfg.Prefix, Recursive: true}
	for obj := range client.ListObjects(ctx, cfg.Bucket, opts) {
		if obj.Err != nil {
			return fmt.Errorf("listing bucket %q: %w", cfg.Bucket, obj.Err)
		}
		rel := relativeKey(obj.Key, cfg.Prefix)
		if rel == "" {
			continue
		}
		target := filepath.Join(dest, filepath.FromSlash(rel))
		if err := fetchObject(ctx, client, cfg.Bucket, obj.Key, target); err != nil {
			return err
		}
		count++
	}

	logg.Info("Pulled site content from storage",
		zap.String("bucket", cfg.Bucket),
		zap.String("prefix", cfg.Prefix),
		zap.Int("objects", count),
	)
	return nil
}

// relativeKey strips the prefix and rejects keys that would escape the
// destination directory. Returns "" for keys to skip.
func relativeKey(key, prefix string) string {
	if strings.HasSuffix(key, "/") {
		return ""
	}
	rel := strings.TrimPrefix(key, prefix)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" || strings.Contains(rel, "..") {
		return ""
	}
	return rel
}

func fetchObject(ctx context.Context, client Client, bucket, key, target string) error {
	rc, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("fetching %q: %w", key, err)
	}
	defer rc.Close()

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %q: %w", target, err)
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("creating %q: %w", target, err)
	}
	if _, err := io.Copy(f, rc); err != nil {
		f.Close()
		return fmt.Errorf("writing %q: %w", target, err)
	}
	return f.Close()
}
