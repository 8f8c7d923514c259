// Package storage opens import sources through gocloud.dev blob buckets.
package storage

import (
	"context"
	"io"
	"net/url"
	"path"
	"strings"

	"rentradar/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
)

// Object is an open blob that closes its bucket together with the reader.
type Object struct {
	*blob.Reader

	bucket *blob.Bucket
	key    string
}

// Key returns the object key inside its bucket.
func (o *Object) Key() string {
	return o.key
}

// Close releases the reader and the bucket.
func (o *Object) Close() error {
	return errors.Join(o.Reader.Close(), o.bucket.Close())
}

// Open opens the object addressed by rawURL for reading.
// file:///data/listings.csv reads listings.csv from the /data directory;
// gs://bucket/seed/listings.csv reads seed/listings.csv from the bucket.
func Open(ctx context.Context, rawURL string) (*Object, error) {
	bucketURL, key, err := SplitObjectURL(rawURL)
	if err != nil {
		return nil, err
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", bucketURL)
	}

	reader, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		_ = bucket.Close()

		return nil, errors.Wrapf(err, "failed to open object %q", key)
	}

	return &Object{Reader: reader, bucket: bucket, key: key}, nil
}

// SplitObjectURL splits an object URL into its bucket URL and object key.
func SplitObjectURL(rawURL string) (string, string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", "", errors.Wrapf(err, "invalid object URL %q", rawURL)
	}

	if parsed.Scheme == "" {
		return "", "", errors.Errorf("object URL %q has no scheme", rawURL)
	}

	if parsed.Scheme == "file" {
		dir, key := path.Split(parsed.Path)
		if key == "" {
			return "", "", errors.Errorf("object URL %q has no object key", rawURL)
		}

		bucketURL := url.URL{Scheme: parsed.Scheme, Path: strings.TrimSuffix(dir, "/"), RawQuery: parsed.RawQuery}
		if bucketURL.Path == "" {
			bucketURL.Path = "/"
		}

		return bucketURL.String(), key, nil
	}

	key := strings.TrimPrefix(parsed.Path, "/")
	if key == "" {
		return "", "", errors.Errorf("object URL %q has no object key", rawURL)
	}

	bucketURL := url.URL{Scheme: parsed.Scheme, Host: parsed.Host, RawQuery: parsed.RawQuery}

	return bucketURL.String(), key, nil
}

var _ io.ReadCloser = (*Object)(nil)
