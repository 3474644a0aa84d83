// Package file opens schema documents from the local filesystem or from
// Amazon S3 and S3-compatible object storage.
//
// Locations are plain paths, file:// URLs or s3://bucket/key URLs:
//
//	rc, err := file.Open(ctx, "s3://configs/records.yaml", file.WithS3Config(file.S3Config{
//		Region:         "eu-central-1",
//		Endpoint:       "http://localhost:9000",
//		ForcePathStyle: true,
//	}))
//	if err != nil {
//		return err
//	}
//	defer rc.Close()
//
// Failures are classified into package errors such as ErrFileNotFound,
// ErrAccessDenied and ErrBucketNotFound, whatever the backend.
package file
