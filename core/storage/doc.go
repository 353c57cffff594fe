// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so reference files can be read from, and the merged
// output written to, an S3 compatible bucket instead of the local disk. This
// abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - Fetch: Downloads a whole object after verifying the bucket exists.
//   - Upload: Stores a byte slice as one object with a content type.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	data, err := storage.Fetch(ctx, client, "reference", "MasterCompany.csv")
package storage
