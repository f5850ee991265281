// Package storage provides the optional object-storage content pull.
//
// When enabled, the launcher mirrors a bucket prefix into the webroot
// before the server binds, so the served directory can be sourced from
// S3/MinIO instead of being shipped next to the binary.
//
// The Client interface covers only the read-side operations the pull
// needs (BucketExists, ListObjects, GetObject); NewClient backs it with
// a minio-go client using strict transport timeouts. The mocks
// subpackage provides a testify mock of the interface.
package storage
