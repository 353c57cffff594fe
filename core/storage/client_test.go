package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"master-reference/core/storage"
	"master-reference/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "reference").Return(true, nil)
		mockClient.On("GetObject", mock.Anything, "reference", "MasterCompany.csv", mock.Anything).
			Return(io.NopCloser(strings.NewReader("ISIN,Symbol\n")), nil)

		data, err := storage.Fetch(ctx, mockClient, "reference", "MasterCompany.csv")
		require.NoError(t, err)
		assert.Equal(t, "ISIN,Symbol\n", string(data))
		mockClient.AssertExpectations(t)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "reference").Return(false, nil)

		_, err := storage.Fetch(ctx, mockClient, "reference", "MasterCompany.csv")
		assert.EqualError(t, err, "bucket reference does not exist")
	})

	t.Run("GetObjectError", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "reference").Return(true, nil)
		mockClient.On("GetObject", mock.Anything, "reference", "gone.csv", mock.Anything).Return(nil, assert.AnError)

		_, err := storage.Fetch(ctx, mockClient, "reference", "gone.csv")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestUpload(t *testing.T) {
	ctx := context.Background()
	data := []byte("Gcode\r\nBHP\r\n")

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "out").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "out", "master_company_reference.csv", mock.Anything, int64(len(data)),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "text/csv" })).
		Return(minio.UploadInfo{}, nil)

	err := storage.Upload(ctx, mockClient, "out", "master_company_reference.csv", data, "text/csv")
	require.NoError(t, err)
	mockClient.AssertExpectations(t)
}
