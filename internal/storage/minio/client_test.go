package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/emr-server/internal/model"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      bool

	putErr    error
	putObject string
	putBody   string
	putSize   int64

	getRC  io.ReadCloser
	getErr error

	removeErr    error
	removeObject string
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}
func (f *fakeMinio) MakeBucket(_ context.Context, _ string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = true
	return f.makeBucketErr
}
func (f *fakeMinio) PutObject(_ context.Context, _ string, name string, r io.Reader, size int64, _ minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	if f.putErr != nil {
		return minioLib.UploadInfo{}, f.putErr
	}
	b, _ := io.ReadAll(r)
	f.putObject, f.putBody, f.putSize = name, string(b), size
	return minioLib.UploadInfo{Key: name, Size: size}, nil
}
func (f *fakeMinio) GetObject(_ context.Context, _ string, _ string, _ minioLib.GetObjectOptions) (io.ReadCloser, error) {
	return f.getRC, f.getErr
}
func (f *fakeMinio) RemoveObject(_ context.Context, _ string, name string, _ minioLib.RemoveObjectOptions) error {
	f.removeObject = name
	return f.removeErr
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }
func (r errReader) Close() error             { return nil }

var noSuchKey = minioLib.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}

func TestNewClientWithAPI_BucketExists(t *testing.T) {
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, "b", "ns")
	require.NoError(t, err)
	assert.Equal(t, "b", c.bucket)
	assert.False(t, api.madeBucket)
}

func TestNewClientWithAPI_CreateBucket(t *testing.T) {
	api := &fakeMinio{bucketExists: false}
	_, err := NewClientWithAPI(context.Background(), api, "bucket", "ns")
	require.NoError(t, err)
	assert.True(t, api.madeBucket)
}

func TestNewClientWithAPI_Errors(t *testing.T) {
	tests := []struct {
		name    string
		api     *fakeMinio
		wantErr string
	}{
		{
			name:    "bucket exists error",
			api:     &fakeMinio{bucketExistsErr: errors.New("boom")},
			wantErr: "failed to check bucket existence",
		},
		{
			name:    "make bucket error",
			api:     &fakeMinio{makeBucketErr: errors.New("fail")},
			wantErr: "failed to create bucket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClientWithAPI(context.Background(), tt.api, "bucket", "ns")
			assert.Nil(t, c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to ensure bucket exists")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClient_Get(t *testing.T) {
	tests := []struct {
		name    string
		api     *fakeMinio
		want    string
		wantErr error
		errText string
	}{
		{
			name: "success",
			api:  &fakeMinio{bucketExists: true, getRC: io.NopCloser(bytes.NewBufferString(`[{"id":"a"}]`))},
			want: `[{"id":"a"}]`,
		},
		{
			name:    "missing on open",
			api:     &fakeMinio{bucketExists: true, getErr: noSuchKey},
			wantErr: model.ErrNotFound,
		},
		{
			name:    "missing on read",
			api:     &fakeMinio{bucketExists: true, getRC: errReader{err: noSuchKey}},
			wantErr: model.ErrNotFound,
		},
		{
			name:    "open error",
			api:     &fakeMinio{bucketExists: true, getErr: errors.New("timeout")},
			errText: "failed to get object",
		},
		{
			name:    "read error",
			api:     &fakeMinio{bucketExists: true, getRC: errReader{err: errors.New("reset")}},
			errText: "failed to read object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClientWithAPI(context.Background(), tt.api, "b", "ns")
			require.NoError(t, err)

			got, err := c.Get(context.Background(), model.KeyPatients)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				assert.ErrorContains(t, err, tt.errText)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClient_Set(t *testing.T) {
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, "b", "clinic")
	require.NoError(t, err)

	require.NoError(t, c.Set(context.Background(), model.KeyUsers, `[]`))
	assert.Equal(t, "clinic/users.json", api.putObject)
	assert.Equal(t, `[]`, api.putBody)
	assert.Equal(t, int64(2), api.putSize)

	api.putErr = errors.New("quota")
	assert.ErrorContains(t, c.Set(context.Background(), model.KeyUsers, `[]`), "failed to upload object")
}

func TestClient_Remove(t *testing.T) {
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, "b", "clinic")
	require.NoError(t, err)

	require.NoError(t, c.Remove(context.Background(), model.KeyCurrentUser))
	assert.Equal(t, "clinic/currentUser.json", api.removeObject)

	api.removeErr = noSuchKey
	assert.NoError(t, c.Remove(context.Background(), model.KeyCurrentUser))

	api.removeErr = errors.New("denied")
	assert.ErrorContains(t, c.Remove(context.Background(), model.KeyCurrentUser), "failed to delete object")
}
