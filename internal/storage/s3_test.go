package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/thumbcard/backend/internal/config"
)

type uploadClientStub struct {
	mu     sync.Mutex
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (s *uploadClientStub) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs = append(s.inputs, in)
	s.bodies = append(s.bodies, string(data))
	return &s3.PutObjectOutput{}, nil
}

func (s *uploadClientStub) UploadPart(context.Context, *s3.UploadPartInput, ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return nil, errors.New("unexpected multipart upload")
}

func (s *uploadClientStub) CreateMultipartUpload(context.Context, *s3.CreateMultipartUploadInput, ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	return nil, errors.New("unexpected multipart upload")
}

func (s *uploadClientStub) CompleteMultipartUpload(context.Context, *s3.CompleteMultipartUploadInput, ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	return nil, errors.New("unexpected multipart upload")
}

func (s *uploadClientStub) AbortMultipartUpload(context.Context, *s3.AbortMultipartUploadInput, ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	return &s3.AbortMultipartUploadOutput{}, nil
}

func TestS3StorageSave(t *testing.T) {
	client := &uploadClientStub{}
	store := newS3Storage(client, config.ObjectStoreConfig{Bucket: "cards", PublicBaseURL: "https://cdn.example.com/"})

	location, err := store.Save(context.Background(), "/cards/abc/title.png", "image/png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if location != "https://cdn.example.com/cards/abc/title.png" {
		t.Fatalf("unexpected location %q", location)
	}

	if len(client.inputs) != 1 {
		t.Fatalf("expected one put object call got %d", len(client.inputs))
	}
	in := client.inputs[0]
	if aws.ToString(in.Bucket) != "cards" || aws.ToString(in.Key) != "cards/abc/title.png" {
		t.Fatalf("unexpected target %s/%s", aws.ToString(in.Bucket), aws.ToString(in.Key))
	}
	if aws.ToString(in.ContentType) != "image/png" {
		t.Fatalf("unexpected content type %q", aws.ToString(in.ContentType))
	}
	if client.bodies[0] != "png-bytes" {
		t.Fatalf("unexpected body %q", client.bodies[0])
	}
}

func TestS3StoragePublicURLFallsBackToEndpoint(t *testing.T) {
	store := newS3Storage(&uploadClientStub{}, config.ObjectStoreConfig{Bucket: "cards", Endpoint: "http://localhost:9000/"})
	if got := store.PublicURL("a/b.webp"); got != "http://localhost:9000/cards/a/b.webp" {
		t.Fatalf("unexpected url %q", got)
	}

	bare := newS3Storage(&uploadClientStub{}, config.ObjectStoreConfig{Bucket: "cards"})
	if got := bare.PublicURL("a/b.webp"); got != "a/b.webp" {
		t.Fatalf("expected bare key got %q", got)
	}
}

func TestS3StorageSaveErrors(t *testing.T) {
	store := newS3Storage(&uploadClientStub{}, config.ObjectStoreConfig{Bucket: "cards"})
	if _, err := store.Save(context.Background(), "/", "", strings.NewReader("x")); err == nil {
		t.Fatal("expected empty key error")
	}

	failing := newS3Storage(&uploadClientStub{err: errors.New("denied")}, config.ObjectStoreConfig{Bucket: "cards"})
	if _, err := failing.Save(context.Background(), "k.png", "image/png", strings.NewReader("x")); err == nil {
		t.Fatal("expected upload error")
	}
}

func TestNewS3StorageRequiresBucket(t *testing.T) {
	if _, err := NewS3Storage(context.Background(), config.ObjectStoreConfig{}); err == nil {
		t.Fatal("expected missing bucket error")
	}
}
