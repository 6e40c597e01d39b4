package storage

import (
	"fmt"

	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/casdoor/oss"
	"github.com/casdoor/oss/filesystem"
	"github.com/casdoor/oss/s3"

	intconfig "shopbackend/internal/config"
)

var client oss.StorageInterface

// New builds the object-storage client for the configured provider.
// "filesystem" writes under the bucket path locally; "aws-s3" targets S3 or
// any S3-compatible endpoint.
func New(c intconfig.StorageEnv) (oss.StorageInterface, error) {
	switch c.Provider {
	case "aws-s3":
		return s3.New(&s3.Config{
			AccessID:   c.ID,
			AccessKey:  c.Secret,
			Region:     c.Region,
			Bucket:     c.Bucket,
			Endpoint:   c.Endpoint,
			S3Endpoint: c.Endpoint,
			ACL:        awss3.BucketCannedACLPublicRead,
		}), nil
	case "filesystem":
		return filesystem.New(c.Bucket), nil
	default:
		return nil, fmt.Errorf("unsupported storage provider %q", c.Provider)
	}
}

// Init wires the process-wide client; handlers reach it through Client.
func Init(c intconfig.StorageEnv) error {
	s, err := New(c)
	if err != nil {
		return err
	}
	client = s
	return nil
}

func Client() oss.StorageInterface { return client }

// SetClient swaps the shared client, for tests.
func SetClient(s oss.StorageInterface) { client = s }
