package awssession

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
)

// New builds the AWS session shared by every AWS service client. Static
// credentials are used when AWS_ACCESS_KEY_ID is set, the default credential
// chain otherwise.
func New() (*session.Session, error) {
	cfg := &aws.Config{}

	if region := os.Getenv("AWS_REGION"); region != "" {
		cfg.Region = aws.String(region)
	}

	if accessKey := os.Getenv("AWS_ACCESS_KEY_ID"); accessKey != "" {
		cfg.Credentials = credentials.NewStaticCredentials(
			accessKey,
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			os.Getenv("AWS_SESSION_TOKEN"),
		)
	}

	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            *cfg,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, err
	}

	return sess, nil
}
