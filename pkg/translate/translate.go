package translate

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/translate"
	"github.com/aws/aws-sdk-go/service/translate/translateiface"
)

type ItfTranslate interface {
	TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

type translateClient struct {
	client translateiface.TranslateAPI
}

func New(sess *session.Session) ItfTranslate {
	return NewWithClient(translate.New(sess))
}

func NewWithClient(client translateiface.TranslateAPI) ItfTranslate {
	return &translateClient{client: client}
}

func (t *translateClient) TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	out, err := t.client.TextWithContext(ctx, &translate.TextInput{
		SourceLanguageCode: aws.String(sourceLang),
		TargetLanguageCode: aws.String(targetLang),
		Text:               aws.String(text),
	})
	if err != nil {
		return "", fmt.Errorf("translate text %s->%s: %w", sourceLang, targetLang, err)
	}

	return aws.StringValue(out.TranslatedText), nil
}
