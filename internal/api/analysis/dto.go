package analysis

const (
	ConfidenceThreshold = 80.0

	SourceLanguage = "en"
	TargetLanguage = "pt"

	LabelSeparator           = " and "
	TranslatedLabelSeparator = " e "

	BodyPrefix              = "A imagem tem"
	InternalServerErrorBody = "Internal server error"

	ImageURLParam = "imageUrl"
)

// Event is the HTTP-style trigger of one analysis invocation.
type Event struct {
	QueryStringParameters map[string]string `json:"queryStringParameters"`
}

type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type AnalyzeImageRequest struct {
	ImageURL string `json:"imageUrl" validate:"required"`
}

func (e Event) ToRequest() AnalyzeImageRequest {
	return AnalyzeImageRequest{
		ImageURL: e.QueryStringParameters[ImageURLParam],
	}
}
