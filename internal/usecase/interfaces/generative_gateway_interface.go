package interfaces

import "context"

// IGenerativeGateway abstracts the external generative-model service.
//
// Both calls are single-attempt: the use case layer maps any error to one
// generic "service unavailable" condition and never retries. GenerateImage
// returns a directly displayable data URI.
type IGenerativeGateway interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}
