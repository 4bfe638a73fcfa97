package services

import (
	"context"
	"fmt"

	"prepai/interview-api/internal/models"
)

// MinResumeChars is the minimum amount of extracted resume text worth
// sending to the model. Callers reject shorter input before extraction.
const MinResumeChars = 100

type ProfileExtractor interface {
	Extract(ctx context.Context, resumeText string) (models.Profile, error)
}

type profileExtractor struct {
	completion    CompletionClient
	promptBuilder *PromptBuilder
}

func NewProfileExtractor(completion CompletionClient) ProfileExtractor {
	return &profileExtractor{
		completion:    completion,
		promptBuilder: NewPromptBuilder(),
	}
}

// Extract implements ProfileExtractor. One structured completion call,
// fence-strip, parse. Parse failures propagate as ErrMalformedResponse.
func (p *profileExtractor) Extract(ctx context.Context, resumeText string) (models.Profile, error) {
	prompt := p.promptBuilder.BuildProfileExtractionPrompt(resumeText)

	raw, err := p.completion.Complete(ctx, systemProfileExtraction, prompt, ModeStructured)
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to extract profile: %w", err)
	}

	var profile models.Profile
	if err := DecodeModelJSON(raw, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("failed to parse profile: %w", err)
	}

	return profile, nil
}
