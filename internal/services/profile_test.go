package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestProfileExtractorExtract(t *testing.T) {
	stub := &stubCompletion{response: "```json\n{\"name\":\"Ada\",\"skills\":[\"Go\",\"SQL\"],\"experience\":3}\n```"}
	extractor := NewProfileExtractor(stub)

	profile, err := extractor.Extract(context.Background(), "resume text here")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.Name != "Ada" {
		t.Fatalf("name = %q, want Ada", profile.Name)
	}
	if len(profile.Skills) != 2 || profile.Skills[0] != "Go" {
		t.Fatalf("unexpected skills: %v", profile.Skills)
	}

	if stub.lastMode != ModeStructured {
		t.Fatalf("expected structured mode, got %s", stub.lastMode)
	}
	if !strings.Contains(stub.lastUser, "resume text here") {
		t.Fatalf("prompt does not contain the resume text")
	}
}

func TestProfileExtractorUpstreamError(t *testing.T) {
	stub := &stubCompletion{err: ErrUpstream}
	extractor := NewProfileExtractor(stub)

	_, err := extractor.Extract(context.Background(), "resume")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestProfileExtractorMalformedResponse(t *testing.T) {
	stub := &stubCompletion{response: "I could not parse that resume, sorry"}
	extractor := NewProfileExtractor(stub)

	_, err := extractor.Extract(context.Background(), "resume")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}
