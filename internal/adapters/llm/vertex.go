package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// VertexBackend is an extraction backend on Vertex AI (Gemini), for
// deployments that run on GCP instead of against the OpenAI API.
type VertexBackend struct {
	client    *genai.Client
	modelName string
}

// NewVertexBackend creates a Vertex-backed extraction backend.
func NewVertexBackend(ctx context.Context, projectID, location, modelName string) (*VertexBackend, error) {
	if projectID == "" || location == "" {
		return nil, fmt.Errorf("vertex: project and location must be set")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("vertex: creating client: %w", err)
	}

	return &VertexBackend{client: client, modelName: modelName}, nil
}

func (v *VertexBackend) Model() string {
	return v.modelName
}

// Complete implements Backend using a single-turn generation with the output
// constrained to JSON.
func (v *VertexBackend) Complete(ctx context.Context, system, user string) (string, error) {
	temp := float32(0)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       &temp,
		ResponseMIMEType:  "application/json",
	}

	contents := []*genai.Content{genai.NewContentFromText(user, genai.RoleUser)}

	res, err := v.client.Models.GenerateContent(ctx, v.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("vertex: generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("vertex: returned empty text")
	}
	return text, nil
}
