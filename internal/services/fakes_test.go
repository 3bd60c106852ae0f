package services

import (
	"context"
	"errors"
	"sync"
)

// fakeLLM answers from a canned response or error and records prompts.
type fakeLLM struct {
	mu        sync.Mutex
	response  string
	err       error
	panicWith any
	block     bool
	embedding []float32
	embedErr  error
	prompts   []string
}

func (f *fakeLLM) GenerateText(ctx context.Context, prompt string, _ float32) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.panicWith != nil {
		panic(f.panicWith)
	}
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.response, f.err
}

func (f *fakeLLM) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxAttempts int) (string, error) {
	return generateWithRetry(ctx, f.GenerateText, prompt, temperature, maxAttempts)
}

func (f *fakeLLM) GenerateEmbedding(context.Context, string) ([]float32, error) {
	if f.embedErr != nil {
		return nil, f.embedErr
	}
	return f.embedding, nil
}

func (f *fakeLLM) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func (f *fakeLLM) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

type fakeQdrant struct {
	results map[string][]SearchResult
	err     error
	queried []string
}

func (f *fakeQdrant) InitCollection(context.Context) error { return nil }

func (f *fakeQdrant) UpsertChunk(context.Context, GuideChunk, []float32) error { return nil }

func (f *fakeQdrant) SearchSimilar(_ context.Context, _ []float32, docType string, _ int) ([]SearchResult, error) {
	f.queried = append(f.queried, docType)
	if f.err != nil {
		return nil, f.err
	}
	return f.results[docType], nil
}

func (f *fakeQdrant) DeleteSource(context.Context, string) error { return nil }

var errBoom = errors.New("boom")
