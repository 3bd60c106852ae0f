package services

import (
	"context"
	"fmt"
	"log"

	"github.com/sashabaranov/go-openai"
)

// Matches the Gemini embedding width so both providers share one collection.
const openAIEmbedDimensions = 768

type openAIService struct {
	client    *openai.Client
	modelName string
}

func NewOpenAIService(apiKey, modelName string) LLMClient {
	return &openAIService{
		client:    openai.NewClient(apiKey),
		modelName: modelName,
	}
}

// GenerateText implements LLMClient.
func (o *openAIService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   4096,
	})
	if err != nil {
		log.Printf("❌ OpenAI API error: %v", err)
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no text content in response")
	}

	text := resp.Choices[0].Message.Content
	log.Printf("🤖 OpenAI response received: %d characters", len(text))
	return text, nil
}

// GenerateTextWithRetry implements LLMClient.
func (o *openAIService) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxAttempts int) (string, error) {
	return generateWithRetry(ctx, o.GenerateText, prompt, temperature, maxAttempts)
}

// GenerateEmbedding implements LLMClient.
func (o *openAIService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if len(text) > maxEmbedChars {
		text = text[:maxEmbedChars]
	}

	resp, err := o.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input:      []string{text},
		Model:      openai.SmallEmbedding3,
		Dimensions: openAIEmbedDimensions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return resp.Data[0].Embedding, nil
}
