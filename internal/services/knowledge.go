package services

import (
	"context"
	"log"
	"time"
)

// Doc types stored alongside each guide chunk.
const (
	DocTypeInterviewGuide = "interview_guide"
	DocTypeResumeGuide    = "resume_guide"
)

const retrievalTimeout = 3 * time.Second

// KnowledgeBase supplies optional reference material for prompts. It never
// fails a request: any problem yields empty context.
type KnowledgeBase interface {
	Retrieve(ctx context.Context, query string, docTypes ...string) string
}

type knowledgeBase struct {
	llm    LLMClient
	qdrant QdrantService
	limit  int
}

func NewKnowledgeBase(llm LLMClient, qdrant QdrantService, limit int) KnowledgeBase {
	if llm == nil || qdrant == nil {
		return NoKnowledgeBase()
	}
	if limit <= 0 {
		limit = 3
	}
	return &knowledgeBase{llm: llm, qdrant: qdrant, limit: limit}
}

// Retrieve implements KnowledgeBase.
func (k *knowledgeBase) Retrieve(ctx context.Context, query string, docTypes ...string) string {
	ctx, cancel := context.WithTimeout(ctx, retrievalTimeout)
	defer cancel()

	embedding, err := k.llm.GenerateEmbedding(ctx, query)
	if err != nil {
		log.Printf("⚠️  Warning: Failed to embed retrieval query: %v", err)
		return ""
	}

	var allResults []SearchResult
	for _, docType := range docTypes {
		results, err := k.qdrant.SearchSimilar(ctx, embedding, docType, k.limit)
		if err != nil {
			log.Printf("⚠️  Failed to search for %s: %v", docType, err)
			continue
		}
		allResults = append(allResults, results...)
	}

	return FormatRAGContext(allResults)
}

type noKnowledgeBase struct{}

// NoKnowledgeBase is used when Qdrant is not configured.
func NoKnowledgeBase() KnowledgeBase {
	return noKnowledgeBase{}
}

func (noKnowledgeBase) Retrieve(context.Context, string, ...string) string {
	return ""
}
