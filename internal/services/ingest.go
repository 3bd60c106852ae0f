package services

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

const (
	guideChunkSize    = 1000
	guideChunkOverlap = 200
	embedConcurrency  = 4
)

// GuideDocument is one reference PDF to load into the knowledge base.
type GuideDocument struct {
	Path    string
	DocType string
}

type IngestReport struct {
	Source string
	Pages  int
	Chunks int
	Stored int
}

type GuideIngester struct {
	llm       LLMClient
	qdrant    QdrantService
	pdfParser PDFParserService
	chunker   TextChunker
}

func NewGuideIngester(llm LLMClient, qdrant QdrantService, pdfParser PDFParserService, chunker TextChunker) *GuideIngester {
	return &GuideIngester{llm: llm, qdrant: qdrant, pdfParser: pdfParser, chunker: chunker}
}

// Ingest replaces every point previously stored for doc with freshly
// embedded chunks. A chunk that fails to embed or store is logged and
// skipped; the document fails only when nothing was stored.
func (g *GuideIngester) Ingest(ctx context.Context, doc GuideDocument) (*IngestReport, error) {
	source := filepath.Base(doc.Path)

	content, err := g.pdfParser.ExtractTextFromFile(doc.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract %s: %w", source, err)
	}

	chunks := g.chunker.ChunkText(content.Text, guideChunkSize, guideChunkOverlap)
	log.Printf("   ✂️  %s: %d pages, %d chunks", source, content.PageCount, len(chunks))

	if err := g.qdrant.DeleteSource(ctx, source); err != nil {
		return nil, fmt.Errorf("failed to clear previous points for %s: %w", source, err)
	}

	var stored atomic.Int64
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(embedConcurrency)

	for i, text := range chunks {
		chunk := GuideChunk{Source: source, DocType: doc.DocType, Index: i, Text: text}
		eg.Go(func() error {
			embedding, err := g.llm.GenerateEmbedding(egCtx, chunk.Text)
			if err != nil {
				log.Printf("   ❌ Failed to embed chunk %d of %s: %v", chunk.Index+1, source, err)
				return nil
			}
			if err := g.qdrant.UpsertChunk(egCtx, chunk, embedding); err != nil {
				log.Printf("   ❌ Failed to store chunk %d of %s: %v", chunk.Index+1, source, err)
				return nil
			}
			stored.Add(1)
			return nil
		})
	}

	_ = eg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &IngestReport{Source: source, Pages: content.PageCount, Chunks: len(chunks), Stored: int(stored.Load())}
	if report.Stored == 0 {
		return report, fmt.Errorf("no chunks stored for %s", source)
	}
	return report, nil
}
