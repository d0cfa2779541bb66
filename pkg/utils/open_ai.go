package utils

import (
	"context"
	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
	"os"
)

var openAIClient = openai.NewClient(os.Getenv("OPENAI_API_KEY"))

// GetEmbedding embeds free text for catalog similarity search.
func GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := openAIClient.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3,
	})
	if err != nil {
		return pgvector.Vector{}, err
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
