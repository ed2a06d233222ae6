package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// QuestionBankService holds exemplar behavioral questions from past sessions
// and retrieves the closest ones for a given job description.
type QuestionBankService interface {
	InitCollection() error
	IndexQuestion(ctx context.Context, sessionID, role, question string) error
	FindExemplars(ctx context.Context, jobDescription string, limit int) ([]SearchResult, error)
}

type SearchResult struct {
	ID    string
	Score float32
	Text  string
	Role  string
}

type questionBankService struct {
	client         *qdrant.Client
	gemini         GeminiService
	collectionName string
	vectorSize     uint64
}

func NewQuestionBankService(urlStr, apiKey, collectionName string, gemini GeminiService) (QuestionBankService, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port, not the REST one
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &questionBankService{
		client:         client,
		gemini:         gemini,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements QuestionBankService.
func (q *questionBankService) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// IndexQuestion implements QuestionBankService. Each archived question becomes
// one point; the embedding is computed over the question text itself.
func (q *questionBankService) IndexQuestion(ctx context.Context, sessionID, role, question string) error {
	embedding, err := q.gemini.GenerateEmbedding(ctx, question)
	if err != nil {
		return fmt.Errorf("failed to embed question: %w", err)
	}

	pointID := uuid.New()

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(pointID.ID())),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"session_id": sessionID,
			"role":       role,
			"text":       question,
		}),
	}

	_, err = q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert question: %w", err)
	}

	return nil
}

// FindExemplars implements QuestionBankService.
func (q *questionBankService) FindExemplars(ctx context.Context, jobDescription string, limit int) ([]SearchResult, error) {
	embedding, err := q.gemini.GenerateEmbedding(ctx, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to embed job description: %w", err)
	}

	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(embedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search question bank: %w", err)
	}

	var results []SearchResult
	for _, point := range searchResult {
		payload := point.Payload

		result := SearchResult{
			Score: point.Score,
		}

		if sessionID, ok := payload["session_id"]; ok {
			if val, ok := sessionID.GetKind().(*qdrant.Value_StringValue); ok {
				result.ID = val.StringValue
			}
		}

		if text, ok := payload["text"]; ok {
			if val, ok := text.GetKind().(*qdrant.Value_StringValue); ok {
				result.Text = val.StringValue
			}
		}

		if role, ok := payload["role"]; ok {
			if val, ok := role.GetKind().(*qdrant.Value_StringValue); ok {
				result.Role = val.StringValue
			}
		}

		results = append(results, result)
	}

	return results, nil
}
