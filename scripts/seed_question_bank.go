package main

import (
	"context"
	"log"

	"careerforge/interview-lab/internal/config"
	"careerforge/interview-lab/internal/services"
)

// Seeds the exemplar bank with a starter set so retrieval has something to
// return before any real sessions are archived.
var seedQuestions = []struct {
	Role     string
	Question string
}{
	{"Software Engineer", "Tell me about a time you disagreed with a technical decision your team made. What did you do?"},
	{"Software Engineer", "Describe a production incident you owned end to end. How did you handle it and what changed afterwards?"},
	{"Software Engineer", "Tell me about a project where the requirements changed significantly midway. How did you adapt?"},
	{"Engineering Manager", "Describe a time you had to deliver difficult feedback to a direct report. How did you approach it?"},
	{"Engineering Manager", "Tell me about a time you had to rebuild trust with a stakeholder after a missed commitment."},
	{"Product Manager", "Tell me about a time you killed a feature you personally believed in. What drove the decision?"},
	{"Product Manager", "Describe a launch that went worse than expected. What did you learn and apply next time?"},
	{"Data Scientist", "Tell me about a time your analysis contradicted what leadership wanted to hear. What happened?"},
	{"Designer", "Describe a time user research forced you to abandon a design direction you had invested in."},
	{"Sales", "Tell me about the most difficult deal you closed. What obstacles did you work through?"},
}

func main() {
	log.Println("🚀 Seeding question bank...")

	cfg := config.Load()

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	questionBank, err := services.NewQuestionBankService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
		geminiService,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := questionBank.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	ctx := context.Background()

	successCount := 0
	failCount := 0

	for _, seed := range seedQuestions {
		if err := questionBank.IndexQuestion(ctx, "seed", seed.Role, seed.Question); err != nil {
			log.Printf("❌ Failed to index %q: %v", seed.Question, err)
			failCount++
			continue
		}
		successCount++
	}

	log.Printf("📊 Seeding complete: %d indexed, %d failed", successCount, failCount)

	if failCount > 0 {
		log.Println("⚠️  Some questions failed to seed. Please check the logs above.")
	}
}
