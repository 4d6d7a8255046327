package neologism

import "github.com/heartmarshall/neologe-backend/internal/domain"

// SubmissionDetail is the full view of one submission: the word itself,
// every provider attempt, and the conflict analysis if one was performed.
type SubmissionDetail struct {
	Submission domain.Submission
	Responses  []domain.ProviderResponse
	Evaluation *domain.Evaluation
}
