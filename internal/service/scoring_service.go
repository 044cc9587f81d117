package service

import (
	"math"

	"github.com/gmorandi/parlaquiz/internal/dto"
	"github.com/gmorandi/parlaquiz/internal/model"
)

// ScoringService turns a session's answer log into a placement report.
// Pure computation, no storage access.
type ScoringService interface {
	Score(answers []model.Answer) dto.ScoreReportResponse
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

func (s *scoringService) Score(answers []model.Answer) dto.ScoreReportResponse {
	total := len(answers)
	correct := 0
	for _, a := range answers {
		if a.IsCorrect != nil && *a.IsCorrect {
			correct++
		}
	}

	average := 0.0
	if total > 0 {
		average = truncate2(float64(correct) / float64(total) * 100)
	}

	return dto.ScoreReportResponse{
		TotalAnswers:     total,
		CorrectAnswers:   correct,
		AverageScore:     average,
		Grade:            letterGrade(average),
		ProficiencyLevel: proficiencyLevel(average),
	}
}

// truncate2 cuts to two decimals without rounding, so 2/3 scores 66.66.
func truncate2(x float64) float64 {
	return math.Trunc(x*100) / 100
}

// letterGrade rewards high scores narrowly: inclusive lower bounds.
func letterGrade(average float64) string {
	switch {
	case average >= 90:
		return "A"
	case average >= 80:
		return "B"
	case average >= 70:
		return "C"
	case average >= 60:
		return "D"
	case average >= 50:
		return "E"
	default:
		return "F"
	}
}

// proficiencyLevel maps to a CEFR band with inclusive upper bounds.
// The boundaries differ from letterGrade's (90 is grade A but only C1),
// so the two tables cannot share thresholds.
func proficiencyLevel(average float64) string {
	switch {
	case average <= 20:
		return "A1"
	case average <= 40:
		return "A2"
	case average <= 60:
		return "B1"
	case average <= 75:
		return "B2"
	case average <= 90:
		return "C1"
	default:
		return "C2"
	}
}
