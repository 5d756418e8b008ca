// Package analytics computes derived views over the accumulated record set.
// Every view is pure and recomputed on demand from a fresh store read; no
// view caches anything between calls.
package analytics

import (
	"sort"

	"github.com/edututor-ai/backend/internal/displaydate"
	"github.com/edututor-ai/backend/internal/store"
)

type Engine struct {
	store store.Store
}

func NewEngine(s store.Store) *Engine {
	return &Engine{store: s}
}

// ── View types ──────────────────────────────────────────────────────────────

type StudentSummary struct {
	UserID       string  `json:"user_id"`
	TotalQuizzes int     `json:"total_quizzes"`
	AverageScore float64 `json:"average_score"`
	LastTopic    string  `json:"last_topic"`
}

type GroupStat struct {
	Name    string  `json:"name"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type StudentRank struct {
	UserID       string  `json:"user_id"`
	Username     string  `json:"username"`
	AverageScore float64 `json:"average_score"`
	TotalQuizzes int     `json:"total_quizzes"`
}

type Champion struct {
	Topic    string  `json:"topic"`
	UserID   string  `json:"user_id"`
	Username string  `json:"username"`
	Score    float64 `json:"score"`
}

type LowPerformer struct {
	UserID       string  `json:"user_id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	AverageScore float64 `json:"average_score"`
	TotalQuizzes int     `json:"total_quizzes"`
}

type SentEncouragement struct {
	ID          string `json:"encouragement_id"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	Message     string `json:"message"`
	SentDate    string `json:"sent_date"`
}

type ClassOverview struct {
	TotalStudents int     `json:"total_students"`
	TotalQuizzes  int     `json:"total_quizzes"`
	ClassAverage  float64 `json:"class_average"`
}

// ── Views ───────────────────────────────────────────────────────────────────

// StudentSummary reports one student's quiz count, mean score and most
// recent topic. "Most recent" is the last quiz in append order, not a
// timestamp sort.
func (e *Engine) StudentSummary(userID string) (StudentSummary, error) {
	snap, err := e.snapshot()
	if err != nil {
		return StudentSummary{}, err
	}

	summary := StudentSummary{UserID: userID, LastTopic: "N/A"}
	var total float64
	for _, q := range snap.quizzes {
		if str(q, "user_id") != userID {
			continue
		}
		summary.TotalQuizzes++
		total += num(q, "score")
		summary.LastTopic = str(q, "topic")
	}
	if summary.TotalQuizzes > 0 {
		summary.AverageScore = total / float64(summary.TotalQuizzes)
	}
	if summary.LastTopic == "" {
		summary.LastTopic = "N/A"
	}
	return summary, nil
}

// SubjectAverages groups all quiz results by topic. Groups are sorted by
// topic name for deterministic output.
func (e *Engine) SubjectAverages() ([]GroupStat, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	return groupBy(snap.quizzes, "topic", sort.Strings), nil
}

// DifficultyAverages groups all quiz results by difficulty, ordered
// Easy, Medium, Hard, with any stray labels after those.
func (e *Engine) DifficultyAverages() ([]GroupStat, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	return groupBy(snap.quizzes, "difficulty", sortDifficulties), nil
}

// Leaderboard ranks students with at least one quiz result by mean score,
// descending, capped to the top 10. Ties break on username ascending.
func (e *Engine) Leaderboard() ([]StudentRank, error) {
	stats, err := e.studentStats()
	if err != nil {
		return nil, err
	}

	ranks := make([]StudentRank, 0, len(stats))
	for _, s := range stats {
		if s.totalQuizzes == 0 {
			continue
		}
		ranks = append(ranks, s.rank())
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].AverageScore != ranks[j].AverageScore {
			return ranks[i].AverageScore > ranks[j].AverageScore
		}
		return ranks[i].Username < ranks[j].Username
	})
	return capAt(ranks, 10), nil
}

// MostActive ranks all students by quiz count, descending, top 5. Students
// with no quizzes are still eligible.
func (e *Engine) MostActive() ([]StudentRank, error) {
	stats, err := e.studentStats()
	if err != nil {
		return nil, err
	}

	ranks := make([]StudentRank, 0, len(stats))
	for _, s := range stats {
		ranks = append(ranks, s.rank())
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].TotalQuizzes != ranks[j].TotalQuizzes {
			return ranks[i].TotalQuizzes > ranks[j].TotalQuizzes
		}
		return ranks[i].Username < ranks[j].Username
	})
	return capAt(ranks, 5), nil
}

// SubjectChampions picks one champion per topic. A student's candidacy is
// their single best topic: the topic among their attempts with the highest
// mean score. The champion of a topic is the strongest candidate whose best
// topic it is; on equal scores the earlier student (store order) keeps it.
func (e *Engine) SubjectChampions() ([]Champion, error) {
	stats, err := e.studentStats()
	if err != nil {
		return nil, err
	}

	champions := make(map[string]Champion)
	for _, s := range stats {
		best, bestScore := s.bestSubject()
		if best == "" {
			continue
		}
		if current, ok := champions[best]; !ok || bestScore > current.Score {
			champions[best] = Champion{
				Topic:    best,
				UserID:   s.userID,
				Username: s.username,
				Score:    bestScore,
			}
		}
	}

	out := make([]Champion, 0, len(champions))
	for _, c := range champions {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Topic < out[j].Topic })
	return out, nil
}

// LowPerformers lists students with at least one quiz whose mean score is
// below 60. The threshold is exclusive: exactly 60.0 is not low.
func (e *Engine) LowPerformers() ([]LowPerformer, error) {
	stats, err := e.studentStats()
	if err != nil {
		return nil, err
	}

	var low []LowPerformer
	for _, s := range stats {
		if s.totalQuizzes == 0 || s.average() >= 60 {
			continue
		}
		low = append(low, LowPerformer{
			UserID:       s.userID,
			Username:     s.username,
			Email:        s.email,
			AverageScore: s.average(),
			TotalQuizzes: s.totalQuizzes,
		})
	}
	return low, nil
}

// EncouragementHistory returns the educator's sent messages, newest first
// by parsed sent_date, capped to 10. Student names are resolved from the
// account set; an unknown student_id shows as "Unknown Student".
func (e *Engine) EncouragementHistory(educatorID string) ([]SentEncouragement, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	for _, a := range snap.accounts {
		names[str(a, "user_id")] = str(a, "username")
	}

	var history []SentEncouragement
	for _, enc := range snap.encouragements {
		if str(enc, "educator_id") != educatorID {
			continue
		}
		name, ok := names[str(enc, "student_id")]
		if !ok || name == "" {
			name = "Unknown Student"
		}
		history = append(history, SentEncouragement{
			ID:          str(enc, "encouragement_id"),
			StudentID:   str(enc, "student_id"),
			StudentName: name,
			Message:     str(enc, "message"),
			SentDate:    str(enc, "sent_date"),
		})
	}

	sort.SliceStable(history, func(i, j int) bool {
		return displaydate.Parse(history[i].SentDate).After(displaydate.Parse(history[j].SentDate))
	})
	if len(history) > 10 {
		history = history[:10]
	}
	return history, nil
}

// Overview aggregates the educator dashboard headline numbers. The quiz
// total counts every quiz record, while the class average only covers
// quizzes attributable to a known student account.
func (e *Engine) Overview() (ClassOverview, error) {
	snap, err := e.snapshot()
	if err != nil {
		return ClassOverview{}, err
	}

	students := make(map[string]bool)
	for _, a := range snap.accounts {
		if str(a, "role") == "student" {
			students[str(a, "user_id")] = true
		}
	}

	overview := ClassOverview{
		TotalStudents: len(students),
		TotalQuizzes:  len(snap.quizzes),
	}

	var total float64
	var count int
	for _, q := range snap.quizzes {
		if !students[str(q, "user_id")] {
			continue
		}
		total += num(q, "score")
		count++
	}
	if count > 0 {
		overview.ClassAverage = total / float64(count)
	}
	return overview, nil
}
