package analytics

import "sort"

// recordSnapshot is one refresh-on-demand read of the store, split back
// into the three logical collections by shape checks on the flattened
// feed: a truthy role marks an account, a truthy quiz_id a quiz result,
// a truthy encouragement_id an encouragement.
type recordSnapshot struct {
	accounts       []map[string]any
	quizzes        []map[string]any
	encouragements []map[string]any
}

func (e *Engine) snapshot() (*recordSnapshot, error) {
	records, err := e.store.GetAll()
	if err != nil {
		return nil, err
	}

	snap := &recordSnapshot{}
	for _, r := range records {
		if str(r, "role") != "" {
			snap.accounts = append(snap.accounts, r)
		}
		if str(r, "quiz_id") != "" {
			snap.quizzes = append(snap.quizzes, r)
		}
		if str(r, "encouragement_id") != "" {
			snap.encouragements = append(snap.encouragements, r)
		}
	}
	return snap, nil
}

// studentStat accumulates one student's quiz history in store order.
type studentStat struct {
	userID       string
	username     string
	email        string
	totalQuizzes int
	totalScore   float64
	topicScores  map[string][]float64
	topicOrder   []string
}

func (s *studentStat) average() float64 {
	if s.totalQuizzes == 0 {
		return 0
	}
	return s.totalScore / float64(s.totalQuizzes)
}

func (s *studentStat) rank() StudentRank {
	return StudentRank{
		UserID:       s.userID,
		Username:     s.username,
		AverageScore: s.average(),
		TotalQuizzes: s.totalQuizzes,
	}
}

// bestSubject returns the attempted topic with the highest mean score.
// Strictly-greater comparison keeps the first topic on ties, and a student
// whose every topic mean is zero has no best subject.
func (s *studentStat) bestSubject() (string, float64) {
	best := ""
	bestScore := 0.0
	for _, topic := range s.topicOrder {
		scores := s.topicScores[topic]
		var sum float64
		for _, sc := range scores {
			sum += sc
		}
		avg := sum / float64(len(scores))
		if avg > bestScore {
			bestScore = avg
			best = topic
		}
	}
	return best, bestScore
}

// studentStats builds per-student aggregates for every student account,
// in store order.
func (e *Engine) studentStats() ([]*studentStat, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	var stats []*studentStat
	byID := make(map[string]*studentStat)
	for _, a := range snap.accounts {
		if str(a, "role") != "student" {
			continue
		}
		s := &studentStat{
			userID:      str(a, "user_id"),
			username:    str(a, "username"),
			email:       str(a, "email"),
			topicScores: make(map[string][]float64),
		}
		stats = append(stats, s)
		byID[s.userID] = s
	}

	for _, q := range snap.quizzes {
		s, ok := byID[str(q, "user_id")]
		if !ok {
			continue
		}
		topic := str(q, "topic")
		score := num(q, "score")
		s.totalQuizzes++
		s.totalScore += score
		if _, seen := s.topicScores[topic]; !seen {
			s.topicOrder = append(s.topicOrder, topic)
		}
		s.topicScores[topic] = append(s.topicScores[topic], score)
	}
	return stats, nil
}

func groupBy(quizzes []map[string]any, key string, order func([]string)) []GroupStat {
	totals := make(map[string]float64)
	counts := make(map[string]int)
	var names []string
	for _, q := range quizzes {
		name := str(q, key)
		if _, seen := counts[name]; !seen {
			names = append(names, name)
		}
		totals[name] += num(q, "score")
		counts[name]++
	}
	order(names)

	stats := make([]GroupStat, 0, len(names))
	for _, name := range names {
		stats = append(stats, GroupStat{
			Name:    name,
			Average: totals[name] / float64(counts[name]),
			Count:   counts[name],
		})
	}
	return stats
}

var difficultyOrder = map[string]int{"Easy": 0, "Medium": 1, "Hard": 2}

func sortDifficulties(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		oi, iKnown := difficultyOrder[names[i]]
		oj, jKnown := difficultyOrder[names[j]]
		if iKnown && jKnown {
			return oi < oj
		}
		if iKnown != jKnown {
			return iKnown
		}
		return names[i] < names[j]
	})
}

func capAt(ranks []StudentRank, n int) []StudentRank {
	if len(ranks) > n {
		return ranks[:n]
	}
	return ranks
}

// str reads a string field from an untyped record; anything else is "".
func str(r map[string]any, key string) string {
	s, _ := r[key].(string)
	return s
}

// num reads a numeric field. JSON decoding yields float64, but records
// built in-process may carry int.
func num(r map[string]any, key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}
