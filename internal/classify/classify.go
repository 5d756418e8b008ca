// Package classify assigns an untyped incoming record to one of the three
// entity kinds by inspecting its shape. The rule order is load-bearing:
// a truthy user_id wins over an explicit quiz_id, so a quiz-shaped payload
// submitted through the raw create path lands in the accounts collection.
// Stored data depends on that precedence; do not reorder the rules.
package classify

type Kind int

const (
	KindAccount Kind = iota
	KindQuizResult
	KindEncouragement
)

func (k Kind) String() string {
	switch k {
	case KindQuizResult:
		return "quiz_result"
	case KindEncouragement:
		return "encouragement"
	default:
		return "account"
	}
}

// Classify maps a record to an entity kind. First pass matches on truthy
// field values in priority order; the second pass falls back to bare key
// presence, defaulting to Account.
func Classify(record map[string]any) Kind {
	if truthy(record["user_id"]) || (truthy(record["username"]) && truthy(record["role"])) {
		return KindAccount
	}
	if truthy(record["quiz_id"]) && truthy(record["user_id"]) {
		return KindQuizResult
	}
	if truthy(record["encouragement_id"]) && truthy(record["educator_id"]) {
		return KindEncouragement
	}

	if _, ok := record["role"]; ok {
		return KindAccount
	}
	if _, ok := record["quiz_id"]; ok {
		return KindQuizResult
	}
	if _, ok := record["encouragement_id"]; ok {
		return KindEncouragement
	}
	return KindAccount
}

// truthy applies loose truthiness: absent, nil, empty string, zero number
// and false are all falsy.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return true
	}
}
