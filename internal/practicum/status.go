package practicum

import "fmt"

// Verdicts for the three documented homework statuses.
var verdicts = map[string]string{
	"approved":  "Работа проверена: ревьюеру всё понравилось. Ура!",
	"reviewing": "Работа взята на проверку ревьюером.",
	"rejected":  "Работа проверена: у ревьюера есть замечания.",
}

// ParseStatus translates one homework record into its notification text.
// It is pure: comparing against the previously seen status is the
// monitor's job, so repeated calls for the same record return the same
// message.
func ParseStatus(hw Homework) (string, error) {
	if hw.Name == "" {
		return "", ErrMissingName
	}
	if hw.Status == "" {
		return "", ErrMissingStatus
	}

	verdict, ok := verdicts[hw.Status]
	if !ok {
		return "", &UnknownStatusError{Status: hw.Status}
	}

	return fmt.Sprintf("Изменился статус проверки работы %q. %s", hw.Name, verdict), nil
}
