package practicum

// CheckResponse validates the shape of a decoded API answer and returns its
// homework list. The monitor only acts on the first element; the rest pass
// through untouched.
func CheckResponse(resp *StatusesResponse) ([]Homework, error) {
	if resp == nil || resp.Homeworks == nil {
		return nil, ErrNoHomeworks
	}
	if len(resp.Homeworks) == 0 {
		return nil, ErrEmptyHomeworks
	}
	return resp.Homeworks, nil
}
