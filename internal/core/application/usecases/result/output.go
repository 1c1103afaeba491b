// Package result holds the uniform {ok, error, data} envelope every
// operation returns once authorization has passed.
package result

// Output is the result of one operation. Error is a stable, user facing
// message; it never carries internal detail.
type Output[T any] struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	Data  *T     `json:"data,omitempty"`
}

func Success[T any](data T) Output[T] {
	return Output[T]{OK: true, Data: &data}
}

func Failure[T any](message string) Output[T] {
	return Output[T]{OK: false, Error: message}
}
