// Package errors provides custom errors for the service layer.
package errors

type (
	ServiceInitHashError struct {
		Msg string
	}
	ServiceEncodingHashError struct {
		Msg string
	}
	ServiceDecodingHashError struct {
		Msg string
	}
	ServiceFoundNilStorage struct {
		Msg string
	}
	ServiceFoundNilCodec struct {
		Msg string
	}
	ServiceIncorrectInputURL struct {
		Msg string
	}
)

func (e *ServiceInitHashError) Error() string {
	return e.Msg
}

func (e *ServiceEncodingHashError) Error() string {
	return e.Msg
}

func (e *ServiceDecodingHashError) Error() string {
	return e.Msg
}

func (e *ServiceFoundNilStorage) Error() string {
	return e.Msg
}

func (e *ServiceFoundNilCodec) Error() string {
	return e.Msg
}

func (e *ServiceIncorrectInputURL) Error() string {
	return e.Msg
}
