package llm

// ErrorMarker prefixes every failure shown to the user.
const ErrorMarker = "API Error: "

// Result is either an Answer or a Failure.
type Result interface {
	String() string
	isResult()
}

type Answer struct {
	Text string
}

func (a Answer) String() string {
	return a.Text
}

func (Answer) isResult() {}

type Failure struct {
	Kind Kind
	Err  error
}

func NewFailure(err error) Failure {
	return Failure{
		Kind: Classify(err),
		Err:  err,
	}
}

func (f Failure) String() string {
	return f.Message()
}

func (f Failure) Message() string {
	if f.Err == nil {
		return ErrorMarker + "unknown error"
	}
	return ErrorMarker + f.Err.Error()
}

func (Failure) isResult() {}
