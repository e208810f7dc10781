package httpx

type Option func(*LoggingRoundTripper)

func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}

// WithoutResponseBody logs only the status line and headers of responses.
// Large downloads are then streamed to the caller instead of being buffered
// for the dump.
func WithoutResponseBody() Option {
	return func(rt *LoggingRoundTripper) {
		rt.dumpResponseBody = false
	}
}
