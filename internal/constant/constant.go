package constant

import "time"

const (
	QUERY_TIMEOUT_DURATION = 10 * time.Second

	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"

	// Header used to correlate a request with its log lines.
	REQUEST_ID_HEADER = "X-Request-ID"
	REQUEST_ID_LENGTH = 21

	QR_CODE_DEFAULT_SIZE = 256
	QR_CODE_MAX_SIZE     = 1024
)

// Date layout of certificate dates on the wire and in CSV files.
const DateLayout = "2006-01-02"
