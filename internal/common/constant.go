package common

// DateLayout is the calendar date format used for document lifecycle dates
// in CLI input and output.
const DateLayout = "2006-01-02"

// TimestampLayout renders audit and workflow timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// DefaultRecentActivity is how many audit entries the dashboard shows
// when no other value is configured.
const DefaultRecentActivity = 5

// DefaultExportDir receives audit trail exports, relative to the working
// directory.
const DefaultExportDir = "exports"
