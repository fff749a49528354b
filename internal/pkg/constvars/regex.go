package constvars

const (
	RegexAlphanumeric    = `^[a-zA-Z0-9]+$`
	RegexNumeric         = `^\d+$`
	RegexDateYYYYMMDD    = `^\d{4}-\d{2}-\d{2}$`
	RegexTimeHHMMSS      = `^\d{2}:\d{2}:\d{2}$`
	RegexDateTimeISO8601 = `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})$`
)
