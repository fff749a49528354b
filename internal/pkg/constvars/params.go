package constvars

const (
	URLParamPatientID = "patient_id"
)

const (
	URLQueryParamName          = "name"
	URLQueryParamCategory      = "category"
	URLQueryParamBirthdateFrom = "birthdate-from"
	URLQueryParamBirthdateTo   = "birthdate-to"
	URLQueryParamPageSize      = "page-size"
	URLQueryParamPageOffset    = "page-offset"
)

const (
	SearchPageSizeDefault = 20
	SearchPageSizeMin     = 1
	SearchPageSizeMax     = 100
	SearchPageOffsetMin   = 0
)

// Canonical filter document keys, in criteria definition order.
const (
	FilterKeyName          = "name"
	FilterKeyCategory      = "category"
	FilterKeyBirthdateFrom = "birthdateFrom"
	FilterKeyBirthdateTo   = "birthdateTo"
	FilterKeyPageSize      = "pageSize"
	FilterKeyPageOffset    = "pageOffset"
)
