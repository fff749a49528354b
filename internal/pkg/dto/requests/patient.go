package requests

// SearchPatients carries the raw, independently optional search parameters as
// received at the protocol boundary. An empty string means the parameter was
// not supplied. Enum and date-shape checks happen in the usecase before any
// engine call; page bounds are clamped there, not rejected.
type SearchPatients struct {
	Name          string `validate:"omitempty,max=256"`
	Category      string `validate:"omitempty,max=32"`
	BirthdateFrom string `validate:"omitempty,max=10"`
	BirthdateTo   string `validate:"omitempty,max=10"`
	PageSize      int
	PageOffset    int
}
